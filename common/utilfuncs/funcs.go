package utilfuncs

import "fmt"

// PanicIfError panics with message when err is not nil. Reserve it for
// conditions that indicate a programming error, not for expected runtime
// failures.
func PanicIfError(err error, message string) {
	if err != nil {
		panic(fmt.Sprintf("%s: %v", message, err))
	}
}
