package types

import "math/rand"

// RandomHash returns a pseudo random hash. Test and debug use only.
func RandomHash() Hash {
	var h Hash
	rand.Read(h.Bytes[:])
	return h
}

// RandomAddress returns a pseudo random address. Test and debug use only.
func RandomAddress() Address {
	var a Address
	rand.Read(a.Bytes[:])
	return a
}
