package byteutil

import (
	"bytes"
	"encoding/binary"

	"github.com/Owez/nftz/common/utilfuncs"
)

// BinaryWriter accumulates values in big endian byte order. It is used to
// build hash and signature preimages so that the byte layout is identical
// across platforms.
type BinaryWriter struct {
	buf *bytes.Buffer
}

func NewBinaryWriter() *BinaryWriter {
	return &BinaryWriter{
		buf: &bytes.Buffer{},
	}
}

func (s *BinaryWriter) Write(datas ...interface{}) {
	if s.buf == nil {
		s.buf = &bytes.Buffer{}
	}
	for _, data := range datas {
		utilfuncs.PanicIfError(binary.Write(s.buf, binary.BigEndian, data), "binary writer")
	}
}

//get bytes
func (s *BinaryWriter) Bytes() []byte {
	return s.buf.Bytes()
}
