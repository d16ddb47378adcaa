package core

import "github.com/tinylib/msgp/msgp"

// DecodeMsg implements msgp.Decodable
func (z *BlockRecord) DecodeMsg(dc *msgp.Reader) (err error) {
	var zb0001 uint32
	zb0001, err = dc.ReadArrayHeader()
	if err != nil {
		return
	}
	if zb0001 != 9 {
		err = msgp.ArrayError{Wanted: 9, Got: zb0001}
		return
	}
	z.Version, err = dc.ReadByte()
	if err != nil {
		return
	}
	z.Index, err = dc.ReadUint64()
	if err != nil {
		return
	}
	z.Timestamp, err = dc.ReadInt64()
	if err != nil {
		return
	}
	z.Payload, err = dc.ReadBytes(z.Payload)
	if err != nil {
		return
	}
	err = z.PreviousHash.DecodeMsg(dc)
	if err != nil {
		return
	}
	err = z.Hash.DecodeMsg(dc)
	if err != nil {
		return
	}
	z.OwnerPub, err = dc.ReadBytes(z.OwnerPub)
	if err != nil {
		return
	}
	z.Signature, err = dc.ReadBytes(z.Signature)
	if err != nil {
		return
	}
	err = z.Owner.DecodeMsg(dc)
	if err != nil {
		return
	}
	return
}

// EncodeMsg implements msgp.Encodable
func (z *BlockRecord) EncodeMsg(en *msgp.Writer) (err error) {
	// array header, size 9
	err = en.Append(0x99)
	if err != nil {
		return
	}
	err = en.WriteByte(z.Version)
	if err != nil {
		return
	}
	err = en.WriteUint64(z.Index)
	if err != nil {
		return
	}
	err = en.WriteInt64(z.Timestamp)
	if err != nil {
		return
	}
	err = en.WriteBytes(z.Payload)
	if err != nil {
		return
	}
	err = z.PreviousHash.EncodeMsg(en)
	if err != nil {
		return
	}
	err = z.Hash.EncodeMsg(en)
	if err != nil {
		return
	}
	err = en.WriteBytes(z.OwnerPub)
	if err != nil {
		return
	}
	err = en.WriteBytes(z.Signature)
	if err != nil {
		return
	}
	err = z.Owner.EncodeMsg(en)
	if err != nil {
		return
	}
	return
}

// MarshalMsg implements msgp.Marshaler
func (z *BlockRecord) MarshalMsg(b []byte) (o []byte, err error) {
	o = msgp.Require(b, z.Msgsize())
	// array header, size 9
	o = append(o, 0x99)
	o = msgp.AppendByte(o, z.Version)
	o = msgp.AppendUint64(o, z.Index)
	o = msgp.AppendInt64(o, z.Timestamp)
	o = msgp.AppendBytes(o, z.Payload)
	o, err = z.PreviousHash.MarshalMsg(o)
	if err != nil {
		return
	}
	o, err = z.Hash.MarshalMsg(o)
	if err != nil {
		return
	}
	o = msgp.AppendBytes(o, z.OwnerPub)
	o = msgp.AppendBytes(o, z.Signature)
	o, err = z.Owner.MarshalMsg(o)
	if err != nil {
		return
	}
	return
}

// UnmarshalMsg implements msgp.Unmarshaler
func (z *BlockRecord) UnmarshalMsg(bts []byte) (o []byte, err error) {
	var zb0001 uint32
	zb0001, bts, err = msgp.ReadArrayHeaderBytes(bts)
	if err != nil {
		return
	}
	if zb0001 != 9 {
		err = msgp.ArrayError{Wanted: 9, Got: zb0001}
		return
	}
	z.Version, bts, err = msgp.ReadByteBytes(bts)
	if err != nil {
		return
	}
	z.Index, bts, err = msgp.ReadUint64Bytes(bts)
	if err != nil {
		return
	}
	z.Timestamp, bts, err = msgp.ReadInt64Bytes(bts)
	if err != nil {
		return
	}
	z.Payload, bts, err = msgp.ReadBytesBytes(bts, z.Payload)
	if err != nil {
		return
	}
	bts, err = z.PreviousHash.UnmarshalMsg(bts)
	if err != nil {
		return
	}
	bts, err = z.Hash.UnmarshalMsg(bts)
	if err != nil {
		return
	}
	z.OwnerPub, bts, err = msgp.ReadBytesBytes(bts, z.OwnerPub)
	if err != nil {
		return
	}
	z.Signature, bts, err = msgp.ReadBytesBytes(bts, z.Signature)
	if err != nil {
		return
	}
	bts, err = z.Owner.UnmarshalMsg(bts)
	if err != nil {
		return
	}
	o = bts
	return
}

// Msgsize returns an upper bound estimate of the number of bytes occupied by the serialized message
func (z *BlockRecord) Msgsize() (s int) {
	s = 1 + msgp.ByteSize + msgp.Uint64Size + msgp.Int64Size + msgp.BytesPrefixSize + len(z.Payload) + z.PreviousHash.Msgsize() + z.Hash.Msgsize() + msgp.BytesPrefixSize + len(z.OwnerPub) + msgp.BytesPrefixSize + len(z.Signature) + z.Owner.Msgsize()
	return
}
