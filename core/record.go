package core

import (
	"fmt"

	"github.com/Owez/nftz/common"
	"github.com/Owez/nftz/common/crypto"
	"github.com/Owez/nftz/types"
)

//go:generate msgp

// RecordVersion seals the field layout of BlockRecord. Readers refuse
// records of a version they do not know.
const RecordVersion byte = 0x01

// BlockRecord is the storage form of a block. Key material is flattened to
// type prefixed raw bytes so the record does not depend on in-memory key
// types.
//msgp:tuple BlockRecord
type BlockRecord struct {
	Version      byte
	Index        uint64
	Timestamp    int64
	Payload      []byte
	PreviousHash types.Hash
	Hash         types.Hash
	OwnerPub     []byte
	Signature    []byte
	Owner        types.Address
}

func (z *BlockRecord) ToBytes() []byte {
	b, err := z.MarshalMsg(nil)
	if err != nil {
		panic(err)
	}
	return b
}

func (z *BlockRecord) FromBytes(bts []byte) error {
	_, err := z.UnmarshalMsg(bts)
	if err != nil {
		return err
	}
	return nil
}

// Record snapshots the block into its wire form.
func (b *Block) Record() BlockRecord {
	return NewRecordFromBlock(b)
}

func NewRecordFromBlock(b *Block) BlockRecord {
	r := BlockRecord{
		Version:      RecordVersion,
		Index:        b.Index,
		Timestamp:    b.Timestamp,
		Payload:      common.CopyBytes(b.Payload),
		PreviousHash: b.PreviousHash,
		Hash:         b.Hash,
		Owner:        b.Ownership.Owner,
	}
	if !b.Ownership.Empty() {
		r.OwnerPub = b.Ownership.PublicKey.ToRawBytes()
		r.Signature = b.Ownership.Signature.ToRawBytes()
	}
	return r
}

func NewBlockFromRecord(r *BlockRecord) (*Block, error) {
	if r.Version != RecordVersion {
		return nil, fmt.Errorf("record version %d: %w", r.Version, ErrUnknownRecordVersion)
	}
	b := &Block{
		Index:        r.Index,
		Timestamp:    r.Timestamp,
		Payload:      common.CopyBytes(r.Payload),
		PreviousHash: r.PreviousHash,
		Hash:         r.Hash,
	}
	if len(r.OwnerPub) > 0 || len(r.Signature) > 0 {
		pub, err := crypto.PublicKeyFromRawBytes(r.OwnerPub)
		if err != nil {
			return nil, err
		}
		sig, err := crypto.SignatureFromRawBytes(r.Signature)
		if err != nil {
			return nil, err
		}
		b.Ownership = Ownership{
			PublicKey: pub,
			Signature: sig,
			Owner:     r.Owner,
		}
	}
	return b, nil
}
