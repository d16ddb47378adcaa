// Copyright © 2021 nftz Authors <EMAIL ADDRESS>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package core

import (
	"fmt"

	"github.com/Owez/nftz/common"
	"github.com/Owez/nftz/common/byteutil"
	"github.com/Owez/nftz/common/crypto"
	"github.com/Owez/nftz/types"
	"golang.org/x/crypto/sha3"
)

// HashVersion seals the byte layout of the hash preimage. Bump it whenever
// the layout changes so digests of different layouts can never collide.
const HashVersion byte = 0x01

// Block is one link of the chain. Blocks are sealed by Chain.PushData and
// never modified afterwards, every accessor hands out copies.
type Block struct {
	Index        uint64
	Timestamp    int64
	Payload      []byte
	PreviousHash types.Hash
	Hash         types.Hash
	Ownership    Ownership
}

// newBlock seals payload on top of previousHash and signs the result with a
// key pair freshly drawn from signer. Chain is the only caller.
func newBlock(signer crypto.Signer, index uint64, timestamp int64, payload []byte, previousHash types.Hash) (*Block, error) {
	b := &Block{
		Index:        index,
		Timestamp:    timestamp,
		Payload:      common.CopyBytes(payload),
		PreviousHash: previousHash,
	}
	b.Hash = b.CalcBlockHash()

	pub, priv, err := signer.RandomKeyPair()
	if err != nil {
		return nil, err
	}
	b.Ownership = Ownership{
		PublicKey: pub,
		Signature: signer.Sign(priv, b.SignatureTargets()),
		Owner:     signer.Address(pub),
	}
	return b, nil
}

// CalcBlockHash computes the digest over the stored fields. It never reads
// b.Hash, so a recompute can be compared against the sealed value.
func (b *Block) CalcBlockHash() (hash types.Hash) {
	w := byteutil.NewBinaryWriter()

	w.Write(HashVersion, b.Index, b.Timestamp)
	// length prefix keeps payload and link bytes from running together
	w.Write(uint64(len(b.Payload)), b.Payload, b.PreviousHash.Bytes)

	result := sha3.Sum256(w.Bytes())
	hash.MustSetBytes(result[0:])
	return
}

// SignatureTargets returns the parts the owner key signs.
func (b *Block) SignatureTargets() []byte {
	w := byteutil.NewBinaryWriter()

	w.Write(b.Hash.Bytes)
	return w.Bytes()
}

// VerifyOwnership checks the ownership signature against the sealed digest
// and the owner address against the public key. The genesis block has no
// key to check, asking for one is an error.
func (b *Block) VerifyOwnership(signer crypto.Signer) (bool, error) {
	if b.IsGenesis() {
		return false, ErrGenesisOwnership
	}
	if b.Ownership.Empty() {
		return false, nil
	}
	if !signer.Verify(b.Ownership.PublicKey, b.Ownership.Signature, b.SignatureTargets()) {
		return false, nil
	}
	return signer.Address(b.Ownership.PublicKey).EqualTo(b.Ownership.Owner), nil
}

func (b *Block) IsGenesis() bool {
	return b.Index == 0 && b.PreviousHash.Empty()
}

// Equal compares all stored fields of two blocks.
func (b *Block) Equal(other *Block) bool {
	if b == nil || other == nil {
		return b == other
	}
	return b.Index == other.Index &&
		b.Timestamp == other.Timestamp &&
		common.IsSameBytes(b.Payload, other.Payload) &&
		b.PreviousHash.Cmp(other.PreviousHash) == 0 &&
		b.Hash.Cmp(other.Hash) == 0 &&
		b.Ownership.Equal(other.Ownership)
}

// Copy returns a deep copy. Mutating the copy never reaches the original.
func (b *Block) Copy() *Block {
	if b == nil {
		return nil
	}
	cp := *b
	cp.Payload = common.CopyBytes(b.Payload)
	cp.Ownership = b.Ownership.Copy()
	return &cp
}

func (b *Block) String() string {
	s := b.Hash.Hex()
	return fmt.Sprintf("B-%d-[%s]", b.Index, s[len(s)-8:])
}

// Dump prints all fields for logger dump.
func (b *Block) Dump() string {
	return fmt.Sprintf("hash %s, pHash: %s, index: %d, time: %d, owner: %s, payload: %x",
		b.Hash.Hex(), b.PreviousHash.Hex(), b.Index, b.Timestamp, b.Ownership, b.Payload)
}
