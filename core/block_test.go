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
	"testing"

	"github.com/Owez/nftz/common"
	"github.com/Owez/nftz/common/crypto"
	"github.com/Owez/nftz/types"
	"github.com/stretchr/testify/require"
)

func newTestSigner() crypto.Signer {
	return crypto.NewSigner(crypto.CryptoTypeEd25519)
}

func TestBlockHash(t *testing.T) {
	signer := newTestSigner()
	b, err := newBlock(signer, 1, 1024, []byte("Hello, world!"), types.RandomHash())
	require.NoError(t, err)
	fmt.Println(b.String())
	fmt.Println(b.Dump())

	require.Equal(t, 0, b.Hash.Cmp(b.CalcBlockHash()))

	// the digest covers the stored fields but never the digest itself
	mutated := b.Copy()
	mutated.Hash = types.RandomHash()
	require.Equal(t, 0, b.CalcBlockHash().Cmp(mutated.CalcBlockHash()))
}

func TestBlockHashCoversFields(t *testing.T) {
	signer := newTestSigner()
	base, err := newBlock(signer, 3, 99, []byte("payload"), types.RandomHash())
	require.NoError(t, err)

	cases := map[string]func(b *Block){
		"index":         func(b *Block) { b.Index++ },
		"timestamp":     func(b *Block) { b.Timestamp++ },
		"payload":       func(b *Block) { b.Payload = []byte("Tampered") },
		"previous hash": func(b *Block) { b.PreviousHash = types.RandomHash() },
	}
	for name, mutate := range cases {
		mutated := base.Copy()
		mutate(mutated)
		if base.CalcBlockHash().Cmp(mutated.CalcBlockHash()) == 0 {
			t.Errorf("digest ignores %s", name)
		}
	}
}

func TestBlockOwnership(t *testing.T) {
	signer := newTestSigner()
	b, err := newBlock(signer, 1, 7, []byte("Hello, world!"), types.RandomHash())
	require.NoError(t, err)
	require.False(t, b.Ownership.Empty())
	require.True(t, signer.Address(b.Ownership.PublicKey).EqualTo(b.Ownership.Owner))

	ok, err := b.VerifyOwnership(signer)
	require.NoError(t, err)
	require.True(t, ok)

	// the signature covers the sealed digest
	resealed := b.Copy()
	resealed.Hash = types.RandomHash()
	ok, err = resealed.VerifyOwnership(signer)
	require.NoError(t, err)
	require.False(t, ok)

	forged := b.Copy()
	forged.Ownership.Owner = types.RandomAddress()
	ok, err = forged.VerifyOwnership(signer)
	require.NoError(t, err)
	require.False(t, ok)

	stripped := b.Copy()
	stripped.Ownership = Ownership{}
	ok, err = stripped.VerifyOwnership(signer)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestBlockFreshKeyPerBlock(t *testing.T) {
	signer := newTestSigner()
	b1, err := newBlock(signer, 1, 1, []byte("a"), types.RandomHash())
	require.NoError(t, err)
	b2, err := newBlock(signer, 2, 2, []byte("b"), b1.Hash)
	require.NoError(t, err)

	require.False(t, common.IsSameBytes(b1.Ownership.PublicKey.Bytes, b2.Ownership.PublicKey.Bytes))
	require.False(t, b1.Ownership.Owner.EqualTo(b2.Ownership.Owner))
}

func TestBlockGenesis(t *testing.T) {
	g := genesisBlock()
	require.True(t, g.IsGenesis())
	require.True(t, g.Ownership.Empty())
	require.True(t, g.PreviousHash.Empty())
	require.Equal(t, 0, g.Hash.Cmp(g.CalcBlockHash()))

	ok, err := g.VerifyOwnership(newTestSigner())
	require.False(t, ok)
	require.Equal(t, ErrGenesisOwnership, err)

	// genesis carries no entropy, so every chain starts from the same digest
	require.True(t, g.Equal(genesisBlock()))
}

func TestBlockCopy(t *testing.T) {
	signer := newTestSigner()
	data := []byte("Hello, world!")
	b, err := newBlock(signer, 5, 1, data, types.RandomHash())
	require.NoError(t, err)

	// the block keeps its own copy of the payload
	data[0] = 'h'
	require.Equal(t, byte('H'), b.Payload[0])

	c := b.Copy()
	require.True(t, b.Equal(c))

	c.Payload[0] = 'h'
	require.False(t, b.Equal(c))
	require.Equal(t, byte('H'), b.Payload[0])

	c = b.Copy()
	c.Ownership.Signature.Bytes[0] ^= 0xff
	require.False(t, b.Equal(c))

	ok, err := b.VerifyOwnership(signer)
	require.NoError(t, err)
	require.True(t, ok)
}
