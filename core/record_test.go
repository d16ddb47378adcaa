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
	"errors"
	"fmt"
	"testing"

	"github.com/Owez/nftz/common/crypto"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"
)

func TestRecordRoundTrip(t *testing.T) {
	chain := newTestChain(t, "Hello, world!", "Second entry")

	for _, b := range chain.Blocks() {
		record := NewRecordFromBlock(b)
		data := record.ToBytes()
		fmt.Printf("block %d record: %d bytes\n", b.Index, len(data))

		var decoded BlockRecord
		err := decoded.FromBytes(data)
		require.NoError(t, err)
		require.Equal(t, RecordVersion, decoded.Version)

		restored, err := NewBlockFromRecord(&decoded)
		require.NoError(t, err)
		if !restored.Equal(b) {
			t.Errorf("restored block mismatch:\ngot: %s\nwant: %s",
				spew.Sdump(restored), spew.Sdump(b))
		}
	}
}

func TestRecordKeepsOwnership(t *testing.T) {
	chain := newTestChain(t, "Hello, world!")
	b := chain.Latest()

	record := b.Record()
	var decoded BlockRecord
	require.NoError(t, decoded.FromBytes(record.ToBytes()))

	restored, err := NewBlockFromRecord(&decoded)
	require.NoError(t, err)

	ok, err := restored.VerifyOwnership(newTestSigner())
	require.NoError(t, err)
	require.True(t, ok)
	require.True(t, restored.Ownership.Owner.EqualTo(b.Ownership.Owner))
}

func TestRecordGenesis(t *testing.T) {
	record := NewRecordFromBlock(genesisBlock())
	require.Empty(t, record.OwnerPub)
	require.Empty(t, record.Signature)

	var decoded BlockRecord
	require.NoError(t, decoded.FromBytes(record.ToBytes()))

	restored, err := NewBlockFromRecord(&decoded)
	require.NoError(t, err)
	require.True(t, restored.IsGenesis())
	require.True(t, restored.Ownership.Empty())
	require.True(t, restored.Equal(genesisBlock()))
}

func TestRecordUnknownVersion(t *testing.T) {
	record := NewRecordFromBlock(genesisBlock())
	record.Version = 0x7f

	_, err := NewBlockFromRecord(&record)
	require.True(t, errors.Is(err, ErrUnknownRecordVersion))
}

func TestRecordBadKeyMaterial(t *testing.T) {
	chain := newTestChain(t, "Hello, world!")
	record := NewRecordFromBlock(chain.Latest())

	record.OwnerPub = []byte{0xff}
	_, err := NewBlockFromRecord(&record)
	require.True(t, errors.Is(err, crypto.ErrBadKeyMaterial))
}

func TestRecordTruncated(t *testing.T) {
	chain := newTestChain(t, "Hello, world!")
	record := NewRecordFromBlock(chain.Latest())
	data := record.ToBytes()

	var decoded BlockRecord
	require.Error(t, decoded.FromBytes(data[:len(data)/2]))
	require.Error(t, decoded.FromBytes(nil))
}
