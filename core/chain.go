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
	"strings"
	"sync"
	"time"

	"github.com/Owez/nftz/common/crypto"
	log "github.com/sirupsen/logrus"
	"go.uber.org/atomic"
)

type ChainConfig struct {
	// CryptoType selects the signature scheme for block ownership.
	CryptoType crypto.CryptoType

	// MaxPayloadSize rejects larger payloads when set above zero.
	MaxPayloadSize int

	// PayloadValidator runs against every payload before it is sealed.
	// A non nil error aborts the push.
	PayloadValidator func(data []byte) error
}

func DefaultChainConfig() ChainConfig {
	return ChainConfig{
		CryptoType: crypto.CryptoTypeEd25519,
	}
}

// Chain is an append only list of blocks where every block seals the digest
// of its parent. All methods are safe for concurrent use.
type Chain struct {
	conf   ChainConfig
	signer crypto.Signer

	blocks []*Block
	height atomic.Uint64

	mu sync.RWMutex
}

// NewChain builds a chain under the default config, already holding its
// genesis block.
func NewChain() *Chain {
	return NewChainWithConfig(DefaultChainConfig())
}

func NewChainWithConfig(conf ChainConfig) *Chain {
	signer := crypto.NewSigner(conf.CryptoType)
	if signer == nil {
		panic(fmt.Sprintf("unknown crypto type: %d", conf.CryptoType))
	}
	chain := &Chain{
		conf:   conf,
		signer: signer,
	}
	genesis := genesisBlock()
	chain.blocks = append(chain.blocks, genesis)
	chain.height.Store(genesis.Index)

	log.WithField("genesis", genesis.Hash.Hex()).Debug("chain created")
	return chain
}

// PushData seals data into a new block on the chain tip and returns a copy
// of the sealed block.
func (chain *Chain) PushData(data []byte) (*Block, error) {
	return chain.pushData(data)
}

// Verify walks the chain from genesis and reports whether every link still
// holds. A tampered chain is a false result, not an error; the error return
// only fires on misuse such as a chain without genesis.
func (chain *Chain) Verify() (bool, error) {
	return chain.verify()
}

// Len returns the number of blocks including genesis.
func (chain *Chain) Len() int {
	chain.mu.RLock()
	defer chain.mu.RUnlock()
	return len(chain.blocks)
}

// Height returns the index of the latest block without taking the chain
// lock.
func (chain *Chain) Height() uint64 {
	return chain.height.Load()
}

// Genesis returns a copy of the genesis block, nil on a zero value chain.
func (chain *Chain) Genesis() *Block {
	chain.mu.RLock()
	defer chain.mu.RUnlock()
	if len(chain.blocks) == 0 {
		return nil
	}
	return chain.blocks[0].Copy()
}

// Latest returns a copy of the newest block, nil on a zero value chain.
func (chain *Chain) Latest() *Block {
	chain.mu.RLock()
	defer chain.mu.RUnlock()
	if len(chain.blocks) == 0 {
		return nil
	}
	return chain.blocks[len(chain.blocks)-1].Copy()
}

// BlockAt returns a copy of the block at index, nil when out of range.
func (chain *Chain) BlockAt(index uint64) *Block {
	chain.mu.RLock()
	defer chain.mu.RUnlock()
	if index >= uint64(len(chain.blocks)) {
		return nil
	}
	return chain.blocks[index].Copy()
}

// Blocks returns copies of all blocks in chain order.
func (chain *Chain) Blocks() []*Block {
	chain.mu.RLock()
	defer chain.mu.RUnlock()
	blocks := make([]*Block, 0, len(chain.blocks))
	for _, b := range chain.blocks {
		blocks = append(blocks, b.Copy())
	}
	return blocks
}

func (chain *Chain) pushData(data []byte) (*Block, error) {
	if err := chain.validatePayload(data); err != nil {
		return nil, err
	}

	chain.mu.Lock()
	defer chain.mu.Unlock()

	if len(chain.blocks) == 0 {
		return nil, ErrEmptyChain
	}
	latest := chain.blocks[len(chain.blocks)-1]

	timestamp := time.Now().Unix()
	if timestamp < latest.Timestamp {
		// clock went backwards, keep block times non decreasing
		timestamp = latest.Timestamp
	}

	block, err := newBlock(chain.signer, latest.Index+1, timestamp, data, latest.Hash)
	if err != nil {
		return nil, err
	}
	chain.blocks = append(chain.blocks, block)
	chain.height.Store(block.Index)

	log.WithFields(log.Fields{
		"block": block.String(),
		"owner": block.Ownership.String(),
	}).Debug("sealed new block")

	return block.Copy(), nil
}

func (chain *Chain) validatePayload(data []byte) error {
	if chain.conf.MaxPayloadSize > 0 && len(data) > chain.conf.MaxPayloadSize {
		log.WithFields(log.Fields{
			"size": len(data),
			"max":  chain.conf.MaxPayloadSize,
		}).Warn("payload rejected")
		return ErrPayloadTooLarge
	}
	if chain.conf.PayloadValidator != nil {
		return chain.conf.PayloadValidator(data)
	}
	return nil
}

func (chain *Chain) verify() (bool, error) {
	chain.mu.RLock()
	defer chain.mu.RUnlock()

	if len(chain.blocks) == 0 {
		return false, ErrEmptyChain
	}

	genesis := chain.blocks[0]
	if !genesis.IsGenesis() || !genesis.Ownership.Empty() {
		log.WithField("block", genesis.String()).Warn("genesis block malformed")
		return false, nil
	}
	if genesis.Hash.Cmp(genesis.CalcBlockHash()) != 0 {
		log.WithField("block", genesis.String()).Warn("genesis digest mismatch")
		return false, nil
	}

	for i := 1; i < len(chain.blocks); i++ {
		prev, cur := chain.blocks[i-1], chain.blocks[i]

		if cur.Index != prev.Index+1 {
			log.WithField("block", cur.String()).Warn("index out of sequence")
			return false, nil
		}
		if cur.Timestamp < prev.Timestamp {
			log.WithField("block", cur.String()).Warn("timestamp decreased")
			return false, nil
		}
		if cur.PreviousHash.Cmp(prev.Hash) != 0 {
			log.WithField("block", cur.String()).Warn("parent link broken")
			return false, nil
		}
		if cur.Hash.Cmp(cur.CalcBlockHash()) != 0 {
			log.WithField("block", cur.String()).Warn("digest mismatch")
			return false, nil
		}
		if ok, err := cur.VerifyOwnership(chain.signer); err != nil || !ok {
			log.WithField("block", cur.String()).Warn("ownership not proven")
			return false, nil
		}
	}
	return true, nil
}

func (chain *Chain) String() string {
	chain.mu.RLock()
	defer chain.mu.RUnlock()
	var strs []string
	for _, b := range chain.blocks {
		strs = append(strs, b.String())
	}
	return strings.Join(strs, ", ")
}

// Dump prints all blocks for logger dump.
func (chain *Chain) Dump() string {
	chain.mu.RLock()
	defer chain.mu.RUnlock()
	var strs []string
	for _, b := range chain.blocks {
		strs = append(strs, b.Dump())
	}
	return strings.Join(strs, "\n")
}
