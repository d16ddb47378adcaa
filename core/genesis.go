package core

import (
	"github.com/Owez/nftz/types"
)

// GenesisPreviousHash is the all zero sentinel the genesis block links to.
// No real digest is ever all zero.
var GenesisPreviousHash = types.Hash{}

// genesisBlock builds the deterministic block every chain starts from. It
// carries no payload, no ownership, and a fixed zero timestamp, so two
// chains always agree on their root.
func genesisBlock() *Block {
	b := &Block{
		Index:        0,
		Timestamp:    0,
		PreviousHash: GenesisPreviousHash,
	}
	b.Hash = b.CalcBlockHash()
	return b
}
