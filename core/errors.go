package core

import (
	"errors"
)

var (
	ErrEmptyChain = errors.New("chain holds no blocks, not even genesis")

	ErrPayloadTooLarge = errors.New("payload exceeds configured max size")

	ErrGenesisOwnership = errors.New("genesis block carries no ownership key")

	ErrUnknownRecordVersion = errors.New("unknown block record version")
)
