package math

import (
	"math/big"
	"testing"
)

func TestPaddedBigBytes(t *testing.T) {
	v := big.NewInt(0x0102)
	padded := PaddedBigBytes(v, 4)
	if len(padded) != 4 {
		t.Fatalf("want 4 bytes, got %d", len(padded))
	}
	if padded[0] != 0 || padded[1] != 0 || padded[2] != 0x01 || padded[3] != 0x02 {
		t.Fatalf("wrong encoding: %x", padded)
	}

	// already wide enough, no extra padding
	wide := new(big.Int).Lsh(big.NewInt(1), 255)
	if len(PaddedBigBytes(wide, 32)) != 32 {
		t.Fatal("fail")
	}
}
