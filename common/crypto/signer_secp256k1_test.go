package crypto

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignerSecp(t *testing.T) {
	signer := SignerSecp256k1{}

	pub, priv, err := signer.RandomKeyPair()
	assert.NoError(t, err)

	fmt.Println(hex.Dump(pub.Bytes))
	fmt.Println(hex.Dump(priv.Bytes))
	address := signer.Address(pub)
	fmt.Println(hex.Dump(address.Bytes[:]))
	fmt.Println(signer.Address(pub).Hex())

	fmt.Printf("%x\n", priv.Bytes[:])
	fmt.Printf("%x\n", pub.Bytes[:])
	fmt.Printf("%x\n", address.Bytes[:])

	pub2 := signer.PubKey(priv)
	fmt.Println(hex.Dump(pub2.Bytes))
	assert.True(t, bytes.Equal(pub.Bytes, pub2.Bytes))

	content := []byte("This is a test")
	sig := signer.Sign(priv, content)
	fmt.Println(hex.Dump(sig.Bytes))

	assert.True(t, signer.Verify(pub2, sig, content))

	content[0] = 0x88
	assert.False(t, signer.Verify(pub2, sig, content))

}

func TestSignerSecpDeterministic(t *testing.T) {
	t.Parallel()

	signer := SignerSecp256k1{}
	_, priv, err := signer.RandomKeyPair()
	assert.NoError(t, err)

	b := []byte("foo")
	sig1 := signer.Sign(priv, b)
	sig2 := signer.Sign(priv, b)
	// RFC 6979 nonces make compact signatures repeatable
	assert.Equal(t, sig1.Bytes, sig2.Bytes)
	assert.Equal(t, sigLength+1, len(sig1.Bytes))
}

func TestSignerSecpRecover(t *testing.T) {
	signer := SignerSecp256k1{}
	pub, priv, err := signer.RandomKeyPair()
	assert.NoError(t, err)

	content := []byte("recover me")
	sig := signer.Sign(priv, content)

	recovered, err := Ecrecover(Sha256(content), sig.Bytes)
	assert.NoError(t, err)
	assert.True(t, bytes.Equal(pub.Bytes, recovered))

	_, err = Ecrecover(Sha256(content), sig.Bytes[:10])
	assert.Error(t, err)
}

func TestSignerSecpTruncatedSig(t *testing.T) {
	signer := SignerSecp256k1{}
	pub, priv, err := signer.RandomKeyPair()
	assert.NoError(t, err)

	content := []byte("short sig")
	sig := signer.Sign(priv, content)
	sig.Bytes = sig.Bytes[:16]
	assert.False(t, signer.Verify(pub, sig, content))
}
