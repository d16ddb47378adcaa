package crypto

import (
	"errors"

	"github.com/Owez/nftz/common"
	"github.com/Owez/nftz/common/hexutil"
)

type CryptoType int

const (
	CryptoTypeEd25519 CryptoType = iota
	CryptoTypeSecp256k1
)

func (c CryptoType) String() string {
	switch c {
	case CryptoTypeEd25519:
		return "ed25519"
	case CryptoTypeSecp256k1:
		return "secp256k1"
	default:
		return "unknown"
	}
}

// ErrBadKeyMaterial is returned when raw bytes cannot be mapped back to a
// known crypto type.
var ErrBadKeyMaterial = errors.New("bad key material")

type PrivateKey struct {
	Type  CryptoType
	Bytes []byte
}

type PublicKey struct {
	Type  CryptoType
	Bytes []byte
}

type Signature struct {
	Type  CryptoType
	Bytes []byte
}

func PrivateKeyFromBytes(typev CryptoType, bytes []byte) PrivateKey {
	return PrivateKey{Type: typev, Bytes: bytes}
}
func PublicKeyFromBytes(typev CryptoType, bytes []byte) PublicKey {
	return PublicKey{Type: typev, Bytes: bytes}
}
func SignatureFromBytes(typev CryptoType, bytes []byte) Signature {
	return Signature{Type: typev, Bytes: bytes}
}

// ToRawBytes prefixes the key bytes with one crypto type byte so that the
// type survives storage round trips.
func (k PrivateKey) ToRawBytes() []byte { return rawBytes(k.Type, k.Bytes) }

func (k PublicKey) ToRawBytes() []byte { return rawBytes(k.Type, k.Bytes) }

func (s Signature) ToRawBytes() []byte { return rawBytes(s.Type, s.Bytes) }

func (k PublicKey) Empty() bool { return len(k.Bytes) == 0 }

func (s Signature) Empty() bool { return len(s.Bytes) == 0 }

func (k PrivateKey) String() string { return hexutil.Encode(k.ToRawBytes()) }
func (k PublicKey) String() string  { return hexutil.Encode(k.ToRawBytes()) }
func (s Signature) String() string  { return hexutil.Encode(s.ToRawBytes()) }

func PrivateKeyFromRawBytes(raw []byte) (PrivateKey, error) {
	typev, bytes, err := splitRawBytes(raw)
	if err != nil {
		return PrivateKey{}, err
	}
	return PrivateKeyFromBytes(typev, bytes), nil
}

func PublicKeyFromRawBytes(raw []byte) (PublicKey, error) {
	typev, bytes, err := splitRawBytes(raw)
	if err != nil {
		return PublicKey{}, err
	}
	return PublicKeyFromBytes(typev, bytes), nil
}

func SignatureFromRawBytes(raw []byte) (Signature, error) {
	typev, bytes, err := splitRawBytes(raw)
	if err != nil {
		return Signature{}, err
	}
	return SignatureFromBytes(typev, bytes), nil
}

func PrivateKeyFromString(value string) (priv PrivateKey, err error) {
	bytes, err := hexutil.Decode(value)
	if err != nil {
		return
	}
	return PrivateKeyFromRawBytes(bytes)
}

func PublicKeyFromString(value string) (pub PublicKey, err error) {
	bytes, err := hexutil.Decode(value)
	if err != nil {
		return
	}
	return PublicKeyFromRawBytes(bytes)
}

func rawBytes(typev CryptoType, bytes []byte) []byte {
	raw := make([]byte, 0, len(bytes)+1)
	raw = append(raw, byte(typev))
	return append(raw, bytes...)
}

func splitRawBytes(raw []byte) (CryptoType, []byte, error) {
	if len(raw) < 2 {
		return 0, nil, ErrBadKeyMaterial
	}
	typev := CryptoType(raw[0])
	if typev != CryptoTypeEd25519 && typev != CryptoTypeSecp256k1 {
		return 0, nil, ErrBadKeyMaterial
	}
	return typev, common.CopyBytes(raw[1:]), nil
}
