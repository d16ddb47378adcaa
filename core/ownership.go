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
	"github.com/Owez/nftz/common"
	"github.com/Owez/nftz/common/crypto"
	"github.com/Owez/nftz/types"
)

// Ownership ties a block to the key pair that sealed it. Every block gets a
// fresh pair, so owning a block means holding its private key. The genesis
// block is owned by nobody and keeps the zero value.
type Ownership struct {
	PublicKey crypto.PublicKey
	Signature crypto.Signature
	Owner     types.Address
}

// Empty reports whether no key material is attached. Only the genesis block
// legitimately stays empty.
func (o Ownership) Empty() bool {
	return o.PublicKey.Empty() && o.Signature.Empty()
}

func (o Ownership) Equal(other Ownership) bool {
	return o.PublicKey.Type == other.PublicKey.Type &&
		common.IsSameBytes(o.PublicKey.Bytes, other.PublicKey.Bytes) &&
		o.Signature.Type == other.Signature.Type &&
		common.IsSameBytes(o.Signature.Bytes, other.Signature.Bytes) &&
		o.Owner.EqualTo(other.Owner)
}

func (o Ownership) Copy() Ownership {
	return Ownership{
		PublicKey: crypto.PublicKeyFromBytes(o.PublicKey.Type, common.CopyBytes(o.PublicKey.Bytes)),
		Signature: crypto.SignatureFromBytes(o.Signature.Type, common.CopyBytes(o.Signature.Bytes)),
		Owner:     o.Owner,
	}
}

func (o Ownership) String() string {
	if o.Empty() {
		return "genesis"
	}
	return o.Owner.ShortString()
}
