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
package types

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"testing"
)

func TestHash(t *testing.T) {

	var emHash Hash
	var nHash Hash
	nHash = HexToHash("0xc770f1dccb00c0b845d36d3baee2590defee2d6894f853eb63a60270612271a3")
	mHash := HexToHash("0xc770f1dccb00c0b845d36d3baee2590defee2d6894f853eb63a60270612271a3")
	if !emHash.Empty() {
		t.Fatalf("fail")
	}
	if nHash.Empty() {
		t.Fatalf("fail")
	}
	hashes := Hashes{nHash, emHash}
	fmt.Println(hashes.String())
	pHash := &nHash
	p2hash := &mHash
	if nHash != mHash {
		t.Fatal("should equal")
	}
	if pHash == p2hash {
		t.Fatal("should not  equal")
	}
}

func TestHexToHash(t *testing.T) {
	h := RandomHash()
	d, err := json.Marshal(&h)
	fmt.Println(string(d), err)
	if err != nil {
		t.Fatal(err)
	}

	var back Hash
	if err = json.Unmarshal(d, &back); err != nil {
		t.Fatal(err)
	}
	if back != h {
		t.Fatal("should equal")
	}
}

func TestHash_Empty(t *testing.T) {
	var h Hash
	fmt.Println(h)
	if h.Empty() {
		fmt.Println("empty")
	} else {
		t.Fatal("should be empty")
	}
}

func TestHash_Cmp(t *testing.T) {
	a := HexToHash("0x01")
	b := HexToHash("0x02")
	if a.Cmp(b) != -1 {
		t.Fatal("fail")
	}
	if b.Cmp(a) != 1 {
		t.Fatal("fail")
	}
	if a.Cmp(a) != 0 {
		t.Fatal("fail")
	}
}

func TestHashMsgp(t *testing.T) {
	h := RandomHash()
	bts, err := h.MarshalMsg(nil)
	if err != nil {
		t.Fatal(err)
	}
	fmt.Println(hex.Dump(bts))

	var back Hash
	left, err := back.UnmarshalMsg(bts)
	if err != nil {
		t.Fatal(err)
	}
	if len(left) != 0 {
		t.Fatal("bytes left")
	}
	if back != h {
		t.Fatal("should equal")
	}
}
