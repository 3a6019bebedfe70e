// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package gf8209

import (
	"testing"
)

const modulus = uint64(Modulus)

func Test_Gf8209_Roundtrip(t *testing.T) {
	for i := uint64(0); i < modulus; i++ {
		if New(i).Uint64() != i {
			t.Fatalf("roundtrip failed for %d (got %d)", i, New(i).Uint64())
		}
	}
}

func Test_Gf8209_Add(t *testing.T) {
	for i := uint64(0); i < modulus; i += 13 {
		for j := uint64(0); j < modulus; j += 17 {
			checkOp(t, "+", i, j, New(i).Add(New(j)), (i+j)%modulus)
		}
	}
}

func Test_Gf8209_Sub(t *testing.T) {
	for i := uint64(0); i < modulus; i += 13 {
		for j := uint64(0); j < modulus; j += 17 {
			checkOp(t, "-", i, j, New(i).Sub(New(j)), (modulus+i-j)%modulus)
		}
	}
}

func Test_Gf8209_Mul(t *testing.T) {
	for i := uint64(0); i < modulus; i += 13 {
		for j := uint64(0); j < modulus; j += 17 {
			checkOp(t, "*", i, j, New(i).Mul(New(j)), (i*j)%modulus)
		}
	}
}

func Test_Gf8209_Inverse(t *testing.T) {
	for i := uint64(1); i < modulus; i += 3 {
		val := New(i).Mul(New(i).Inverse())
		if !val.IsOne() {
			t.Fatalf("%d * %d^-1 != 1", i, i)
		}
	}
}

func Test_Gf8209_RootOfUnity(t *testing.T) {
	var (
		params = Params()
		val    = params.RootOfUnity
	)
	// Must have exact order 2^4.
	for i := 0; i < 3; i++ {
		val = val.Mul(val)

		if val.IsOne() {
			t.Fatalf("root of unity has order 2^%d", i+1)
		}
	}

	if !val.Mul(val).IsOne() {
		t.Error("root of unity does not have order 16")
	}
}

func checkOp(t *testing.T, op string, lhs, rhs uint64, actual Element, expected uint64) {
	t.Helper()

	if actual.Uint64() != expected {
		t.Fatalf("%d %s %d: expected %d, got %d", lhs, op, rhs, expected, actual.Uint64())
	}
}
