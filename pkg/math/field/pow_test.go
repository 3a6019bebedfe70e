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
package field_test

import (
	"testing"

	"github.com/NoamDev/crypto3-math/pkg/math/field"
	"github.com/NoamDev/crypto3-math/pkg/math/field/bls12_377"
	"github.com/NoamDev/crypto3-math/pkg/math/field/gf2011"
)

func Test_Pow_00(t *testing.T) {
	PowCheck(t, 1, 1)
}
func Test_Pow_01(t *testing.T) {
	PowCheck(t, 2, 1)
}
func Test_Pow_02(t *testing.T) {
	PowCheck(t, 2, 2)
}
func Test_Pow_03(t *testing.T) {
	PowCheck(t, 2, 3)
}
func Test_Pow_04(t *testing.T) {
	PowCheck(t, 2, 4)
}
func Test_Pow_05(t *testing.T) {
	PowCheck(t, 3, 1)
}
func Test_Pow_06(t *testing.T) {
	PowCheck(t, 3, 2)
}
func Test_Pow_07(t *testing.T) {
	PowCheck(t, 3, 3)
}
func Test_Pow_08(t *testing.T) {
	PowCheck(t, 3, 4)
}
func Test_Pow_09(t *testing.T) {
	PowCheck(t, 3, 5)
}

func Test_Pow_10(t *testing.T) {
	// Anything to the power zero is one.
	val := field.Pow(gf2011.New(1234), 0)
	if !val.IsOne() {
		t.Errorf("expected 1, got %s", val)
	}
}

func Test_Pow_11(t *testing.T) {
	// Fermat: x^(p-1) == 1 for x != 0.
	val := field.Pow(gf2011.New(1234), uint64(gf2011.Modulus)-1)
	if !val.IsOne() {
		t.Errorf("expected 1, got %s", val)
	}
}

func Test_Pow_12(t *testing.T) {
	// Cross check the bls12-377 wrapper against repeated multiplication.
	var (
		acc = field.One[bls12_377.Element]()
		val = bls12_377.New(987654321)
	)
	//
	for n := uint64(0); n < 32; n++ {
		lhs := field.Pow(val, n)
		if lhs.Cmp(acc) != 0 {
			t.Errorf("%s^%d: expected %s, got %s", val, n, acc, lhs)
		}

		acc = acc.Mul(val)
	}
}

// PowCheck compares Pow against naive repeated multiplication across a range
// of exponents.
func PowCheck(t *testing.T, base uint64, exp uint64) {
	var (
		val      = gf2011.New(base)
		expected = field.One[gf2011.Element]()
	)
	//
	for i := uint64(0); i < exp; i++ {
		expected = expected.Mul(val)
	}
	//
	actual := field.Pow(val, exp)
	//
	if actual.Cmp(expected) != 0 {
		t.Errorf("%d^%d: expected %s, got %s", base, exp, expected, actual)
	}
}
