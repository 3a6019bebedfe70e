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
	"github.com/NoamDev/crypto3-math/pkg/math/field/gf8209"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_UnityRoot_01(t *testing.T) {
	// n == 1 always has a root, namely one itself.
	root, err := gf2011.Params().UnityRoot(1)
	require.NoError(t, err)
	assert.True(t, root.IsOne())
}

func Test_UnityRoot_02(t *testing.T) {
	UnityRootCheck(t, gf2011.Params(), 2)
}

func Test_UnityRoot_03(t *testing.T) {
	for n := uint64(1); n <= 16; n *= 2 {
		UnityRootCheck(t, gf8209.Params(), n)
	}
}

func Test_UnityRoot_04(t *testing.T) {
	for n := uint64(1); n <= 1024; n *= 2 {
		UnityRootCheck(t, bls12_377.Params(), n)
	}
}

func Test_UnityRoot_05(t *testing.T) {
	// Not a power of two.
	_, err := gf8209.Params().UnityRoot(3)
	assert.ErrorIs(t, err, field.ErrNoUnityRoot)
}

func Test_UnityRoot_06(t *testing.T) {
	// Exceeds the two-adicity of the field.
	_, err := gf8209.Params().UnityRoot(32)
	assert.ErrorIs(t, err, field.ErrNoUnityRoot)
	//
	_, err = gf2011.Params().UnityRoot(4)
	assert.ErrorIs(t, err, field.ErrNoUnityRoot)
}

func Test_CosetShift_01(t *testing.T) {
	// Shift is the square of the multiplicative generator.
	assert.Equal(t, 0, gf2011.Params().CosetShift().Cmp(gf2011.New(9)))
	assert.Equal(t, 0, gf8209.Params().CosetShift().Cmp(gf8209.New(49)))
}

func Test_CosetShift_02(t *testing.T) {
	// Shift must lie outside the maximal power-of-two subgroup, otherwise the
	// coset would collapse onto the subgroup itself.
	var (
		params = gf8209.Params()
		shift  = params.CosetShift()
		order  = uint64(1) << params.TwoAdicity
	)
	//
	assert.False(t, field.Pow(shift, order).IsOne())
}

// UnityRootCheck requests an nth root of unity and verifies it has exact
// order n.
func UnityRootCheck[F field.Element[F]](t *testing.T, params field.Params[F], n uint64) {
	root, err := params.UnityRoot(n)
	require.NoError(t, err)
	//
	if !field.Pow(root, n).IsOne() {
		t.Errorf("%s^%d != 1", root, n)
	}
	//
	if n > 1 && field.Pow(root, n/2).IsOne() {
		t.Errorf("%s has order below %d", root, n)
	}
}
