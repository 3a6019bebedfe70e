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
package fft_test

import (
	"testing"

	"github.com/NoamDev/crypto3-math/pkg/math/fft"
	"github.com/NoamDev/crypto3-math/pkg/math/field"
	"github.com/NoamDev/crypto3-math/pkg/math/field/gf8209"
	"github.com/NoamDev/crypto3-math/pkg/math/polynomial"
	"github.com/stretchr/testify/require"
)

func Test_Lagrange_01(t *testing.T) {
	// Degenerate domain of size one.
	basis := fft.EvaluateAllLagrangePolynomials(1, field.One[gf8209.Element](), gf8209.New(123))
	require.Len(t, basis, 1)
	require.True(t, basis[0].IsOne())
}

func Test_Lagrange_02(t *testing.T) {
	// On-domain points give indicator vectors.
	var (
		m    = uint64(16)
		root = unityRoot(t, m)
	)
	//
	for j := uint64(0); j < m; j++ {
		basis := fft.EvaluateAllLagrangePolynomials(m, root, field.Pow(root, j))
		//
		for i := uint64(0); i < m; i++ {
			if i == j && !basis[i].IsOne() {
				t.Errorf("L_%d(w^%d) != 1", i, j)
			} else if i != j && !basis[i].IsZero() {
				t.Errorf("L_%d(w^%d) != 0", i, j)
			}
		}
	}
}

func Test_Lagrange_03(t *testing.T) {
	LagrangeCheck(t, []uint64{5, 0, 0, 0, 0, 0, 0, 0}, 3)
}
func Test_Lagrange_04(t *testing.T) {
	LagrangeCheck(t, []uint64{1, 2, 3, 4, 5, 6, 7, 8}, 3)
}
func Test_Lagrange_05(t *testing.T) {
	LagrangeCheck(t, []uint64{9, 0, 2, 0, 1, 0, 0, 6, 1, 1, 2, 3, 5, 8, 13, 21}, 100)
}

// LagrangeCheck verifies the interpolation identity: for any polynomial P of
// degree below m, the basis evaluations at t recombine the values P(w^i)
// into P(t).
func LagrangeCheck(t *testing.T, vals []uint64, point uint64) {
	var (
		m      = uint64(len(vals))
		root   = unityRoot(t, m)
		coeffs = make([]gf8209.Element, m)
		x      = gf8209.New(point)
	)
	//
	for i, v := range vals {
		coeffs[i] = gf8209.New(v)
	}
	//
	var (
		basis = fft.EvaluateAllLagrangePolynomials(m, root, x)
		sum   = field.Zero[gf8209.Element]()
	)
	//
	for i := uint64(0); i < m; i++ {
		val := polynomial.Evaluate(coeffs, field.Pow(root, i))
		sum = sum.Add(basis[i].Mul(val))
	}
	//
	expected := polynomial.Evaluate(coeffs, x)
	//
	if sum.Cmp(expected) != 0 {
		t.Errorf("expected %s, got %s", expected, sum)
	}
}

func unityRoot(t *testing.T, n uint64) gf8209.Element {
	t.Helper()

	root, err := gf8209.Params().UnityRoot(n)
	require.NoError(t, err)

	return root
}
