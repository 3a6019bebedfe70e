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
package fft

import (
	"github.com/NoamDev/crypto3-math/pkg/math/field"
)

// EvaluateAllLagrangePolynomials returns the Lagrange basis of the order-m
// subgroup generated by root, evaluated at t.  Entry i holds the value at t
// of the unique degree-<m polynomial which is 1 at root^i and 0 at every
// other power of root.
func EvaluateAllLagrangePolynomials[F field.Element[F]](m uint64, root F, t F) []F {
	var (
		one = field.One[F]()
		u   = make([]F, m)
	)
	//
	if m == 1 {
		u[0] = one
		return u
	}
	// When t lies in the subgroup the basis collapses to an indicator vector.
	if field.Pow(t, m).IsOne() {
		r := one
		//
		for i := uint64(0); i < m; i++ {
			if r.Cmp(t) == 0 {
				u[i] = one
				return u
			}

			r = r.Mul(root)
		}
	}
	// Otherwise L_i(t) = (t^m - 1)/m * root^i / (t - root^i).
	l := field.Pow(t, m).Sub(one).Mul(field.Uint64[F](m).Inverse())
	r := one
	//
	for i := uint64(0); i < m; i++ {
		u[i] = t.Sub(r)
		r = r.Mul(root)
	}
	//
	field.BatchInvert(u)
	//
	for i := uint64(0); i < m; i++ {
		u[i] = u[i].Mul(l)
		l = l.Mul(root)
	}
	//
	return u
}
