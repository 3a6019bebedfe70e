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
package polynomial

import (
	"github.com/NoamDev/crypto3-math/pkg/math/field"
)

// Evaluate the polynomial with the given coefficients (constant term first)
// at the point x, using Horner's rule.  An empty coefficient list denotes
// the zero polynomial.
func Evaluate[F field.Element[F]](coeffs []F, x F) F {
	acc := field.Zero[F]()
	//
	for i := len(coeffs) - 1; i >= 0; i-- {
		acc = acc.Mul(x).Add(coeffs[i])
	}
	//
	return acc
}
