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
package field

import (
	"errors"
	"fmt"
	"math/bits"
)

// ErrNoUnityRoot indicates that a primitive root of unity of the requested
// order does not exist within the field described by a given Params value.
var ErrNoUnityRoot = errors.New("field has no primitive root of unity of requested order")

// Params describes the multiplicative structure of a prime-order field, as
// needed for constructing evaluation domains.  Passing it explicitly keeps a
// domain's dependency on its field parameters auditable, rather than hiding
// them behind per-type global state.
type Params[F Element[F]] struct {
	// TwoAdicity is the largest s such that 2^s divides the order of the
	// field's multiplicative group.
	TwoAdicity uint
	// RootOfUnity is a primitive 2^TwoAdicity-th root of unity.
	RootOfUnity F
	// MultiplicativeGenerator generates the full multiplicative group.
	MultiplicativeGenerator F
}

// UnityRoot returns a primitive n-th root of unity, where n must be a power
// of two no greater than 2^TwoAdicity.
func (p Params[F]) UnityRoot(n uint64) (F, error) {
	var zero F
	//
	if n == 0 || n&(n-1) != 0 {
		return zero, fmt.Errorf("%w: %d is not a power of two", ErrNoUnityRoot, n)
	}
	//
	logn := uint(bits.TrailingZeros64(n))
	if logn > p.TwoAdicity {
		return zero, fmt.Errorf("%w: %d exceeds two-adic order 2^%d", ErrNoUnityRoot, n, p.TwoAdicity)
	}
	// Power the maximal root down to exact order n.
	return Pow(p.RootOfUnity, uint64(1)<<(p.TwoAdicity-logn)), nil
}

// CosetShift returns a fixed element lying outside every subgroup of
// power-of-two order, used to translate such a subgroup into a disjoint
// coset.  The square of the multiplicative generator always qualifies.
func (p Params[F]) CosetShift() F {
	return p.MultiplicativeGenerator.Mul(p.MultiplicativeGenerator)
}
