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
	"errors"
	"fmt"
	"math/bits"

	"github.com/NoamDev/crypto3-math/pkg/math/field"
)

// ErrNotPowerOfTwo indicates a sequence whose length is unsuitable for the
// radix-2 transform.
var ErrNotPowerOfTwo = errors.New("fft: sequence length is not a power of two")

// Radix2 transforms a in place between the coefficient and evaluation forms
// of a polynomial over the subgroup generated by root, which must have exact
// multiplicative order len(a) (a power of two).  The transform is unscaled:
// applying it again with root⁻¹ yields len(a) times the original sequence,
// so callers owning the inverse direction must fold in that factor
// themselves.
func Radix2[F field.Element[F]](a []F, root F) error {
	n := uint64(len(a))
	//
	if n == 0 || n&(n-1) != 0 {
		return fmt.Errorf("%w (%d)", ErrNotPowerOfTwo, len(a))
	} else if n == 1 {
		return nil
	}
	//
	bitReverse(a)
	//
	logn := uint(bits.TrailingZeros64(n))
	// Butterfly network: pass s merges blocks of size 2^(s-1) into 2^s.
	for s := uint(1); s <= logn; s++ {
		var (
			m = uint64(1) << s
			// wm has exact order m
			wm = field.Pow(root, n/m)
		)
		//
		for k := uint64(0); k < n; k += m {
			w := field.One[F]()
			//
			for j := uint64(0); j < m/2; j++ {
				t := w.Mul(a[k+j+m/2])
				u := a[k+j]
				a[k+j] = u.Add(t)
				a[k+j+m/2] = u.Sub(t)
				w = w.Mul(wm)
			}
		}
	}
	//
	return nil
}

// bitReverse applies the bit-reversal permutation to a, whose length must be
// a power of two.  For output out and input in, out[i] == in[bitreverse(i)]
// where bitreverse reverses the bit pattern of i read as a log2(len(a))-bit
// integer.
func bitReverse[F any](a []F) {
	var (
		n = uint64(len(a))
		// bits.Reverse64 reverses all 64 bits; correct down to log2(n) bits.
		shift = uint(64 - bits.TrailingZeros64(n))
	)
	//
	for i := uint64(0); i < n; i++ {
		irev := bits.Reverse64(i) >> shift
		if irev > i {
			a[i], a[irev] = a[irev], a[i]
		}
	}
}
