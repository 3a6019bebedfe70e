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
package domains

import (
	"fmt"

	"github.com/NoamDev/crypto3-math/pkg/math/fft"
	"github.com/NoamDev/crypto3-math/pkg/math/field"
)

// BasicRadix2Domain evaluates polynomials over a plain multiplicative
// subgroup of power-of-two order, the strategy of choice whenever the
// field's two-adicity accommodates the requested size directly.
type BasicRadix2Domain[F field.Element[F]] struct {
	params field.Params[F]
	// m is the domain size, a power of two.
	m uint64
	// omega is a primitive m-th root of unity.
	omega F
}

// NewBasicRadix2Domain constructs a domain over the subgroup of the given
// size m, which must be a power of two supported by the field's two-adicity.
func NewBasicRadix2Domain[F field.Element[F]](params field.Params[F], m uint64) (*BasicRadix2Domain[F], error) {
	if m <= 1 || m&(m-1) != 0 {
		return nil, fmt.Errorf("%w: expected a power of two > 1, got %d", ErrInvalidSize, m)
	}
	//
	if log2Ceil(m) > params.TwoAdicity {
		return nil, fmt.Errorf("%w: expected log2(%d) <= %d", ErrInconsistentTwoAdicity, m, params.TwoAdicity)
	}
	//
	omega, err := params.UnityRoot(m)
	if err != nil {
		return nil, err
	}
	//
	return &BasicRadix2Domain[F]{params: params, m: m, omega: omega}, nil
}

// Size implementation for the EvaluationDomain interface.
func (d *BasicRadix2Domain[F]) Size() uint64 {
	return d.m
}

// FFT implementation for the EvaluationDomain interface.  Position i of the
// result holds the evaluation at omega^i.
func (d *BasicRadix2Domain[F]) FFT(a []F) ([]F, error) {
	a, err := d.pad(a)
	if err != nil {
		return nil, err
	}
	//
	if err := fft.Radix2(a, d.omega); err != nil {
		return nil, err
	}
	//
	return a, nil
}

// InverseFFT implementation for the EvaluationDomain interface.
func (d *BasicRadix2Domain[F]) InverseFFT(a []F) ([]F, error) {
	a, err := d.pad(a)
	if err != nil {
		return nil, err
	}
	//
	if err := fft.Radix2(a, d.omega.Inverse()); err != nil {
		return nil, err
	}
	// The raw transform leaves an m factor on every coefficient.
	mInv := field.Uint64[F](d.m).Inverse()
	//
	for i := range a {
		a[i] = a[i].Mul(mInv)
	}
	//
	return a, nil
}

// EvaluateAllLagrangePolynomials implementation for the EvaluationDomain
// interface.
func (d *BasicRadix2Domain[F]) EvaluateAllLagrangePolynomials(t F) ([]F, error) {
	return fft.EvaluateAllLagrangePolynomials(d.m, d.omega, t), nil
}

// DomainElement implementation for the EvaluationDomain interface.
func (d *BasicRadix2Domain[F]) DomainElement(index uint64) (F, error) {
	if index >= d.m {
		var zero F
		return zero, fmt.Errorf("%w: %d >= %d", ErrIndexOutOfRange, index, d.m)
	}
	//
	return field.Pow(d.omega, index), nil
}

// EvaluateVanishingPolynomial implementation for the EvaluationDomain
// interface: Z(t) = t^m - 1.
func (d *BasicRadix2Domain[F]) EvaluateVanishingPolynomial(t F) F {
	return field.Pow(t, d.m).Sub(field.One[F]())
}

// AddVanishingPolynomial implementation for the EvaluationDomain interface.
// Only the slots 0 and m of h are touched.
func (d *BasicRadix2Domain[F]) AddVanishingPolynomial(coeff F, h []F) {
	h[d.m] = h[d.m].Add(coeff)
	h[0] = h[0].Sub(coeff)
}

// DivideByVanishingOnCoset implementation for the EvaluationDomain
// interface.  Z is constant over the generator-shifted subgroup, since
// (g·omega^i)^m = g^m.
func (d *BasicRadix2Domain[F]) DivideByVanishingOnCoset(p []F) error {
	if uint64(len(p)) != d.m {
		return fmt.Errorf("%w: expected buffer of size %d, got %d", ErrSizeMismatch, d.m, len(p))
	}
	//
	z := d.EvaluateVanishingPolynomial(d.params.MultiplicativeGenerator)
	//
	if z.IsZero() {
		return fmt.Errorf("%w: coset generator lies in the domain", ErrDivisionByZero)
	}
	//
	zInv := z.Inverse()
	//
	for i := range p {
		p[i] = p[i].Mul(zInv)
	}
	//
	return nil
}

// pad zero-extends a up to the domain size, rejecting longer buffers.
func (d *BasicRadix2Domain[F]) pad(a []F) ([]F, error) {
	if n := uint64(len(a)); n > d.m {
		return nil, fmt.Errorf("%w: expected buffer of size at most %d, got %d", ErrSizeMismatch, d.m, n)
	} else if n < d.m {
		a = append(a, make([]F, d.m-n)...)
	}
	//
	return a, nil
}
