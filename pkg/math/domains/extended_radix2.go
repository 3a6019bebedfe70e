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
	"math/bits"

	"github.com/NoamDev/crypto3-math/pkg/math/fft"
	"github.com/NoamDev/crypto3-math/pkg/math/field"
)

// ExtendedRadix2Domain evaluates polynomials over the union of the
// order-(m/2) subgroup and its image under a fixed coset shift.  This covers
// fields whose multiplicative group order is 2^(s+1) times an odd number:
// the group has no subgroup of order m = 2^(s+1), so the domain is split
// into two half-size radix-2 pieces joined by the shift.
type ExtendedRadix2Domain[F field.Element[F]] struct {
	params field.Params[F]
	// m is the domain size, always 2·smallM.
	m uint64
	// smallM is the size of each half, a power of two.
	smallM uint64
	// omega is a primitive smallM-th root of unity.
	omega F
	// shift translates the subgroup into a disjoint coset.
	shift F
}

// NewExtendedRadix2Domain constructs a domain of the given size m, which
// must exceed one and satisfy log2(m) == TwoAdicity+1 for the given field.
func NewExtendedRadix2Domain[F field.Element[F]](params field.Params[F], m uint64) (*ExtendedRadix2Domain[F], error) {
	if m <= 1 {
		return nil, fmt.Errorf("%w: expected size > 1, got %d", ErrInvalidSize, m)
	}
	//
	if log2Ceil(m) != params.TwoAdicity+1 {
		return nil, fmt.Errorf("%w: expected log2(%d) == %d", ErrInconsistentTwoAdicity, m, params.TwoAdicity+1)
	}
	//
	smallM := m / 2
	//
	omega, err := params.UnityRoot(smallM)
	if err != nil {
		return nil, err
	}
	//
	return &ExtendedRadix2Domain[F]{
		params: params,
		m:      m,
		smallM: smallM,
		omega:  omega,
		shift:  params.CosetShift(),
	}, nil
}

// Size implementation for the EvaluationDomain interface.
func (d *ExtendedRadix2Domain[F]) Size() uint64 {
	return d.m
}

// FFT implementation for the EvaluationDomain interface.  Position i of the
// result holds the evaluation at omega^i, position smallM+i the evaluation
// at shift·omega^i.
func (d *ExtendedRadix2Domain[F]) FFT(a []F) ([]F, error) {
	a, err := d.pad(a)
	if err != nil {
		return nil, err
	}
	//
	var (
		a0 = make([]F, d.smallM)
		a1 = make([]F, d.smallM)

		shiftToSmallM = field.Pow(d.shift, d.smallM)
		shiftI        = field.One[F]()
	)
	// Split a into two half-length coefficient sequences, folding the coset
	// decomposition of the evaluation points into the coefficients.
	for i := uint64(0); i < d.smallM; i++ {
		a0[i] = a[i].Add(a[d.smallM+i])
		a1[i] = shiftI.Mul(a[i].Add(shiftToSmallM.Mul(a[d.smallM+i])))

		shiftI = shiftI.Mul(d.shift)
	}
	//
	if err := fft.Radix2(a0, d.omega); err != nil {
		return nil, err
	}
	//
	if err := fft.Radix2(a1, d.omega); err != nil {
		return nil, err
	}
	//
	copy(a[:d.smallM], a0)
	copy(a[d.smallM:], a1)
	//
	return a, nil
}

// InverseFFT implementation for the EvaluationDomain interface.
func (d *ExtendedRadix2Domain[F]) InverseFFT(a []F) ([]F, error) {
	a, err := d.pad(a)
	if err != nil {
		return nil, err
	}
	// Not in place: both input halves feed both output halves.
	var (
		a0 = make([]F, d.smallM)
		a1 = make([]F, d.smallM)
	)
	//
	copy(a0, a[:d.smallM])
	copy(a1, a[d.smallM:])
	//
	omegaInv := d.omega.Inverse()
	//
	if err := fft.Radix2(a0, omegaInv); err != nil {
		return nil, err
	}
	//
	if err := fft.Radix2(a1, omegaInv); err != nil {
		return nil, err
	}
	//
	var (
		one = field.One[F]()

		shiftToSmallM = field.Pow(d.shift, d.smallM)
		// sconst folds the 1/smallM factor of the two half transforms into
		// the recombination.
		sconst = field.Uint64[F](d.smallM).Mul(one.Sub(shiftToSmallM)).Inverse()

		negShiftToSmallM = field.Zero[F]().Sub(shiftToSmallM)
		shiftInv         = d.shift.Inverse()
		shiftInvI        = one
	)
	//
	for i := uint64(0); i < d.smallM; i++ {
		a[i] = sconst.Mul(negShiftToSmallM.Mul(a0[i]).Add(shiftInvI.Mul(a1[i])))
		a[d.smallM+i] = sconst.Mul(a0[i].Sub(shiftInvI.Mul(a1[i])))

		shiftInvI = shiftInvI.Mul(shiftInv)
	}
	//
	return a, nil
}

// EvaluateAllLagrangePolynomials implementation for the EvaluationDomain
// interface.  The basis of each half is that of the order-smallM subgroup,
// evaluated at t (resp. t·shift⁻¹) and rescaled so entries of the other
// half vanish.
func (d *ExtendedRadix2Domain[F]) EvaluateAllLagrangePolynomials(t F) ([]F, error) {
	var (
		one = field.One[F]()

		tToSmallM     = field.Pow(t, d.smallM)
		shiftToSmallM = field.Pow(d.shift, d.smallM)
	)
	//
	if shiftToSmallM.IsOne() {
		return nil, fmt.Errorf("%w: shift^%d == 1", ErrSingularCoset, d.smallM)
	}
	//
	var (
		t0 = fft.EvaluateAllLagrangePolynomials(d.smallM, d.omega, t)
		t1 = fft.EvaluateAllLagrangePolynomials(d.smallM, d.omega, t.Mul(d.shift.Inverse()))

		oneOverDenom = shiftToSmallM.Sub(one).Inverse()
		// t0Coeff = -(t^smallM - shift^smallM) / (shift^smallM - 1)
		t0Coeff = shiftToSmallM.Sub(tToSmallM).Mul(oneOverDenom)
		// t1Coeff = (t^smallM - 1) / (shift^smallM - 1)
		t1Coeff = tToSmallM.Sub(one).Mul(oneOverDenom)

		result = make([]F, d.m)
	)
	//
	for i := uint64(0); i < d.smallM; i++ {
		result[i] = t0[i].Mul(t0Coeff)
		result[d.smallM+i] = t1[i].Mul(t1Coeff)
	}
	//
	return result, nil
}

// DomainElement implementation for the EvaluationDomain interface.
func (d *ExtendedRadix2Domain[F]) DomainElement(index uint64) (F, error) {
	if index >= d.m {
		var zero F
		return zero, fmt.Errorf("%w: %d >= %d", ErrIndexOutOfRange, index, d.m)
	}
	//
	if index < d.smallM {
		return field.Pow(d.omega, index), nil
	}
	//
	return d.shift.Mul(field.Pow(d.omega, index-d.smallM)), nil
}

// EvaluateVanishingPolynomial implementation for the EvaluationDomain
// interface: Z(t) = (t^smallM - 1)·(t^smallM - shift^smallM).
func (d *ExtendedRadix2Domain[F]) EvaluateVanishingPolynomial(t F) F {
	var (
		one       = field.One[F]()
		tToSmallM = field.Pow(t, d.smallM)
	)
	//
	return tToSmallM.Sub(one).Mul(tToSmallM.Sub(field.Pow(d.shift, d.smallM)))
}

// AddVanishingPolynomial implementation for the EvaluationDomain interface.
// Expanded, Z(x) = x^m - (shift^smallM + 1)·x^smallM + shift^smallM, so
// exactly the slots 0, smallM and m of h are touched.
func (d *ExtendedRadix2Domain[F]) AddVanishingPolynomial(coeff F, h []F) {
	var (
		one           = field.One[F]()
		shiftToSmallM = field.Pow(d.shift, d.smallM)
	)
	//
	h[d.m] = h[d.m].Add(coeff)
	h[d.smallM] = h[d.smallM].Sub(coeff.Mul(shiftToSmallM.Add(one)))
	h[0] = h[0].Add(coeff.Mul(shiftToSmallM))
}

// DivideByVanishingOnCoset implementation for the EvaluationDomain
// interface.  The vanishing polynomial takes only two values over the
// generator-shifted domain: Z0 on {g·omega^i} and Z1 on {g·shift·omega^i},
// since t^smallM is constant on each half.
func (d *ExtendedRadix2Domain[F]) DivideByVanishingOnCoset(p []F) error {
	if uint64(len(p)) != d.m {
		return fmt.Errorf("%w: expected buffer of size %d, got %d", ErrSizeMismatch, d.m, len(p))
	}
	//
	var (
		one = field.One[F]()

		cosetToSmallM = field.Pow(d.params.MultiplicativeGenerator, d.smallM)
		shiftToSmallM = field.Pow(d.shift, d.smallM)

		z0      = cosetToSmallM.Sub(one).Mul(cosetToSmallM.Sub(shiftToSmallM))
		z1Point = cosetToSmallM.Mul(shiftToSmallM)
		z1      = z1Point.Sub(one).Mul(z1Point.Sub(shiftToSmallM))
	)
	//
	if z0.IsZero() || z1.IsZero() {
		return fmt.Errorf("%w: shifted coset intersects the domain", ErrDivisionByZero)
	}
	//
	var (
		z0Inv = z0.Inverse()
		z1Inv = z1.Inverse()
	)
	//
	for i := uint64(0); i < d.smallM; i++ {
		p[i] = p[i].Mul(z0Inv)
		p[d.smallM+i] = p[d.smallM+i].Mul(z1Inv)
	}
	//
	return nil
}

// pad zero-extends a up to the domain size, rejecting longer buffers.  No
// caller buffer is written before validation succeeds.
func (d *ExtendedRadix2Domain[F]) pad(a []F) ([]F, error) {
	if n := uint64(len(a)); n > d.m {
		return nil, fmt.Errorf("%w: expected buffer of size at most %d, got %d", ErrSizeMismatch, d.m, n)
	} else if n < d.m {
		a = append(a, make([]F, d.m-n)...)
	}
	//
	return a, nil
}

// log2Ceil rounds log2(n) up for n > 0.
func log2Ceil(n uint64) uint {
	return uint(bits.Len64(n - 1))
}
