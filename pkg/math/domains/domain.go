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
	"errors"

	"github.com/NoamDev/crypto3-math/pkg/math/field"
)

var (
	// ErrInvalidSize indicates a construction request for a domain whose
	// size is unsupported regardless of the field.
	ErrInvalidSize = errors.New("evaluation domain: invalid size")
	// ErrInconsistentTwoAdicity indicates the field cannot support a domain
	// of the requested size.
	ErrInconsistentTwoAdicity = errors.New("evaluation domain: size inconsistent with field two-adicity")
	// ErrSizeMismatch indicates a caller buffer which exceeds the domain
	// size, where only zero padding up to the size is permitted.
	ErrSizeMismatch = errors.New("evaluation domain: buffer size mismatch")
	// ErrIndexOutOfRange indicates a domain element lookup past the domain
	// size.
	ErrIndexOutOfRange = errors.New("evaluation domain: element index out of range")
	// ErrSingularCoset indicates a coset shift which lies inside the
	// subgroup it was meant to translate, a violated construction-time
	// precondition surfacing lazily.
	ErrSingularCoset = errors.New("evaluation domain: coset shift lies in subgroup")
	// ErrDivisionByZero indicates a vanishing polynomial evaluating to zero
	// on the coset over which evaluations were to be divided.
	ErrDivisionByZero = errors.New("evaluation domain: vanishing polynomial is zero on coset")
)

// An EvaluationDomain supports fast transforms between the coefficient and
// point-evaluation representations of a polynomial over a fixed set of field
// points.  Concrete strategies differ in how those points are structured;
// callers select a strategy at construction time based on the requested
// size.  Domains are immutable after construction and may be shared freely
// across goroutines; operations mutate only the caller-supplied buffers.
type EvaluationDomain[F field.Element[F]] interface {
	// Size m of the domain, i.e. the number of evaluation points.
	Size() uint64
	// FFT rewrites a buffer of polynomial coefficients into the
	// polynomial's evaluations over the domain's points.  Buffers shorter
	// than Size() are zero padded up to it; longer buffers are rejected
	// with ErrSizeMismatch.  The buffer, reallocated if padding required
	// it, is returned.
	FFT(a []F) ([]F, error)
	// InverseFFT rewrites domain evaluations back into coefficients,
	// under the same buffer rules as FFT.  Composed with FFT it is the
	// identity.
	InverseFFT(a []F) ([]F, error)
	// EvaluateAllLagrangePolynomials returns a buffer whose k-th entry is
	// the value at t of the k-th Lagrange basis polynomial of the domain.
	EvaluateAllLagrangePolynomials(t F) ([]F, error)
	// DomainElement returns the evaluation point at the given index.
	DomainElement(index uint64) (F, error)
	// EvaluateVanishingPolynomial returns the value at t of the monic
	// degree-Size() polynomial which is zero at every domain point.
	EvaluateVanishingPolynomial(t F) F
	// AddVanishingPolynomial adds coeff·Z(x) into the coefficient buffer
	// h, where Z is the domain's vanishing polynomial.  h must have length
	// at least Size()+1; it is not resized and an undersized buffer
	// panics.
	AddVanishingPolynomial(coeff F, h []F)
	// DivideByVanishingOnCoset rewrites evaluations of some polynomial
	// over the generator-shifted image of the domain, dividing each entry
	// by the vanishing polynomial's value at the same shifted point.  The
	// buffer length must equal Size().
	DivideByVanishingOnCoset(p []F) error
}
