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
package bls12_377

import (
	"github.com/NoamDev/crypto3-math/pkg/math/field"
)

// TwoAdicity is the largest s such that 2^s divides the order of the
// multiplicative group of the BLS12-377 scalar field.
const TwoAdicity uint = 47

// Generator of the full multiplicative group of the scalar field.
const Generator uint64 = 22

// rootOfUnity is a primitive 2^47-th root of unity, i.e. Generator powered
// by the odd part of the group order.
const rootOfUnity = "8065159656716812877374967518403273466521432693661810619979959746626482506078"

// Params describes the multiplicative structure of the BLS12-377 scalar
// field, as required for constructing evaluation domains over it.
func Params() field.Params[Element] {
	var root Element
	//
	if _, err := root.SetString(rootOfUnity); err != nil {
		panic(err)
	}
	//
	return field.Params[Element]{
		TwoAdicity:              TwoAdicity,
		RootOfUnity:             root,
		MultiplicativeGenerator: New(Generator),
	}
}
