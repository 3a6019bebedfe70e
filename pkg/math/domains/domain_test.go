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
package domains_test

import (
	"github.com/NoamDev/crypto3-math/pkg/math/domains"
	"github.com/NoamDev/crypto3-math/pkg/math/field/bls12_377"
	"github.com/NoamDev/crypto3-math/pkg/math/field/gf8209"
)

// Both strategies satisfy the domain interface.
var (
	_ domains.EvaluationDomain[gf8209.Element]    = &domains.ExtendedRadix2Domain[gf8209.Element]{}
	_ domains.EvaluationDomain[bls12_377.Element] = &domains.BasicRadix2Domain[bls12_377.Element]{}
)
