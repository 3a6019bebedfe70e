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
package main

import (
	"fmt"
	"math/big"
	"os"
	"os/exec"
	"strings"

	"github.com/consensys/bavard"
)

const copyrightHolder = "Consensys Software Inc."

//go:generate go run main.go
func main() {
	bgen := bavard.NewBatchGenerator(copyrightHolder, 2025, "crypto3-math/pkg/math/field/internal/generator")

	specs := []fieldSpecs{
		{Name: "gf2011", Modulus: 2011},
		{Name: "gf8209", Modulus: 8209},
	}

	for _, spec := range specs {
		cfg, err := spec.config()
		assertNoError(err, "for field \"%s\"", spec.Name)

		assertNoError(bgen.Generate(cfg, spec.Name, "templates",
			bavard.Entry{
				File:      fmt.Sprintf("../../%s/element.go", spec.Name),
				Templates: []string{"element.go.tmpl"},
			},
		), "for field \"%s\"", spec.Name)
	}
	// run gofmt on whole directory
	runCmd("gofmt", "-w", "../../")

	// run goimports on whole directory
	runCmd("goimports", "-w", "../../")
}

func runCmd(name string, arg ...string) {
	fmt.Println(name, strings.Join(arg, " "))
	cmd := exec.Command(name, arg...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	assertNoError(cmd.Run(), "")
}

type fieldSpecs struct {
	Name    string
	Modulus uint32
}

// fieldConfig carries everything the element template needs: the modulus
// spec plus the derived multiplicative and Montgomery constants.
type fieldConfig struct {
	Name              string
	Modulus           uint32
	TwoAdicity        uint
	Generator         uint32
	RootOfUnity       uint32
	NegModulusInvModR uint32
	RMont             uint32
	RSquared          uint32
}

func (s fieldSpecs) config() (fieldConfig, error) {
	var (
		p = uint64(s.Modulus)
		r = big.NewInt(1 << 32)
	)
	//
	if s.Modulus >= 1<<31 || !big.NewInt(int64(p)).ProbablyPrime(20) {
		return fieldConfig{}, fmt.Errorf("modulus must be an odd prime below 2^31")
	}
	// Two-adicity: largest s with 2^s | p-1.
	adicity, odd := uint(0), p-1
	for odd%2 == 0 {
		odd /= 2
		adicity++
	}
	//
	gen, err := primitiveRoot(p)
	if err != nil {
		return fieldConfig{}, err
	}
	// Montgomery constants for R = 2^32.
	pInv := new(big.Int).ModInverse(big.NewInt(int64(p)), r)
	negInv := new(big.Int).Sub(r, pInv)

	return fieldConfig{
		Name:              s.Name,
		Modulus:           s.Modulus,
		TwoAdicity:        adicity,
		Generator:         uint32(gen),
		RootOfUnity:       uint32(powMod(gen, odd, p)),
		NegModulusInvModR: uint32(negInv.Uint64()),
		RMont:             uint32((1 << 32) % p),
		RSquared:          uint32(((1 << 32) % p) * ((1 << 32) % p) % p),
	}, nil
}

// primitiveRoot finds the smallest generator of the multiplicative group.
func primitiveRoot(p uint64) (uint64, error) {
	factors := primeFactors(p - 1)
	//
	for g := uint64(2); g < p; g++ {
		generator := true
		//
		for _, q := range factors {
			if powMod(g, (p-1)/q, p) == 1 {
				generator = false
				break
			}
		}
		//
		if generator {
			return g, nil
		}
	}
	//
	return 0, fmt.Errorf("no primitive root modulo %d", p)
}

// primeFactors returns the distinct prime factors of n by trial division.
func primeFactors(n uint64) []uint64 {
	var factors []uint64
	//
	for d := uint64(2); d*d <= n; d++ {
		if n%d == 0 {
			factors = append(factors, d)

			for n%d == 0 {
				n /= d
			}
		}
	}
	//
	if n > 1 {
		factors = append(factors, n)
	}
	//
	return factors
}

func powMod(base, exp, mod uint64) uint64 {
	result := uint64(1)
	base %= mod
	//
	for ; exp > 0; exp >>= 1 {
		if exp&1 == 1 {
			result = result * base % mod
		}

		base = base * base % mod
	}
	//
	return result
}

func assertNoError(err error, format string, args ...any) {
	if err != nil {
		msg := fmt.Sprintf(format, args...)
		fmt.Printf("%s: %v\n", msg, err)
		os.Exit(1)
	}
}
