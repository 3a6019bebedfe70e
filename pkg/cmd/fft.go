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
package cmd

import (
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/NoamDev/crypto3-math/pkg/math/domains"
	"github.com/NoamDev/crypto3-math/pkg/math/field"
	"github.com/NoamDev/crypto3-math/pkg/math/field/bls12_377"
	"github.com/NoamDev/crypto3-math/pkg/math/field/gf2011"
	"github.com/NoamDev/crypto3-math/pkg/math/field/gf8209"
)

var fftCmd = &cobra.Command{
	Use:   "fft [flags] value...",
	Short: "transform polynomial coefficients into evaluations (or back).",
	Long: `Transform a polynomial, given by its coefficients (constant term
	first), into its evaluations over an evaluation domain of the selected
	field; or, with --inverse, transform evaluations back into
	coefficients.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		var err error
		//
		switch name := GetString(cmd, "field"); name {
		case "gf2011":
			err = runFFT(cmd, args, gf2011.Params())
		case "gf8209":
			err = runFFT(cmd, args, gf8209.Params())
		case "bls12-377":
			err = runFFT(cmd, args, bls12_377.Params())
		default:
			err = fmt.Errorf("unknown field %q", name)
		}
		//
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
	},
}

// runFFT transforms the command-line values over the selected domain.
func runFFT[F field.Element[F]](cmd *cobra.Command, args []string, params field.Params[F]) error {
	values, err := parseValues(args)
	if err != nil {
		return err
	}
	//
	buffer := make([]F, len(values))
	for i, val := range values {
		buffer[i] = field.Uint64[F](val)
	}
	//
	domain, err := newDomain(cmd, params)
	if err != nil {
		return err
	}
	//
	start := time.Now()
	//
	if GetFlag(cmd, "inverse") {
		buffer, err = domain.InverseFFT(buffer)
	} else {
		buffer, err = domain.FFT(buffer)
	}
	//
	if err != nil {
		return err
	}
	//
	log.Debugf("transformed %d elements in %s", domain.Size(), time.Since(start))
	//
	for _, val := range buffer {
		fmt.Println(val.String())
	}
	//
	return nil
}

// newDomain constructs the domain strategy selected by the command flags.
func newDomain[F field.Element[F]](cmd *cobra.Command, params field.Params[F]) (domains.EvaluationDomain[F], error) {
	size := GetUint64(cmd, "size")
	//
	if GetFlag(cmd, "extended") {
		return domains.NewExtendedRadix2Domain(params, size)
	}
	//
	return domains.NewBasicRadix2Domain(params, size)
}

func init() {
	rootCmd.AddCommand(fftCmd)
	fftCmd.Flags().Uint64("size", 8, "domain size")
	fftCmd.Flags().Bool("extended", false, "use the extended (subgroup ∪ coset) domain")
	fftCmd.Flags().Bool("inverse", false, "transform evaluations back into coefficients")
}
