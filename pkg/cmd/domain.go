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

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/NoamDev/crypto3-math/pkg/math/field"
	"github.com/NoamDev/crypto3-math/pkg/math/field/bls12_377"
	"github.com/NoamDev/crypto3-math/pkg/math/field/gf2011"
	"github.com/NoamDev/crypto3-math/pkg/math/field/gf8209"
)

var domainCmd = &cobra.Command{
	Use:   "domain [flags]",
	Short: "print the points of an evaluation domain.",
	Long: `Print every point of an evaluation domain of the selected field,
	along with the value of the domain's vanishing polynomial at a point of
	choice.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		var err error
		//
		switch name := GetString(cmd, "field"); name {
		case "gf2011":
			err = runDomain(cmd, gf2011.Params())
		case "gf8209":
			err = runDomain(cmd, gf8209.Params())
		case "bls12-377":
			err = runDomain(cmd, bls12_377.Params())
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

// runDomain prints every point of the selected domain, checking the
// vanishing polynomial along the way.
func runDomain[F field.Element[F]](cmd *cobra.Command, params field.Params[F]) error {
	domain, err := newDomain(cmd, params)
	if err != nil {
		return err
	}
	// Tabulate when writing to a terminal, emit CSV otherwise.
	tty := term.IsTerminal(int(os.Stdout.Fd()))
	//
	if tty {
		fmt.Printf("%-8s %-24s %s\n", "index", "element", "Z(element)")
	}
	//
	for i := uint64(0); i < domain.Size(); i++ {
		element, err := domain.DomainElement(i)
		if err != nil {
			return err
		}
		//
		z := domain.EvaluateVanishingPolynomial(element)
		//
		if tty {
			fmt.Printf("%-8d %-24s %s\n", i, element.String(), z.String())
		} else {
			fmt.Printf("%d,%s,%s\n", i, element.String(), z.String())
		}
	}
	//
	return nil
}

func init() {
	rootCmd.AddCommand(domainCmd)
	domainCmd.Flags().Uint64("size", 8, "domain size")
	domainCmd.Flags().Bool("extended", false, "use the extended (subgroup ∪ coset) domain")
}
