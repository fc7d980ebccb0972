// Command curvekit is a small demonstration harness around the ecc
// package: print curve equations, check points and derive toy key pairs.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/curvekit/curvekit/ecc"
)

var (
	fModel string
	fA     uint64
	fB     uint64
	fQ     uint64
	fBound uint64
)

var rootCmd = &cobra.Command{
	Use:   "curvekit",
	Short: "affine elliptic-curve arithmetic over toy prime fields",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&fModel, "model", "weierstrass", "curve model: weierstrass, edwards, twisted_edwards or montgomery")
	rootCmd.PersistentFlags().Uint64Var(&fA, "a", 2, "first curve coefficient (A for montgomery)")
	rootCmd.PersistentFlags().Uint64Var(&fB, "b", 3, "second curve coefficient (d for edwards, B for montgomery)")
	rootCmd.PersistentFlags().Uint64Var(&fQ, "q", 17, "prime modulus")
	rootCmd.PersistentFlags().Uint64Var(&fBound, "bound", 0, "order-search iteration cap (0 = default bound q)")
}

func newCurve() (ecc.Curve, error) {
	var opts []ecc.Option
	if fBound > 0 {
		opts = append(opts, ecc.WithOrderBound(fBound))
	}
	switch fModel {
	case "weierstrass":
		return ecc.NewWeierstrass(fA, fB, fQ, opts...)
	case "edwards":
		return ecc.NewEdwards(fA, fB, fQ, opts...)
	case "twisted_edwards":
		return ecc.NewTwistedEdwards(fA, fB, fQ, opts...)
	case "montgomery":
		return ecc.NewMontgomery(fA, fB, fQ, opts...)
	default:
		return nil, fmt.Errorf("unknown curve model %q", fModel)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
