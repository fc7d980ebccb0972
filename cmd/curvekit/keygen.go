package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/curvekit/curvekit/dsa"
	"github.com/curvekit/curvekit/ecc"
)

var (
	fGx uint64
	fGy uint64
)

var keygenCmd = &cobra.Command{
	Use:   "keygen",
	Short: "derive a toy key pair from a generator point",
	Run:   cmdKeygen,
}

func init() {
	keygenCmd.Flags().Uint64Var(&fGx, "gx", 5, "generator x-coordinate")
	keygenCmd.Flags().Uint64Var(&fGy, "gy", 6, "generator y-coordinate")
	rootCmd.AddCommand(keygenCmd)
}

func cmdKeygen(cmd *cobra.Command, args []string) {
	curve, err := newCurve()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	g := ecc.NewPoint(fGx, fGy, 0)
	scheme, err := dsa.New(g, curve)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	priv, pub, err := scheme.GenerateKey()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	fmt.Println(curve.String())
	fmt.Printf("generator %s has order %d\n", g.String(), scheme.Order())
	fmt.Printf("private scalar: %d\n", priv)
	fmt.Printf("public point: %s\n", pub.String())
}
