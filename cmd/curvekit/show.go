package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/curvekit/curvekit/ecc"
)

var (
	fX uint64
	fY uint64
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "print the curve equation and optionally check a point",
	Run:   cmdShow,
}

func init() {
	showCmd.Flags().Uint64Var(&fX, "x", 0, "x-coordinate of a point to check")
	showCmd.Flags().Uint64Var(&fY, "y", 0, "y-coordinate of a point to check")
	rootCmd.AddCommand(showCmd)
}

func cmdShow(cmd *cobra.Command, args []string) {
	curve, err := newCurve()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	fmt.Println(curve.String())

	if cmd.Flags().Changed("x") || cmd.Flags().Changed("y") {
		p := ecc.NewPoint(fX, fY, 0)
		fmt.Printf("point %s valid: %v\n", p.String(), curve.IsValid(p))
	}
}
