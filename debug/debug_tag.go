//go:build debug

package debug

import "fmt"

func init() {
	fmt.Println("WARNING -- DEBUG FLAG IS ON")
}

// Debug is true when the debug build tag is set
const Debug = true
