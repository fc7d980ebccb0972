//go:build !debug

package debug

// Debug is true when the debug build tag is set
const Debug = false
