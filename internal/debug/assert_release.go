//go:build !debug

package debug

// Assert does nothing if the debug build tag is not provided.
func Assert(condition bool, message ...string) {
}
