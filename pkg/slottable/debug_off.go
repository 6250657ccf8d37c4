//go:build !slottable_debug

package slottable

const debugBuild = false
