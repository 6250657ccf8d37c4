//go:build slottable_debug

package slottable

// debugBuild mixes a generation tag into every Link and asserts on stale
// use. Enable with -tags slottable_debug during development and testing;
// leave it off in release builds.
const debugBuild = true
