//go:build !debug
// +build !debug

// Package tag contains build tag constants. Test extra debug logic with
// `go test -tags debug`.
package tag

const Debug = false
