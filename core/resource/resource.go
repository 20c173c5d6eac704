// Package resource provides sources of resource data, that plugin configs
// refer to: local files, files bundled into the binary, inline strings.
package resource

import "io"

// Source is an opaque source of resource data.
// Caller should close returned ReadCloser after use.
type Source interface {
	Open() (rc io.ReadCloser, err error)
}
