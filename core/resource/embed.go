package resource

import (
	"io"
	"io/fs"
)

// NewEmbed returns Source reading path from files bundled into the binary.
func NewEmbed(bundle fs.FS, path string) Source {
	return &embedSource{bundle, path}
}

type embedSource struct {
	bundle fs.FS
	path   string
}

func (s *embedSource) Open() (rc io.ReadCloser, err error) {
	return s.bundle.Open(s.path)
}
