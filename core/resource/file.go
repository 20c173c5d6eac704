package resource

import (
	"io"

	"github.com/spf13/afero"
)

type FileConfig struct {
	Path string `config:"path" validate:"required"`
}

func NewFile(fs afero.Fs, conf FileConfig) Source {
	return &fileSource{afero.Afero{Fs: fs}, conf}
}

type fileSource struct {
	fs   afero.Afero
	conf FileConfig
}

func (s *fileSource) Open() (rc io.ReadCloser, err error) {
	return s.fs.Open(s.conf.Path)
}
