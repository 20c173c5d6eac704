package resource

import (
	"io"
	"strings"

	"github.com/saluton/saluton/lib/ioutil2"
)

func NewString(s string) Source {
	return stringSource{Reader: strings.NewReader(s)}
}

type stringSource struct {
	*strings.Reader
	ioutil2.NopCloser
}

func (s stringSource) Open() (rc io.ReadCloser, err error) {
	return s, nil
}

type InlineConfig struct {
	Data string `validate:"required"`
}

func NewInline(conf InlineConfig) Source {
	return NewString(conf.Data)
}
