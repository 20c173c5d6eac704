// Copyright (c) 2025 Saluton Authors. All rights reserved.
// Use of this source code is governed by a MPL 2.0
// license that can be found in the LICENSE file.

// Package loader resolves a plugin descriptor location, decodes the found
// descriptor and puts constructed capability instances into a registry.
//
// Descriptor is a small declarative YAML file listing plugin configs:
//
//	greeters:
//	  - type: langpack
//
// Location has form <scheme>:<path>. Scheme "file" reads path from local
// disk, "embed" from descriptors bundled into the binary. Location without
// scheme is considered a file path.
package loader

import (
	"bytes"
	"embed"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/saluton/saluton/core"
	"github.com/saluton/saluton/core/capability"
	"github.com/saluton/saluton/core/config"
	"github.com/saluton/saluton/core/plugin"
	"github.com/saluton/saluton/core/resource"
	"github.com/saluton/saluton/lib/errutil"
)

//go:embed plugins.yaml
var bundle embed.FS

const (
	fileScheme  = "file"
	embedScheme = "embed"
)

// Preloader is implemented by plugins that prefer to surface load failures
// on startup instead of first use.
type Preloader interface {
	Preload() error
}

type descriptor struct {
	Greeters []core.Greeter `config:"greeters"`
}

var greeterType = plugin.PtrType((*core.Greeter)(nil))

// Load resolves location, decodes found descriptor and puts every constructed
// capability instance into reg. Every failure of enabled load is returned as
// error: configured location must be honored, so host should treat it as fatal.
// Empty location disables plugin loading: Load does nothing and returns nil.
func Load(log *zap.Logger, fs afero.Fs, reg *capability.Registry, location string) error {
	if location == "" {
		log.Info("Plugin loading disabled")
		return nil
	}
	source, err := resolve(fs, location)
	if err != nil {
		return err
	}
	log.Info("Loading plugin descriptor", zap.String("location", location))

	conf, err := readDescriptor(source)
	if err != nil {
		return errors.WithMessagef(err, "plugin descriptor %q", location)
	}
	var desc descriptor
	err = config.DecodeAndValidate(conf, &desc)
	if err != nil {
		return errors.WithMessagef(err, "plugin descriptor %q decode failed", location)
	}

	for _, g := range desc.Greeters {
		if p, ok := g.(Preloader); ok {
			err := p.Preload()
			if err != nil {
				return errors.WithMessagef(err, "%T preload failed", g)
			}
		}
		err := reg.Put(greeterType, g)
		if err != nil {
			return err
		}
		log.Info("Greeter plugin loaded", zap.Strings("languages", g.SupportedLanguages()))
	}
	return nil
}

func resolve(fs afero.Fs, location string) (resource.Source, error) {
	scheme, path, found := strings.Cut(location, ":")
	if !found {
		// Consider location a file path.
		return resource.NewFile(fs, resource.FileConfig{Path: location}), nil
	}
	switch scheme {
	case fileScheme:
		return resource.NewFile(fs, resource.FileConfig{Path: path}), nil
	case embedScheme:
		return resource.NewEmbed(bundle, path), nil
	}
	return nil, errors.Errorf("unknown plugin location scheme %q", scheme)
}

func readDescriptor(source resource.Source) (settings map[string]interface{}, err error) {
	rc, err := source.Open()
	if err != nil {
		return nil, errors.Wrap(err, "open failed")
	}
	defer func() {
		err = errutil.Join(err, errors.WithMessage(rc.Close(), "close failed"))
	}()
	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, errors.Wrap(err, "read failed")
	}

	v := viper.New()
	v.SetConfigType("yaml")
	err = v.ReadConfig(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "parse failed")
	}
	return v.AllSettings(), nil
}
