// Copyright (c) 2025 Saluton Authors. All rights reserved.
// Use of this source code is governed by a MPL 2.0
// license that can be found in the LICENSE file.

// Package inline provides a greeter configured entirely from its config,
// without external resources. Good for small deploy specific format sets.
package inline

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/saluton/saluton/core"
	"github.com/saluton/saluton/lib/format"
)

type Config struct {
	// Formats maps language code to greeting format.
	Formats map[string]string `config:"formats" validate:"required,dive,greet-format"`
}

func New(conf Config) (*Greeter, error) {
	for lang, greetFormat := range conf.Formats {
		if lang == "" {
			return nil, errors.New("inline greeter got empty language code")
		}
		if err := format.Check(greetFormat); err != nil {
			return nil, errors.Wrapf(err, "inline greeter format for %q is invalid", lang)
		}
	}
	langs := maps.Keys(conf.Formats)
	slices.Sort(langs)
	return &Greeter{formats: conf.Formats, langs: langs}, nil
}

type Greeter struct {
	formats map[string]string
	langs   []string
}

var _ core.Greeter = &Greeter{}

func (g *Greeter) FormatFor(lang string) (string, bool) {
	f, ok := g.formats[lang]
	return f, ok
}

func (g *Greeter) SupportedLanguages() []string { return g.langs }
