// Copyright (c) 2025 Saluton Authors. All rights reserved.
// Use of this source code is governed by a MPL 2.0
// license that can be found in the LICENSE file.

// Package langpack provides a greeter reading language code to greeting format
// table from a JSON resource. Table is bundled into the binary, but can be
// overridden with a file or inline source via config.
package langpack

import (
	"embed"
	"fmt"
	"io"
	"sync"

	"github.com/c2h5oh/datasize"
	"github.com/json-iterator/go"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/saluton/saluton/core"
	"github.com/saluton/saluton/core/resource"
	"github.com/saluton/saluton/lib/errutil"
	"github.com/saluton/saluton/lib/format"
)

//go:embed greetings.json
var bundle embed.FS

const bundlePath = "greetings.json"

type Config struct {
	// Table overrides the bundled table. Bare string is considered a file path.
	Table resource.Source `config:"table"`
	// MaxSize limits table resource size, guarding against a misconfigured path.
	MaxSize datasize.ByteSize `config:"max-size"`
}

func DefaultConfig() Config {
	return Config{MaxSize: datasize.MB}
}

// New returns greeter that loads its table lazily, on first use.
// Load failure is sticky for greeter lifetime, and all uses after failed load
// panic. Host should Preload on startup and abort on error.
func New(conf Config) *Greeter {
	table := conf.Table
	if table == nil {
		table = resource.NewEmbed(bundle, bundlePath)
	}
	return &Greeter{source: table, maxSize: conf.MaxSize}
}

type Greeter struct {
	source  resource.Source
	maxSize datasize.ByteSize

	loadOnce sync.Once
	table    map[string]string
	langs    []string
	loadErr  error
}

var _ core.Greeter = &Greeter{}

func (g *Greeter) FormatFor(lang string) (string, bool) {
	f, ok := g.mustTable()[lang]
	return f, ok
}

func (g *Greeter) SupportedLanguages() []string {
	g.mustTable()
	return g.langs
}

// Preload loads the table eagerly, so host can fail fast on startup
// instead of panic on first request.
func (g *Greeter) Preload() error {
	g.load()
	return g.loadErr
}

func (g *Greeter) load() {
	g.loadOnce.Do(func() {
		g.table, g.loadErr = readTable(g.source, g.maxSize)
		if g.loadErr != nil {
			return
		}
		g.langs = maps.Keys(g.table)
		slices.Sort(g.langs)
		zap.L().Debug("Language pack loaded", zap.Strings("languages", g.langs))
	})
}

func (g *Greeter) mustTable() map[string]string {
	g.load()
	if g.loadErr != nil {
		panic(fmt.Sprintf("language pack load failed: %+v", g.loadErr))
	}
	return g.table
}

func readTable(source resource.Source, maxSize datasize.ByteSize) (table map[string]string, err error) {
	rc, err := source.Open()
	if err != nil {
		return nil, errors.Wrap(err, "table open failed")
	}
	defer func() {
		err = errutil.Join(err, errors.WithMessage(rc.Close(), "table close failed"))
	}()

	var r io.Reader = rc
	if maxSize > 0 {
		r = io.LimitReader(rc, int64(maxSize)+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "table read failed")
	}
	if maxSize > 0 && datasize.ByteSize(len(data)) > maxSize {
		return nil, errors.Errorf("table is bigger than %s", maxSize.HumanReadable())
	}

	err = jsoniter.ConfigFastest.Unmarshal(data, &table)
	if err != nil {
		return nil, errors.Wrap(err, "table parse failed")
	}
	for lang, greetFormat := range table {
		if lang == "" {
			return nil, errors.New("table contains empty language code")
		}
		if err := format.Check(greetFormat); err != nil {
			return nil, errors.Wrapf(err, "table format for %q is invalid", lang)
		}
	}
	return table, nil
}
