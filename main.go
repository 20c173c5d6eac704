// Copyright (c) 2025 Saluton Authors. All rights reserved.
// Use of this source code is governed by a MPL 2.0
// license that can be found in the LICENSE file.

package main

import (
	"github.com/spf13/afero"

	"github.com/saluton/saluton/cli"
	greet "github.com/saluton/saluton/components/greet/import"
	coreimport "github.com/saluton/saluton/core/import"
)

func init() {
	// Components should not write anything to files.
	fs := afero.NewReadOnlyFs(afero.NewOsFs())

	coreimport.Import(fs)
	greet.Import()
}

func main() {
	cli.Run()
}
