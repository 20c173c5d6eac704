// Copyright (c) 2025 Saluton Authors. All rights reserved.
// Use of this source code is governed by a MPL 2.0
// license that can be found in the LICENSE file.

package greet

import (
	"github.com/saluton/saluton/components/greet/inline"
	"github.com/saluton/saluton/components/greet/langpack"
	"github.com/saluton/saluton/core/register"
)

func Import() {
	register.Greeter("langpack", langpack.New, langpack.DefaultConfig)
	register.Greeter("inline", inline.New)
}
