// Copyright (c) 2025 Saluton Authors. All rights reserved.
// Use of this source code is governed by a MPL 2.0
// license that can be found in the LICENSE file.

package register

import (
	"github.com/saluton/saluton/core"
	"github.com/saluton/saluton/core/plugin"
	"github.com/saluton/saluton/core/resource"
)

func RegisterPtr(ptr interface{}, name string, newPlugin interface{}, newDefaultConfigOptional ...interface{}) {
	plugin.Register(plugin.PtrType(ptr), name, newPlugin, newDefaultConfigOptional...)
}

func Greeter(name string, newGreeter interface{}, newDefaultConfigOptional ...interface{}) {
	var ptr *core.Greeter
	RegisterPtr(ptr, name, newGreeter, newDefaultConfigOptional...)
}

func Source(name string, newSource interface{}, newDefaultConfigOptional ...interface{}) {
	var ptr *resource.Source
	RegisterPtr(ptr, name, newSource, newDefaultConfigOptional...)
}
