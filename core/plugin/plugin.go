// Copyright (c) 2025 Saluton Authors. All rights reserved.
// Use of this source code is governed by a MPL 2.0
// license that can be found in the LICENSE file.

package plugin

import (
	"reflect"
)

// Register registers plugin constructor and optional default config factory,
// for given plugin interface type and plugin name.
// See package doc for type expectations details.
// Register designed to be called in package init func, so it panics if type
// expectations were failed. Register is thread unsafe.
func Register(
	pluginType reflect.Type,
	name string,
	newPluginImpl interface{},
	newDefaultConfigOptional ...interface{},
) {
	defaultRegistry.Register(pluginType, name, newPluginImpl, newDefaultConfigOptional...)
}

// Lookup returns true if any plugin constructor has been registered for given
// type.
func Lookup(pluginType reflect.Type) bool {
	return defaultRegistry.Lookup(pluginType)
}

// New creates plugin by registered constructor. Returns error if creation
// failed or no plugin was registered for given type and name.
// Passed fillConf is called on created config before calling the constructor.
// fillConf argument is always valid struct pointer, even if the constructor
// receives no config: fillConf is called on empty struct pointer in such case.
// fillConf error fails plugin creation.
// New is thread safe, if there is no concurrent Register calls.
func New(pluginType reflect.Type, name string, fillConfOptional ...func(conf interface{}) error) (plugin interface{}, err error) {
	return defaultRegistry.New(pluginType, name, fillConfOptional...)
}

// PtrType is helper to extract plugin types.
// Example: plugin.PtrType((*PluginInterface)(nil)) instead of
// reflect.TypeOf((*PluginInterface)(nil)).Elem()
func PtrType(ptr interface{}) reflect.Type {
	t := reflect.TypeOf(ptr)
	if t.Kind() != reflect.Ptr {
		panic("passed value is not pointer")
	}
	return t.Elem()
}

var defaultRegistry = NewRegistry()

// SetDefaultRegistry replaces registry used by package facade functions.
// Use for tests only.
func SetDefaultRegistry(registry *Registry) {
	defaultRegistry = registry
}
