// Copyright (c) 2025 Saluton Authors. All rights reserved.
// Use of this source code is governed by a MPL 2.0
// license that can be found in the LICENSE file.

package plugin

import (
	"reflect"
)

// pluginConstructor wraps some newPlugin func and uses it to create
// implementations of pluginType.
// Caller should pass maybeConf values valid for the underlying newPlugin.
type pluginConstructor struct {
	pluginType reflect.Type
	// newPlugin type is func([config <configType>]) (<pluginImpl> [, error]),
	// where configType kind is struct or struct pointer.
	newPlugin reflect.Value
}

func newPluginConstructor(pluginType reflect.Type, newPlugin interface{}) *pluginConstructor {
	newPluginType := reflect.TypeOf(newPlugin)
	expect(newPluginType.Kind() == reflect.Func, "plugin constructor should be func")
	expect(newPluginType.NumIn() <= 1, "plugin constructor should accept config or nothing")
	expect(1 <= newPluginType.NumOut() && newPluginType.NumOut() <= 2,
		"plugin constructor should return plugin implementation, and optionally error")
	pluginImplType := newPluginType.Out(0)
	expect(pluginImplType.Implements(pluginType), "plugin constructor should implement plugin interface")
	if newPluginType.NumOut() == 2 {
		expect(newPluginType.Out(1) == errorType, "plugin constructor should have no second return value, or it should be error")
	}
	return &pluginConstructor{pluginType, reflect.ValueOf(newPlugin)}
}

func (c *pluginConstructor) NewPlugin(maybeConf []reflect.Value) (plugin interface{}, err error) {
	out := c.newPlugin.Call(maybeConf)
	plugin = out[0].Interface()
	if len(out) > 1 {
		err, _ = out[1].Interface().(error)
	}
	return
}
