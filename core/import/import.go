// Copyright (c) 2025 Saluton Authors. All rights reserved.
// Use of this source code is governed by a MPL 2.0
// license that can be found in the LICENSE file.

package coreimport

import (
	"reflect"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/saluton/saluton/core/config"
	"github.com/saluton/saluton/core/plugin"
	"github.com/saluton/saluton/core/plugin/pluginconfig"
	"github.com/saluton/saluton/core/register"
	"github.com/saluton/saluton/core/resource"
	"github.com/saluton/saluton/lib/confutil"
	"github.com/saluton/saluton/lib/tag"
)

const fileSourceKey = "file"

// getter for fs to avoid afero dependency in custom greeter builds
func GetFs() afero.Fs {
	return afero.NewOsFs()
}

func Import(fs afero.Fs) {
	register.Source(fileSourceKey, func(conf resource.FileConfig) resource.Source {
		return resource.NewFile(fs, conf)
	})
	register.Source("inline", resource.NewInline)

	config.AddTypeHook(sourceStringHook)

	// Required for decoding plugins. Need to be added after source string hook.
	pluginconfig.AddHooks()

	confutil.RegisterTagResolver("env", confutil.EnvTagResolver)
	confutil.RegisterTagResolver("property", confutil.PropertyTagResolver)
}

var sourceType = plugin.PtrType((*resource.Source)(nil))

// sourceStringHook helps to decode string as resource.Source plugin.
// Bare string is considered a file path.
func sourceStringHook(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
	if f.Kind() != reflect.String {
		return data, nil
	}
	if t != sourceType {
		return data, nil
	}
	dataStr := data.(string)
	zap.L().Debug("Consider source as a file", zap.String("source", dataStr))
	conf := map[string]interface{}{
		pluginconfig.PluginNameKey: fileSourceKey,
		"path":                     dataStr,
	}
	if tag.Debug {
		zap.L().Debug("Hooked source config", zap.Any("config", conf))
	}
	return conf, nil
}
