// Copyright (c) 2025 Saluton Authors. All rights reserved.
// Use of this source code is governed by a MPL 2.0
// license that can be found in the LICENSE file.

// Package capability holds ready to use capability instances put on startup.
// Unlike core/plugin registry, that maps names to constructors, capability
// registry maps capability interface to at most one constructed instance.
// Registry is populated by the plugin loader, sealed before serving starts,
// and read without locking after that.
package capability

import (
	"fmt"
	"reflect"

	"github.com/pkg/errors"

	"github.com/saluton/saluton/core"
	"github.com/saluton/saluton/core/plugin"
)

// Registry is not goroutine safe for writes. Put and Seal on startup,
// from one goroutine, before any concurrent Get.
type Registry struct {
	instances map[reflect.Type]interface{}
	sealed    bool
}

func NewRegistry() *Registry {
	return &Registry{instances: map[reflect.Type]interface{}{}}
}

// Put registers instance as the implementation of capability interface.
// Get capability type from nil pointer usage: plugin.PtrType((*core.Greeter)(nil)).
// Put fails on sealed registry, on instance that not implements capability,
// and on second instance for same capability.
func (r *Registry) Put(capability reflect.Type, instance interface{}) error {
	if capability.Kind() != reflect.Interface {
		panic(fmt.Sprintf("capability type should be interface, but have: %s", capability))
	}
	if r.sealed {
		return errors.Errorf("capability registry is sealed, %s put rejected", capability)
	}
	if instance == nil {
		return errors.Errorf("capability %s instance expected, but have nil", capability)
	}
	if !reflect.TypeOf(instance).Implements(capability) {
		return errors.Errorf("%T not implements capability %s", instance, capability)
	}
	if _, dup := r.instances[capability]; dup {
		return errors.Errorf("capability %s instance has been already put", capability)
	}
	r.instances[capability] = instance
	return nil
}

// Get returns instance put for capability. Ok false means no instance was put.
func (r *Registry) Get(capability reflect.Type) (instance interface{}, ok bool) {
	instance, ok = r.instances[capability]
	return
}

// Seal makes registry read only: every Put after Seal fails.
// Call when startup registration is finished, before serving starts.
func (r *Registry) Seal() { r.sealed = true }

var greeterType = plugin.PtrType((*core.Greeter)(nil))

// Greeter returns the core.Greeter instance put into r, if any.
func Greeter(r *Registry) (core.Greeter, bool) {
	instance, ok := r.Get(greeterType)
	if !ok {
		return nil, false
	}
	return instance.(core.Greeter), true
}
