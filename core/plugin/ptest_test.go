// Copyright (c) 2025 Saluton Authors. All rights reserved.
// Use of this source code is governed by a MPL 2.0
// license that can be found in the LICENSE file.

package plugin

import (
	"reflect"

	. "github.com/onsi/gomega"
	"github.com/pkg/errors"

	"github.com/saluton/saluton/core/config"
)

// ptest contains examples and utils for testing plugin pkg.

const (
	ptestPluginName = "ptest_name"

	ptestInitValue    = "ptest_INITIAL"
	ptestDefaultValue = "ptest_DEFAULT_CONFIG"
	ptestFilledValue  = "ptest_FILLED"
)

func (r *Registry) ptestRegister(constructor interface{}, newDefaultConfigOptional ...interface{}) {
	r.Register(ptestType(), ptestPluginName, constructor, newDefaultConfigOptional...)
}

func (r *Registry) ptestNew(fillConfOptional ...func(conf interface{}) error) (plugin interface{}, err error) {
	return r.New(ptestType(), ptestPluginName, fillConfOptional...)
}

var ptestCreateFailedErr = errors.New("test plugin create failed")

type ptestPlugin interface {
	DoSomething()
}
type ptestMoreThanPlugin interface {
	ptestPlugin
	DoSomethingElse()
}
type ptestImpl struct{ Value string }
type ptestConfig struct{ Value string }

func (p *ptestImpl) DoSomething()     {}
func (p *ptestImpl) DoSomethingElse() {}

func ptestNew() ptestPlugin                      { return ptestNewImpl() }
func ptestNewMoreThan() ptestMoreThanPlugin      { return ptestNewImpl() }
func ptestNewImpl() *ptestImpl                   { return &ptestImpl{Value: ptestInitValue} }
func ptestNewConf(c ptestConfig) ptestPlugin     { return &ptestImpl{c.Value} }
func ptestNewPtrConf(c *ptestConfig) ptestPlugin { return &ptestImpl{c.Value} }
func ptestNewErr() (ptestPlugin, error)          { return &ptestImpl{Value: ptestInitValue}, nil }
func ptestNewErrFailing() (ptestPlugin, error)   { return nil, ptestCreateFailedErr }

func ptestDefaultConf() ptestConfig        { return ptestConfig{ptestDefaultValue} }
func ptestNewDefaultPtrConf() *ptestConfig { return &ptestConfig{ptestDefaultValue} }

func ptestType() reflect.Type       { return PtrType((*ptestPlugin)(nil)) }
func ptestNewErrType() reflect.Type { return reflect.TypeOf(ptestNewErr) }

func ptestFillConf(conf interface{}) error {
	return config.Decode(map[string]interface{}{"Value": ptestFilledValue}, conf)
}

func ptestExpectConfigValue(conf interface{}, val string) {
	conf.(ptestConfChecker).expectConfValue(val)
}

type ptestConfChecker interface {
	expectConfValue(string)
}

var _ ptestConfChecker = ptestConfig{}
var _ ptestConfChecker = &ptestImpl{}

func (c ptestConfig) expectConfValue(val string) { Expect(c.Value).To(Equal(val)) }
func (p *ptestImpl) expectConfValue(val string)  { Expect(p.Value).To(Equal(val)) }
