// Copyright (c) 2025 Saluton Authors. All rights reserved.
// Use of this source code is governed by a MPL 2.0
// license that can be found in the LICENSE file.

package plugin

import (
	"reflect"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"
)

var _ = Describe("plugin constructor", func() {
	DescribeTable("expectations failed",
		func(pluginType reflect.Type, newPlugin interface{}) {
			defer recoverExpectationFail()
			newPluginConstructor(pluginType, newPlugin)
		},
		Entry("not func",
			errorType, errors.New("that is not constructor")),
		Entry("not implements",
			errorType, ptestNewImpl),
		Entry("too many args",
			ptestType(), func(_, _ ptestConfig) ptestPlugin { panic("") }),
		Entry("too many return values",
			ptestType(), func() (_ ptestPlugin, _, _ error) { panic("") }),
		Entry("second return value is not error",
			ptestType(), func() (_, _ ptestPlugin) { panic("") }),
	)

	confToMaybe := func(conf interface{}) []reflect.Value {
		if conf != nil {
			return []reflect.Value{reflect.ValueOf(conf)}
		}
		return nil
	}

	It("new plugin", func() {
		testee := newPluginConstructor(ptestType(), ptestNew)
		plugin, err := testee.NewPlugin(nil)
		Expect(err).NotTo(HaveOccurred())
		ptestExpectConfigValue(plugin, ptestInitValue)
	})

	It("new impl plugin", func() {
		testee := newPluginConstructor(ptestType(), ptestNewImpl)
		plugin, err := testee.NewPlugin(nil)
		Expect(err).NotTo(HaveOccurred())
		ptestExpectConfigValue(plugin, ptestInitValue)
	})

	It("new config plugin", func() {
		testee := newPluginConstructor(ptestType(), ptestNewConf)
		plugin, err := testee.NewPlugin(confToMaybe(ptestDefaultConf()))
		Expect(err).NotTo(HaveOccurred())
		ptestExpectConfigValue(plugin, ptestDefaultValue)
	})

	It("new plugin failed", func() {
		testee := newPluginConstructor(ptestType(), ptestNewErrFailing)
		plugin, err := testee.NewPlugin(nil)
		Expect(err).To(Equal(ptestCreateFailedErr))
		Expect(plugin).To(BeNil())
	})
})
