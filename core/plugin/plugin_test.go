// Copyright (c) 2025 Saluton Authors. All rights reserved.
// Use of this source code is governed by a MPL 2.0
// license that can be found in the LICENSE file.

package plugin

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("default registry", func() {
	BeforeEach(func() {
		Register(ptestType(), ptestPluginName, ptestNewImpl)
	})
	AfterEach(func() {
		defaultRegistry = NewRegistry()
	})
	It("lookup", func() {
		Expect(Lookup(ptestType())).To(BeTrue())
	})
	It("new", func() {
		plugin, err := New(ptestType(), ptestPluginName)
		Expect(err).NotTo(HaveOccurred())
		Expect(plugin).NotTo(BeNil())
	})
})

var _ = Describe("type helpers", func() {
	It("ptr type", func() {
		var plugin ptestPlugin
		Expect(PtrType(&plugin)).To(Equal(ptestType()))
	})
	It("ptr type panics on non pointer", func() {
		Expect(func() { PtrType(42) }).To(Panic())
	})
})
