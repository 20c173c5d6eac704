// Copyright (c) 2025 Saluton Authors. All rights reserved.
// Use of this source code is governed by a MPL 2.0
// license that can be found in the LICENSE file.

// package core defines saluton extension points.
// Extension point implementations can be wired into the server manually, when saluton
// is used as a library, or can be registered in saluton plugin system
// (look at core/plugin pkg), for creation from abstract config on deploy.
package core

//go:generate mockery -name=Greeter -case=underscore -outpkg=coremock

// Greeter provides greeting formats for requested languages.
// A Greeter must be goroutine safe: it is consulted on every request,
// concurrently, after registration is finished.
type Greeter interface {
	// FormatFor returns greeting format for the passed language code.
	// Format is a fmt format string with exactly one %s verb, substituted
	// with greeted person name.
	// Ok false means that language is not supported. Unsupported language
	// is not an error: caller is expected to fall back to a fixed message.
	FormatFor(lang string) (format string, ok bool)
	// SupportedLanguages returns language codes FormatFor knows about.
	// Caller should not mutate returned slice.
	SupportedLanguages() []string
}
