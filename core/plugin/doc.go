// Copyright (c) 2025 Saluton Authors. All rights reserved.
// Use of this source code is governed by a MPL 2.0
// license that can be found in the LICENSE file.

// Package plugin provides a generic inversion of control model for making
// extensible Go packages and applications. It is reflect based: doesn't
// require code generation, but has more overhead and less type safety than
// generated registries. It allows to register a constructor for some plugin
// interface, and create new plugin instances by registered name.
// Main feature is flexible plugin configuration: plugin constructor can
// accept a config struct, that could be filled by passed hook. Config default
// values could be provided by registering a default config factory.
// Such flexibility is used to decode structured text (yaml/json/etc) into
// plugin instances.
//
// Type expectations.
// Here and below we mean by <someTypeName> some type expectations.
// [some type signature part] means that this part of type signature is optional.
//
// Plugin type, let's label it as <plugin>, should be interface.
// Registered plugin constructor should have type
// func([config <configType>]) (<pluginImpl>[, error]).
// <pluginImpl> should be assignable to <plugin>.
// That is, <plugin> methods should be subset of <pluginImpl> methods. In other
// words, <pluginImpl> should be some <plugin> implementation, <plugin>, or
// interface that contains <plugin> methods as subset.
// <configType> type should be struct or struct pointer.
package plugin
