// Copyright (c) 2025 Saluton Authors. All rights reserved.
// Use of this source code is governed by a MPL 2.0
// license that can be found in the LICENSE file.

package ioutil2

// NopCloser may be embedded to any struct to implement io.Closer doing nothing on close.
type NopCloser struct{}

func (NopCloser) Close() error { return nil }
