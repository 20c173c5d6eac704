// Copyright (c) 2025 Saluton Authors. All rights reserved.
// Use of this source code is governed by a MPL 2.0
// license that can be found in the LICENSE file.

package ginkgoutil

import (
	"github.com/spf13/afero"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type TestingT interface {
	mock.TestingT
}

func WriteFileString(t TestingT, fs afero.Fs, name string, data string) {
	err := afero.WriteFile(fs, name, []byte(data), 0644)
	require.NoError(t, err)
}
