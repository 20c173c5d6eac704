// Copyright (c) 2025 Saluton Authors. All rights reserved.
// Use of this source code is governed by a MPL 2.0
// license that can be found in the LICENSE file.

package coretest

import (
	"io"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saluton/saluton/core/resource"
)

func AssertSourceEqualFile(t *testing.T, fs afero.Fs, filename string, source resource.Source) {
	const testdata = "abcd"
	_ = afero.WriteFile(fs, filename, []byte(testdata), 0644)

	rc, err := source.Open()
	require.NoError(t, err)

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	err = rc.Close()
	require.NoError(t, err)

	assert.Equal(t, testdata, string(data))
}

func AssertSourceEqualString(t *testing.T, expected string, source resource.Source) {
	rc, err := source.Open()
	require.NoError(t, err)

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	err = rc.Close()
	require.NoError(t, err)

	assert.Equal(t, expected, string(data))
}
