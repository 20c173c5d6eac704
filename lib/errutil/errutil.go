// Copyright (c) 2025 Saluton Authors. All rights reserved.
// Use of this source code is governed by a MPL 2.0
// license that can be found in the LICENSE file.

package errutil

import (
	"context"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// Join returns nil, the only non-nil error, or both merged into a multierror.
func Join(err1, err2 error) error {
	switch {
	case err1 == nil:
		return err2
	case err2 == nil:
		return err1
	default:
		return multierror.Append(err1, err2)
	}
}

// IsCtxError reports whether err is absent or caused by ctx cancellation.
// Supports github.com/pkg/errors wrapping.
func IsCtxError(ctx context.Context, err error) bool {
	if err == nil {
		return true
	}
	select {
	case <-ctx.Done():
		return ctx.Err() == errors.Cause(err)
	default:
		return false
	}
}
