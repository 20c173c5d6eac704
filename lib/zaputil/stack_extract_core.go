// Copyright (c) 2025 Saluton Authors. All rights reserved.
// Use of this source code is governed by a MPL 2.0
// license that can be found in the LICENSE file.

package zaputil

import (
	"fmt"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

// NewStackExtractCore returns a core that extracts stacktraces from error
// fields carrying github.com/pkg/errors values and appends them to
// zapcore.Entry.Stack on Write. That makes error stacktraces readable
// with the console encoder.
// WARN: Check of the underlying core is not called, only its LevelEnabler.
// That breaks sampling and other entry picking logic of wrapped cores.
func NewStackExtractCore(c zapcore.Core) zapcore.Core {
	return &stackExtractCore{c, getBuffer()}
}

type stackExtractCore struct {
	zapcore.Core
	stacks zapBuffer
}

type stackedErr interface {
	error
	StackTrace() errors.StackTrace
}

type causer interface {
	Cause() error
}

func (c *stackExtractCore) With(fields []zapcore.Field) zapcore.Core {
	buff := c.cloneBuffer()
	fields = extractFieldsStacksToBuff(buff, fields)
	return &stackExtractCore{
		c.Core.With(fields),
		buff,
	}
}

func (c *stackExtractCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	if c.stacks.Len() == 0 && !hasStacksToExtract(fields) {
		return c.Core.Write(ent, fields)
	}
	buff := c.cloneBuffer()
	defer buff.Free()
	fields = extractFieldsStacksToBuff(buff, fields)

	if ent.Stack == "" {
		ent.Stack = buff.String()
	} else {
		// Rare case, allocation is fine.
		ent.Stack = ent.Stack + "\n" + buff.String()
	}
	return c.Core.Write(ent, fields)
}

func (c *stackExtractCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

func (c *stackExtractCore) cloneBuffer() zapBuffer {
	clone := getBuffer()
	_, _ = clone.Write(c.stacks.Bytes())
	return clone
}

func hasStacksToExtract(fields []zapcore.Field) bool {
	for _, field := range fields {
		if field.Type != zapcore.ErrorType {
			continue
		}
		if _, ok := field.Interface.(stackedErr); ok {
			return true
		}
	}
	return false
}

func extractFieldsStacksToBuff(buff zapBuffer, fields []zapcore.Field) []zapcore.Field {
	var stacksFound bool
	for i, field := range fields {
		if field.Type != zapcore.ErrorType {
			continue
		}
		stacked, ok := field.Interface.(stackedErr)
		if !ok {
			continue
		}
		if !stacksFound {
			stacksFound = true
			oldFields := fields
			fields = make([]zapcore.Field, len(fields))
			copy(fields, oldFields)
		}
		if cause, ok := stacked.(causer); ok {
			field.Interface = cause.Cause()
		} else {
			field = zap.String(field.Key, stacked.Error())
		}
		fields[i] = field
		appendStack(buff, field.Key, stacked.StackTrace())
	}
	return fields // Cloned in case of modifications.
}

func appendStack(buff zapBuffer, key string, stack errors.StackTrace) {
	if buff.Len() != 0 {
		buff.AppendByte('\n')
	}
	buff.AppendString(key)
	buff.AppendString(" stacktrace:")
	stack.Format(zapBufferFmtState{buff}, 'v')
}

type zapBuffer struct{ *buffer.Buffer }

var _ ioStringWriter = zapBuffer{}

type ioStringWriter interface {
	WriteString(s string) (n int, err error)
}

func (b zapBuffer) WriteString(s string) (n int, err error) {
	b.AppendString(s)
	return len(s), nil
}

var bufferPool = buffer.NewPool()

func getBuffer() zapBuffer {
	return zapBuffer{bufferPool.Get()}
}

type zapBufferFmtState struct{ zapBuffer }

var _ fmt.State = zapBufferFmtState{}

func (zapBufferFmtState) Flag(c int) bool {
	switch c {
	case '+':
		return true
	default:
		return false
	}
}

func (zapBufferFmtState) Width() (wid int, ok bool)      { panic("should not be called") }
func (zapBufferFmtState) Precision() (prec int, ok bool) { panic("should not be called") }
