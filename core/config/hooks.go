// Copyright (c) 2025 Saluton Authors. All rights reserved.
// Use of this source code is governed by a MPL 2.0
// license that can be found in the LICENSE file.

package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"reflect"
	"strings"

	"github.com/asaskevich/govalidator"
	"github.com/c2h5oh/datasize"
	"github.com/facebookgo/stack"
	"github.com/facebookgo/stackerr"
	"github.com/mitchellh/mapstructure"

	"github.com/saluton/saluton/lib/confutil"
	"github.com/saluton/saluton/lib/tag"
)

var InvalidURLError = errors.New("string is not valid URL")

var (
	urlPtrType = reflect.TypeOf(&url.URL{})
	urlType    = reflect.TypeOf(url.URL{})
)

// StringToURLHook converts string to url.URL or *url.URL
func StringToURLHook(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
	if f.Kind() != reflect.String {
		return data, nil
	}
	if t != urlPtrType && t != urlType {
		return data, nil
	}
	str := data.(string)

	if !govalidator.IsURL(str) { // Checks more than url.Parse.
		return nil, stackerr.Wrap(InvalidURLError)
	}
	urlPtr, err := url.Parse(str)
	if err != nil {
		return nil, stackerr.Wrap(err)
	}

	if t == urlType {
		return *urlPtr, nil
	}
	return urlPtr, nil
}

var InvalidIPError = errors.New("string is not valid IP")

// StringToIPHook converts string to net.IP
func StringToIPHook(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
	if f.Kind() != reflect.String {
		return data, nil
	}
	if t != reflect.TypeOf(net.IP{}) {
		return data, nil
	}
	str := data.(string)
	ip := net.ParseIP(str)
	if ip == nil {
		return nil, stackerr.Wrap(InvalidIPError)
	}
	return ip, nil
}

// StringToDataSizeHook converts string to datasize.ByteSize
func StringToDataSizeHook(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
	if f.Kind() != reflect.String {
		return data, nil
	}
	if t != reflect.TypeOf(datasize.B) {
		return data, nil
	}
	var size datasize.ByteSize
	err := size.UnmarshalText([]byte(data.(string)))
	return size, err
}

// TextUnmarshallerHook calls UnmarshalText on fresh instances of types
// implementing encoding.TextUnmarshaler.
var TextUnmarshallerHook = mapstructure.TextUnmarshallerHookFunc()

// VariableInjectHook resolves ${tagType:varname} tokens in string config
// values. See lib/confutil for registered tag types.
func VariableInjectHook(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
	if f.Kind() != reflect.String {
		return data, nil
	}
	res, err := confutil.ResolveCustomTags(data.(string), t)
	if err == confutil.ErrNoTagsFound {
		return data, nil
	}
	if err != nil {
		return nil, stackerr.Wrap(err)
	}
	return res, nil
}

// DebugHook used to debug config decode.
func DebugHook(f reflect.Type, t reflect.Type, data interface{}) (p interface{}, err error) {
	p, err = data, nil
	if !tag.Debug {
		return
	}
	callers := stack.Callers(2)
	var decodeCallers int
	for _, caller := range callers {
		if caller.Name == "(*Decoder).decode" {
			decodeCallers++
		}
	}

	offset := strings.Repeat("    ", decodeCallers)
	fmt.Printf("%s %s from %s %v\n", offset, t, f, data)
	return
}
