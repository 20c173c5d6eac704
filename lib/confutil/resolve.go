package confutil

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
)

var (
	ErrNoTagsFound                  = errors.New("no tags found")
	ErrUnsupportedKind              = errors.New("unsupported kind")
	ErrCantCastVariableToTargetType = errors.New("can't cast variable")
	ErrResolverNotRegistered        = errors.New("unknown tag type")
)

// TagResolver produces a value for a config variable name.
type TagResolver func(varname string) (string, error)

var resolvers = make(map[string]TagResolver)

// RegisterTagResolver makes resolver handle ${tagType:varname} tokens.
// Registering the same tag type again silently overwrites the previous resolver.
func RegisterTagResolver(tagType string, resolver TagResolver) {
	resolvers[strings.ToLower(tagType)] = resolver
}

func tagResolver(tagType string) (TagResolver, error) {
	r, ok := resolvers[strings.ToLower(tagType)]
	if !ok {
		return nil, ErrResolverNotRegistered
	}
	return r, nil
}

var tokenRegexp = regexp.MustCompile(`\$\{(?:([^}]+?):)?([^{}]+?)\}`)

type token struct {
	tagType string
	raw     string
	varname string
}

func findTokens(s string) []token {
	found := tokenRegexp.FindAllStringSubmatch(s, -1)
	tokens := make([]token, 0, len(found))
	for _, m := range found {
		tokens = append(tokens, token{
			tagType: strings.TrimSpace(m[1]),
			varname: strings.TrimSpace(m[2]),
			raw:     m[0],
		})
	}
	return tokens
}

// ResolveCustomTags substitutes ${tagType:varname} tokens in s using the
// registered resolvers. Tokens with unregistered tag types are left as is.
// When the whole string is a single token, the result is cast to targetType,
// because mapstructure will not attempt to cast strings to bool, ints and
// floats. When the cast is not possible, the resolved string is returned,
// so other decode hooks can handle it.
func ResolveCustomTags(s string, targetType reflect.Type) (interface{}, error) {
	tokens := findTokens(s)
	if len(tokens) == 0 {
		return s, ErrNoTagsFound
	}

	res := s
	for _, t := range tokens {
		resolver, err := tagResolver(t.tagType)
		if err == ErrResolverNotRegistered {
			continue
		} else if err != nil {
			return nil, err
		}

		resolved, err := resolver(t.varname)
		if err != nil {
			return nil, err
		}
		res = strings.ReplaceAll(res, t.raw, resolved)
	}

	if len(tokens) == 1 && strings.TrimSpace(s) == tokens[0].raw {
		casted, err := cast(res, targetType)
		if err == nil {
			return casted, nil
		}
		// Cast failed or target of unsupported kind: leave resolved string
		// for other decode hooks (duration, datasize, plugin).
	}
	return res, nil
}

func cast(v string, t reflect.Type) (interface{}, error) {
	switch t.Kind() {
	case reflect.Bool:
		res, err := strconv.ParseBool(v)
		if err != nil {
			return false, fmt.Errorf("'%s' cast to bool failed: %w", v, ErrCantCastVariableToTargetType)
		}
		return res, nil
	case reflect.Int,
		reflect.Int8,
		reflect.Int16,
		reflect.Int32,
		reflect.Int64,
		reflect.Uint,
		reflect.Uint8,
		reflect.Uint16,
		reflect.Uint32,
		reflect.Uint64:
		return castInt(v, t)
	case reflect.Float32, reflect.Float64:
		return castFloat(v, t)
	case reflect.String:
		return v, nil
	}
	return nil, ErrUnsupportedKind
}

func castInt(v string, t reflect.Type) (interface{}, error) {
	i, err := strconv.ParseInt(v, 0, t.Bits())
	if err != nil {
		return nil, fmt.Errorf("'%s' cast to %s failed: %w", v, t, ErrCantCastVariableToTargetType)
	}
	switch t.Kind() {
	case reflect.Int:
		return int(i), nil
	case reflect.Int8:
		return int8(i), nil
	case reflect.Int16:
		return int16(i), nil
	case reflect.Int32:
		return int32(i), nil
	case reflect.Int64:
		return i, nil
	case reflect.Uint:
		return uint(i), nil
	case reflect.Uint8:
		return uint8(i), nil
	case reflect.Uint16:
		return uint16(i), nil
	case reflect.Uint32:
		return uint32(i), nil
	case reflect.Uint64:
		return uint64(i), nil
	}
	return nil, ErrUnsupportedKind
}

func castFloat(v string, t reflect.Type) (interface{}, error) {
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0.0, fmt.Errorf("'%s' cast to %s failed: %w", v, t, ErrCantCastVariableToTargetType)
	}
	switch t.Kind() {
	case reflect.Float32:
		return float32(f), nil
	case reflect.Float64:
		return f, nil
	}
	return nil, ErrUnsupportedKind
}
