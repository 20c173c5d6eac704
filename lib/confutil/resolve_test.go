package confutil

import (
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStringToExpectedCast(t *testing.T) {
	tests := []struct {
		val      string
		expected interface{}
		err      error
	}{
		{"True", true, nil},
		{"T", true, nil},
		{"t", true, nil},
		{"TRUE", true, nil},
		{"true", true, nil},
		{"1", true, nil},
		{"False", false, nil},
		{"false", false, nil},
		{"0", false, nil},
		{"f", false, nil},
		{"", false, ErrCantCastVariableToTargetType},

		{"11", uint(11), nil},
		{"10", uint8(10), nil},
		{"10", uint16(10), nil},
		{"10", uint32(10), nil},
		{"10", uint64(10), nil},
		{"11", int(11), nil},
		{"10", int8(10), nil},
		{"10", int16(10), nil},
		{"10", int32(10), nil},
		{"10", int64(10), nil},
		{"", int(0), ErrCantCastVariableToTargetType},
		{"asdf", int(0), ErrCantCastVariableToTargetType},
		{" -14", int(0), ErrCantCastVariableToTargetType},

		{"-10", float32(-10), nil},
		{"10.23", float32(10.23), nil},
		{"-10", float64(-10), nil},
		{"10.23", float64(10.23), nil},
		{"", float64(0), ErrCantCastVariableToTargetType},
		{"asdf", float64(0), ErrCantCastVariableToTargetType},
		{" -14", float64(0), ErrCantCastVariableToTargetType},

		{"10", "10", nil},
		{"value-port", "value-port", nil},
		{"", "", nil},
	}

	for _, test := range tests {
		expectedType := reflect.TypeOf(test.expected)
		t.Run(fmt.Sprintf("cast %q to %s", test.val, expectedType), func(t *testing.T) {
			actual, err := cast(test.val, expectedType)
			if test.err == nil {
				assert.NoError(t, err)
				assert.Exactly(t, test.expected, actual)
			} else {
				assert.ErrorIs(t, err, test.err)
			}
		})
	}
}

func TestFindTokens(t *testing.T) {
	tests := []struct {
		val      string
		expected []token
	}{
		{
			"${token}",
			[]token{{raw: "${token}", tagType: "", varname: "token"}},
		},
		{
			"${token}-${ second\t}",
			[]token{
				{raw: "${token}", tagType: "", varname: "token"},
				{raw: "${ second\t}", tagType: "", varname: "second"},
			},
		},
		{
			"asdf${ee:token}aa",
			[]token{
				{raw: "${ee:token}", tagType: "ee", varname: "token"},
			},
		},
		{
			"asdf${ee: to:ken}aa-${ e2 :to  }ken}",
			[]token{
				{raw: "${ee: to:ken}", tagType: "ee", varname: "to:ken"},
				{raw: "${ e2 :to  }", tagType: "e2", varname: "to"},
			},
		},
		{
			"no tokens here", nil,
		},
	}

	for _, test := range tests {
		t.Run(fmt.Sprintf("findTokens in %s", test.val), func(t *testing.T) {
			actual := findTokens(test.val)
			if len(test.expected) == 0 {
				assert.Empty(t, actual)
				return
			}
			assert.EqualValues(t, test.expected, actual)
		})
	}
}

func TestResolveCustomTags(t *testing.T) {
	RegisterTagResolver("test", func(varname string) (string, error) {
		if varname == "boom" {
			return "", fmt.Errorf("no value for %s", varname)
		}
		return "resolved-" + varname, nil
	})

	t.Run("no tokens", func(t *testing.T) {
		_, err := ResolveCustomTags("plain string", reflect.TypeOf(""))
		assert.ErrorIs(t, err, ErrNoTagsFound)
	})

	t.Run("unregistered tag type kept as is", func(t *testing.T) {
		res, err := ResolveCustomTags("${unknown:var}", reflect.TypeOf(""))
		assert.NoError(t, err)
		assert.Equal(t, "${unknown:var}", res)
	})

	t.Run("single token casts to target type", func(t *testing.T) {
		RegisterTagResolver("num", func(string) (string, error) { return "42", nil })
		res, err := ResolveCustomTags("${num:answer}", reflect.TypeOf(0))
		assert.NoError(t, err)
		assert.Exactly(t, 42, res)
	})

	t.Run("token inside string substituted", func(t *testing.T) {
		res, err := ResolveCustomTags("greet ${test:lang} now", reflect.TypeOf(""))
		assert.NoError(t, err)
		assert.Equal(t, "greet resolved-lang now", res)
	})

	t.Run("single token cast failure keeps resolved string", func(t *testing.T) {
		res, err := ResolveCustomTags("${test:lang}", reflect.TypeOf(0))
		assert.NoError(t, err)
		assert.Equal(t, "resolved-lang", res)
	})

	t.Run("duration value kept for duration decode hook", func(t *testing.T) {
		RegisterTagResolver("dur", func(string) (string, error) { return "30s", nil })
		res, err := ResolveCustomTags("${dur:timeout}", reflect.TypeOf(time.Second))
		assert.NoError(t, err)
		assert.Equal(t, "30s", res)
	})
}
