package jsonutil

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/buger/jsonparser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendString(t *testing.T) {
	tests := []struct {
		description string
		input       string
		output      string
	}{
		{
			description: "Plain",
			input:       "abc",
			output:      `"abc"`,
		},
		{
			description: "Markup Is Not HTML Escaped",
			input:       `<div class="ad">&amp;</div>`,
			output:      `"<div class=\"ad\">&amp;</div>"`,
		},
		{
			description: "Control Characters",
			input:       "a\nb\tc\r\x01",
			output:      `"a\nb\tc\r\u0001"`,
		},
		{
			description: "Backslash",
			input:       `a\b`,
			output:      `"a\\b"`,
		},
		{
			description: "Multibyte",
			input:       "café",
			output:      `"café"`,
		},
		{
			description: "Invalid UTF-8",
			input:       "a\xffb",
			output:      `"a\ufffdb"`,
		},
		{
			description: "Line Separator",
			input:       "a\u2028b",
			output:      `"a\u2028b"`,
		},
	}

	for _, tt := range tests {
		res := AppendString(nil, tt.input)
		assert.Equal(t, tt.output, string(res), tt.description)
		assert.True(t, json.Valid(res), tt.description)
	}
}

func TestAppendFloat(t *testing.T) {
	tests := []struct {
		description string
		input       float64
		output      string
	}{
		{description: "Integral", input: 2, output: "2"},
		{description: "Fraction", input: 2.5, output: "2.5"},
		{description: "Negative", input: -0.01, output: "-0.01"},
		{description: "Zero", input: 0, output: "0"},
		{description: "Tiny", input: 1e-9, output: "1e-9"},
		{description: "Huge", input: 1e21, output: "1e+21"},
	}

	for _, tt := range tests {
		res, err := AppendFloat(nil, tt.input)
		require.NoError(t, err, tt.description)
		assert.Equal(t, tt.output, string(res), tt.description)
	}

	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := AppendFloat(nil, f)
		assert.Error(t, err)
	}
}

func TestRawValue(t *testing.T) {
	data := []byte(`{"s":"a\"b","n":1.50,"o":{"x":[1, 2]},"b":true,"z":null}`)

	tests := []struct {
		key    string
		output string
	}{
		{key: "s", output: `"a\"b"`},
		{key: "n", output: `1.50`},
		{key: "o", output: `{"x":[1, 2]}`},
		{key: "b", output: `true`},
		{key: "z", output: `null`},
	}

	for _, tt := range tests {
		value, dataType, _, err := jsonparser.Get(data, tt.key)
		require.NoError(t, err, tt.key)
		assert.Equal(t, tt.output, string(RawValue(value, dataType)), tt.key)
	}
}

func TestParseString(t *testing.T) {
	tests := []struct {
		description string
		given       string
		expected    string
		expectError bool
	}{
		{description: "Plain", given: `abc`, expected: "abc"},
		{description: "Escaped Unicode", given: `a\u0062`, expected: "ab"},
		{description: "Escaped Backslash", given: `a\\u0062`, expected: `a\u0062`},
		{description: "Surrogate Pair", given: `\ud83d\ude00`, expected: "\U0001F600"},
		{description: "Lone Surrogate", given: `x\ud800`, expected: "x\uFFFD"},
		{description: "Broken Escape", given: `\q`, expectError: true},
	}

	for _, test := range tests {
		t.Run(test.description, func(t *testing.T) {
			got, err := ParseString([]byte(test.given))
			if test.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.expected, got)
		})
	}
}

func TestTypeName(t *testing.T) {
	assert.Equal(t, "object", TypeName(jsonparser.Object))
	assert.Equal(t, "null", TypeName(jsonparser.Null))
	assert.Equal(t, "unknown", TypeName(jsonparser.Unknown))
}

func TestDiff(t *testing.T) {
	testCases := []struct {
		description string
		expected    string
		actual      string
		wantDiff    bool
	}{
		{
			description: "equal with different key order and spacing",
			expected:    `{"a":1,"b":[1,2]}`,
			actual:      `{ "b": [1, 2], "a": 1 }`,
		},
		{
			description: "changed value",
			expected:    `{"a":1}`,
			actual:      `{"a":2}`,
			wantDiff:    true,
		},
		{
			description: "extra key",
			expected:    `{"a":1}`,
			actual:      `{"a":1,"b":true}`,
			wantDiff:    true,
		},
	}

	for _, test := range testCases {
		t.Run(test.description, func(t *testing.T) {
			diff, err := Diff([]byte(test.expected), []byte(test.actual))
			assert.NoError(t, err)
			assert.Equal(t, test.wantDiff, diff != "", diff)
		})
	}
}

func TestDiffInvalidJSON(t *testing.T) {
	_, err := Diff([]byte(`{`), []byte(`{}`))
	assert.Error(t, err)
}
