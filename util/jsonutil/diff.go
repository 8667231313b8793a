package jsonutil

import (
	"encoding/json"
	"fmt"

	"github.com/yudai/gojsondiff"
	"github.com/yudai/gojsondiff/formatter"
)

// Diff compares two JSON documents structurally and returns a readable delta of
// expected against actual, or "" when they are equal.
func Diff(expected, actual []byte) (string, error) {
	diff, err := gojsondiff.New().Compare(expected, actual)
	if err != nil {
		return "", fmt.Errorf("comparing JSON: %w", err)
	}
	if !diff.Modified() {
		return "", nil
	}

	var left any
	if err := json.Unmarshal(expected, &left); err != nil {
		return "", fmt.Errorf("comparing JSON: %w", err)
	}
	printer := formatter.NewAsciiFormatter(left, formatter.AsciiFormatterConfig{
		ShowArrayIndex: true,
	})
	return printer.Format(diff)
}
