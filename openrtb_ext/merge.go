package openrtb_ext

import (
	"encoding/json"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
)

// MergeExt applies patch to ext as an RFC 7386 merge patch: objects merge
// recursively, null removes a key and any other value replaces it. An empty ext
// is treated as {}.
func MergeExt(ext, patch json.RawMessage) (json.RawMessage, error) {
	if len(patch) == 0 {
		return ext, nil
	}
	if len(ext) == 0 {
		ext = json.RawMessage(`{}`)
	}
	merged, err := jsonpatch.MergePatch(ext, patch)
	if err != nil {
		return nil, fmt.Errorf("merging ext: %w", err)
	}
	return merged, nil
}

// Equal reports whether two ext payloads hold the same JSON, ignoring key order
// and insignificant whitespace.
func Equal(a, b json.RawMessage) bool {
	if len(a) == 0 || len(b) == 0 {
		return len(a) == len(b)
	}
	return jsonpatch.Equal(a, b)
}
