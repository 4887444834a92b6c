package agentdeck

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// MergeConfig overlays overrides onto defaults and returns the merged JSON
// document. Nested objects merge key by key; arrays and scalars in
// overrides replace the default value wholesale. Either argument may be
// empty. This is how agent configs are resolved: the platform ships a
// default config and each agent stores only its overrides.
func MergeConfig(defaults, overrides []byte) ([]byte, error) {
	if len(defaults) == 0 {
		defaults = []byte(`{}`)
	}
	if !gjson.ValidBytes(defaults) {
		return nil, fmt.Errorf("defaults is not valid JSON")
	}
	if len(overrides) == 0 {
		return defaults, nil
	}
	if !gjson.ValidBytes(overrides) {
		return nil, fmt.Errorf("overrides is not valid JSON")
	}

	merged := defaults
	var mergeErr error

	var merge func(prefix string, value gjson.Result)
	merge = func(prefix string, value gjson.Result) {
		value.ForEach(func(key, val gjson.Result) bool {
			path := escapeConfigKey(key.String())
			if prefix != "" {
				path = prefix + "." + path
			}

			if val.IsObject() && gjson.GetBytes(merged, path).IsObject() {
				merge(path, val)
				return mergeErr == nil
			}

			merged, mergeErr = sjson.SetRawBytes(merged, path, []byte(val.Raw))
			return mergeErr == nil
		})
	}

	merge("", gjson.ParseBytes(overrides))
	if mergeErr != nil {
		return nil, fmt.Errorf("merge config: %w", mergeErr)
	}
	return merged, nil
}

// escapeConfigKey escapes gjson path metacharacters so config keys like
// "model.name" address a literal key instead of a nested path.
func escapeConfigKey(key string) string {
	if !strings.ContainsAny(key, `.*?\`) {
		return key
	}
	var b strings.Builder
	for _, r := range key {
		switch r {
		case '.', '*', '?', '\\':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
