// Package fields reads loosely typed upstream JSON through ordered fallback paths.
package fields

import (
	"strings"

	"github.com/tidwall/gjson"
)

// Truthy reports whether a value would count as present in the upstream's own
// loose checks: missing, null, false, 0 and "" are all absent.
func Truthy(r gjson.Result) bool {
	if !r.Exists() {
		return false
	}
	switch r.Type {
	case gjson.Null, gjson.False:
		return false
	case gjson.Number:
		return r.Num != 0
	case gjson.String:
		return r.Str != ""
	default:
		return true
	}
}

// First returns the first truthy value among paths, or a non-existent Result.
func First(obj gjson.Result, paths ...string) gjson.Result {
	for _, p := range paths {
		if r := obj.Get(escape(p)); Truthy(r) {
			return r
		}
	}
	return gjson.Result{}
}

// StringOr returns the first non-blank string among paths, or def.
func StringOr(obj gjson.Result, def string, paths ...string) string {
	for _, p := range paths {
		r := obj.Get(escape(p))
		if !Truthy(r) {
			continue
		}
		if s := strings.TrimSpace(r.String()); s != "" {
			return s
		}
	}
	return def
}

// escape guards the gjson path syntax so upstream keys are matched literally.
func escape(key string) string {
	r := strings.NewReplacer(".", `\.`, "*", `\*`, "?", `\?`, "|", `\|`, "#", `\#`, "@", `\@`)
	return r.Replace(key)
}
