package utils

import (
	"strings"
	"unicode"
)

// ToSnakeCase converts a CamelCase identifier (like an OpKind name) to snake_case.
//
// An underscore is inserted before an upper-case letter that follows a lower-case letter or a digit,
// and before the last upper-case letter of an acronym that is followed by a lower-case letter
// (so "MBLayout" becomes "mb_layout").
func ToSnakeCase(s string) string {
	runes := []rune(s)
	var res strings.Builder
	res.Grow(len(s) + 5)
	for i, r := range runes {
		if !unicode.IsUpper(r) {
			res.WriteRune(r)
			continue
		}
		if i > 0 {
			prev := runes[i-1]
			var next rune
			if i+1 < len(runes) {
				next = runes[i+1]
			}
			afterWord := !unicode.IsUpper(prev) && prev != '_'
			endOfAcronym := unicode.IsUpper(prev) && next != 0 && !unicode.IsUpper(next) && next != '_'
			if afterWord || endOfAcronym {
				res.WriteRune('_')
			}
		}
		res.WriteRune(unicode.ToLower(r))
	}
	return res.String()
}
