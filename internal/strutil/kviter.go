package strutil

import (
	"iter"
	"strings"
)

// WalkParams iterates over semicolon-separated key=value parameters, as in Content-Type or
// Content-Disposition. Keys are returned as is, values are unquoted. Whitespace around keys,
// values and '=' is ignored, as are empty parameters (e.g. a trailing semicolon). A parameter
// without '=' or with an unterminated quoted value is reported as the empty key-value pair,
// which is always the last one.
func WalkParams(params string) iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for len(params) > 0 {
			params = LStripWS(params)
			if len(params) == 0 {
				return
			}

			if params[0] == ';' {
				params = params[1:]
				continue
			}

			eq := strings.IndexByte(params, '=')
			if eq == -1 {
				yield("", "")
				return
			}

			key := RStripWS(params[:eq])
			if len(key) == 0 || strings.IndexByte(key, ';') != -1 {
				yield("", "")
				return
			}

			rest := LStripWS(params[eq+1:])
			end := valueEnd(rest)
			if end == -1 {
				yield("", "")
				return
			}

			if !yield(key, Unquote(RStripWS(rest[:end]))) {
				return
			}

			params = rest[end:]
		}
	}
}

// valueEnd returns the offset of the semicolon (or the string end) terminating the value,
// respecting quoted strings. -1 is returned if a quoted string isn't terminated.
func valueEnd(str string) int {
	if len(str) == 0 || str[0] != '"' {
		if sep := strings.IndexByte(str, ';'); sep != -1 {
			return sep
		}

		return len(str)
	}

	for i := 1; i < len(str); i++ {
		switch str[i] {
		case '\\':
			i++
		case '"':
			if sep := strings.IndexByte(str[i:], ';'); sep != -1 {
				return i + sep
			}

			return len(str)
		}
	}

	return -1
}
