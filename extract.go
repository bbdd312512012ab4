package multipart

import (
	"github.com/intuitivelabs/bytescase"
)

// Span references Length bytes starting at Offset of some buffer. It owns nothing.
type Span struct {
	Offset, Length int
}

// Get returns the bytes referenced by the span. buf must be the buffer the span was
// obtained from.
func (s Span) Get(buf []byte) []byte {
	return buf[s.Offset : s.Offset+s.Length]
}

// Empty reports whether the span covers no bytes.
func (s Span) Empty() bool {
	return s.Length == 0
}

var (
	nameKeyword     = newKeyword("name")
	filenameKeyword = newKeyword("filename")
)

// ExtractName looks for name="..." in a header value, e.g. Content-Disposition. The
// keyword is matched case-insensitively, spaces are allowed around '='. The returned span
// covers the value between the quotes, which may be empty.
//
// The value is returned raw: escape sequences are not processed (a backslash-escaped quote
// terminates the value), nor is any decoding performed. As the input is scanned as a whole,
// the name inside filename= matches too, so filename="x"; name="y" yields x.
func ExtractName(value []byte) (Span, bool) {
	return nameKeyword.extract(value)
}

// ExtractFilename behaves exactly as ExtractName, but looks for filename="...".
func ExtractFilename(value []byte) (Span, bool) {
	return filenameKeyword.extract(value)
}

// ExtractDisposition returns name and filename of a Content-Disposition value, nil if
// absent. Unlike a bare ExtractName, a name matched inside filename= is skipped, so the
// order of the parameters doesn't matter. Both slices point into value.
func ExtractDisposition(value []byte) (name, filename []byte) {
	fileSpan, hasFile := ExtractFilename(value)
	if hasFile {
		filename = fileSpan.Get(value)
	}

	nameSpan, hasName := ExtractName(value)
	if hasName && hasFile && nameSpan == fileSpan {
		// continue right after the closing quote of the filename
		end := fileSpan.Offset + fileSpan.Length + 1
		next, found := ExtractName(value[end:])
		nameSpan, hasName = Span{Offset: end + next.Offset, Length: next.Length}, found
	}

	if hasName {
		name = nameSpan.Get(value)
	}

	return name, filename
}

// Extract behaves as ExtractName for an arbitrary keyword.
func Extract(keyword string, value []byte) (Span, bool) {
	if len(keyword) == 0 {
		return Span{}, false
	}

	return newKeyword(keyword).extract(value)
}

// keyword is a case-insensitive literal compiled into a matcher. fallback[i] is the length
// of the longest proper prefix of lower[:i+1] which is also its suffix, so on a mismatch
// the matcher falls back to the longest partial match instead of restarting from scratch.
type keyword struct {
	lower    []byte
	fallback []int
}

func newKeyword(kw string) keyword {
	lower := make([]byte, len(kw))
	for i := range len(kw) {
		lower[i] = bytescase.ByteToLower(kw[i])
	}

	fallback := make([]int, len(lower))
	for i, k := 1, 0; i < len(lower); i++ {
		for k > 0 && lower[i] != lower[k] {
			k = fallback[k-1]
		}

		if lower[i] == lower[k] {
			k++
		}

		fallback[i] = k
	}

	return keyword{lower: lower, fallback: fallback}
}

const (
	xKeyword = iota
	xEqual
	xQuote
	xValue
)

func (k keyword) extract(input []byte) (Span, bool) {
	var (
		state    = xKeyword
		matched  int
		spaced   bool
		valueOff int
	)

	for i := 0; i < len(input); i++ {
		c := input[i]

		switch state {
		case xKeyword:
			c = bytescase.ByteToLower(c)
			for matched > 0 && c != k.lower[matched] {
				matched = k.fallback[matched-1]
			}

			if c == k.lower[matched] {
				matched++
			}

			if matched == len(k.lower) {
				spaced = false
				state = xEqual
			}
		case xEqual:
			switch c {
			case ' ':
				spaced = true
			case '=':
				state = xQuote
			default:
				// the current byte might begin the keyword anew
				matched = 0
				if !spaced {
					matched = k.fallback[len(k.fallback)-1]
				}

				state = xKeyword
				i--
			}
		case xQuote:
			switch c {
			case ' ':
			case '"':
				valueOff = i + 1
				state = xValue
			default:
				matched = 0
				state = xKeyword
				i--
			}
		case xValue:
			if c == '"' {
				return Span{Offset: valueOff, Length: i - valueOff}, true
			}
		}
	}

	return Span{}, false
}
