package urlencoded

import (
	"bytes"

	"github.com/indigo-web/multipart/internal/hexconv"
)

// Decode resolves percent-encoded octets of src, appending the result to dst. Malformed
// sequences, like a percent sign not followed by two hex digits, are copied as is, so
// decoding never fails. If src holds no percent signs at all, src itself is returned and
// dst stays untouched.
func Decode(src, dst []byte) (decoded, buffer []byte) {
	percent := bytes.IndexByte(src, '%')
	if percent == -1 {
		return src, dst
	}

	head := len(dst)

	for percent != -1 {
		dst = append(dst, src[:percent]...)
		src = src[percent:]

		if len(src) < 3 || hexconv.Halfbyte[src[1]]|hexconv.Halfbyte[src[2]] == 0xFF {
			dst = append(dst, '%')
			src = src[1:]
		} else {
			dst = append(dst, (hexconv.Halfbyte[src[1]]<<4)|hexconv.Halfbyte[src[2]])
			src = src[3:]
		}

		percent = bytes.IndexByte(src, '%')
	}

	dst = append(dst, src...)
	return dst[head:], dst
}
