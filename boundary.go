package multipart

import (
	"github.com/indigo-web/multipart/internal/strutil"
	"github.com/indigo-web/multipart/status"
	"github.com/indigo-web/utils/strcomp"
)

const maxBoundaryLength = 70

// BoundaryFromContentType extracts the boundary parameter from a Content-Type header value.
// The media type must be multipart/form-data. The boundary may be quoted, must be 1 to 70
// characters long and must not end with a space (RFC 2046, section 5.1.1).
func BoundaryFromContentType(contentType string) (string, error) {
	mediaType, params := strutil.CutHeader(contentType)
	if !strcomp.EqualFold(mediaType, "multipart/form-data") {
		return "", status.ErrNotMultipart
	}

	for key, value := range strutil.WalkParams(params) {
		if len(key) == 0 {
			break
		}

		if !strcomp.EqualFold(key, "boundary") {
			continue
		}

		if len(value) == 0 || len(value) > maxBoundaryLength || value[len(value)-1] == ' ' {
			return "", status.ErrBadBoundaryParam
		}

		return value, nil
	}

	return "", status.ErrBadBoundaryParam
}
