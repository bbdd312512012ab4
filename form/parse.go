package form

import (
	"io"

	"github.com/indigo-web/multipart"
	"github.com/indigo-web/multipart/config"
)

// Parse decodes a complete multipart/form-data body. The boundary is taken from contentType,
// which is the value of the Content-Type header the body came with.
func Parse(cfg *config.Config, contentType string, body []byte) (Form, error) {
	p, c, err := newParser(cfg, contentType)
	if err != nil {
		return nil, err
	}

	if _, _, err = p.Execute(body); err != nil {
		return nil, err
	}

	if err = p.Finalize(); err != nil {
		return nil, err
	}

	return c.Form(), nil
}

// ParseReader behaves as Parse, but reads the body from r, see multipart.Feed. Bytes
// following the closing delimiter are ignored.
func ParseReader(cfg *config.Config, contentType string, r io.Reader) (Form, error) {
	p, c, err := newParser(cfg, contentType)
	if err != nil {
		return nil, err
	}

	if _, err = multipart.Feed(r, p, cfg); err != nil {
		return nil, err
	}

	return c.Form(), nil
}

func newParser(cfg *config.Config, contentType string) (*multipart.Parser, *Collector, error) {
	boundary, err := multipart.BoundaryFromContentType(contentType)
	if err != nil {
		return nil, nil, err
	}

	c := NewCollector(cfg)
	p := multipart.NewParser(cfg, c.Callbacks())
	if err = p.SetBoundary([]byte(boundary)); err != nil {
		return nil, nil, err
	}

	return p, c, nil
}
