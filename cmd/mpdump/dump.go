package main

import (
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
	"github.com/indigo-web/multipart"
	"github.com/indigo-web/multipart/config"
	"github.com/indigo-web/utils/strcomp"
	"github.com/indigo-web/utils/uf"
)

type Header struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

type Part struct {
	Headers  []Header `json:"headers"`
	Name     string   `json:"name,omitempty"`
	Filename string   `json:"filename,omitempty"`
	Size     int      `json:"size"`
	Digest   string   `json:"xxh64"`
	Preview  string   `json:"preview,omitempty"`
	Binary   bool     `json:"binary,omitempty"`
}

type Report struct {
	Boundary string `json:"boundary"`
	Parts    []Part `json:"parts"`
}

// dumper turns parser events into a Report.
type dumper struct {
	report  Report
	preview int
	// disposition tells whether the last header field was Content-Disposition.
	disposition bool
}

func (d *dumper) callbacks() multipart.Callbacks {
	return multipart.Callbacks{
		OnBoundaryBegin: func() error {
			d.report.Parts = append(d.report.Parts, Part{})
			return nil
		},
		OnHeaderField: func(field []byte) error {
			part := d.last()
			part.Headers = append(part.Headers, Header{Field: string(field)})
			d.disposition = strcomp.EqualFold(uf.B2S(field), "Content-Disposition")
			return nil
		},
		OnHeaderValue: func(value []byte) error {
			part := d.last()
			part.Headers[len(part.Headers)-1].Value = string(value)

			if d.disposition {
				name, filename := multipart.ExtractDisposition(value)
				part.Name, part.Filename = string(name), string(filename)
			}

			return nil
		},
		OnBody: func(body []byte) error {
			part := d.last()
			part.Size = len(body)
			part.Digest = fmt.Sprintf("%016x", xxhash.Sum64(body))

			part.Preview, part.Binary = preview(body, d.preview)

			return nil
		},
	}
}

// preview returns up to n leading bytes of body, cut at a character boundary. Bodies
// which aren't valid UTF-8 as a whole are reported as binary, without a preview.
func preview(body []byte, n int) (text string, binary bool) {
	if !utf8.Valid(body) {
		return "", true
	}

	if n >= len(body) {
		return string(body), false
	}

	for n > 0 && !utf8.RuneStart(body[n]) {
		n--
	}

	return string(body[:n]), false
}

func (d *dumper) last() *Part {
	return &d.report.Parts[len(d.report.Parts)-1]
}

// dump parses the whole multipart body read from r and describes every part of it.
func dump(r io.Reader, cfg *config.Config, boundary string, chunked bool, previewLen int) (Report, error) {
	d := &dumper{
		report:  Report{Boundary: boundary, Parts: []Part{}},
		preview: previewLen,
	}
	p := multipart.NewParser(cfg, d.callbacks())
	if err := p.SetBoundary([]byte(boundary)); err != nil {
		return d.report, err
	}

	feed := multipart.Feed
	if chunked {
		feed = multipart.FeedChunked
	}

	_, err := feed(r, p, cfg)
	return d.report, err
}

// resolveBoundary picks the boundary passed explicitly, or the one carried by contentType.
func resolveBoundary(boundary, contentType string) (string, error) {
	switch {
	case len(boundary) > 0:
		return boundary, nil
	case len(contentType) > 0:
		return multipart.BoundaryFromContentType(contentType)
	default:
		return "", errors.New("either -boundary or -content-type must be set")
	}
}
