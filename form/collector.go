package form

import (
	"strings"

	"github.com/indigo-web/multipart"
	"github.com/indigo-web/multipart/config"
	"github.com/indigo-web/multipart/internal/strutil"
	"github.com/indigo-web/multipart/internal/urlencoded"
	"github.com/indigo-web/multipart/status"
	"github.com/indigo-web/utils/strcomp"
	"github.com/indigo-web/utils/uf"
)

type headerKind uint8

const (
	hOther headerKind = iota
	hContentDisposition
	hContentType
)

// Collector builds a Form out of the events reported by multipart.Parser. Every value is
// copied, so the Form outlives the parsed input.
//
// Headers other than Content-Disposition and Content-Type are ignored. A part without a name
// aborts parsing with status.ErrNoPartName. A part named _charset_ isn't included into the
// form, its value becomes the default charset of the parts following it instead (RFC 7578,
// section 4.6).
type Collector struct {
	cfg     *config.Config
	form    Form
	current Data
	header  headerKind
	charset string
	buff    []byte
}

func NewCollector(cfg *config.Config) *Collector {
	return &Collector{
		cfg:     cfg,
		form:    make(Form, 0, cfg.Form.EntriesPrealloc),
		charset: cfg.Form.DefaultCharset,
	}
}

// Callbacks returns the callbacks to be passed to multipart.NewParser.
func (c *Collector) Callbacks() multipart.Callbacks {
	return multipart.Callbacks{
		OnBoundaryBegin:   c.onBoundaryBegin,
		OnHeaderField:     c.onHeaderField,
		OnHeaderValue:     c.onHeaderValue,
		OnHeadersComplete: c.onHeadersComplete,
		OnBody:            c.onBody,
	}
}

// Form returns entries collected so far.
func (c *Collector) Form() Form {
	return c.form
}

// Reset prepares the collector for the next body. The storage of the previously returned
// Form is reused, so it must not be accessed anymore.
func (c *Collector) Reset() {
	c.form = c.form[:0]
	c.current = Data{}
	c.header = hOther
	c.charset = c.cfg.Form.DefaultCharset
}

func (c *Collector) onBoundaryBegin() error {
	c.current = Data{}
	return nil
}

func (c *Collector) onHeaderField(field []byte) error {
	switch key := uf.B2S(field); {
	case strcomp.EqualFold(key, "Content-Disposition"):
		c.header = hContentDisposition
	case strcomp.EqualFold(key, "Content-Type"):
		c.header = hContentType
	default:
		c.header = hOther
	}

	return nil
}

func (c *Collector) onHeaderValue(value []byte) error {
	switch c.header {
	case hContentDisposition:
		name, filename := multipart.ExtractDisposition(value)
		c.current.Name = c.decode(name)
		c.current.Filename = c.decode(filename)
	case hContentType:
		mediaType, params := strutil.CutHeader(uf.B2S(value))
		c.current.Type = strings.Clone(mediaType)

		for key, val := range strutil.WalkParams(params) {
			if len(key) == 0 {
				return status.ErrBadHeader
			}

			if strcomp.EqualFold(key, "charset") {
				c.current.Charset = strings.Clone(val)
				break
			}
		}
	}

	return nil
}

func (c *Collector) onHeadersComplete() error {
	if len(c.current.Name) == 0 {
		return status.ErrNoPartName
	}

	return nil
}

func (c *Collector) onBody(body []byte) error {
	if c.current.Name == "_charset_" {
		if len(body) == 0 {
			return status.ErrBadCharset
		}

		c.charset = string(body)
		return nil
	}

	if len(c.current.Type) == 0 {
		c.current.Type = c.cfg.Form.DefaultContentType
	}

	if len(c.current.Charset) == 0 {
		c.current.Charset = c.charset
	}

	c.current.Value = string(body)
	c.form = append(c.form, c.current)

	return nil
}

// decode returns a copy of the name, percent-decoded if enabled.
func (c *Collector) decode(name []byte) string {
	if !c.cfg.Form.DecodeNames {
		return string(name)
	}

	var decoded []byte
	decoded, c.buff = urlencoded.Decode(name, c.buff[:0])

	return string(decoded)
}
