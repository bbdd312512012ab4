package config

type (
	HeadersNumber struct {
		// Maximal is the number of header lines a single part may carry.
		Maximal int
	}

	HeadersSpace struct {
		Default, Maximal int
	}

	BodySpace struct {
		Default, Maximal int
	}
)

type (
	Boundary struct {
		// MaxLength limits the boundary accepted by SetBoundary and by the Content-Type
		// helper. RFC 2046 allows at most 70 characters.
		MaxLength int
	}

	Headers struct {
		// Number limits how many headers a part may have.
		Number HeadersNumber
		// Space is the buffer storing a header field or value which didn't fit into
		// a single chunk of input. Tokens fully contained in a chunk never touch it.
		Space HeadersSpace
	}

	Body struct {
		// Space is the buffer storing a part body which spans more than a single chunk
		// of input. Maximal is effectively the largest part accepted from a stream.
		Space BodySpace
	}

	Form struct {
		// EntriesPrealloc is the number of preallocated seats for form.Form.
		EntriesPrealloc int
		// DefaultContentType is assigned to parts without an explicit Content-Type.
		DefaultContentType string
		// DefaultCharset is assigned to parts without an explicit charset, unless the
		// form carries a _charset_ part.
		DefaultCharset string
		// DecodeNames enables percent-decoding of part names and filenames. Browsers
		// escape quotes and line breaks in them as %22, %0D and %0A.
		DecodeNames bool
	}

	Stream struct {
		// ReadBufferSize is how much is read from the source at once.
		ReadBufferSize int
		// MaxBodySize limits the whole multipart body fed by the stream driver. For chunked
		// sources the decoded length is what counts.
		MaxBodySize uint64
	}
)

// Config holds limitations and pre-allocations used across the parser, the form collector
// and the stream driver.
//
// You must ALWAYS modify defaults (returned via Default()) and NEVER try to initialize the
// config manually, because most likely this will result in ambiguous errors.
type Config struct {
	Boundary Boundary
	Headers  Headers
	Body     Body
	Form     Form
	Stream   Stream
}

// Default returns default config.
func Default() *Config {
	return &Config{
		Boundary: Boundary{
			MaxLength: 70,
		},
		Headers: Headers{
			Number: HeadersNumber{
				// browsers send 2 at most (Content-Disposition and Content-Type)
				Maximal: 50,
			},
			Space: HeadersSpace{
				Default: 1 * 1024,
				Maximal: 16 * 1024,
			},
		},
		Body: Body{
			Space: BodySpace{
				Default: 4 * 1024,
				Maximal: 32 * 1024 * 1024,
			},
		},
		Form: Form{
			EntriesPrealloc:    8,
			DefaultContentType: "text/plain",
			DefaultCharset:     "utf8",
			DecodeNames:        true,
		},
		Stream: Stream{
			ReadBufferSize: 4 * 1024,
			MaxBodySize:    512 * 1024 * 1024, // 512 megabytes
		},
	}
}
