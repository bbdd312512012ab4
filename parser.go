package multipart

import (
	"fmt"

	"github.com/indigo-web/multipart/config"
	"github.com/indigo-web/multipart/status"
	"github.com/indigo-web/utils/buffer"
)

// Parser is a stream-based multipart/form-data parser. It is fed with arbitrary chunks of
// a body and reports its structure through Callbacks: every header field and value, and
// every part body as a whole.
//
// Tokens and bodies fully contained in a single chunk are passed to callbacks as-is, without
// copying. Those crossing a chunk edge are accumulated into the parser's own buffers, which
// are limited by config.Headers.Space and config.Body.Space respectively.
//
// Body scanning is lazy: on every CR the parser remembers a candidate end of the body and
// tries to match CRLF "--" boundary from there. Bytes consumed while probing a candidate
// that turns out to be false simply stay a part of the body. Once the boundary matched as a
// whole, the part is committed, so a body line starting with the full delimiter, but followed
// by neither CR nor "-", is a grammar error.
//
// Parser isn't safe for concurrent use, and callbacks must not call Execute on the parser
// they were invoked by.
type Parser struct {
	cfg      *config.Config
	cb       Callbacks
	state    parserState
	errno    status.Code
	boundary []byte
	// matched is the number of boundary bytes matched so far.
	matched int
	// headers counts header lines of the current part.
	headers int
	// tokenLen is the number of bytes of a pending header field or value, accumulated
	// in tokens during previous calls.
	tokenLen int
	tokens   *buffer.Buffer[byte]
	// partLen is the number of bytes of the current part, including ones tentatively
	// consumed as a delimiter, accumulated in bodies during previous calls.
	partLen int
	// bodyEnd is the candidate length of the current part body.
	bodyEnd int
	bodies  *buffer.Buffer[byte]
}

// NewParser returns a parser expecting the first delimiter. SetBoundary must be called
// before the first Execute.
func NewParser(cfg *config.Config, cb Callbacks) *Parser {
	return &Parser{
		cfg:    cfg,
		cb:     prepareCallbacks(cb),
		state:  eStart,
		tokens: buffer.NewBuffer[byte](cfg.Headers.Space.Default, cfg.Headers.Space.Maximal),
		bodies: buffer.NewBuffer[byte](cfg.Body.Space.Default, cfg.Body.Space.Maximal),
	}
}

// SetBoundary sets the boundary, without leading dashes. The slice isn't copied, so it must
// stay valid and unmodified as long as the parser is in use.
func (p *Parser) SetBoundary(boundary []byte) error {
	if len(boundary) == 0 || len(boundary) > p.cfg.Boundary.MaxLength {
		return status.ErrBadBoundaryParam
	}

	p.boundary = boundary
	return nil
}

// Boundary returns the boundary set previously.
func (p *Parser) Boundary() []byte {
	return p.boundary
}

// Reset brings the parser back into its initial state, so it expects the very first
// delimiter. The boundary is kept.
func (p *Parser) Reset() {
	p.state = eStart
	p.errno = status.OK
	p.matched = 0
	p.headers = 0
	p.tokenLen = 0
	p.partLen = 0
	p.bodyEnd = 0
	p.tokens.Clear()
	p.bodies.Clear()
}

// Done reports whether the closing delimiter was consumed.
func (p *Parser) Done() bool {
	return p.state == eDone
}

// Dead reports whether parsing failed. Only Reset revives the parser.
func (p *Parser) Dead() bool {
	return p.state == eDead
}

// Errno returns the code of the error the parser died on, or status.OK.
func (p *Parser) Errno() status.Code {
	return p.errno
}

// Finalize must be called when the input is over. Unless the closing delimiter was seen,
// the parser dies with status.ErrIncomplete.
func (p *Parser) Finalize() error {
	switch p.state {
	case eDone:
		return nil
	case eDead:
		return status.ErrParserIsDead
	}

	_, _, err := p.die(status.ErrIncomplete)
	return err
}

// Execute parses the chunk. The returned done flag is set when the parser won't consume
// anything anymore: either the closing delimiter was met, in which case extra holds bytes
// following it, or err is non-nil. Otherwise, the whole chunk was consumed and more data
// is expected.
func (p *Parser) Execute(data []byte) (done bool, extra []byte, err error) {
	switch p.state {
	case eDone:
		return true, data, nil
	case eDead:
		return true, nil, status.ErrParserIsDead
	}

	if len(p.boundary) == 0 {
		return true, nil, status.ErrNoBoundary
	}

	boundary := p.boundary
	// tokenStart and bodyStart are offsets of a pending token or part body in data. They
	// stay zero if those started in a previous chunk.
	var tokenStart, bodyStart int

	for i := 0; i < len(data); i++ {
		c := data[i]

		switch p.state {
		case eStart:
			if c != '-' {
				return p.die(status.ErrBadDelimiter)
			}

			p.state = eStartDash
		case eStartDash:
			if c != '-' {
				return p.die(status.ErrBadDelimiter)
			}

			p.matched = 0
			p.state = eBoundary
		case eBoundary:
			if p.matched < len(boundary) {
				if c != boundary[p.matched] {
					return p.die(status.ErrBadBoundary)
				}

				p.matched++
				continue
			}

			switch c {
			case '\r':
				p.state = eBoundaryCR
			case '-':
				p.state = eBoundaryAlmostDone
			default:
				return p.die(status.ErrBadDelimiter)
			}
		case eBoundaryCR:
			if c != '\n' {
				return p.die(status.ErrBadDelimiter)
			}

			if err = p.cb.OnBoundaryBegin(); err != nil {
				return p.veto(err)
			}

			p.headers = 0
			p.state = eHeaderFieldStart
		case eBoundaryAlmostDone:
			if c != '-' {
				return p.die(status.ErrBadDelimiter)
			}

			p.state = eDone
			if err = p.cb.OnBodyPartsComplete(); err != nil {
				return p.veto(err)
			}

			return true, data[i+1:], nil
		case eHeadersAlmostDone:
			if c == '\r' {
				p.state = eHeadersDone
				continue
			}

			fallthrough
		case eHeaderFieldStart:
			if !isAlpha(c) {
				return p.die(status.ErrBadHeader)
			}

			if p.headers++; p.headers > p.cfg.Headers.Number.Maximal {
				return p.die(status.ErrTooManyHeaders)
			}

			tokenStart = i
			p.state = eHeaderField
		case eHeaderField:
			if isFieldChar(c) {
				continue
			}

			if c != ':' {
				return p.die(status.ErrBadHeader)
			}

			field, err := p.finishToken(data[tokenStart:i])
			if err != nil {
				return p.die(err)
			}

			if err = p.cb.OnHeaderField(field); err != nil {
				return p.veto(err)
			}

			p.state = eHeaderValueDiscardWS
		case eHeaderValueDiscardWS:
			switch {
			case c == ' ':
			case c > ' ':
				tokenStart = i
				p.state = eHeaderValue
			default:
				return p.die(status.ErrBadHeader)
			}
		case eHeaderValue:
			if c != '\r' {
				continue
			}

			value, err := p.finishToken(data[tokenStart:i])
			if err != nil {
				return p.die(err)
			}

			if err = p.cb.OnHeaderValue(value); err != nil {
				return p.veto(err)
			}

			p.state = eHeaderAlmostDone
		case eHeaderAlmostDone:
			if c != '\n' {
				// folded header values aren't supported
				return p.die(status.ErrBadHeader)
			}

			p.state = eHeadersAlmostDone
		case eHeadersDone:
			if c != '\n' {
				return p.die(status.ErrBadHeader)
			}

			if err = p.cb.OnHeadersComplete(); err != nil {
				return p.veto(err)
			}

			p.state = eBodyPartStart
		case eBodyPartStart:
			bodyStart = i
			p.partLen = 0
			p.bodyEnd = 0
			p.bodies.Clear()
			p.state = eBodyPart
			fallthrough
		case eBodyPart:
			if c == '\r' {
				p.bodyEnd = p.partLen + i - bodyStart
				p.state = eBodyPartBoundary
			}
		case eBodyPartBoundary:
			switch c {
			case '\n':
				p.state = eBodyPartBoundaryDash
			case '\r':
				p.bodyEnd = p.partLen + i - bodyStart
			default:
				p.state = eBodyPart
			}
		case eBodyPartBoundaryDash:
			switch c {
			case '-':
				p.state = eBodyPartBoundaryDashDash
			case '\r':
				p.bodyEnd = p.partLen + i - bodyStart
				p.state = eBodyPartBoundary
			default:
				p.state = eBodyPart
			}
		case eBodyPartBoundaryDashDash:
			switch c {
			case '-':
				p.matched = 0
				p.state = eBodyPartBoundaryCompare
			case '\r':
				p.bodyEnd = p.partLen + i - bodyStart
				p.state = eBodyPartBoundary
			default:
				p.state = eBodyPart
			}
		case eBodyPartBoundaryCompare:
			if p.matched < len(boundary) {
				switch {
				case c == boundary[p.matched]:
					p.matched++
				case c == '\r':
					p.bodyEnd = p.partLen + i - bodyStart
					p.state = eBodyPartBoundary
				default:
					p.state = eBodyPart
				}

				continue
			}

			switch c {
			case '\r':
				p.state = eBoundaryCR
			case '-':
				p.state = eBoundaryAlmostDone
			default:
				return p.die(status.ErrBadDelimiter)
			}

			body, err := p.finishBody(data, bodyStart)
			if err != nil {
				return p.die(err)
			}

			if err = p.cb.OnBody(body); err != nil {
				return p.veto(err)
			}
		default:
			panic(fmt.Sprintf("BUG: unexpected state: %v", p.state))
		}
	}

	switch {
	case p.state.inToken():
		if p.tokenLen += len(data) - tokenStart; p.tokenLen > p.cfg.Headers.Space.Maximal {
			return p.die(status.ErrHeaderTooLarge)
		}

		if !p.tokens.Append(data[tokenStart:]...) {
			return p.die(status.ErrHeaderTooLarge)
		}
	case p.state.inBody():
		p.partLen += len(data) - bodyStart
		if !p.bodies.Append(data[bodyStart:]...) {
			return p.die(status.ErrPartTooLarge)
		}
	}

	return false, nil, nil
}

// finishToken returns the whole pending header token, chunk being its tail in the current
// input.
func (p *Parser) finishToken(chunk []byte) ([]byte, error) {
	if p.tokenLen+len(chunk) > p.cfg.Headers.Space.Maximal {
		return nil, status.ErrHeaderTooLarge
	}

	if p.tokenLen == 0 {
		return chunk, nil
	}

	p.tokenLen = 0
	if !p.tokens.Append(chunk...) {
		return nil, status.ErrHeaderTooLarge
	}

	token := p.tokens.Finish()
	p.tokens.Clear()

	return token, nil
}

// finishBody returns the confirmed body of the current part.
func (p *Parser) finishBody(data []byte, bodyStart int) ([]byte, error) {
	if p.partLen == 0 {
		return data[bodyStart : bodyStart+p.bodyEnd], nil
	}

	// the part started in a previous chunk, therefore bodyStart is zero
	if tail := p.bodyEnd - p.partLen; tail > 0 {
		if !p.bodies.Append(data[:tail]...) {
			return nil, status.ErrPartTooLarge
		}
	}

	body := p.bodies.Finish()[:p.bodyEnd]
	p.bodies.Clear()
	p.partLen = 0

	return body, nil
}

func (p *Parser) veto(err error) (done bool, extra []byte, _ error) {
	return p.die(fmt.Errorf("%w: %w", status.ErrCallbackVeto, err))
}

func (p *Parser) die(err error) (done bool, extra []byte, _ error) {
	p.state = eDead
	p.errno = status.CodeOf(err)
	return true, nil, err
}
