package multipart

import (
	"errors"
	"fmt"
	"io"

	"github.com/indigo-web/chunkedbody"
	"github.com/indigo-web/multipart/config"
	"github.com/indigo-web/multipart/status"
)

// Feed reads r by cfg.Stream.ReadBufferSize bytes and executes the parser on every
// piece, until the closing delimiter is met. Bytes of the last read following the
// delimiter are returned as extra; the rest of r is left untouched.
//
// Errors returned by r are passed through as is, and the parser stays intact. Reaching
// io.EOF before the closing delimiter results in status.ErrIncomplete, and a body exceeding
// cfg.Stream.MaxBodySize in status.ErrBodyTooLarge. In both cases the parser dies. Bytes
// following the closing delimiter don't count towards the limit.
func Feed(r io.Reader, p *Parser, cfg *config.Config) (extra []byte, err error) {
	buff := make([]byte, cfg.Stream.ReadBufferSize)
	var received uint64

	for {
		n, rerr := r.Read(buff)
		if n > 0 {
			// bytes beyond the limit are never fed, so epilogue read along with the
			// closing delimiter doesn't count
			chunk := buff[:n]
			if allowed := cfg.Stream.MaxBodySize - received; uint64(n) > allowed {
				chunk = chunk[:allowed]
			}

			done, extra, err := p.Execute(chunk)
			if done {
				if err != nil {
					return nil, err
				}

				return buff[len(chunk)-len(extra) : n], nil
			}

			if received += uint64(len(chunk)); len(chunk) < n {
				_, _, err = p.die(status.ErrBodyTooLarge)
				return nil, err
			}
		}

		switch {
		case rerr == nil:
		case errors.Is(rerr, io.EOF):
			return nil, p.Finalize()
		default:
			return nil, rerr
		}
	}
}

// FeedChunked behaves as Feed, except r carries a body encoded with the chunked transfer
// encoding, trailers allowed. The whole encoded body is consumed, even if the closing
// delimiter came earlier: decoded bytes following it are dropped as an epilogue. Bytes
// of the last read following the encoded body are returned as extra. cfg.Stream.MaxBodySize
// limits the number of decoded bytes.
func FeedChunked(r io.Reader, p *Parser, cfg *config.Config) (extra []byte, err error) {
	decoder := chunkedbody.NewParser(chunkedbody.DefaultSettings())
	buff := make([]byte, cfg.Stream.ReadBufferSize)
	var received uint64

	for {
		n, rerr := r.Read(buff)

		for data := buff[:n]; len(data) > 0; {
			chunk, rest, derr := decoder.Parse(data, true)
			switch derr {
			case nil, io.EOF:
			default:
				_, _, err = p.die(fmt.Errorf("%w: %w", status.ErrBadEncoding, derr))
				return nil, err
			}

			if received += uint64(len(chunk)); received > cfg.Stream.MaxBodySize {
				_, _, err = p.die(status.ErrBodyTooLarge)
				return nil, err
			}

			if len(chunk) > 0 && !p.Done() {
				if _, _, err = p.Execute(chunk); err != nil {
					return nil, err
				}
			}

			if derr == io.EOF {
				if err = p.Finalize(); err != nil {
					return nil, err
				}

				return rest, nil
			}

			data = rest
		}

		switch {
		case rerr == nil:
		case errors.Is(rerr, io.EOF):
			_, _, err = p.die(status.ErrIncomplete)
			return nil, err
		default:
			return nil, rerr
		}
	}
}
