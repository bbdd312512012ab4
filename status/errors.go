package status

import "errors"

type Error struct {
	Message string
	Code    Code
}

func NewError(code Code, message string) error {
	return Error{
		Code:    code,
		Message: message,
	}
}

func (e Error) Error() string {
	return e.Message
}

var (
	ErrBadDelimiter = NewError(Grammar, "malformed boundary delimiter")
	ErrBadBoundary  = NewError(Grammar, "boundary mismatch")
	ErrBadHeader    = NewError(Grammar, "malformed part header")
	ErrBadEncoding  = NewError(Grammar, "malformed transfer encoding")

	ErrCallbackVeto = NewError(CallbackVeto, "callback aborted parsing")

	ErrIncomplete = NewError(Incomplete, "multipart body ended before the closing delimiter")

	ErrHeaderTooLarge = NewError(TooLarge, "part header is too large")
	ErrTooManyHeaders = NewError(TooLarge, "too many part headers")
	ErrPartTooLarge   = NewError(TooLarge, "part body is too large")
	ErrBodyTooLarge   = NewError(TooLarge, "multipart body is too large")

	ErrNoBoundary       = NewError(Usage, "boundary is not set")
	ErrBadBoundaryParam = NewError(Usage, "invalid boundary parameter")
	ErrNotMultipart     = NewError(Usage, "content type is not multipart/form-data")
	ErrParserIsDead     = NewError(Usage, "parser must be reset after an error")

	ErrNoPartName = NewError(Form, "form part has no name")
	ErrBadCharset = NewError(Form, "empty _charset_ form part")
)

// CodeOf returns the code carried by err, OK for nil and Usage for errors of
// foreign origin.
func CodeOf(err error) Code {
	if err == nil {
		return OK
	}

	var e Error
	if errors.As(err, &e) {
		return e.Code
	}

	return Usage
}
