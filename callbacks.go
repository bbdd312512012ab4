package multipart

// Callbacks are invoked synchronously while Execute walks the input. Every one of them
// is optional. Returning a non-nil error aborts parsing: Execute returns an error
// wrapping both status.ErrCallbackVeto and the returned error, and the parser must be
// reset before it can be used again.
//
// Slices passed to callbacks are borrowed. They point either into the buffer passed to
// Execute or into the parser's own storage, and are valid only until the callback
// returns. Copy them in order to retain.
type Callbacks struct {
	// OnBoundaryBegin is called when a delimiter opening a new part was consumed.
	OnBoundaryBegin func() error
	// OnHeaderField receives the name of a part header.
	OnHeaderField func(field []byte) error
	// OnHeaderValue receives the value of the header whose name came last, leading
	// spaces stripped.
	OnHeaderValue func(value []byte) error
	// OnHeadersComplete is called on the empty line separating headers from the body.
	OnHeadersComplete func() error
	// OnBody is called exactly once per part with the whole part content, when the
	// delimiter following it is confirmed.
	OnBody func(body []byte) error
	// OnBodyPartsComplete is called on the closing delimiter. Nothing is consumed
	// after it.
	OnBodyPartsComplete func() error
}

func prepareCallbacks(cb Callbacks) Callbacks {
	if cb.OnBoundaryBegin == nil {
		cb.OnBoundaryBegin = nop
	}
	if cb.OnHeaderField == nil {
		cb.OnHeaderField = nopData
	}
	if cb.OnHeaderValue == nil {
		cb.OnHeaderValue = nopData
	}
	if cb.OnHeadersComplete == nil {
		cb.OnHeadersComplete = nop
	}
	if cb.OnBody == nil {
		cb.OnBody = nopData
	}
	if cb.OnBodyPartsComplete == nil {
		cb.OnBodyPartsComplete = nop
	}

	return cb
}

func nop() error {
	return nil
}

func nopData([]byte) error {
	return nil
}
