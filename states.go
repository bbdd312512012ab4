package multipart

type parserState uint8

const (
	eStart parserState = iota + 1
	eStartDash
	eBoundary
	eBoundaryCR
	eBoundaryAlmostDone
	eHeaderFieldStart
	eHeaderField
	eHeaderValueDiscardWS
	eHeaderValue
	eHeaderAlmostDone
	eHeadersAlmostDone
	eHeadersDone
	eBodyPartStart
	eBodyPart
	eBodyPartBoundary
	eBodyPartBoundaryDash
	eBodyPartBoundaryDashDash
	eBodyPartBoundaryCompare
	eDone
	eDead
)

// inBody reports whether the state belongs to the body scanning group, i.e. whether
// bytes seen so far in the state must be kept as a part of the current body.
func (s parserState) inBody() bool {
	return s >= eBodyPart && s <= eBodyPartBoundaryCompare
}

// inToken reports whether a header field or value is pending.
func (s parserState) inToken() bool {
	return s == eHeaderField || s == eHeaderValue
}
