package status

// Code classifies why parsing halted. It is what the parser keeps as its errno once
// it dies, so callers are able to tell a malformed body from a rejected one without
// matching on the concrete errors.
type Code uint8

const (
	OK Code = iota
	// Grammar is a byte that doesn't fit any transition of the current state.
	Grammar
	// CallbackVeto means one of the callbacks returned an error.
	CallbackVeto
	// Incomplete means the input ended before the closing delimiter.
	Incomplete
	// TooLarge means a configured limit was exceeded.
	TooLarge
	// Usage is a misuse of the API: no boundary, parser already dead, etc.
	Usage
	// Form means the body is valid multipart, but not a valid form.
	Form
)

var codeStrings = [...]string{
	OK:           "ok",
	Grammar:      "grammar violation",
	CallbackVeto: "callback veto",
	Incomplete:   "incomplete input",
	TooLarge:     "limit exceeded",
	Usage:        "usage error",
	Form:         "malformed form",
}

func (c Code) String() string {
	if int(c) >= len(codeStrings) {
		return "unknown"
	}

	return codeStrings[c]
}
