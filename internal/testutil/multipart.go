package testutil

import (
	"strconv"
	"strings"

	"github.com/dchest/uniuri"
)

type Header struct {
	Key, Value string
}

type Part struct {
	Headers []Header
	Body    string
}

// FormPart returns a part as browsers send it. Empty filename and contentType are omitted.
func FormPart(name, filename, contentType, body string) Part {
	disposition := `form-data; name="` + name + `"`
	if len(filename) > 0 {
		disposition += `; filename="` + filename + `"`
	}

	part := Part{
		Headers: []Header{{"Content-Disposition", disposition}},
		Body:    body,
	}

	if len(contentType) > 0 {
		part.Headers = append(part.Headers, Header{"Content-Type", contentType})
	}

	return part
}

// Boundary returns a random boundary, similar to what browsers generate.
func Boundary() string {
	return "----IndigoFormBoundary" + uniuri.NewLen(16)
}

// Body serializes parts into a multipart body, closing delimiter included. No epilogue
// is appended.
func Body(boundary string, parts ...Part) []byte {
	var b strings.Builder

	for _, part := range parts {
		b.WriteString("--")
		b.WriteString(boundary)
		b.WriteString("\r\n")

		for _, header := range part.Headers {
			b.WriteString(header.Key)
			b.WriteString(": ")
			b.WriteString(header.Value)
			b.WriteString("\r\n")
		}

		b.WriteString("\r\n")
		b.WriteString(part.Body)
		b.WriteString("\r\n")
	}

	b.WriteString("--")
	b.WriteString(boundary)
	b.WriteString("--")

	return []byte(b.String())
}

// Chunked encodes data with the chunked transfer encoding, using chunks of at most n bytes.
func Chunked(data []byte, n int) []byte {
	var b strings.Builder

	for _, chunk := range SplitIntoParts(data, n) {
		b.WriteString(strconv.FormatInt(int64(len(chunk)), 16))
		b.WriteString("\r\n")
		b.Write(chunk)
		b.WriteString("\r\n")
	}

	b.WriteString("0\r\n\r\n")

	return []byte(b.String())
}

// SplitIntoParts cuts data into pieces n bytes long. The last one may be shorter.
func SplitIntoParts(data []byte, n int) (parts [][]byte) {
	for i := 0; i < len(data); i += n {
		end := i + n
		if end > len(data) {
			end = len(data)
		}

		parts = append(parts, data[i:end])
	}

	return parts
}
