// Command mpdump reads a multipart/form-data body from a file or the standard input and
// prints its structure as JSON: headers, name, filename, size, digest and a preview of
// every part.
//
// Usage:
//
//	mpdump [flags] [file]
//
// Defaults of most flags may be set via MPDUMP_* environment variables.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/indigo-web/multipart/config"
	"github.com/indigo-web/multipart/status"
	json "github.com/json-iterator/go"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("mpdump: ")

	env, err := loadEnv()
	if err != nil {
		log.Fatalf("load environment: %v", err)
	}

	var (
		boundary    = flag.String("boundary", "", "boundary, without leading dashes")
		contentType = flag.String("content-type", "", "Content-Type header value to take the boundary from")
		chunked     = flag.Bool("chunked", env.Chunked, "input is encoded with the chunked transfer encoding")
		readBuffer  = flag.Int("read-buffer", env.ReadBufferSize, "how many bytes are read at once")
		preview     = flag.Int("preview", env.Preview, "preview length of part bodies")
		indent      = flag.Bool("indent", env.Indent, "indent the output")
	)
	flag.Parse()

	b, err := resolveBoundary(*boundary, *contentType)
	if err != nil {
		log.Fatal(err)
	}

	input := os.Stdin
	if flag.NArg() > 0 {
		input, err = os.Open(flag.Arg(0))
		if err != nil {
			log.Fatal(err)
		}

		defer input.Close()
	}

	cfg := config.Default()
	cfg.Stream.ReadBufferSize = *readBuffer
	cfg.Stream.MaxBodySize = uint64(env.MaxBodySize)
	cfg.Body.Space.Maximal = env.MaxPartSize

	report, err := dump(input, cfg, b, *chunked, *preview)
	if err != nil {
		log.Printf("%s: %v (%d parts seen)", status.CodeOf(err), err, len(report.Parts))
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	if *indent {
		enc.SetIndent("", "  ")
	}

	if err = enc.Encode(report); err != nil {
		log.Fatal(err)
	}
}
