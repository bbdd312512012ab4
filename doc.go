// Package multipart implements an incremental multipart/form-data parser.
//
// The Parser is fed with chunks of a body of arbitrary size, down to a single byte, and
// reports its structure through callbacks as soon as every piece is complete. Nothing is
// copied unless a piece spans more than one chunk. The body grammar is strict: the body
// must begin with the very first delimiter, header fields consist of letters and hyphens
// only, and folded header values are rejected.
//
// On top of the parser, ExtractName and ExtractFilename locate quoted attributes in header
// values without allocating, and BoundaryFromContentType obtains the boundary from the
// Content-Type header. Feed and FeedChunked drive the parser from an io.Reader. For the
// common case of collecting a whole form into memory, see the form subpackage.
package multipart
