// Package filters decodes the text encodings used for binary payloads in
// rich text streams.
//
// ASCIIHexDecode:
//
//	decoded, err := filters.ASCIIHexDecode(data)
//
// Decodes hexadecimal-encoded data such as picture bytes. Whitespace is
// ignored and > marks the end of data.
package filters
