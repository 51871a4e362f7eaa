// Package encoding normalizes uploaded statement files to UTF-8. Banks
// export CSVs in whatever charset their backoffice grew up with, so the
// importer never assumes one.
package encoding

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// peekSize covers the BOM plus enough of the body for the charset
// heuristic to work with.
const peekSize = 4096

var (
	utf8BOM    = []byte{0xEF, 0xBB, 0xBF}
	utf16LEBOM = []byte{0xFF, 0xFE}
	utf16BEBOM = []byte{0xFE, 0xFF}
)

// NewUTF8Reader wraps r so that reads yield UTF-8 regardless of the
// source charset. A UTF-8 BOM is stripped, UTF-16 BOMs select the
// matching decoder, already-valid UTF-8 passes through untouched, and
// anything else goes through chardet with Windows-1252 as the fallback.
func NewUTF8Reader(r io.Reader) (io.Reader, error) {
	br := bufio.NewReader(r)

	head, err := br.Peek(peekSize)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("peeking statement head: %w", err)
	}

	if bytes.HasPrefix(head, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
		return br, nil
	}

	if bytes.HasPrefix(head, utf16LEBOM) {
		return decode(br, unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)), nil
	}

	if bytes.HasPrefix(head, utf16BEBOM) {
		return decode(br, unicode.UTF16(unicode.BigEndian, unicode.UseBOM)), nil
	}

	if utf8.Valid(head) {
		return br, nil
	}

	if result, err := chardet.NewTextDetector().DetectBest(head); err == nil {
		if result.Charset == "UTF-8" {
			return br, nil
		}

		if enc, ok := legacyCharsets[result.Charset]; ok {
			return decode(br, enc), nil
		}
	}

	return decode(br, charmap.Windows1252), nil
}

// legacyCharsets maps chardet results to decoders for the single-byte
// encodings that actually show up in bank exports.
var legacyCharsets = map[string]encoding.Encoding{
	"ISO-8859-1":   charmap.Windows1252,
	"windows-1252": charmap.Windows1252,
	"ISO-8859-9":   charmap.ISO8859_9,
	"ISO-8859-15":  charmap.ISO8859_15,
}

func decode(r io.Reader, enc encoding.Encoding) io.Reader {
	return transform.NewReader(r, enc.NewDecoder())
}
