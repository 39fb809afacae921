package formatter

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

// ErrEmptyEncoding is returned when a formatter is built without a charset.
var ErrEmptyEncoding = errors.New("formatter: encoding is required")

// charset resolves an encoding label (e.g. "UTF-8", "latin1") and knows
// which runes the target charset can represent directly.
type charset struct {
	label    string
	name     string
	encoding encoding.Encoding
}

func resolveCharset(label string) (charset, error) {
	trimmed := strings.TrimSpace(label)
	if trimmed == "" {
		return charset{}, ErrEmptyEncoding
	}
	enc, err := htmlindex.Get(trimmed)
	if err != nil {
		return charset{}, fmt.Errorf("formatter: unsupported encoding %q: %w", trimmed, err)
	}
	name, err := htmlindex.Name(enc)
	if err != nil {
		return charset{}, fmt.Errorf("formatter: unsupported encoding %q: %w", trimmed, err)
	}
	return charset{label: trimmed, name: name, encoding: enc}, nil
}

func (c charset) unicode() bool {
	return c.name == "utf-8" || c.encoding == nil
}

func (c charset) canEncode(r rune) bool {
	if r < utf8.RuneSelf || c.unicode() {
		return true
	}
	_, err := c.encoding.NewEncoder().String(string(r))
	return err == nil
}

// encodeEntities converts text to HTML entities: markup characters and
// double quotes, every HTML 4.01 named reference, and numeric references for
// runes the charset cannot hold. Single quotes are left as-is.
func (c charset) encodeEntities(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch r {
		case '&':
			b.WriteString("&amp;")
		case '"':
			b.WriteString("&quot;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		default:
			if name, ok := html401Entities[r]; ok {
				b.WriteByte('&')
				b.WriteString(name)
				b.WriteByte(';')
				continue
			}
			if !c.canEncode(r) {
				b.WriteString("&#")
				b.WriteString(strconv.Itoa(int(r)))
				b.WriteByte(';')
				continue
			}
			b.WriteRune(r)
		}
	}
	return b.String()
}
