package credentials

import (
	"strings"
	"unicode/utf16"
)

// Encode renders the record as the config.json the application expects:
// three keys in fixed order, two-space indent, CR-LF line endings and
// ASCII-only output.
func Encode(rec Record) []byte {
	var b strings.Builder
	b.WriteString("{\r\n")
	writeField(&b, "client_id", rec.ClientID, true)
	writeField(&b, "client_secret", rec.ClientSecret, true)
	writeField(&b, "default_uri", rec.DefaultURI, false)
	b.WriteString("}\r\n")
	return []byte(b.String())
}

func writeField(b *strings.Builder, key, value string, more bool) {
	b.WriteString(`  "`)
	b.WriteString(key)
	b.WriteString(`": "`)
	b.WriteString(Escape(value))
	b.WriteByte('"')
	if more {
		b.WriteByte(',')
	}
	b.WriteString("\r\n")
}

// Escape returns s as the body of a JSON string literal. A CR-LF pair and a
// lone LF both become \n. Bytes that are not valid UTF-8 are written as
// U+FFFD, the same substitution encoding/json makes.
func Escape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	rs := []rune(s)
	for i := 0; i < len(rs); i++ {
		r := rs[i]
		switch {
		case r == '\\':
			b.WriteString(`\\`)
		case r == '"':
			b.WriteString(`\"`)
		case r == '\r' && i+1 < len(rs) && rs[i+1] == '\n':
			b.WriteString(`\n`)
			i++
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case r == '\t':
			b.WriteString(`\t`)
		case r < 0x20 || r == 0x7f:
			writeUnicodeEscape(&b, r)
		case r < 0x80:
			b.WriteRune(r)
		case r > 0xffff:
			hi, lo := utf16.EncodeRune(r)
			writeUnicodeEscape(&b, hi)
			writeUnicodeEscape(&b, lo)
		default:
			writeUnicodeEscape(&b, r)
		}
	}
	return b.String()
}

const hexDigits = "0123456789abcdef"

func writeUnicodeEscape(b *strings.Builder, r rune) {
	b.WriteString(`\u`)
	b.WriteByte(hexDigits[(r>>12)&0xf])
	b.WriteByte(hexDigits[(r>>8)&0xf])
	b.WriteByte(hexDigits[(r>>4)&0xf])
	b.WriteByte(hexDigits[r&0xf])
}
