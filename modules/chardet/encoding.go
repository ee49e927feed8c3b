package chardet

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
)

var (
	ErrUnknownCharset = errors.New("unknown charset")
)

var encodings = map[string]encoding.Encoding{
	"iso-8859-1":   charmap.ISO8859_1,
	"iso-8859-2":   charmap.ISO8859_2,
	"iso-8859-5":   charmap.ISO8859_5,
	"iso-8859-7":   charmap.ISO8859_7,
	"iso-8859-15":  charmap.ISO8859_15,
	"koi8-r":       charmap.KOI8R,
	"koi8-u":       charmap.KOI8U,
	"windows-1250": charmap.Windows1250,
	"windows-1251": charmap.Windows1251,
	"windows-1252": charmap.Windows1252,
	"gbk":          simplifiedchinese.GBK,
	"gb18030":      simplifiedchinese.GB18030,
	"big5":         traditionalchinese.Big5,
	"euc-jp":       japanese.EUCJP,
	"shift_jis":    japanese.ShiftJIS,
	"euc-kr":       korean.EUCKR,
	"utf-16be":     unicode.UTF16(unicode.BigEndian, unicode.UseBOM),
	"utf-16le":     unicode.UTF16(unicode.LittleEndian, unicode.UseBOM),
}

var aliases = map[string]string{
	"latin1":  "iso-8859-1",
	"latin-1": "iso-8859-1",
	"cp1250":  "windows-1250",
	"cp1251":  "windows-1251",
	"cp1252":  "windows-1252",
	"gb2312":  "gbk",
	"sjis":    "shift_jis",
	"utf16be": "utf-16be",
	"utf16le": "utf-16le",
}

func canonical(charset string) string {
	name := strings.ToLower(strings.TrimSpace(charset))
	if a, ok := aliases[name]; ok {
		return a
	}
	return name
}

// IsUTF8 reports whether charset needs no conversion.
func IsUTF8(charset string) bool {
	switch canonical(charset) {
	case "", "utf-8", "utf8", "ascii", "us-ascii":
		return true
	}
	return false
}

// Names returns the supported charsets in sorted order.
func Names() []string {
	names := make([]string, 0, len(encodings))
	for k := range encodings {
		names = append(names, k)
	}
	slices.Sort(names)
	return names
}

// NewReader converts text read from r in charset to UTF-8.
func NewReader(r io.Reader, charset string) (io.Reader, error) {
	if IsUTF8(charset) {
		return r, nil
	}
	if e, ok := encodings[canonical(charset)]; ok {
		return e.NewDecoder().Reader(r), nil
	}
	return nil, fmt.Errorf("charset '%s': %w", charset, ErrUnknownCharset)
}

// DecodeFromCharset decodes input to UTF-8.
func DecodeFromCharset(input []byte, charset string) ([]byte, error) {
	if IsUTF8(charset) {
		return input, nil
	}
	if enc, ok := encodings[canonical(charset)]; ok {
		return enc.NewDecoder().Bytes(input)
	}
	return nil, fmt.Errorf("charset '%s': %w", charset, ErrUnknownCharset)
}

// EncodeToCharset encodes UTF-8 input to charset.
func EncodeToCharset(input []byte, charset string) ([]byte, error) {
	if IsUTF8(charset) {
		return input, nil
	}
	if e, ok := encodings[canonical(charset)]; ok {
		return e.NewEncoder().Bytes(input)
	}
	return nil, fmt.Errorf("charset '%s': %w", charset, ErrUnknownCharset)
}
