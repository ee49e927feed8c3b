package strengthen

import (
	"errors"
	"strconv"
	"strings"
)

// SimpleAtob parses common boolean spellings and falls back to dv.
func SimpleAtob(s string, dv bool) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "on", "1":
		return true
	case "false", "no", "off", "0":
		return false
	}
	return dv
}

const (
	Byte int64 = 1 << (iota * 10)
	KiByte
	MiByte
	GiByte
	TiByte
	PiByte
	EiByte
)

func toLower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		c += 'a' - 'A'
	}
	return c
}

var (
	ErrSyntaxSize = errors.New("size syntax error")
)

// ParseSize parses sizes such as "512", "64k", "100m" or "1GB".
func ParseSize(data string) (int64, error) {
	data = strings.TrimSpace(data)
	if len(data) > 1 && toLower(data[len(data)-1]) == 'b' {
		data = data[:len(data)-1]
	}
	if len(data) == 0 {
		return 0, ErrSyntaxSize
	}
	var ratio int64 = Byte
	switch toLower(data[len(data)-1]) {
	case 'k':
		ratio = KiByte
	case 'm':
		ratio = MiByte
	case 'g':
		ratio = GiByte
	case 't':
		ratio = TiByte
	case 'p':
		ratio = PiByte
	case 'e':
		ratio = EiByte
	}
	if ratio != Byte {
		data = data[:len(data)-1]
	}
	sz, err := strconv.ParseInt(strings.TrimSpace(data), 10, 64)
	if err != nil {
		return 0, ErrSyntaxSize
	}
	return sz * ratio, nil
}
