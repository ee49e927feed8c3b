package term

import "regexp"

func (v Level) Red(s string) string {
	switch v {
	case Level16M:
		// #f43b47
		return "\x1b[38;2;244;59;71m" + s + "\x1b[0m"
	case Level256:
		return "\x1b[31m" + s + "\x1b[0m"
	default:
	}
	return s
}

func (v Level) Yellow(s string) string {
	switch v {
	case Level16M:
		// #fee240
		return "\x1b[38;2;254;225;64m" + s + "\x1b[0m"
	case Level256:
		return "\x1b[33m" + s + "\x1b[0m"
	default:
	}
	return s
}

func (v Level) Blue(s string) string {
	switch v {
	case Level16M:
		// #00c8ff
		return "\x1b[38;2;0;201;255m" + s + "\x1b[0m"
	case Level256:
		return "\x1b[34m" + s + "\x1b[0m"
	default:
	}
	return s
}

var (
	ansiRegex = regexp.MustCompile("\x1b\\[[0-9;]*m")
)

// StripANSI removes SGR escape sequences from s.
func StripANSI(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}
