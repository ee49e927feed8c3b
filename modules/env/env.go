package env

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	LEVDIFF_CONFIG_SYSTEM   = "LEVDIFF_CONFIG_SYSTEM"
	LEVDIFF_PAGER           = "LEVDIFF_PAGER"
	LEVDIFF_FORCE_TRUECOLOR = "LEVDIFF_FORCE_TRUECOLOR"
	TRACE                   = "TRACE" // dump the cost table after every cell write
)

// SanitizerEnv returns the process environment without removeKey.
func SanitizerEnv(removeKey ...string) []string {
	removeMap := make(map[string]bool)
	for _, k := range removeKey {
		removeMap[k] = true
	}
	originEnv := os.Environ()
	env := make([]string, 0, len(originEnv))
	for _, e := range originEnv {
		k, _, ok := strings.Cut(e, "=")
		if !ok {
			// BAD env
			continue
		}
		if removeMap[k] {
			continue
		}
		env = append(env, e)
	}
	return env
}

// GetBool fetches and parses a boolean typed environment variable
//
// If the variable is empty, returns `fallback` and no error.
// If there is an error, returns `fallback` and the error.
func GetBool(name string, fallback bool) (bool, error) {
	s := os.Getenv(name)
	if s == "" {
		return fallback, nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return fallback, fmt.Errorf("get bool %s: %w", name, err)
	}
	return v, nil
}

// LookupPager returns the pager command from LEVDIFF_PAGER or PAGER. ok is
// true when either is set, even to the empty string which disables paging.
func LookupPager() (string, bool) {
	if pager, ok := os.LookupEnv(LEVDIFF_PAGER); ok {
		return pager, ok
	}
	return os.LookupEnv("PAGER")
}
