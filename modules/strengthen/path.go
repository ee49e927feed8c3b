package strengthen

import (
	"os"
	"os/user"
	"path/filepath"
	"strings"
)

// ExpandPath is a helper function to expand a relative or home-relative path to an absolute path.
//
// eg.
//
//	~/.levdiff.toml -> /home/alec/.levdiff.toml
//	~alec/.levdiff.toml -> /home/alec/.levdiff.toml
func ExpandPath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if strings.HasPrefix(path, "~") {
		// For Windows systems, please replace the path separator first
		pos := strings.IndexByte(path, '/')
		switch {
		case pos == 1:
			if homeDir, err := os.UserHomeDir(); err == nil {
				return filepath.Join(homeDir, path[2:])
			}
		case pos > 1:
			// https://github.com/golang/go/issues/24383
			// macOS may not produce correct results
			username := path[1:pos]
			if userAccount, err := user.Lookup(username); err == nil {
				return filepath.Join(userAccount.HomeDir, path[pos+1:])
			}
		default:
		}
	}
	abspath, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abspath
}
