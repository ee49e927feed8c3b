// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/antgroup/levdiff/modules/env"
	"github.com/antgroup/levdiff/modules/strengthen"
)

func configSystemPath() string {
	if p, ok := os.LookupEnv(env.LEVDIFF_CONFIG_SYSTEM); ok {
		return p
	}
	exe, err := os.Executable()
	if err != nil {
		return ""
	}
	// levdiff prefix -->
	prefix := filepath.Dir(exe)
	if filepath.Base(prefix) == "bin" {
		prefix = filepath.Dir(prefix)
	}
	return filepath.Join(prefix, "/etc/levdiff.toml")
}

func configGlobalPath() string {
	return strengthen.ExpandPath("~/.levdiff.toml")
}

// LoadFile decodes a single config file.
func LoadFile(name string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(name, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func LoadSystem() (*Config, error) {
	systemPath := configSystemPath()
	if len(systemPath) == 0 {
		return nil, os.ErrNotExist
	}
	if _, err := os.Stat(systemPath); err != nil {
		return nil, err
	}
	return LoadFile(systemPath)
}

func LoadGlobal() (*Config, error) {
	userPath := configGlobalPath()
	if _, err := os.Stat(userPath); err != nil && os.IsNotExist(err) {
		return &Config{}, nil
	}
	return LoadFile(userPath)
}

// Load merges the system config, the global config and then the "key=value"
// overrides.
func Load(values []string) (*Config, error) {
	gc, err := LoadGlobal()
	if err != nil {
		return nil, err
	}
	cfg, err := LoadSystem()
	switch {
	case os.IsNotExist(err):
		cfg = &Config{}
	case err != nil:
		return nil, err
	}
	cfg.Overwrite(gc)
	if err := cfg.SetValues(values); err != nil {
		return nil, err
	}
	return cfg, nil
}
