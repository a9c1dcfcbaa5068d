package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/dlubom/CaveConv/internal/logging"
)

// options carries everything run needs after defaults, the optional config
// file, and explicit flags are merged, in that order.
type options struct {
	CaveName      string
	IncludeSplays bool
	LogLevel      string
}

func defaultOptions() options {
	return options{LogLevel: "info"}
}

type fileConfig struct {
	CaveName      string `toml:"cave_name"`
	IncludeSplays bool   `toml:"include_splays"`
	LogLevel      string `toml:"log_level"`
}

func loadOptions(path string) (options, error) {
	opts := defaultOptions()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return options{}, fmt.Errorf("load config: %w", err)
	}

	if meta.IsDefined("cave_name") {
		opts.CaveName = strings.TrimSpace(raw.CaveName)
	}

	if meta.IsDefined("include_splays") {
		opts.IncludeSplays = raw.IncludeSplays
	}

	if meta.IsDefined("log_level") {
		lvl := strings.TrimSpace(raw.LogLevel)
		if _, ok := logging.ParseLevel(lvl); !ok {
			return options{}, fmt.Errorf("load config: unknown log_level %q", lvl)
		}
		opts.LogLevel = lvl
	}

	return opts, nil
}
