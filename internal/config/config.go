//
// corvid - a UCI chess engine in Go
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
// Copyright (c) 2026 corvid contributors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package config holds globally available configuration, populated from
// defaults and optionally overridden by a TOML file.
package config

import (
	"fmt"
	"log"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/corvidchess/corvid/internal/util"
)

// Globally available settings, overridable by command line flags before
// Setup is called.
var (
	// ConfFile is the path to the TOML configuration file.
	ConfFile = "./corvid.toml"

	// LogLevel is the standard logger's level (op/go-logging scale, 0-5).
	LogLevel = 4

	// SearchLogLevel is the search logger's level.
	SearchLogLevel = 4

	// Settings holds the decoded configuration tree.
	Settings conf

	initialized = false
)

type conf struct {
	Search searchConfiguration
	Eval   evalConfiguration
}

// Setup reads ConfFile if present, falling back to defaults for anything it
// doesn't specify. Safe to call more than once; only the first call acts.
func Setup() {
	if initialized {
		return
	}
	if path, err := util.ResolveFile(ConfFile); err == nil {
		if _, err := toml.DecodeFile(path, &Settings); err != nil {
			log.Println("config: could not parse", path, "- using defaults:", err)
		}
	}
	initialized = true
}

// String renders the active configuration for diagnostics.
func (c *conf) String() string {
	var b strings.Builder
	b.WriteString("search:\n")
	writeFields(&b, reflect.ValueOf(&c.Search).Elem())
	b.WriteString("eval:\n")
	writeFields(&b, reflect.ValueOf(&c.Eval).Elem())
	return b.String()
}

func writeFields(b *strings.Builder, v reflect.Value) {
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		fmt.Fprintf(b, "  %-24s %-6s = %v\n", t.Field(i).Name, v.Field(i).Type(), v.Field(i).Interface())
	}
}
