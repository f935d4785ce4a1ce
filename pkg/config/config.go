// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/solid/pkg/box"
	"github.com/walteh/solid/pkg/invoice"
	"github.com/walteh/solid/pkg/notify"
	"gitlab.com/tozd/go/errors"
)

const DefaultChannel = "email"

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte, filename string) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 📦 BoxSpec describes one box and what is packed in it
type BoxSpec struct {
	Name  string     `json:"name" yaml:"name" hcl:"name,label"`
	Items []box.Item `json:"items,omitempty" yaml:"items,omitempty" hcl:"item,block"`
}

// 🧾 InvoiceSpec describes one invoice; Metadata is used by pdf, Styles by html
type InvoiceSpec struct {
	Format   string  `json:"format" yaml:"format" hcl:"format,label"`
	Client   string  `json:"client" yaml:"client" hcl:"client"`
	Total    float64 `json:"total" yaml:"total" hcl:"total"`
	Metadata string  `json:"metadata,omitempty" yaml:"metadata,omitempty" hcl:"metadata,optional"`
	Styles   string  `json:"styles,omitempty" yaml:"styles,omitempty" hcl:"styles,optional"`
}

// 📣 NotifierSpec selects the notification channel
type NotifierSpec struct {
	Channel string `json:"channel,omitempty" yaml:"channel,omitempty" hcl:"channel,optional"`
}

// 📚 Config is the workbench file
type Config struct {
	Boxes    []BoxSpec     `json:"boxes,omitempty" yaml:"boxes,omitempty" hcl:"box,block"`
	Invoices []InvoiceSpec `json:"invoices,omitempty" yaml:"invoices,omitempty" hcl:"invoice,block"`
	Notifier *NotifierSpec `json:"notifier,omitempty" yaml:"notifier,omitempty" hcl:"notifier,block"`

	location string
}

// 🎯 LoadConfig loads and validates the configuration at path
func LoadConfig(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	var cfg *Config

	// a bare .solid file may hold either YAML or HCL
	if filepath.Ext(path) == ".solid" || filepath.Base(path) == ".solid" {
		cfg, err = (&YAMLParser{}).Parse(ctx, data, path)
		if err != nil {
			logger.Debug().Err(err).Msg("not YAML, trying HCL")
			cfg, err = (&HCLParser{}).Parse(ctx, data, path)
			if err != nil {
				return nil, errors.Errorf("failed to parse %s as YAML or HCL: %w", path, err)
			}
		}
	} else {
		p := GetParser(path)
		if p == nil {
			return nil, errors.Errorf("unsupported file extension %q", filepath.Ext(path))
		}
		cfg, err = p.Parse(ctx, data, path)
		if err != nil {
			return nil, errors.Errorf("parsing config: %w", err)
		}
	}

	cfg.location = path
	if err := Validate(ctx, cfg); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// 🔍 Validate checks the configuration and fills in defaults
func Validate(ctx context.Context, cfg *Config) error {
	seen := map[string]bool{}
	for i, b := range cfg.Boxes {
		if b.Name == "" {
			return errors.Errorf("box %d: name is required", i)
		}
		if seen[b.Name] {
			return errors.Errorf("box %q: declared more than once", b.Name)
		}
		seen[b.Name] = true

		for j, item := range b.Items {
			if item.Name == "" {
				return errors.Errorf("box %q item %d: name is required", b.Name, j)
			}
		}
		if _, err := box.FromItems(b.Items...); err != nil {
			return errors.Errorf("box %q: %w", b.Name, err)
		}
	}

	for i, inv := range cfg.Invoices {
		if inv.Client == "" {
			return errors.Errorf("invoice %d: client is required", i)
		}
		if inv.Total < 0 {
			return errors.Errorf("invoice %d: total must not be negative", i)
		}
		if !slices.Contains(invoice.Formats(), strings.ToLower(inv.Format)) {
			return errors.Errorf("invoice %d: %w %q", i, invoice.ErrUnknownFormat, inv.Format)
		}
	}

	if cfg.Notifier == nil {
		cfg.Notifier = &NotifierSpec{}
	}
	if cfg.Notifier.Channel == "" {
		cfg.Notifier.Channel = DefaultChannel
	}
	if !slices.Contains(notify.Channels(), strings.ToLower(cfg.Notifier.Channel)) {
		return errors.Errorf("notifier: %w %q", notify.ErrUnknownChannel, cfg.Notifier.Channel)
	}

	zerolog.Ctx(ctx).Debug().
		Int("boxes", len(cfg.Boxes)).
		Int("invoices", len(cfg.Invoices)).
		Str("channel", cfg.Notifier.Channel).
		Msg("configuration valid")

	return nil
}

// Location returns the path the config was loaded from
func (cfg *Config) Location() string {
	return cfg.location
}

// Channel returns the notification channel, defaulting to email
func (cfg *Config) Channel() string {
	if cfg.Notifier == nil || cfg.Notifier.Channel == "" {
		return DefaultChannel
	}
	return cfg.Notifier.Channel
}

// Box builds the named box from its spec
func (cfg *Config) Box(name string) (*box.Box[box.Item], error) {
	for _, b := range cfg.Boxes {
		if b.Name == name {
			return box.FromItems(b.Items...)
		}
	}
	return nil, errors.Errorf("box %q not found in config", name)
}

// BoxNames returns box names in declaration order
func (cfg *Config) BoxNames() []string {
	names := make([]string, 0, len(cfg.Boxes))
	for _, b := range cfg.Boxes {
		names = append(names, b.Name)
	}
	return names
}

// Generators builds an invoice.Generator for every configured invoice
func (cfg *Config) Generators() ([]invoice.Generator, error) {
	out := make([]invoice.Generator, 0, len(cfg.Invoices))
	for i, inv := range cfg.Invoices {
		extra := inv.Metadata
		if strings.EqualFold(inv.Format, string(invoice.FormatHTML)) {
			extra = inv.Styles
		}
		gen, err := invoice.New(invoice.Format(inv.Format), inv.Client, inv.Total, extra)
		if err != nil {
			return nil, errors.Errorf("invoice %d: %w", i, err)
		}
		out = append(out, gen)
	}
	return out, nil
}
