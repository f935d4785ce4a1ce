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

// Package invoice renders invoices in several output formats. Adding a format
// means adding a Generator, never editing an existing one.
package invoice

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"gitlab.com/tozd/go/errors"
)

var ErrUnknownFormat = errors.Base("unknown invoice format")

// 📄 Format names an output format
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatHTML Format = "html"
)

// Generator renders an invoice as text
type Generator interface {
	Generate() string
}

// 🧾 Invoice holds the data shared by every format
type Invoice struct {
	Client string
	Total  float64
}

func (i Invoice) total() string {
	return strconv.FormatFloat(i.Total, 'f', -1, 64)
}

// PDF is an invoice carrying document metadata
type PDF struct {
	Invoice
	Metadata string
}

func (p PDF) Generate() string {
	return fmt.Sprintf("PDF invoice for %s with total %s and metadata %s", p.Client, p.total(), p.Metadata)
}

// HTML is an invoice carrying CSS styles
type HTML struct {
	Invoice
	Styles string
}

func (h HTML) Generate() string {
	return fmt.Sprintf("HTML invoice for %s with total %s and styles %s", h.Client, h.total(), h.Styles)
}

// 🏭 factories maps each format to its constructor; extra is the
// format-specific attribute (metadata, styles)
var factories = map[Format]func(inv Invoice, extra string) Generator{
	FormatPDF:  func(inv Invoice, extra string) Generator { return PDF{Invoice: inv, Metadata: extra} },
	FormatHTML: func(inv Invoice, extra string) Generator { return HTML{Invoice: inv, Styles: extra} },
}

// New builds the generator for format
func New(format Format, client string, total float64, extra string) (Generator, error) {
	factory, ok := factories[Format(strings.ToLower(string(format)))]
	if !ok {
		return nil, errors.Errorf("%w %q, options: %s", ErrUnknownFormat, format, strings.Join(Formats(), ", "))
	}
	return factory(Invoice{Client: client, Total: total}, extra), nil
}

// Formats returns the known format names, sorted
func Formats() []string {
	out := make([]string, 0, len(factories))
	for f := range factories {
		out = append(out, string(f))
	}
	sort.Strings(out)
	return out
}
