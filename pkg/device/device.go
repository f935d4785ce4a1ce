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

// Package device splits printing and scanning into separate capabilities so
// a plain printer never has to pretend it can scan.
package device

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🖨️ Printable is implemented by anything that prints
type Printable interface {
	Print(ctx context.Context) error
}

// 📠 Scannable is implemented by anything that scans
type Scannable interface {
	Scan(ctx context.Context) error
}

var (
	_ Printable = (*Printer)(nil)
	_ Scannable = (*Scanner)(nil)
	_ Printable = (*PrinterScanner)(nil)
	_ Scannable = (*PrinterScanner)(nil)
)

func emit(ctx context.Context, w io.Writer, action, line string) error {
	zerolog.Ctx(ctx).Debug().Str("action", action).Msg("device operation")
	if _, err := fmt.Fprintln(w, line); err != nil {
		return errors.Errorf("%s: %w", action, err)
	}
	return nil
}

func doPrint(ctx context.Context, w io.Writer) error {
	return emit(ctx, w, "print", "Printing...")
}

func doScan(ctx context.Context, w io.Writer) error {
	return emit(ctx, w, "scan", "Scanning...")
}

// Printer only prints
type Printer struct {
	out io.Writer
}

func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

func (p *Printer) Print(ctx context.Context) error {
	return doPrint(ctx, p.out)
}

// Scanner only scans
type Scanner struct {
	out io.Writer
}

func NewScanner(out io.Writer) *Scanner {
	return &Scanner{out: out}
}

func (s *Scanner) Scan(ctx context.Context) error {
	return doScan(ctx, s.out)
}

// PrinterScanner is a multifunction device
type PrinterScanner struct {
	out io.Writer
}

func NewPrinterScanner(out io.Writer) *PrinterScanner {
	return &PrinterScanner{out: out}
}

func (ps *PrinterScanner) Print(ctx context.Context) error {
	return doPrint(ctx, ps.out)
}

func (ps *PrinterScanner) Scan(ctx context.Context) error {
	return doScan(ctx, ps.out)
}
