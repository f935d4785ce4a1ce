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


package log

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🎨 Display configuration
const (
	indent    = 4  // spaces to indent result and item lines
	kindWidth = 10 // width for the value kind column
	nameWidth = 20 // width for item names
)

// 🧮 Result is one arithmetic outcome shown to the user
type Result struct {
	Kind     string   // value kind (rational/complex/calc)
	Symbol   string   // operator placed between operands
	Operands []string // rendered operands, in order
	Value    string   // rendered result, empty when Err is set
	Err      error    // failure, if any
}

func (r Result) expression() string {
	return strings.Join(r.Operands, " "+r.Symbol+" ")
}

// 📦 ItemLine is one box entry shown to the user
type ItemLine struct {
	Box     string // box the item lives in
	Name    string // item name
	Detail  string // rendered item attributes
	Fragile bool   // highlighted when true
}

// 🎯 Logger handles structured logging with console output
type Logger struct {
	zlog    zerolog.Logger
	console io.Writer
	mu      sync.Mutex
}

// 🏭 New creates a new logger; zerolog records go to stderr
func New(console io.Writer, level zerolog.Level) *Logger {
	zlog := zerolog.New(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = os.Stderr
	})).With().Timestamp().Logger().Level(level)
	return &Logger{
		zlog:    zlog,
		console: console,
	}
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		panic("logger not found in context")
	}
	return logger
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

func (l *Logger) formatResult(r Result) string {
	symbol, symbolColor := '✓', color.FgGreen
	tail := color.New(color.Bold).Sprint(r.Value)
	sep := "="
	if r.Err != nil {
		symbol, symbolColor = '✗', color.FgRed
		tail = color.New(color.FgRed).Sprint(r.Err.Error())
		sep = "!"
	}

	return fmt.Sprintf("%s%s %s %s %s %s",
		fmt.Sprintf("%*s", indent, ""),
		color.New(symbolColor).Sprint(string(symbol)),
		color.New(color.FgCyan).Sprint(fmt.Sprintf("%-*s", kindWidth, r.Kind)),
		r.expression(),
		sep,
		tail)
}

// 🧮 LogResult prints an arithmetic result
func (l *Logger) LogResult(ctx context.Context, r Result) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintln(l.console, l.formatResult(r))

	ev := l.zlog.Info()
	if r.Err != nil {
		ev = l.zlog.Error().Err(r.Err)
	}
	ev.Str("kind", r.Kind).
		Str("expression", r.expression()).
		Str("value", r.Value).
		Msg("arithmetic result")
}

func (l *Logger) formatItem(it ItemLine) string {
	symbol, symbolColor := '•', color.FgCyan
	if it.Fragile {
		symbol, symbolColor = '!', color.FgYellow
	}
	return fmt.Sprintf("%s%s %s %s",
		fmt.Sprintf("%*s", indent, ""),
		color.New(symbolColor).Sprint(string(symbol)),
		color.New(color.Bold).Sprint(fmt.Sprintf("%-*s", nameWidth, it.Name)),
		color.New(color.Faint).Sprint(it.Detail))
}

// 📦 LogItem prints one box entry
func (l *Logger) LogItem(ctx context.Context, it ItemLine) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintln(l.console, l.formatItem(it))

	l.zlog.Debug().
		Str("box", it.Box).
		Str("item", it.Name).
		Bool("fragile", it.Fragile).
		Msg("box item")
}

// 📊 RenderTable prints rows under a header as a table
func (l *Logger) RenderTable(header []string, rows [][]string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	data := make(pterm.TableData, 0, len(rows)+1)
	data = append(data, header)
	data = append(data, rows...)

	out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return errors.Errorf("rendering table: %w", err)
	}
	fmt.Fprintln(l.console, out)
	l.zlog.Debug().Int("rows", len(rows)).Msg("table rendered")
	return nil
}

// 📝 LogNewline logs a newline
func (l *Logger) LogNewline() {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.console)
}

// 📝 Header logs a header
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	name := color.New(color.Bold, color.FgCyan).Sprint("solid")
	fmt.Fprintf(l.console, "\n%s %s\n\n", name, color.New(color.Faint).Sprint("• "+msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Success logs a success message
func (l *Logger) Success(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "✅ %s\n", color.New(color.FgGreen).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "⚠️  %s\n", color.New(color.FgYellow).Sprint(msg))
	l.zlog.Warn().Msg(msg)
}

// 📝 Error logs an error message
func (l *Logger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "❌ %s\n", color.New(color.FgRed).Sprint(msg))
	l.zlog.Error().Msg(msg)
}

// 📝 Info logs an info message
func (l *Logger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "ℹ️  %s\n", color.New(color.FgCyan).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Infof logs a formatted info message
func (l *Logger) Infof(format string, args ...interface{}) {
	l.Info(fmt.Sprintf(format, args...))
}

// 📝 Warningf logs a formatted warning message
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.Warning(fmt.Sprintf(format, args...))
}

// 📝 Errorf logs a formatted error message
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.Error(fmt.Sprintf(format, args...))
}

// 📝 Successf logs a formatted success message
func (l *Logger) Successf(format string, args ...interface{}) {
	l.Success(fmt.Sprintf(format, args...))
}
