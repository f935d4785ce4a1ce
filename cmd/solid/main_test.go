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


package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/solid/pkg/arith"
	"github.com/walteh/solid/pkg/box"
	"github.com/walteh/solid/pkg/invoice"
	"github.com/walteh/solid/pkg/notify"
)

const workbench = `boxes:
  - name: kitchen
    items:
      - name: Plates
        weight: 2.5
        fragile: true
        value: 40
      - name: Pan
        weight: 2.5
  - name: attic
invoices:
  - format: pdf
    client: Acme
    total: 100
    metadata: Q1
  - format: html
    client: Globex
    total: 7.5
    styles: dark
notifier:
  channel: sms
`

func writeWorkbench(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".solid.yaml")
	require.NoError(t, os.WriteFile(path, []byte(workbench), 0644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	color.NoColor = true
	t.Cleanup(func() { color.NoColor = false })

	buf := &bytes.Buffer{}
	rootCmd, _ := newRootCmd(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return buf.String(), err
}

func TestArithmeticCommands(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "rational_add", args: []string{"rational", "add", "1/2", "1/3"}, want: "1/2 + 1/3 = 5/6"},
		{name: "rational_sub", args: []string{"rational", "sub", "1/3", "2/3"}, want: "1/3 - 2/3 = -1/3"},
		{name: "rational_mul", args: []string{"rational", "mul", "2/3", "3/4"}, want: "2/3 * 3/4 = 1/2"},
		{name: "rational_div", args: []string{"rational", "div", "1/2", "1/4"}, want: "1/2 / 1/4 = 2"},
		{name: "rational_sum", args: []string{"rational", "sum", "1/2", "1/3", "1/6"}, want: "1/2 + 1/3 + 1/6 = 1"},
		{name: "complex_add", args: []string{"complex", "add", "3+4i", "5+6i"}, want: "3+4i + 5+6i = 8+10i"},
		{name: "complex_mul", args: []string{"complex", "mul", "1+2i", "3+4i"}, want: "1+2i * 3+4i = -5+10i"},
		{name: "complex_sum", args: []string{"complex", "sum", "1+1i", "2", "3i"}, want: "= 3+4i"},
		{name: "calc_add", args: []string{"calc", "add", "5", "3"}, want: "5 + 3 = 8"},
		{name: "calc_div", args: []string{"calc", "div", "8", "2"}, want: "8 / 2 = 4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.args...)
			require.NoError(t, err)
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestArithmeticCommands_DivisionByZero(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "rational", args: []string{"rational", "div", "1/2", "0/3"}},
		{name: "complex", args: []string{"complex", "div", "1+1i", "0"}},
		{name: "calc", args: []string{"calc", "div", "5", "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.args...)
			require.Error(t, err)
			assert.ErrorIs(t, err, arith.ErrDivisionByZero)
			assert.Contains(t, out, "✗")
		})
	}
}

func TestArithmeticCommands_BadInput(t *testing.T) {
	_, err := run(t, "rational", "add", "1/2", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing")

	_, err = run(t, "rational", "add", "1/2")
	require.Error(t, err)
}

func TestBoxCommands(t *testing.T) {
	cfg := writeWorkbench(t)

	t.Run("list", func(t *testing.T) {
		out, err := run(t, "-c", cfg, "box", "list")
		require.NoError(t, err)
		assert.Contains(t, out, "solid • box kitchen")
		assert.Contains(t, out, "Name: Plates, Weight: 2.5, Fragile: true, Value: 40")
		assert.Contains(t, out, "Name: Pan, Weight: 2.5, Fragile: N/A, Value: N/A")
		assert.Contains(t, out, "solid • box attic")
		assert.Contains(t, out, `box "attic" is empty`)
	})

	t.Run("list_table", func(t *testing.T) {
		pterm.DisableStyling()
		defer pterm.EnableStyling()

		out, err := run(t, "-c", cfg, "box", "list", "--table", "kitchen")
		require.NoError(t, err)
		assert.Contains(t, out, "Fragile")
		assert.Contains(t, out, "Plates")
		assert.Contains(t, out, "N/A")
		assert.NotContains(t, out, "Name: Plates", "table rows replace the plain listing")
	})

	t.Run("list_unknown_box", func(t *testing.T) {
		_, err := run(t, "-c", cfg, "box", "list", "garage")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})

	t.Run("find_by_weight", func(t *testing.T) {
		out, err := run(t, "-c", cfg, "box", "find", "kitchen", "--weight", "2.5")
		require.NoError(t, err)
		assert.Contains(t, out, "Plates")
		assert.Contains(t, out, "Pan")
	})

	t.Run("find_by_fragile", func(t *testing.T) {
		out, err := run(t, "-c", cfg, "box", "find", "kitchen", "--fragile")
		require.NoError(t, err)
		assert.Contains(t, out, "Plates")
		assert.NotContains(t, out, "Pan")
	})

	t.Run("find_requires_attribute", func(t *testing.T) {
		_, err := run(t, "-c", cfg, "box", "find", "kitchen")
		require.Error(t, err)
	})

	t.Run("match", func(t *testing.T) {
		out, err := run(t, "-c", cfg, "box", "match", "kitchen", "Pl*")
		require.NoError(t, err)
		assert.Contains(t, out, "Plates")
		assert.NotContains(t, out, "Pan")
	})

	t.Run("match_nothing", func(t *testing.T) {
		out, err := run(t, "-c", cfg, "box", "match", "kitchen", "Z*")
		require.NoError(t, err)
		assert.Contains(t, out, `no matching items in box "kitchen"`)
	})

	t.Run("match_bad_pattern", func(t *testing.T) {
		_, err := run(t, "-c", cfg, "box", "match", "kitchen", "[")
		require.Error(t, err)
	})
}

func TestBoxCommands_DuplicateItemsRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dup.yaml")
	require.NoError(t, os.WriteFile(path, []byte("boxes:\n  - name: a\n    items:\n      - name: x\n      - name: x\n"), 0644))

	_, err := run(t, "-c", path, "box", "list")
	require.Error(t, err)
	assert.ErrorIs(t, err, box.ErrDuplicateItem)
}

func TestInvoiceCommand(t *testing.T) {
	cfg := writeWorkbench(t)

	t.Run("from_config", func(t *testing.T) {
		out, err := run(t, "-c", cfg, "invoice")
		require.NoError(t, err)
		assert.Equal(t, []string{
			"PDF invoice for Acme with total 100 and metadata Q1",
			"HTML invoice for Globex with total 7.5 and styles dark",
		}, strings.Split(strings.TrimSpace(out), "\n"))
	})

	t.Run("from_flags", func(t *testing.T) {
		out, err := run(t, "invoice", "--format", "html", "--client", "Initech", "--total", "12", "--extra", "light")
		require.NoError(t, err)
		assert.Equal(t, "HTML invoice for Initech with total 12 and styles light\n", out)
	})

	t.Run("unknown_format", func(t *testing.T) {
		_, err := run(t, "invoice", "--format", "docx")
		require.Error(t, err)
		assert.ErrorIs(t, err, invoice.ErrUnknownFormat)
	})
}

func TestNotifyCommand(t *testing.T) {
	cfg := writeWorkbench(t)

	t.Run("configured_channel", func(t *testing.T) {
		out, err := run(t, "-c", cfg, "notify", "Hello World!")
		require.NoError(t, err)
		assert.Equal(t, "Sending SMS notification: Hello World!\n", out)
	})

	t.Run("flag_overrides_config", func(t *testing.T) {
		out, err := run(t, "notify", "--channel", "email", "Hello World!")
		require.NoError(t, err)
		assert.Equal(t, "Sending email notification: Hello World!\n", out)
	})

	t.Run("broadcast", func(t *testing.T) {
		out, err := run(t, "notify", "--all", "hi")
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{
			"Sending email notification: hi",
			"Sending SMS notification: hi",
		}, strings.Split(strings.TrimSpace(out), "\n"))
	})

	t.Run("unknown_channel", func(t *testing.T) {
		_, err := run(t, "notify", "--channel", "pigeon", "hi")
		require.Error(t, err)
		assert.ErrorIs(t, err, notify.ErrUnknownChannel)
	})
}

func TestFileCommand(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, "file", "append", "--dir", dir, "notes.txt", "first")
	require.NoError(t, err)
	_, err = run(t, "file", "append", "--dir", dir, "notes.txt", "second")
	require.NoError(t, err)

	out, err := run(t, "file", "read", "--dir", dir, "notes.txt")
	require.NoError(t, err)
	assert.Equal(t, "first\nsecond\n", out)

	_, err = run(t, "file", "read", "--dir", dir, "missing.txt")
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDeviceCommand(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{name: "print", want: "Printing...\n"},
		{name: "scan", want: "Scanning...\n"},
		{name: "both", want: "Printing...\nScanning...\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, "device", tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "🚀 solid "), "unexpected output: %q", out)
	assert.Contains(t, out, "revision")
}

func TestMissingConfig(t *testing.T) {
	_, err := run(t, "-c", filepath.Join(t.TempDir(), "nope.yaml"), "box", "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading config")
}
