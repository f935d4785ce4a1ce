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

package fileio

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 💾 Handler reads whole files and appends lines to them
type Handler interface {
	ReadFile(ctx context.Context, path string) (string, error)
	AppendToFile(ctx context.Context, path string, data string) error
}

var _ Handler = (*OSHandler)(nil)

// 🔧 OSHandler implements Handler on the local file system
type OSHandler struct {
	baseDir string // relative paths are resolved against this
}

// 🏭 NewOSHandler creates a handler rooted at baseDir ("" means the working directory)
func NewOSHandler(baseDir string) *OSHandler {
	if baseDir != "" {
		baseDir = filepath.Clean(baseDir)
	}
	return &OSHandler{baseDir: baseDir}
}

func (h *OSHandler) resolve(path string) string {
	if filepath.IsAbs(path) || h.baseDir == "" {
		return path
	}
	return filepath.Join(h.baseDir, path)
}

// ReadFile returns the file content as UTF-8 text
func (h *OSHandler) ReadFile(ctx context.Context, path string) (string, error) {
	abs := h.resolve(path)
	zerolog.Ctx(ctx).Debug().Str("path", abs).Msg("reading file")

	content, err := os.ReadFile(abs)
	if err != nil {
		return "", errors.Errorf("reading file: %w", err)
	}
	return string(content), nil
}

// AppendToFile writes data plus a trailing newline at the end of the file,
// creating it when missing
func (h *OSHandler) AppendToFile(ctx context.Context, path string, data string) error {
	abs := h.resolve(path)
	zerolog.Ctx(ctx).Debug().Str("path", abs).Int("bytes", len(data)+1).Msg("appending to file")

	f, err := os.OpenFile(abs, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return errors.Errorf("opening file: %w", err)
	}

	if _, err := f.WriteString(data + "\n"); err != nil {
		f.Close()
		return errors.Errorf("appending to file: %w", err)
	}

	if err := f.Close(); err != nil {
		return errors.Errorf("closing file: %w", err)
	}
	return nil
}
