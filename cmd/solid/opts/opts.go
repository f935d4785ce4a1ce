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


package opts

import (
	"context"
	"sync"

	"github.com/walteh/solid/pkg/config"
	"github.com/walteh/solid/pkg/log"
	"gitlab.com/tozd/go/errors"
)

// RootOpts contains shared options used by all commands
type RootOpts struct {
	ConfigFile string
	Debug      bool
	Logger     *log.Logger

	once   sync.Once
	config *config.Config
	err    error
}

// Config loads the workbench file on first use; commands that never
// touch it run without one
func (o *RootOpts) Config(ctx context.Context) (*config.Config, error) {
	o.once.Do(func() {
		o.config, o.err = config.LoadConfig(ctx, o.ConfigFile)
		if o.err != nil {
			o.err = errors.Errorf("loading config: %w", o.err)
		}
	})
	return o.config, o.err
}
