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


package commands

import (
	"io"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"github.com/walteh/solid/cmd/solid/opts"
	"github.com/walteh/solid/pkg/notify"
)

// NewNotifyCmd creates the notify command
func NewNotifyCmd(o *opts.RootOpts) *cobra.Command {
	var (
		channel string
		all     bool
	)

	cmd := &cobra.Command{
		Use:   "notify MESSAGE",
		Short: "Send a notification through the configured channel",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			message := args[0]

			if all {
				out = &lockedWriter{w: out}
				services := make([]notify.Service, 0, len(notify.Channels()))
				for _, ch := range notify.Channels() {
					svc, err := notify.NewService(ch, out)
					if err != nil {
						return err
					}
					services = append(services, svc)
				}
				return notify.Broadcast(ctx, message, services...)
			}

			if !cmd.Flags().Changed("channel") {
				cfg, err := o.Config(ctx)
				if err != nil {
					return err
				}
				channel = cfg.Channel()
			}

			svc, err := notify.NewService(channel, out)
			if err != nil {
				return err
			}
			return notify.NewNotifier(svc).SendNotification(ctx, message)
		},
	}

	cmd.Flags().StringVar(&channel, "channel", "", "notification channel ("+strings.Join(notify.Channels(), ", ")+"), overrides the config")
	cmd.Flags().BoolVar(&all, "all", false, "send through every channel at once")
	cmd.MarkFlagsMutuallyExclusive("channel", "all")
	return cmd
}

// lockedWriter serializes writes from concurrently notified services
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}
