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

package notify

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
)

var ErrUnknownChannel = errors.Base("unknown notification channel")

// 📣 Service delivers a message over one channel
type Service interface {
	Notify(ctx context.Context, message string) error
}

// Factory builds a Service that writes its deliveries to out
type Factory func(out io.Writer) Service

var (
	// 🗺️ registry maps channel names to factories
	registry = map[string]Factory{}
)

// Register makes a channel available to NewService
func Register(channel string, factory Factory) {
	registry[channel] = factory
}

func init() {
	Register("email", func(out io.Writer) Service { return NewEmailService(out) })
	Register("sms", func(out io.Writer) Service { return NewSMSService(out) })
}

// NewService builds the service registered for channel
func NewService(channel string, out io.Writer) (Service, error) {
	factory, ok := registry[strings.ToLower(channel)]
	if !ok {
		return nil, errors.Errorf("%w %q, options: %s", ErrUnknownChannel, channel, strings.Join(Channels(), ", "))
	}
	return factory(out), nil
}

// Channels returns the registered channel names, sorted
func Channels() []string {
	out := make([]string, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// writerService prints one line per delivery
type writerService struct {
	mu     sync.Mutex
	out    io.Writer
	kind   string
	format string
}

func (s *writerService) Notify(ctx context.Context, message string) error {
	zerolog.Ctx(ctx).Debug().Str("channel", s.kind).Str("message", message).Msg("sending notification")

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := fmt.Fprintf(s.out, s.format+"\n", message); err != nil {
		return errors.Errorf("sending %s notification: %w", s.kind, err)
	}
	return nil
}

// EmailService notifies by email
type EmailService struct {
	writerService
}

func NewEmailService(out io.Writer) *EmailService {
	return &EmailService{writerService{out: out, kind: "email", format: "Sending email notification: %s"}}
}

// SMSService notifies by short message
type SMSService struct {
	writerService
}

func NewSMSService(out io.Writer) *SMSService {
	return &SMSService{writerService{out: out, kind: "sms", format: "Sending SMS notification: %s"}}
}

// 📬 Notifier depends only on the Service abstraction
type Notifier struct {
	service Service
}

func NewNotifier(service Service) *Notifier {
	return &Notifier{service: service}
}

// SendNotification hands message to the configured service
func (n *Notifier) SendNotification(ctx context.Context, message string) error {
	if err := n.service.Notify(ctx, message); err != nil {
		return errors.Errorf("sending notification: %w", err)
	}
	return nil
}

// Broadcast sends message through every service concurrently and returns the
// first failure, if any. Every service is attempted.
func Broadcast(ctx context.Context, message string, services ...Service) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, svc := range services {
		g.Go(func() error {
			return svc.Notify(ctx, message)
		})
	}
	if err := g.Wait(); err != nil {
		return errors.Errorf("broadcasting notification: %w", err)
	}
	return nil
}
