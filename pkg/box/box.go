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

package box

import (
	"context"
	"fmt"
	"io"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

var (
	ErrDuplicateItem = errors.Base("item already in box")
	ErrItemNotFound  = errors.Base("item not in box")
)

// 🔖 Named is anything a Box can hold: items are keyed by name
type Named interface {
	ItemName() string
	fmt.Stringer
}

// 📦 Box stores uniquely named items in insertion order
type Box[T Named] struct {
	contents []T
}

// 🏭 New creates an empty box
func New[T Named]() *Box[T] {
	return &Box[T]{}
}

// FromItems creates a box holding items, rejecting duplicate names
func FromItems[T Named](items ...T) (*Box[T], error) {
	b := New[T]()
	for _, item := range items {
		if err := b.AddItem(item); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (b *Box[T]) indexOf(name string) int {
	for i, item := range b.contents {
		if item.ItemName() == name {
			return i
		}
	}
	return -1
}

// AddItem stores item unless an item with the same name is already inside
func (b *Box[T]) AddItem(item T) error {
	if b.indexOf(item.ItemName()) != -1 {
		return errors.Errorf("adding %q: %w", item.ItemName(), ErrDuplicateItem)
	}
	b.contents = append(b.contents, item)
	return nil
}

// RemoveItem takes the named item out of the box
func (b *Box[T]) RemoveItem(name string) error {
	idx := b.indexOf(name)
	if idx == -1 {
		return errors.Errorf("removing %q: %w", name, ErrItemNotFound)
	}
	b.contents = append(b.contents[:idx], b.contents[idx+1:]...)
	return nil
}

// ListItems writes one line per item to w; an empty box writes nothing
func (b *Box[T]) ListItems(ctx context.Context, w io.Writer) error {
	zerolog.Ctx(ctx).Debug().Int("items", len(b.contents)).Msg("listing box contents")

	for _, item := range b.contents {
		if _, err := fmt.Fprintln(w, item.String()); err != nil {
			return errors.Errorf("writing item %q: %w", item.ItemName(), err)
		}
	}
	return nil
}

// FindItem returns every item accepted by match, in insertion order
func (b *Box[T]) FindItem(match func(T) bool) []T {
	var found []T
	for _, item := range b.contents {
		if match(item) {
			found = append(found, item)
		}
	}
	return found
}

// MatchName returns the items whose name matches a doublestar glob pattern
func (b *Box[T]) MatchName(pattern string) ([]T, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, errors.Errorf("matching %q: %w", pattern, doublestar.ErrBadPattern)
	}
	return b.FindItem(func(item T) bool {
		ok, _ := doublestar.Match(pattern, item.ItemName())
		return ok
	}), nil
}

// Items returns a copy of the contents
func (b *Box[T]) Items() []T {
	out := make([]T, len(b.contents))
	copy(out, b.contents)
	return out
}

// Len returns the number of items
func (b *Box[T]) Len() int {
	return len(b.contents)
}
