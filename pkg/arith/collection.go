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

package arith

import (
	"gitlab.com/tozd/go/errors"
)

// 📦 Collection is an ordered, append-only sequence of arithmeticable values.
//
// It is not safe for concurrent use.
type Collection[T Arithmeticable[T]] struct {
	elements []T
}

// 🏭 NewCollection creates a collection seeded with items, in order
func NewCollection[T Arithmeticable[T]](items ...T) *Collection[T] {
	c := &Collection[T]{}
	c.elements = append(c.elements, items...)
	return c
}

// AddArithmeticable appends item to the end of the collection
func (c *Collection[T]) AddArithmeticable(item T) {
	c.elements = append(c.elements, item)
}

// GetArithmeticable returns the element at index
func (c *Collection[T]) GetArithmeticable(index int) (T, error) {
	if index < 0 || index >= len(c.elements) {
		var zero T
		return zero, errors.Errorf("getting element %d of %d: %w", index, len(c.elements), ErrIndexOutOfRange)
	}
	return c.elements[index], nil
}

// NumberOfArithmeticables returns the current element count
func (c *Collection[T]) NumberOfArithmeticables() int {
	return len(c.elements)
}
