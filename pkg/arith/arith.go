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

var (
	// ErrDivisionByZero is returned whenever an operation would divide by zero.
	ErrDivisionByZero = errors.Base("division by zero")

	// ErrIndexOutOfRange is returned for collection access outside [0, len).
	ErrIndexOutOfRange = errors.Base("index out of range")
)

// 🧮 Arithmeticable is the self-typed arithmetic capability.
//
// Every operation returns a new value; the receiver and the argument are
// left untouched.
type Arithmeticable[T any] interface {
	Add(other T) T
	Subtract(other T) T
	Multiply(other T) T
	Divide(other T) (T, error)
}
