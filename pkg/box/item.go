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
	"fmt"
	"strconv"
)

const missing = "N/A"

// 🏷️ Item is a household good; only the name is required
type Item struct {
	Name    string   `json:"name" yaml:"name" hcl:"name"`
	Weight  *float64 `json:"weight,omitempty" yaml:"weight,omitempty" hcl:"weight,optional"`
	Fragile *bool    `json:"fragile,omitempty" yaml:"fragile,omitempty" hcl:"fragile,optional"`
	Value   *float64 `json:"value,omitempty" yaml:"value,omitempty" hcl:"value,optional"`
}

// ItemName implements Named
func (i Item) ItemName() string {
	return i.Name
}

// String renders every attribute, using N/A for the ones not set
func (i Item) String() string {
	return fmt.Sprintf("Name: %s, Weight: %s, Fragile: %s, Value: %s",
		i.Name, formatOptFloat(i.Weight), formatOptBool(i.Fragile), formatOptFloat(i.Value))
}

// Columns names the fields returned by Row
var Columns = []string{"Name", "Weight", "Fragile", "Value"}

// Row renders the attributes in Columns order
func (i Item) Row() []string {
	return []string{i.Name, formatOptFloat(i.Weight), formatOptBool(i.Fragile), formatOptFloat(i.Value)}
}

func formatOptFloat(f *float64) string {
	if f == nil {
		return missing
	}
	return strconv.FormatFloat(*f, 'f', -1, 64)
}

func formatOptBool(b *bool) string {
	if b == nil {
		return missing
	}
	return strconv.FormatBool(*b)
}

// ByName matches items with exactly this name
func ByName(name string) func(Item) bool {
	return func(i Item) bool { return i.Name == name }
}

// ByWeight matches items whose weight is set and equal to w
func ByWeight(w float64) func(Item) bool {
	return func(i Item) bool { return i.Weight != nil && *i.Weight == w }
}

// ByFragile matches items whose fragility is set and equal to f
func ByFragile(f bool) func(Item) bool {
	return func(i Item) bool { return i.Fragile != nil && *i.Fragile == f }
}

// ByValue matches items whose value is set and equal to v
func ByValue(v float64) func(Item) bool {
	return func(i Item) bool { return i.Value != nil && *i.Value == v }
}

// Ptr is a small helper for filling the optional fields of an Item
func Ptr[T any](v T) *T {
	return &v
}
