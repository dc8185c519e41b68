// Copyright 2023 Ross Light
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package rtf

// Font is an entry in the font table.
type Font struct {
	Name    string
	Family  FontFamily
	Charset int
}

// Charsets used in font table entries.
const (
	CharsetANSI   = 0
	CharsetSymbol = 2
)

// FontFamily is an enumeration of RTF font families.
type FontFamily int

const (
	FamilyNil FontFamily = iota
	FamilyRoman
	FamilySwiss
	FamilyModern
	FamilyScript
	FamilyDecor
	FamilyTech
)

// String returns the family's control word suffix, e.g. "swiss".
func (f FontFamily) String() string {
	switch f {
	case FamilyRoman:
		return "roman"
	case FamilySwiss:
		return "swiss"
	case FamilyModern:
		return "modern"
	case FamilyScript:
		return "script"
	case FamilyDecor:
		return "decor"
	case FamilyTech:
		return "tech"
	default:
		return "nil"
	}
}
