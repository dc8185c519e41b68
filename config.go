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

package mdrtf

import (
	"strconv"
	"strings"

	"zombiezen.com/go/mdrtf/rtf"
)

// Color is a 24-bit RGB color.
// It marshals to and from "#rrggbb" text.
type Color = rtf.Color

// DefaultFont is the font used for body text when none is configured.
const DefaultFont = "Segoe UI"

// Config is the set of presentation parameters for a renderer.
type Config struct {
	// Font is the name of the font used for body text and headings.
	Font string `yaml:"font"`
	// Colors is the color scheme of the rendered document.
	Colors ColorScheme `yaml:"colors"`
}

// ColorScheme is the set of colors used in a rendered document.
type ColorScheme struct {
	Background Color `yaml:"background"`
	Foreground Color `yaml:"foreground"`
	Link       Color `yaml:"link"`
}

// DefaultConfig returns the configuration used
// by a zero [RTFRenderer]: Segoe UI, dark slate gray text,
// and dark blue links on a white background.
func DefaultConfig() Config {
	return Config{
		Font: DefaultFont,
		Colors: ColorScheme{
			Background: Color{R: 0xff, G: 0xff, B: 0xff},
			Foreground: Color{R: 0x2f, G: 0x4f, B: 0x4f},
			Link:       Color{R: 0x00, G: 0x00, B: 0x8b},
		},
	}
}

// Validate returns a [*FormatError] if the configuration
// cannot be written into a document header.
func (cfg Config) Validate() error {
	if cfg.Font == "" {
		return &FormatError{Field: "font", Reason: "empty font name"}
	}
	if i := strings.IndexAny(cfg.Font, `;{}\`); i >= 0 {
		return &FormatError{
			Field:  "font",
			Reason: "font name " + strconv.Quote(cfg.Font) + " contains " + strconv.QuoteRune(rune(cfg.Font[i])),
		}
	}
	return nil
}
