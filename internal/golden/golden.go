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

// Package golden provides sample Markdown documents
// along with their expected parse trees and HTML renderings.
package golden

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

// Example is a single sample document.
type Example struct {
	Name     string `json:"name"`
	Markdown string `json:"markdown"`
	// Tree is the expected depth-first listing of the parsed document.
	Tree string `json:"tree"`
	// HTML is the expected HTML rendering, before normalization.
	HTML string `json:"html"`
}

//go:embed examples.json
var examplesData []byte

// Load returns the sample documents.
func Load() ([]Example, error) {
	var examples []Example
	if err := json.Unmarshal(examplesData, &examples); err != nil {
		return nil, fmt.Errorf("load golden examples: %w", err)
	}
	return examples, nil
}
