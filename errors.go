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

// FormatError is returned by renderers
// when the output cannot be produced from the given arguments.
// Parsing never produces a FormatError.
type FormatError struct {
	// Field names the offending argument or configuration field.
	Field  string
	Reason string
}

func (e *FormatError) Error() string {
	return "render " + e.Field + ": " + e.Reason
}
