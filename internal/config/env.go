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

package config

import (
	"fmt"

	"zombiezen.com/go/mdrtf"
)

// envVarPrefix is the prefix for all mdrtf environment variables.
const envVarPrefix = "MDRTF_"

// envColors maps environment variable names (without prefix)
// to the color they override.
var envColors = []struct {
	name  string
	field func(*mdrtf.ColorScheme) *mdrtf.Color
}{
	{"BACKGROUND", func(c *mdrtf.ColorScheme) *mdrtf.Color { return &c.Background }},
	{"FOREGROUND", func(c *mdrtf.ColorScheme) *mdrtf.Color { return &c.Foreground }},
	{"LINK", func(c *mdrtf.ColorScheme) *mdrtf.Color { return &c.Link }},
}

// ApplyEnv applies MDRTF_* environment variable overrides to cfg.
// Empty variables are ignored.
func ApplyEnv(cfg *mdrtf.Config, getenv func(string) string) error {
	if font := getenv(envVarPrefix + "FONT"); font != "" {
		cfg.Font = font
	}
	for _, ec := range envColors {
		name := envVarPrefix + ec.name
		value := getenv(name)
		if value == "" {
			continue
		}
		if err := ec.field(&cfg.Colors).UnmarshalText([]byte(value)); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}
