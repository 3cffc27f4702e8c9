// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

package gclplugin

import numberedparams "fillmore-labs.com/numberedparams/analyzer"

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// MaxArguments sets the maximum number of block parameters to suggest numbered parameters.
	MaxArguments *int `json:"max-arguments,omitzero"`
	// AutoCorrect enables suggested fixes.
	AutoCorrect *bool `json:"autocorrect,omitzero"`
	// Generated enables diagnostics in generated Ruby files.
	Generated *bool `json:"generated,omitzero"`
}

// Options converts [Settings] into a list of [numberedparams.Option] for the numberedparams analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []numberedparams.Option {
	var opts []numberedparams.Option

	opts = appendOption(opts, s.MaxArguments, numberedparams.WithMaxArguments)
	opts = appendOption(opts, s.AutoCorrect, numberedparams.WithAutoCorrect)
	opts = appendOption(opts, s.Generated, numberedparams.WithGenerated)

	return opts
}

// appendOption appends a non-nil setting to a [numberedparams.Option] list.
func appendOption[T any](opts []numberedparams.Option, value *T, constructor func(T) numberedparams.Option) []numberedparams.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
