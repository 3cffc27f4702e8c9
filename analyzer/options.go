// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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

package analyzer

import (
	"log/slog"

	"fillmore-labs.com/numberedparams/internal/config"
	"fillmore-labs.com/numberedparams/internal/run"
)

// Option configures specific behavior of a [New] numberedparams analyzer.
type Option interface {
	apply(r *run.Options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *run.Options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithMaxArguments is an [Option] to configure the maximum number of block parameters
// for which numbered parameters are suggested.
func WithMaxArguments(maxArguments int) Option { return maxArgumentsOption{maxArguments: maxArguments} }

type maxArgumentsOption struct{ maxArguments int }

func (o maxArgumentsOption) apply(r *run.Options) {
	r.MaxArguments = o.maxArguments
}

func (o maxArgumentsOption) LogAttr() slog.Attr {
	return slog.Int("max-arguments", o.maxArguments)
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *run.Options) {
	r.Behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithAutoCorrect is an [Option] to configure whether diagnostics carry suggested fixes.
func WithAutoCorrect(autoCorrect bool) Option { return autoCorrectOption{autoCorrect: autoCorrect} }

type autoCorrectOption struct{ autoCorrect bool }

func (o autoCorrectOption) apply(r *run.Options) {
	r.Behavior.Set(config.AutoCorrect, o.autoCorrect)
}

func (o autoCorrectOption) LogAttr() slog.Attr {
	return slog.Bool("autocorrect", o.autoCorrect)
}
