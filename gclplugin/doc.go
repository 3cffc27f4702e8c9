// Copyright 2025 Oliver Eikemeier. All Rights Reserved.
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

/*
Package gclplugin provides golangci-lint plugin integration for the [numberedparams] analyzer.

The analyzer checks the Ruby sources found next to the Go files of each package,
which is useful for Go repositories with Ruby tooling like Rakefiles or Fastlane lanes.
golangci-lint only hands Go files to the analyzer, so the Ruby files (`*.rb`, `*.rake`,
`*.gemspec`, `*.ru`, `Rakefile`, `Gemfile` and similar) are discovered by listing the directories of the
package's Go files; entries of the pass's OtherFiles are included too. A directory without Go
files is never visited. Since the plugin only needs file positions, it requests
the syntax load mode and no type information.

# Usage

1. Add a file `.custom-gcl.yaml` to your source with:

	---
	version: v2.7.0

	name: golangci-lint
	destination: .

	plugins:
	  - module: fillmore-labs.com/numberedparams
	    import: fillmore-labs.com/numberedparams/gclplugin
	    version: v0.0.1

2. Run `golangci-lint custom` from your project root.

This will create a custom `golangci-lint` executable in your project root.

3. Configure the linter in `.golangci.yaml`:

	---
	version: "2"
	linters:
	  default: none
	  enable:
	    - numberedparams
	  settings:
	    custom:
	      numberedparams:
	        type: module
	        description: "numberedparams suggests numbered block parameters in Ruby."
	        original-url: "https://fillmore-labs.com/numberedparams"
	        settings:
	          max-arguments: 2
	          autocorrect: true

4. Run the linter:

	./golangci-lint run .

[numberedparams]: https://github.com/fillmore-labs/numberedparams#numberedparams
*/
package gclplugin
