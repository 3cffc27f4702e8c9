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

// Package syntax provides an immutable, arena-backed syntax tree of a Ruby source file.
//
// Nodes are stored in preorder and addressed by [NodeIndex]; a [Cursor] navigates the tree
// without recursion. The tree only models what the numbered parameter rule needs: block
// constructs with their parameter lists and bodies, local variable reads and writes, and
// scope gates. Everything else is an [Other] node.
package syntax
