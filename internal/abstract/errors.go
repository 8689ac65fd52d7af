// Copyright 2021 Andrew Werner.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package abstract

import "github.com/pingcap/errors"

// tree errors
var (
	// ErrKeyNotFound is returned by indexed access when the key is absent.
	// Find and Remove never return it.
	ErrKeyNotFound = errors.Normalize("key %v not found", errors.RFCCodeText("AVL:tree:ErrKeyNotFound"))
	// ErrInvariantViolated is returned by Verify.
	ErrInvariantViolated = errors.Normalize("tree invariant violated: %s", errors.RFCCodeText("AVL:tree:ErrInvariantViolated"))
)

// corrupted panics. It is used where the tree's invariants guarantee a
// condition that does not hold, which can only be a bug in this package or
// unsynchronized concurrent mutation.
func corrupted(format string, args ...interface{}) {
	panic(errors.Errorf("abstract: corrupted tree: "+format, args...))
}
