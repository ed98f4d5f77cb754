/*
 * Copyright 2024 CloudWeGo Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package giop

import (
	"os"
	"sync"

	"github.com/corbalite/giopkg/protocol/cdr"
)

// The GIOP version used for newly opened streams when the caller does not
// pick one, seeded from the GIOP_VERSION environment variable ("M.m") on
// first use. Changing it affects only streams opened afterwards.

const defaultVersionString = "1.2"

var (
	versionOnce sync.Once
	versionMu   sync.Mutex
	version     cdr.Version
)

// DefaultVersion returns the library default GIOP version.
func DefaultVersion() cdr.Version {
	versionOnce.Do(func() {
		s := os.Getenv("GIOP_VERSION")
		if s == "" {
			s = defaultVersionString
		}
		v, err := cdr.ParseVersion(s)
		if err != nil {
			v, _ = cdr.ParseVersion(defaultVersionString)
		}
		versionMu.Lock()
		version = v
		versionMu.Unlock()
	})
	versionMu.Lock()
	defer versionMu.Unlock()
	return version
}

// SetDefaultVersion overrides the library default GIOP version.
func SetDefaultVersion(v cdr.Version) {
	DefaultVersion() // make sure the env seed does not clobber the override
	versionMu.Lock()
	version = v
	versionMu.Unlock()
}
