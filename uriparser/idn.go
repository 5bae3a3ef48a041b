/*
Copyright 2025 URI Parser Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package uriparser

import (
	"sync"

	"golang.org/x/net/idna"
)

// IDNToASCII converts an internationalized host name to its ASCII
// (Punycode) form. A non-nil error marks the host as invalid. The function
// must be pure: the parser may call it concurrently.
type IDNToASCII func(host string) (string, error)

// lookupProfile holds the IDNA profile backing the default IDN capability.
// It is built on first use and read-only afterwards, so concurrent parses
// share it without coordination.
var lookupProfile = sync.OnceValue(func() *idna.Profile {
	return idna.New(idna.MapForLookup(), idna.BidiRule())
})

// defaultIDN is the IDN capability used when none is injected.
func defaultIDN(host string) (string, error) {
	return lookupProfile().ToASCII(host)
}
