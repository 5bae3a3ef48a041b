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
	"strings"
	"sync"
)

// fastPaths maps trivially decomposable references to their known component
// records, sparing the scanner for the degenerate inputs. The table must
// remain observably identical to running scan on the same strings.
var fastPaths = sync.OnceValue(func() map[string]Components {
	return map[string]Components{
		"":   {},
		"#":  {hasFragment: true},
		"?":  {hasQuery: true},
		"?#": {hasQuery: true, hasFragment: true},
		"/":  {path: "/"},
		"//": {hasHost: true},
	}
})

// checkCharacters rejects inputs carrying control bytes before any
// decomposition is attempted. No URI component grammar admits them.
func checkCharacters(s string) error {
	for i := 0; i < len(s); i++ {
		if b := s[i]; b <= 0x1F || b == 0x7F {
			return newError(KindInvalidCharacters, "control character 0x%02X at offset %d", b, i)
		}
	}
	return nil
}

// scan runs the general decomposition over a non-empty reference, tracking
// byte offsets for the scheme, authority, path, query and fragment
// boundaries. Every component is returned as a byte-for-byte substring of
// the input.
func (p *Parser) scan(s string) (Components, error) {
	var c Components

	switch s[0] {
	case '#':
		// Fragment-only reference; no scheme or authority parsing applies.
		c.fragment, c.hasFragment = s[1:], true
		return c, nil
	case '?':
		rest := s[1:]
		if h := strings.IndexByte(rest, '#'); h >= 0 {
			c.query, c.hasQuery = rest[:h], true
			c.fragment, c.hasFragment = rest[h+1:], true
		} else {
			c.query, c.hasQuery = rest, true
		}
		return c, nil
	}

	rest := s

	// A scheme exists only when a ':' occurs before any '/', '?' or '#'.
	// Once that position is established the token before it must satisfy
	// the scheme grammar; there is no falling back to a schemeless read.
	if i := strings.IndexAny(rest, ":/?#"); i >= 0 && rest[i] == ':' {
		if !isSchemeName(rest[:i]) {
			return Components{}, newError(KindInvalidScheme, "invalid scheme %q", rest[:i])
		}
		c.scheme, c.hasScheme = rest[:i], true
		rest = rest[i+1:]
	}

	// An authority exists only behind a literal "//" and runs to the next
	// '/', '?' or '#'.
	hasAuthority := false
	var authority string
	if strings.HasPrefix(rest, "//") {
		hasAuthority = true
		rest = rest[2:]
		end := len(rest)
		if i := strings.IndexAny(rest, "/?#"); i >= 0 {
			end = i
		}
		authority, rest = rest[:end], rest[end:]
	}

	end := len(rest)
	if i := strings.IndexAny(rest, "?#"); i >= 0 {
		end = i
	}
	c.path, rest = rest[:end], rest[end:]

	if strings.HasPrefix(rest, "?") {
		rest = rest[1:]
		end = len(rest)
		if i := strings.IndexByte(rest, '#'); i >= 0 {
			end = i
		}
		c.query, c.hasQuery = rest[:end], true
		rest = rest[end:]
	}
	if strings.HasPrefix(rest, "#") {
		c.fragment, c.hasFragment = rest[1:], true
	}

	if hasAuthority {
		if err := p.parseAuthority(&c, authority); err != nil {
			return Components{}, err
		}
	}
	return c, nil
}
