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

//nolint:testpackage // White-box tests for the unexported scanner.
package uriparser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestCheckCharacters covers the control-character rejection that runs
// before any decomposition.
func TestCheckCharacters(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"clean ASCII", "http://example.com/a?b#c", false},
		{"clean non-ASCII", "http://bücher.example/straße", false},
		{"NUL byte", "a\x00b", true},
		{"tab", "a\tb", true},
		{"newline", "a\nb", true},
		{"unit separator", "a\x1fb", true},
		{"delete", "a\x7fb", true},
		{"space is allowed through", "a b", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := checkCharacters(tc.input)
			if tc.wantErr {
				assertKind(t, err, KindInvalidCharacters)
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

// TestFastPathsMatchScanner pins the fast-path table to the general
// algorithm: for every literal the scanner can handle, both must produce
// the same record. The empty string cannot reach the scanner and is pinned
// to the all-absent record directly.
func TestFastPathsMatchScanner(t *testing.T) {
	p := NewParser()

	for input, want := range fastPaths() {
		if input == "" {
			if want != (Components{}) {
				t.Errorf("fast path for empty input = %+v, want zero record", want)
			}
			continue
		}
		got, err := p.scan(input)
		if err != nil {
			t.Errorf("scan(%q) returned unexpected error: %v", input, err)
			continue
		}
		if got != want {
			t.Errorf("fast path for %q diverges from scanner:\n%s", input,
				cmp.Diff(want, got, cmpComponents))
		}
	}
}

// TestSchemeRecognition covers the position-sensitive scheme rule: a ':'
// delimits a scheme only when it precedes any '/', '?' or '#'.
func TestSchemeRecognition(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantScheme string
		wantHas    bool
		wantKind   Kind
	}{
		{name: "plain scheme", input: "http://x", wantScheme: "http", wantHas: true},
		{name: "scheme with digits and marks", input: "a1+-.:x", wantScheme: "a1+-.", wantHas: true},
		{name: "single letter scheme", input: "m:x", wantScheme: "m", wantHas: true},
		{name: "colon after slash", input: "a/b:c"},
		{name: "colon after question mark", input: "a?b:c"},
		{name: "colon after hash", input: "a#b:c"},
		{name: "no colon at all", input: "plain/path"},
		{name: "empty scheme token", input: ":x", wantKind: KindInvalidScheme},
		{name: "digit-led token", input: "1ab:x", wantKind: KindInvalidScheme},
		{name: "token with bang", input: "a!b:x", wantKind: KindInvalidScheme},
		{name: "token with percent", input: "a%62:x", wantKind: KindInvalidScheme},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(tc.input)
			if tc.wantKind != 0 {
				assertKind(t, err, tc.wantKind)
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) returned unexpected error: %v", tc.input, err)
			}
			scheme, has := got.Scheme()
			if has != tc.wantHas || scheme != tc.wantScheme {
				t.Errorf("Scheme() = (%q, %v), want (%q, %v)", scheme, has, tc.wantScheme, tc.wantHas)
			}
		})
	}
}

// TestScanBoundaries checks the component boundary offsets for references
// that mix delimiters in awkward positions.
func TestScanBoundaries(t *testing.T) {
	tests := []struct {
		input string
		want  Components
	}{
		{
			input: "http://h/p1/p2?q1?q2#f1#f2",
			want: Components{
				scheme: "http", hasScheme: true,
				host: "h", hasHost: true,
				path:  "/p1/p2",
				query: "q1?q2", hasQuery: true,
				fragment: "f1#f2", hasFragment: true,
			},
		},
		{
			input: "http:/p",
			want:  Components{scheme: "http", hasScheme: true, path: "/p"},
		},
		{
			input: "http:////p",
			want:  Components{scheme: "http", hasScheme: true, host: "", hasHost: true, path: "//p"},
		},
		{
			input: "///p",
			want:  Components{host: "", hasHost: true, path: "/p"},
		},
		{
			input: "//h#f",
			want:  Components{host: "h", hasHost: true, fragment: "f", hasFragment: true},
		},
		{
			input: "//h?q",
			want:  Components{host: "h", hasHost: true, query: "q", hasQuery: true},
		},
		{
			input: "p#f?not-a-query",
			want:  Components{path: "p", fragment: "f?not-a-query", hasFragment: true},
		},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, err := Parse(tc.input)
			if err != nil {
				t.Fatalf("Parse(%q) returned unexpected error: %v", tc.input, err)
			}
			if diff := cmp.Diff(tc.want, got, cmpComponents); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tc.input, diff)
			}
		})
	}
}
