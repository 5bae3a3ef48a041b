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
	"net"
	"strconv"
	"strings"
)

// parseAuthority decomposes an authority string into userinfo, host and port
// and merges the validated pieces into c. The empty authority of a bare "//"
// is a present, empty host with no userinfo or port.
func (p *Parser) parseAuthority(c *Components, authority string) error {
	c.host, c.hasHost = "", true
	if authority == "" {
		return nil
	}

	hostport := authority
	// Userinfo ends at the first '@'. Any further '@' belongs to the
	// host candidate, where validation rejects it.
	if at := strings.IndexByte(authority, '@'); at >= 0 {
		userinfo := authority[:at]
		hostport = authority[at+1:]
		if colon := strings.IndexByte(userinfo, ':'); colon >= 0 {
			c.user, c.hasUser = userinfo[:colon], true
			c.pass, c.hasPass = userinfo[colon+1:], true
		} else {
			c.user, c.hasUser = userinfo, true
		}
	}

	host, port, err := splitHostname(hostport)
	if err != nil {
		return err
	}
	if err := p.validateHost(host); err != nil {
		return err
	}
	c.host = host

	n, ok, err := parsePort(port)
	if err != nil {
		return err
	}
	if ok {
		c.port, c.hasPort = n, true
	}
	return nil
}

// splitHostname splits a host[:port] fragment into a host candidate and a
// port candidate. Without a '[' the split happens at the first ':'. A '['
// switches to IP-literal rules: the span through the matching ']' is the
// host, and only a ':' or the end of the fragment may follow it.
func splitHostname(s string) (host, port string, err error) {
	if !strings.Contains(s, "[") {
		if i := strings.IndexByte(s, ':'); i >= 0 {
			return s[:i], s[i+1:], nil
		}
		return s, "", nil
	}

	end := strings.IndexByte(s, ']')
	if end < 0 {
		return "", "", newError(KindInvalidHostname, "unterminated IP literal %q", s)
	}
	host = s[:end+1]
	rest := s[end+1:]
	switch {
	case rest == "":
		return host, "", nil
	case rest[0] == ':':
		return host, rest[1:], nil
	default:
		return "", "", newError(KindInvalidHostname, "unexpected %q after IP literal", rest)
	}
}

// validateHost classifies and checks a host candidate, aborting the parse on
// an unacceptable one. A missing IDN capability surfaces with its own kind
// so callers can tell a configuration fault from bad input.
func (p *Parser) validateHost(host string) error {
	ok, err := p.isValidHost(host)
	if err != nil {
		return err
	}
	if !ok {
		return newError(KindInvalidHost, "invalid host %q", host)
	}
	return nil
}

// isValidHost decides acceptance of a host candidate: empty host, bracketed
// IP literal, registered name, or internationalized name via the IDN
// capability.
func (p *Parser) isValidHost(h string) (bool, error) {
	if h == "" {
		return true, nil
	}
	if len(h) >= 2 && h[0] == '[' && h[len(h)-1] == ']' {
		return isValidIPLiteral(h[1:len(h)-1]), nil
	}
	if isRegisteredName(h) {
		return true, nil
	}
	if isPrintableASCII(h) {
		// The label grammar already refused it and there is nothing for
		// IDNA to convert.
		return false, nil
	}
	if p.idn == nil {
		return false, newError(KindMissingIDNSupport, "host %q requires IDN conversion but no capability is configured", h)
	}
	if _, err := p.idn(h); err != nil {
		return false, nil
	}
	return true, nil
}

// isValidIPLiteral accepts the interior of a bracketed host: an IPv6
// address, an IPvFuture literal, or a link-local IPv6 address carrying a
// zone id.
func isValidIPLiteral(ip string) bool {
	if isIPv6(ip) {
		return true
	}
	if isIPvFuture(ip) {
		return true
	}

	pct := strings.IndexByte(ip, '%')
	if pct < 0 {
		return false
	}
	addr, zone := ip[:pct], ip[pct+1:]
	// Zone ids travel percent-encoded; once decoded they must not smuggle
	// in generic delimiters or spaces.
	if strings.ContainsAny(percentDecode(zone), ":/?#[]@ ") {
		return false
	}
	if !isIPv6(addr) {
		return false
	}
	return isLinkLocal(addr)
}

// isIPv6 reports whether s is a syntactically valid IPv6 address.
// net.ParseIP also accepts dotted-quad IPv4, so at least one colon is
// required.
func isIPv6(s string) bool {
	return strings.IndexByte(s, ':') >= 0 && net.ParseIP(s) != nil
}

// isLinkLocal reports whether an IPv6 address sits in the fe80::/10
// link-local block, the only scope where a zone id is meaningful.
func isLinkLocal(addr string) bool {
	ip := net.ParseIP(addr).To16()
	first := uint16(ip[0])<<8 | uint16(ip[1])
	return first&0xFE80 == 0xFE80
}

// isIPvFuture matches "v" 1*HEXDIG "." 1*( unreserved / sub-delims / ":" )
// from RFC 3986, Section 3.2.2, case-insensitively. Versions "4" and "6"
// are refused: those address families have their own literal forms.
func isIPvFuture(ip string) bool {
	if ip == "" || (ip[0] != 'v' && ip[0] != 'V') {
		return false
	}
	dot := strings.IndexByte(ip, '.')
	if dot < 0 {
		return false
	}
	version, address := ip[1:dot], ip[dot+1:]
	if version == "" || address == "" {
		return false
	}
	for i := 0; i < len(version); i++ {
		if !isASCIIHexDigit(version[i]) {
			return false
		}
	}
	if version == "4" || version == "6" {
		return false
	}
	for i := 0; i < len(address); i++ {
		b := address[i]
		if !isUnreserved(b) && !isSubDelim(b) && b != '.' && b != ':' {
			return false
		}
	}
	return true
}

// isRegisteredName checks the dot-separated label grammar for non-IP hosts:
// every label is a non-empty run of unreserved characters, sub-delims and
// percent-encoded octets. One trailing dot is permitted.
func isRegisteredName(h string) bool {
	h = strings.TrimSuffix(h, ".")
	for _, label := range strings.Split(h, ".") {
		if !isRegisteredNameLabel(label) {
			return false
		}
	}
	return true
}

// isRegisteredNameLabel validates a single label of a registered name.
func isRegisteredNameLabel(label string) bool {
	if label == "" {
		return false
	}
	for i := 0; i < len(label); i++ {
		switch b := label[i]; {
		case isUnreserved(b) || isSubDelim(b):
		case b == '%':
			if i+2 >= len(label) || !isASCIIHexDigit(label[i+1]) || !isASCIIHexDigit(label[i+2]) {
				return false
			}
			i += 2
		default:
			return false
		}
	}
	return true
}

// isPrintableASCII reports whether h stays within the 0x20-0x7F byte range.
func isPrintableASCII(h string) bool {
	for i := 0; i < len(h); i++ {
		if h[i] < 0x20 || h[i] > 0x7F {
			return false
		}
	}
	return true
}

// percentDecode decodes %XX octets, leaving malformed sequences untouched.
func percentDecode(s string) string {
	if !strings.Contains(s, "%") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) && isASCIIHexDigit(s[i+1]) && isASCIIHexDigit(s[i+2]) {
			b.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
			i += 2
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// parsePort validates a port candidate. An absent or empty candidate means
// no port. Otherwise the whole substring must be a base-10 unsigned
// integer: no sign, no surrounding characters. Leading zeros are accepted
// ("08" parses as 8) and no upper bound is applied.
func parsePort(s string) (uint64, bool, error) {
	if s == "" {
		return 0, false, nil
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, false, newError(KindInvalidPort, "invalid port %q", s)
	}
	return n, true, nil
}
