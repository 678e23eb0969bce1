package uri

import (
	"strconv"
	"strings"
)

func cut(s, sep string) (before, after string, found bool) {
	if i := strings.Index(s, sep); i >= 0 {
		return s[:i], s[i+len(sep):], true
	}
	return s, "", false
}

// parse splits s as scheme://userinfo@host:port/path?query#fragment. A
// string without "//" after its scheme, or without a scheme, is taken as a
// path, so "hostname/path" has no host.
func parse(s string) (*Uri, bool) {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] == 0x7f {
			return nil, false
		}
	}
	u := &Uri{}
	var rest string
	rest, u.fragment, _ = cut(s, "#")
	rest, u.query, _ = cut(rest, "?")

	if scheme, after, ok := splitScheme(rest); ok {
		u.scheme, rest = strings.ToLower(scheme), after
	}

	if strings.HasPrefix(rest, "//") {
		authority := rest[2:]
		rest = ""
		if i := strings.IndexByte(authority, '/'); i >= 0 {
			authority, rest = authority[:i], authority[i:]
		}
		if !u.parseAuthority(authority) {
			return nil, false
		}
	}
	u.path = rest
	return u, true
}

// splitScheme reports a leading scheme. "host:8080/path" is not a scheme
// since the colon is followed by a digit.
func splitScheme(s string) (scheme, rest string, ok bool) {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z':
		case '0' <= c && c <= '9' || c == '+' || c == '-' || c == '.':
			if i == 0 {
				return "", s, false
			}
		case c == ':':
			if i == 0 {
				return "", s, false
			}
			after := s[i+1:]
			if after != "" && '0' <= after[0] && after[0] <= '9' {
				return "", s, false
			}
			return s[:i], after, true
		default:
			return "", s, false
		}
	}
	return "", s, false
}

func (u *Uri) parseAuthority(authority string) bool {
	hostport := authority
	if i := strings.LastIndexByte(authority, '@'); i >= 0 {
		u.userInfo, hostport = authority[:i], authority[i+1:]
	}
	host, port := hostport, ""
	if strings.HasPrefix(hostport, "[") {
		i := strings.IndexByte(hostport, ']')
		if i < 0 {
			return false
		}
		host, port = hostport[:i+1], hostport[i+1:]
		if port != "" && port[0] != ':' {
			return false
		}
		port = strings.TrimPrefix(port, ":")
	} else if i := strings.LastIndexByte(hostport, ':'); i >= 0 {
		host, port = hostport[:i], hostport[i+1:]
	}
	if host == "" {
		return false
	}
	u.host = host
	if port == "" {
		return true
	}
	for i := 0; i < len(port); i++ {
		if port[i] < '0' || port[i] > '9' {
			return false
		}
	}
	p, err := strconv.Atoi(port)
	if err != nil || p > 65535 {
		return false
	}
	u.port, u.hasPort = p, true
	return true
}
