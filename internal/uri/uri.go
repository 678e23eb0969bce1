// Package uri models a URI as immutable components.
//
// Only schemes with a known standard port are reported by Scheme; any other
// scheme is kept internally but reads back as "". A port equal to the
// standard port of the reported scheme is likewise hidden.
package uri

import (
	"strconv"
	"strings"

	"github.com/frankli0324/go-httpmsg/internal/errors"
)

// MaxPort is the largest port accepted by WithPort.
const MaxPort = 61000

var standardPorts = map[string]int{
	"http":  80,
	"https": 443,
}

// StandardPort returns the default port of scheme.
func StandardPort(scheme string) (int, bool) {
	p, ok := standardPorts[scheme]
	return p, ok
}

type Uri struct {
	scheme   string
	userInfo string
	host     string
	port     int
	hasPort  bool
	path     string
	query    string
	fragment string
}

// New returns an empty Uri.
func New() *Uri {
	return &Uri{}
}

// Parse splits s into its components. Missing components are empty and the
// port is unset.
func Parse(s string) (*Uri, error) {
	u, ok := parse(s)
	if !ok {
		return nil, errors.InvalidArgument("supplied uri (%s) is invalid", s)
	}
	return u, nil
}

func (u *Uri) clone() *Uri {
	n := *u
	return &n
}

func (u *Uri) Scheme() string {
	if _, ok := standardPorts[u.scheme]; !ok {
		return ""
	}
	return u.scheme
}

func (u *Uri) UserInfo() string { return u.userInfo }
func (u *Uri) Host() string     { return u.host }
func (u *Uri) Path() string     { return u.path }
func (u *Uri) Query() string    { return u.query }
func (u *Uri) Fragment() string { return u.fragment }

// Port returns the explicit port. ok is false when no port is set or when it
// equals the standard port of the scheme.
func (u *Uri) Port() (port int, ok bool) {
	if !u.hasPort {
		return 0, false
	}
	if std, known := standardPorts[u.Scheme()]; known && std == u.port {
		return 0, false
	}
	return u.port, true
}

// Authority returns [userinfo@]host[:port], or "" without a host.
func (u *Uri) Authority() string {
	if u.host == "" {
		return ""
	}
	var b strings.Builder
	if u.userInfo != "" {
		b.WriteString(u.userInfo)
		b.WriteByte('@')
	}
	b.WriteString(u.host)
	if p, ok := u.Port(); ok {
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(p))
	}
	return b.String()
}

// WithScheme sets the scheme after removing "://" and lower-casing it. An
// unknown scheme is ignored and u is returned as is.
func (u *Uri) WithScheme(scheme string) *Uri {
	scheme = strings.ToLower(strings.Replace(scheme, "://", "", -1))
	if _, ok := standardPorts[scheme]; scheme != "" && !ok {
		return u
	}
	n := u.clone()
	n.scheme = scheme
	return n
}

// WithUserInfo sets user and an optional password. An empty user discards
// the password.
func (u *Uri) WithUserInfo(user string, password ...string) *Uri {
	userInfo := user
	if user != "" && len(password) > 0 && password[0] != "" {
		userInfo += ":" + password[0]
	}
	if userInfo == u.userInfo {
		return u
	}
	n := u.clone()
	n.userInfo = userInfo
	return n
}

func (u *Uri) WithHost(host string) *Uri {
	if host == u.host {
		return u
	}
	n := u.clone()
	n.host = host
	return n
}

func (u *Uri) WithPort(port int) (*Uri, error) {
	if port < 0 || port > MaxPort {
		return nil, errors.InvalidArgument("%d is out of range 0-%d", port, MaxPort)
	}
	if p, ok := u.Port(); ok && p == port {
		return u, nil
	}
	n := u.clone()
	n.port, n.hasPort = port, true
	return n, nil
}

// WithoutPort unsets the port. u is returned when Port already reports none.
func (u *Uri) WithoutPort() *Uri {
	if _, ok := u.Port(); !ok {
		return u
	}
	n := u.clone()
	n.port, n.hasPort = 0, false
	return n
}

// WithPath stores path with a leading "/", so an empty path becomes "/".
func (u *Uri) WithPath(path string) *Uri {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	n := u.clone()
	n.path = path
	return n
}

// WithQuery stores query with every "?" removed.
func (u *Uri) WithQuery(query string) *Uri {
	n := u.clone()
	n.query = strings.Replace(query, "?", "", -1)
	return n
}

// WithFragment stores fragment with every "#" removed.
func (u *Uri) WithFragment(fragment string) *Uri {
	n := u.clone()
	n.fragment = strings.Replace(fragment, "#", "", -1)
	return n
}

func (u *Uri) String() string {
	var b strings.Builder
	if s := u.Scheme(); s != "" {
		b.WriteString(s)
		b.WriteString("://")
	}
	if a := u.Authority(); a != "" {
		b.WriteString(a)
	}
	if u.path != "" {
		b.WriteString(u.path)
	}
	if u.query != "" {
		b.WriteByte('?')
		b.WriteString(u.query)
	}
	if u.fragment != "" {
		b.WriteByte('#')
		b.WriteString(u.fragment)
	}
	return b.String()
}
