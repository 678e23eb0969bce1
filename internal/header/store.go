// Package header implements the case-insensitive, case-preserving header
// table shared by every message.
//
// A Store is never modified after construction. Every With* method copies the
// receiver, applies one change and returns the copy, so a *Store may be shared
// freely between messages and goroutines.
package header

import (
	"net/http"
	"sort"
	"strings"

	"golang.org/x/text/cases"
)

// Separator joins multiple values in Get, and splits single string values in
// WithAdded and WithReplaced.
//
// Splitting is ambiguous for values that legitimately contain ", " (a quoted
// date, for example). Callers who need such a value kept intact must pass it
// through WithAddedLines or WithReplacedLines.
const Separator = ", "

// fold maps name to its case-folded form. A Caser keeps state, so one is
// created per call rather than shared.
func fold(name string) string {
	return cases.Fold().String(name)
}

type Store struct {
	names  []string            // canonical names, in declaration order
	values map[string][]string // canonical name -> values, never empty
	index  map[string]string   // folded name -> canonical name
}

// New builds a store from h. Keys are added in sorted order since maps carry
// none; keys that fold to the same name are merged under the first one.
func New(h http.Header) *Store {
	keys := make([]string, 0, len(h))
	for k := range h {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	s := &Store{}
	for _, k := range keys {
		s = s.WithAddedLines(k, h[k])
	}
	return s
}

// Split turns a pre-joined header line into its values.
func Split(value string) []string {
	return strings.Split(value, Separator)
}

func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.names)
}

// canonical resolves name to the stored casing, if any.
func (s *Store) canonical(name string) (string, bool) {
	if s == nil || s.index == nil {
		return name, false
	}
	c, ok := s.index[fold(name)]
	if !ok {
		return name, false
	}
	return c, true
}

// Names returns header names in the casing they were first declared with.
func (s *Store) Names() []string {
	if s.Len() == 0 {
		return nil
	}
	return append([]string(nil), s.names...)
}

// All returns a copy of every header. Keys are not canonicalized.
func (s *Store) All() http.Header {
	h := make(http.Header, s.Len())
	if s == nil {
		return h
	}
	for _, n := range s.names {
		h[n] = append([]string(nil), s.values[n]...)
	}
	return h
}

func (s *Store) Has(name string) bool {
	_, ok := s.canonical(name)
	return ok
}

// Lines returns the values of name, or nil when the header is absent.
func (s *Store) Lines(name string) []string {
	c, ok := s.canonical(name)
	if !ok {
		return nil
	}
	return append([]string(nil), s.values[c]...)
}

// Get returns every value of name joined with Separator.
func (s *Store) Get(name string) string {
	return strings.Join(s.Lines(name), Separator)
}

func (s *Store) WithAdded(name, value string) *Store {
	return s.WithAddedLines(name, Split(value))
}

// WithAddedLines appends lines to name, creating the header when absent.
func (s *Store) WithAddedLines(name string, lines []string) *Store {
	if len(lines) == 0 {
		return s
	}
	c, ok := s.canonical(name)
	n := s.clone()
	if !ok {
		n.names = append(n.names, c)
		n.index[fold(c)] = c
	}
	vv := make([]string, 0, len(n.values[c])+len(lines))
	vv = append(vv, n.values[c]...)
	n.values[c] = append(vv, lines...)
	return n
}

func (s *Store) WithReplaced(name, value string) *Store {
	return s.WithReplacedLines(name, Split(value))
}

// WithReplacedLines drops every prior value of name and stores lines. An
// existing header keeps its casing and position; no lines removes it.
func (s *Store) WithReplacedLines(name string, lines []string) *Store {
	if len(lines) == 0 {
		return s.WithRemoved(name)
	}
	c, ok := s.canonical(name)
	n := s.clone()
	if !ok {
		n.names = append(n.names, c)
		n.index[fold(c)] = c
	}
	n.values[c] = append([]string(nil), lines...)
	return n
}

// WithRemoved returns a store without name, or s itself when name is absent.
func (s *Store) WithRemoved(name string) *Store {
	c, ok := s.canonical(name)
	if !ok {
		return s
	}
	n := s.clone()
	delete(n.values, c)
	delete(n.index, fold(c))
	for i, v := range n.names {
		if v == c {
			n.names = append(n.names[:i], n.names[i+1:]...)
			break
		}
	}
	return n
}

// clone copies the containers; value slices are shared since they are
// replaced, never written in place.
func (s *Store) clone() *Store {
	n := &Store{
		values: make(map[string][]string, s.Len()+1),
		index:  make(map[string]string, s.Len()+1),
	}
	if s == nil {
		return n
	}
	n.names = append(make([]string, 0, len(s.names)+1), s.names...)
	for k, v := range s.values {
		n.values[k] = v
	}
	for k, v := range s.index {
		n.index[k] = v
	}
	return n
}
