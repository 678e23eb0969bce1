package header

import (
	"net/http"
	"reflect"
	"testing"
)

func TestEmptyStore(t *testing.T) {
	var s *Store
	if s.Has("a") || s.Get("a") != "" || s.Lines("a") != nil || s.Len() != 0 {
		t.Error("nil store is not empty")
	}
	if all := s.All(); all == nil || len(all) != 0 {
		t.Errorf("All() = %v", all)
	}
}

func TestCaseInsensitiveLookup(t *testing.T) {
	s := (&Store{}).WithReplaced("Content-Type", "text/plain")
	for _, name := range []string{"Content-Type", "content-type", "CONTENT-TYPE", "cOnTeNt-TyPe"} {
		if !s.Has(name) {
			t.Errorf("Has(%q) = false", name)
		}
		if got := s.Get(name); got != "text/plain" {
			t.Errorf("Get(%q) = %q", name, got)
		}
	}
}

func TestWithReplacedIsFullReplace(t *testing.T) {
	s := (&Store{}).WithAdded("X-Foo", "a").WithAdded("x-foo", "b")
	n := s.WithReplaced("X-FOO", "c")
	if got := n.Lines("x-foo"); !reflect.DeepEqual(got, []string{"c"}) {
		t.Errorf("Lines = %v", got)
	}
	if got := n.Names(); !reflect.DeepEqual(got, []string{"X-Foo"}) {
		t.Errorf("Names = %v, want original casing", got)
	}
	if got := s.Lines("x-foo"); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("receiver mutated: %v", got)
	}
}

func TestWithAddedAppends(t *testing.T) {
	s := (&Store{}).WithAdded("Accept", "v1").WithAdded("ACCEPT", "v2")
	if got := s.Lines("accept"); !reflect.DeepEqual(got, []string{"v1", "v2"}) {
		t.Errorf("Lines = %v", got)
	}
	if got := s.Get("Accept"); got != "v1, v2" {
		t.Errorf("Get = %q", got)
	}
}

func TestSplitOnSeparator(t *testing.T) {
	s := (&Store{}).WithReplaced("Vary", "Accept-Encoding, Cookie, User-Agent")
	if got := s.Lines("vary"); !reflect.DeepEqual(got, []string{"Accept-Encoding", "Cookie", "User-Agent"}) {
		t.Errorf("Lines = %v", got)
	}
	if got := s.Get("Vary"); got != "Accept-Encoding, Cookie, User-Agent" {
		t.Errorf("Get = %q", got)
	}

	// a date survives only when passed as a single line
	date := "Fri, 24 Mar 1989 00:00:00 GMT"
	if got := s.WithReplaced("Date", date).Lines("Date"); len(got) != 2 {
		t.Errorf("Lines = %v, want the known split", got)
	}
	if got := s.WithReplacedLines("Date", []string{date}).Lines("Date"); !reflect.DeepEqual(got, []string{date}) {
		t.Errorf("Lines = %v", got)
	}
}

func TestWithRemoved(t *testing.T) {
	s := (&Store{}).WithAdded("A", "1").WithAdded("B", "2").WithAdded("C", "3")
	n := s.WithRemoved("b")
	if n.Has("B") || !s.Has("B") {
		t.Error("removal not copy-on-write")
	}
	if got := n.Names(); !reflect.DeepEqual(got, []string{"A", "C"}) {
		t.Errorf("Names = %v", got)
	}
	if n.WithRemoved("missing") != n {
		t.Error("removing an absent header returned a copy")
	}
	// re-adding after removal takes the new casing
	if got := n.WithAdded("b", "x").Names(); !reflect.DeepEqual(got, []string{"A", "C", "b"}) {
		t.Errorf("Names = %v", got)
	}
}

func TestNeverEmpty(t *testing.T) {
	s := (&Store{}).WithAdded("A", "1")
	if s.WithAddedLines("A", nil) != s {
		t.Error("adding nothing returned a copy")
	}
	if s.WithReplacedLines("a", nil).Has("A") {
		t.Error("replacing with nothing kept the header")
	}
}

func TestNew(t *testing.T) {
	s := New(http.Header{
		"Transfer-Encoding": {"chunked"},
		"x-lower":           {"a", "b"},
		"X-LOWER":           {"c"},
	})
	if got := s.Names(); !reflect.DeepEqual(got, []string{"Transfer-Encoding", "X-LOWER"}) {
		t.Errorf("Names = %v", got)
	}
	if got := s.Lines("x-lower"); !reflect.DeepEqual(got, []string{"c", "a", "b"}) {
		t.Errorf("Lines = %v", got)
	}
	all := s.All()
	if _, ok := all["Transfer-Encoding"]; !ok {
		t.Errorf("All() lost casing: %v", all)
	}
	all["Transfer-Encoding"][0] = "gzip"
	if s.Get("transfer-encoding") != "chunked" {
		t.Error("All() exposed internal storage")
	}
}

func TestFoldsNonASCII(t *testing.T) {
	s := (&Store{}).WithAdded("X-Über", "1")
	if !s.Has("x-üBER") {
		t.Error("non-ASCII names not folded")
	}
}
