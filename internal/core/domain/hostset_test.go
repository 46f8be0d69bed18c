// internal/core/domain/hostset_test.go
package domain

import (
	"testing"

	"subscanner/internal/testutil"
)

func TestHostSet_Add(t *testing.T) {
	var s HostSet

	testutil.AssertTrue(t, s.Add("Foo.example.com"), "first insert")
	testutil.AssertFalse(t, s.Add("foo.example.com"), "case variant is a duplicate")
	testutil.AssertEqual(t, s.Len(), 1, "one entry")
	testutil.AssertTrue(t, s.Contains("FOO.EXAMPLE.COM"), "lookup ignores case")
	testutil.AssertStrings(t, s.Sorted(), []string{"Foo.example.com"}, "first casing retained")
}

func TestHostSet_UnionWith(t *testing.T) {
	a := NewHostSet("a.example.com")
	b := NewHostSet("a.example.com", "b.example.com")

	added := a.UnionWith(b)
	testutil.AssertEqual(t, added, 1, "only b is new")
	testutil.AssertStrings(t, a.Sorted(), []string{"a.example.com", "b.example.com"}, "union")

	// idempotent
	added = a.UnionWith(b)
	testutil.AssertEqual(t, added, 0, "second union adds nothing")
	testutil.AssertEqual(t, a.Len(), 2, "size unchanged")

	testutil.AssertEqual(t, a.UnionWith(nil), 0, "nil union is a no-op")
}

func TestHostSet_NilSafe(t *testing.T) {
	var s *HostSet

	testutil.AssertEqual(t, s.Len(), 0, "nil length")
	testutil.AssertFalse(t, s.Contains("x.example.com"), "nil contains")
	testutil.AssertLen(t, s.Sorted(), 0, "nil sorted")
}

func TestHostSet_Sorted(t *testing.T) {
	s := NewHostSet("zeta.example.com", "Beta.example.com", "alpha.example.com", "a.example.com")

	want := []string{"a.example.com", "alpha.example.com", "Beta.example.com", "zeta.example.com"}
	testutil.AssertStrings(t, s.Sorted(), want, "case-insensitive ascending order")
}
