package xattr_test

import (
	"bytes"
	"os"
	"reflect"
	"sort"
	"testing"

	xattr "github.com/wastore/go-xattr"
)

func TestSetAllGetAll(t *testing.T) {
	path := tempFile(t)
	defer os.Remove(path)
	skipUnlessXattrs(t, path)

	p := xattr.Path(path)

	want := map[string][]byte{
		"user.a": {},
		"user.b": {1, 2, 3},
	}
	if err := xattr.SetAll(p, want, 0); err != nil {
		t.Fatal(err)
	}

	got, err := xattr.GetAll(p, nil, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestSetAllSkipsTrivialNames(t *testing.T) {
	path := tempFile(t)
	defer os.Remove(path)
	skipUnlessXattrs(t, path)

	p := xattr.Path(path)

	attrs := map[string][]byte{
		"":        []byte("ignored"),
		"\x00":    []byte("ignored"),
		"user.ok": []byte("kept"),
	}
	if err := xattr.SetAll(p, attrs, 0); err != nil {
		t.Fatal(err)
	}

	names, err := p.List(0)
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != 1 || names[0] != "user.ok" {
		t.Fatalf("got names %v, want [user.ok]", names)
	}
}

func TestGetAllSkipsVanishedNames(t *testing.T) {
	path := tempFile(t)
	defer os.Remove(path)
	skipUnlessXattrs(t, path)

	p := xattr.Path(path)

	if err := p.Set("user.kept", []byte("k"), 0); err != nil {
		t.Fatal(err)
	}

	// Ask for a name that is already gone, as if it vanished between
	// enumeration and fetch.
	got, err := xattr.GetAll(p, []string{"user.kept", "user.vanished"}, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || !bytes.Equal(got["user.kept"], []byte("k")) {
		t.Fatalf("got %v, want only user.kept", got)
	}
}

func TestRemoveAll(t *testing.T) {
	path := tempFile(t)
	defer os.Remove(path)
	skipUnlessXattrs(t, path)

	p := xattr.Path(path)

	attrs := map[string][]byte{
		"user.a": []byte("1"),
		"user.b": []byte("2"),
		"user.c": []byte("3"),
	}
	if err := xattr.SetAll(p, attrs, 0); err != nil {
		t.Fatal(err)
	}

	if err := xattr.RemoveAll(p, nil, 0); err != nil {
		t.Fatal(err)
	}
	names, err := p.List(0)
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != 0 {
		t.Fatalf("attributes left after RemoveAll: %v", names)
	}

	// A second pass finds nothing to remove and must not fail.
	if err := xattr.RemoveAll(p, nil, 0); err != nil {
		t.Fatal(err)
	}

	// Explicit names that are already gone are skipped too.
	if err := xattr.RemoveAll(p, []string{"user.a", "user.b"}, 0); err != nil {
		t.Fatal(err)
	}
}

func TestGetAllExplicitEmptyList(t *testing.T) {
	path := tempFile(t)
	defer os.Remove(path)
	skipUnlessXattrs(t, path)

	p := xattr.Path(path)
	if err := p.Set("user.present", []byte("p"), 0); err != nil {
		t.Fatal(err)
	}

	// A non-nil empty list means "these names", not "all".
	got, err := xattr.GetAll(p, []string{}, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Fatalf("got %v, want empty map", got)
	}
}

func TestListOrderIsStable(t *testing.T) {
	path := tempFile(t)
	defer os.Remove(path)
	skipUnlessXattrs(t, path)

	p := xattr.Path(path)

	attrs := map[string][]byte{
		"user.one":   []byte("1"),
		"user.two":   []byte("2"),
		"user.three": []byte("3"),
	}
	if err := xattr.SetAll(p, attrs, 0); err != nil {
		t.Fatal(err)
	}

	names, err := p.List(0)
	if err != nil {
		t.Fatal(err)
	}
	sorted := append([]string(nil), names...)
	sort.Strings(sorted)

	want := []string{"user.one", "user.three", "user.two"}
	if !reflect.DeepEqual(sorted, want) {
		t.Fatalf("got %v, want %v", sorted, want)
	}

	// Each name appears exactly once.
	seen := map[string]int{}
	for _, n := range names {
		seen[n]++
	}
	for n, c := range seen {
		if c != 1 {
			t.Errorf("%s listed %d times", n, c)
		}
	}
}
