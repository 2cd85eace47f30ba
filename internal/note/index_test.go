package note

import (
	"errors"
	"slices"
	"testing"
)

func TestIndexAddAndGet(t *testing.T) {
	raw, canonical := tempNoteFile(t, "test.txt")
	tags := []string{"one", "two"}

	ix := NewIndex()
	if err := ix.Add("Test Add", raw, tags); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}

	if ix.Len() != 1 {
		t.Fatalf("expected 1 note, got %d", ix.Len())
	}

	n, ok := ix.Get("Test Add")
	if !ok {
		t.Fatalf("expected to find note %q", "Test Add")
	}
	if n.Name != "Test Add" {
		t.Fatalf("expected name %q, got %q", "Test Add", n.Name)
	}
	if n.Path != canonical {
		t.Fatalf("expected path %q, got %q", canonical, n.Path)
	}
	if !slices.Equal(n.Tags, tags) {
		t.Fatalf("expected tags %v, got %v", tags, n.Tags)
	}
}

func TestIndexAddDuplicateName(t *testing.T) {
	first, firstCanonical := tempNoteFile(t, "first.txt")
	second, _ := tempNoteFile(t, "second.txt")

	ix := NewIndex()
	if err := ix.Add("dup", first, nil); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}

	err := ix.Add("dup", second, []string{"other"})
	var alreadyExists *AlreadyExistsError
	if !errors.As(err, &alreadyExists) {
		t.Fatalf("expected AlreadyExistsError, got %T: %v", err, err)
	}
	if alreadyExists.Name != "dup" {
		t.Fatalf("expected error name %q, got %q", "dup", alreadyExists.Name)
	}

	// The original entry must be untouched.
	n, _ := ix.Get("dup")
	if n.Path != firstCanonical {
		t.Fatalf("expected path %q after failed add, got %q", firstCanonical, n.Path)
	}
	if ix.Len() != 1 {
		t.Fatalf("expected 1 note after failed add, got %d", ix.Len())
	}
}

func TestIndexContains(t *testing.T) {
	raw, _ := tempNoteFile(t, "test.txt")

	ix := NewIndex()
	if ix.Contains("Test Contains") {
		t.Fatalf("empty index should not contain %q", "Test Contains")
	}

	if err := ix.Add("Test Contains", raw, nil); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if !ix.Contains("Test Contains") {
		t.Fatalf("expected index to contain %q after add", "Test Contains")
	}

	// Names are case sensitive.
	if ix.Contains("test contains") {
		t.Fatalf("lookup should be case sensitive")
	}
}

func TestIndexRemove(t *testing.T) {
	raw, _ := tempNoteFile(t, "test.txt")

	ix := NewIndex()
	if err := ix.Add("Test Remove", raw, nil); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}

	if !ix.Remove("Test Remove") {
		t.Fatalf("expected Remove to report an existing note")
	}
	if ix.Contains("Test Remove") {
		t.Fatalf("note still present after remove")
	}
	if !ix.Equal(NewIndex()) {
		t.Fatalf("expected empty index after remove")
	}
}

func TestIndexRemoveMissing(t *testing.T) {
	raw, _ := tempNoteFile(t, "test.txt")

	ix := NewIndex()
	if err := ix.Add("kept", raw, nil); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}

	if ix.Remove("missing") {
		t.Fatalf("expected Remove to report a missing note")
	}
	if ix.Len() != 1 || !ix.Contains("kept") {
		t.Fatalf("index changed by removing a missing name")
	}
}

func TestIndexNotesSorted(t *testing.T) {
	ix := NewIndex()
	for _, name := range []string{"cherry", "apple", "banana"} {
		raw, _ := tempNoteFile(t, name+".txt")
		if err := ix.Add(name, raw, nil); err != nil {
			t.Fatalf("Add returned error: %v", err)
		}
	}

	var names []string
	for _, n := range ix.Notes() {
		names = append(names, n.Name)
	}

	want := []string{"apple", "banana", "cherry"}
	if !slices.Equal(names, want) {
		t.Fatalf("expected order %v, got %v", want, names)
	}
}

func TestIndexReturnsTagCopies(t *testing.T) {
	raw, _ := tempNoteFile(t, "test.txt")
	tags := []string{"one", "two"}

	ix := NewIndex()
	if err := ix.Add("tagged", raw, tags); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}

	// Writing through a fetched note must not reach the stored one.
	got, ok := ix.Get("tagged")
	if !ok {
		t.Fatalf("expected to find note %q", "tagged")
	}
	got.Tags[0] = "changed"

	n, _ := ix.Get("tagged")
	if !slices.Equal(n.Tags, tags) {
		t.Fatalf("expected tags %v, got %v", tags, n.Tags)
	}

	// Same for the listing.
	ix.Notes()[0].Tags[1] = "changed"

	n, _ = ix.Get("tagged")
	if !slices.Equal(n.Tags, tags) {
		t.Fatalf("expected tags %v, got %v", tags, n.Tags)
	}
}

func TestIndexZeroValue(t *testing.T) {
	raw, _ := tempNoteFile(t, "test.txt")

	var ix Index
	if err := ix.Add("added", raw, nil); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if err := ix.Insert(Note{Name: "inserted", Path: "/nowhere/gone.txt"}); err != nil {
		t.Fatalf("Insert returned error: %v", err)
	}

	if ix.Len() != 2 {
		t.Fatalf("expected 2 notes, got %d", ix.Len())
	}
	if !ix.Contains("added") || !ix.Contains("inserted") {
		t.Fatalf("expected both notes to be present")
	}
}

func TestIndexInsertSkipsCanonicalization(t *testing.T) {
	ix := NewIndex()

	// A stored note whose file has since vanished must still load.
	stale := Note{Name: "stale", Path: "/nowhere/gone.txt", Tags: []string{"old"}}
	if err := ix.Insert(stale); err != nil {
		t.Fatalf("Insert returned error: %v", err)
	}

	n, ok := ix.Get("stale")
	if !ok {
		t.Fatalf("expected inserted note to be present")
	}
	if n.Path != "/nowhere/gone.txt" {
		t.Fatalf("expected path %q, got %q", "/nowhere/gone.txt", n.Path)
	}

	err := ix.Insert(Note{Name: "stale", Path: "/elsewhere.txt"})
	var alreadyExists *AlreadyExistsError
	if !errors.As(err, &alreadyExists) {
		t.Fatalf("expected AlreadyExistsError, got %T: %v", err, err)
	}
}

func TestIndexEqual(t *testing.T) {
	a, _ := tempNoteFile(t, "a.txt")
	b, _ := tempNoteFile(t, "b.txt")

	first := NewIndex()
	second := NewIndex()

	// Same notes, opposite insertion order.
	if err := first.Add("a", a, []string{"tag"}); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if err := first.Add("b", b, nil); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if err := second.Add("b", b, nil); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if err := second.Add("a", a, []string{"tag"}); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}

	if !first.Equal(second) {
		t.Fatalf("expected indexes with the same notes to be equal")
	}

	second.Remove("b")
	if first.Equal(second) {
		t.Fatalf("expected indexes with different notes to differ")
	}
}
