package list

import (
	"testing"

	"github.com/mbrt/deb822repro/deb822/ast"
	"github.com/mbrt/deb822repro/deb822/tokenize"
)

func parseField(t *testing.T, text, field string) *ast.KeyValuePairElement {
	t.Helper()
	items := tokenize.Tokenize(tokenize.Lines(text))
	file := ast.Build(items)
	if errEl := file.FindFirstErrorElement(); errEl != nil {
		t.Fatalf("unexpected error element: %q", errEl.Text())
	}
	paras := file.Paragraphs()
	if len(paras) != 1 {
		t.Fatalf("expected 1 paragraph, got %d", len(paras))
	}
	kv, err := paras[0].Get(ast.Key(field))
	if err != nil {
		t.Fatalf("Get(%q): %v", field, err)
	}
	return kv
}

func TestParsedTokenListValuesWhitespace(t *testing.T) {
	kv := parseField(t, "Architecture: amd64 arm64 armhf\n", "Architecture")
	tl := New(kv, WhitespaceSeparated)

	got := tl.Values()
	want := []string{"amd64", "arm64", "armhf"}
	if len(got) != len(want) {
		t.Fatalf("Values() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Values()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestParsedTokenListValuesComma(t *testing.T) {
	kv := parseField(t, "Depends: foo, bar, baz\n", "Depends")
	tl := New(kv, CommaSeparated)

	got := tl.Values()
	want := []string{"foo", "bar", "baz"}
	if len(got) != len(want) {
		t.Fatalf("Values() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Values()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestParsedTokenListAppendAndCommit(t *testing.T) {
	kv := parseField(t, "Architecture: amd64\n", "Architecture")
	tl := New(kv, WhitespaceSeparated)

	if err := tl.Append("arm64"); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := tl.Commit(); err != nil {
		t.Fatalf("Commit: %v", err)
	}

	if got, want := kv.Value().Text(), " amd64 arm64\n"; got != want {
		t.Errorf("value after commit: got %q, want %q", got, want)
	}
}

func TestParsedTokenListReplace(t *testing.T) {
	kv := parseField(t, "Architecture: amd64 arm64\n", "Architecture")
	tl := New(kv, WhitespaceSeparated)

	if err := tl.Replace("amd64", "i386"); err != nil {
		t.Fatalf("Replace: %v", err)
	}
	if err := tl.Commit(); err != nil {
		t.Fatalf("Commit: %v", err)
	}

	if got, want := kv.Value().Text(), " i386 arm64\n"; got != want {
		t.Errorf("value after commit: got %q, want %q", got, want)
	}
}

func TestParsedTokenListReplaceMissingValue(t *testing.T) {
	kv := parseField(t, "Architecture: amd64\n", "Architecture")
	tl := New(kv, WhitespaceSeparated)

	if err := tl.Replace("missing", "i386"); err == nil {
		t.Error("expected an error replacing a value not in the list")
	}
}

func TestParsedTokenListRemove(t *testing.T) {
	kv := parseField(t, "Architecture: amd64 arm64 armhf\n", "Architecture")
	tl := New(kv, WhitespaceSeparated)

	if err := tl.Remove("arm64"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if err := tl.Commit(); err != nil {
		t.Fatalf("Commit: %v", err)
	}

	got := New(kv, WhitespaceSeparated).Values()
	want := []string{"amd64", "armhf"}
	if len(got) != len(want) {
		t.Fatalf("Values() after remove+commit = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Values()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestParsedTokenListSort(t *testing.T) {
	kv := parseField(t, "Architecture: armhf amd64 arm64\n", "Architecture")
	tl := New(kv, WhitespaceSeparated)

	tl.Sort(nil)
	if err := tl.Commit(); err != nil {
		t.Fatalf("Commit: %v", err)
	}

	got := New(kv, WhitespaceSeparated).Values()
	want := []string{"amd64", "arm64", "armhf"}
	if len(got) != len(want) {
		t.Fatalf("Values() after sort = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Values()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestParsedTokenListReformatOnCommit(t *testing.T) {
	kv := parseField(t, "Depends: foo, bar, baz\n", "Depends")
	tl := New(kv, CommaSeparated)
	tl.ReformatWhenFinished()

	if err := tl.Append("qux"); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := tl.Commit(); err != nil {
		t.Fatalf("Commit: %v", err)
	}

	text := kv.Value().Text()
	if text == " foo, bar, baz, qux\n" {
		t.Errorf("expected reformatted (one value per line) output, got unreformatted %q", text)
	}
}

func TestParsedTokenListCommitNoopWhenUnchanged(t *testing.T) {
	kv := parseField(t, "Architecture: amd64\n", "Architecture")
	before := kv.Value().Text()

	tl := New(kv, WhitespaceSeparated)
	if err := tl.Commit(); err != nil {
		t.Fatalf("Commit: %v", err)
	}

	if got := kv.Value().Text(); got != before {
		t.Errorf("Commit on unchanged list mutated value: got %q, want %q", got, before)
	}
}
