package deb822

import (
	"testing"

	"github.com/mbrt/deb822repro/deb822/ast"
	"github.com/mbrt/deb822repro/deb822/list"
	"github.com/mbrt/deb822repro/deb822/token"
)

var roundTripFixtures = []string{
	"A: b\n",
	simpleControl,
	"Package: foo\nPackage: bar\n\n",
	"# leading comment\nA: b\n\nC: d\n e\n",
	" bogus continuation\n",
	"Architecture: amd64\n              i386\n# remark\n              arm64\n              armel\n",
}

// Round-trip: dump(parse(I)) == I, for every fixture regardless of validity.
func TestPropertyRoundTrip(t *testing.T) {
	for _, in := range roundTripFixtures {
		file, err := ParseFile(in)
		if err != nil {
			t.Fatalf("ParseFile(%q): %v", in, err)
		}
		if got := file.Text(); got != in {
			t.Errorf("round-trip mismatch: got %q, want %q", got, in)
		}
	}
}

// Round-trip under no-op edit: re-setting a field to its own raw text leaves
// the document unchanged.
func TestPropertyRoundTripNoOpEdit(t *testing.T) {
	file, err := ParseFile(simpleControl)
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	for _, p := range file.Paragraphs() {
		for _, name := range p.FieldNames() {
			kv, err := p.Get(ast.Key(name.String()))
			if err != nil {
				t.Fatalf("Get(%s): %v", name, err)
			}
			raw := kv.Value().Text()
			if err := ast.SetFieldFromRawString(p, ast.Key(name.String()), raw); err != nil {
				t.Fatalf("SetFieldFromRawString(%s): %v", name, err)
			}
		}
	}
	if got := file.Text(); got != simpleControl {
		t.Errorf("no-op edit mutated the document: got %q, want %q", got, simpleControl)
	}
}

// Order preservation: a paragraph's field-name iteration order equals
// insertion order, up to an explicit re-sort.
func TestPropertyOrderPreservation(t *testing.T) {
	file, err := ParseFile(simpleControl)
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	p := file.Paragraphs()[0]
	names := p.FieldNames()
	want := []string{"Source", "Maintainer", "Build-Depends"}
	if len(names) != len(want) {
		t.Fatalf("FieldNames() = %v, want %v", names, want)
	}
	for i, w := range want {
		if names[i].String() != w {
			t.Errorf("FieldNames()[%d] = %q, want %q", i, names[i].String(), w)
		}
	}
}

// Parent integrity: every non-root element's parent actually lists it among
// its own children, exactly once.
func TestPropertyParentIntegrity(t *testing.T) {
	for _, in := range roundTripFixtures {
		file, err := ParseFile(in)
		if err != nil {
			t.Fatalf("ParseFile(%q): %v", in, err)
		}
		walkParentIntegrity(t, file)
	}
}

func walkParentIntegrity(t *testing.T, e ast.Element) {
	t.Helper()
	for _, child := range e.Parts() {
		if child.Parent() != ast.Element(e) {
			t.Errorf("child %T's Parent() is not its owner %T", child, e)
		}
		count := 0
		for _, sibling := range e.Parts() {
			if sibling == child {
				count++
			}
		}
		if count != 1 {
			t.Errorf("child %T appears %d times in parent's Parts(), want 1", child, count)
		}
		if childEl, ok := child.(ast.Element); ok {
			walkParentIntegrity(t, childEl)
		}
	}
}

// Coverage: the concatenation of every token's text in document order
// equals the file's current text.
func TestPropertyCoverage(t *testing.T) {
	for _, in := range roundTripFixtures {
		file, err := ParseFile(in)
		if err != nil {
			t.Fatalf("ParseFile(%q): %v", in, err)
		}
		var got []byte
		for _, tok := range file.Tokens() {
			got = append(got, tok.Text()...)
		}
		if string(got) != in {
			t.Errorf("token coverage mismatch: got %q, want %q", got, in)
		}
	}
}

// Trailing newline invariant: after any mutation, every non-empty
// ValueElement's last line ends on NewlineAfterValue.
func TestPropertyTrailingNewlineAfterMutation(t *testing.T) {
	file, err := ParseFile(simpleControl)
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	p := file.Paragraphs()[0]
	if err := ast.SetFieldToSimpleValue(p, ast.Key("Priority"), "optional"); err != nil {
		t.Fatalf("SetFieldToSimpleValue: %v", err)
	}
	for _, name := range p.FieldNames() {
		kv, err := p.Get(ast.Key(name.String()))
		if err != nil {
			t.Fatalf("Get(%s): %v", name, err)
		}
		lines := kv.Value().Lines()
		last := lines[len(lines)-1]
		if last.Newline() == nil {
			t.Errorf("field %s's last value line has no trailing newline after mutation", name)
		}
	}
}

// List-view round-trip: constructing a ParsedTokenList and committing it
// without any edit leaves the field's tree untouched.
func TestPropertyListViewRoundTrip(t *testing.T) {
	file, err := ParseFile(simpleControl)
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	p := file.Paragraphs()[1]
	kv, err := p.Get(ast.Key("Depends"))
	if err != nil {
		t.Fatalf("Get(Depends): %v", err)
	}
	before := kv.Value().Text()

	tl := list.New(kv, list.CommaSeparated)
	if err := tl.Commit(); err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if got := kv.Value().Text(); got != before {
		t.Errorf("list round-trip mutated the value: got %q, want %q", got, before)
	}
}

// Sort stability: sorting with a comparator that treats every pair as equal
// preserves original insertion order.
func TestPropertySortStability(t *testing.T) {
	file, err := ParseFile("Zulu: 1\nAlpha: 2\nmike: 3\n\n")
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	p := file.Paragraphs()[0]
	before := p.FieldNames()

	p.SortFields(func(a, b token.FieldName) bool { return false })

	after := p.FieldNames()
	if len(after) != len(before) {
		t.Fatalf("FieldNames() after equal-comparator sort = %v, want %v", after, before)
	}
	for i := range before {
		if !after[i].Equal(before[i]) {
			t.Errorf("FieldNames()[%d] = %q, want %q (insertion order should be preserved)", i, after[i].String(), before[i].String())
		}
	}
}
