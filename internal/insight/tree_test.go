package insight

import (
	"encoding/json"
	"testing"
)

func TestTreeMarshalRendersLeavesAndDirs(t *testing.T) {
	tree := Tree{
		"main.go": File(123),
		"docs/": Dir(Tree{
			"intro.md": File(4),
		}),
		"README.md": Placeholder("Repository content not accessible"),
	}

	raw, err := json.Marshal(tree)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal into map: %v", err)
	}
	if got := decoded["main.go"]; got != "123 bytes" {
		t.Fatalf("expected file leaf %q, got %v", "123 bytes", got)
	}
	if got := decoded["README.md"]; got != "Repository content not accessible" {
		t.Fatalf("expected placeholder leaf, got %v", got)
	}
	nested, ok := decoded["docs/"].(map[string]any)
	if !ok {
		t.Fatalf("expected nested object for docs/, got %T", decoded["docs/"])
	}
	if got := nested["intro.md"]; got != "4 bytes" {
		t.Fatalf("expected nested file leaf, got %v", got)
	}
}

func TestTreeUnmarshalRoundTrip(t *testing.T) {
	raw := []byte(`{"src/":{"app.ts":"10 bytes"},"note.txt":"free text","big.bin":"2048 bytes"}`)

	var tree Tree
	if err := json.Unmarshal(raw, &tree); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	src := tree["src/"]
	if !src.IsDir() {
		t.Fatalf("expected src/ to be a directory")
	}
	if got := src.Children["app.ts"].SizeBytes; got != 10 {
		t.Fatalf("expected app.ts size 10, got %d", got)
	}
	if got := tree["note.txt"].Note; got != "free text" {
		t.Fatalf("expected note leaf, got %q", got)
	}
	if got := tree["big.bin"].SizeBytes; got != 2048 {
		t.Fatalf("expected big.bin size 2048, got %d", got)
	}
}

func TestCountFilesCountsNestedLeaves(t *testing.T) {
	tree := Tree{
		"a.go": File(1),
		"pkg/": Dir(Tree{
			"b.go": File(2),
			"sub/": Dir(Tree{
				"c.go": File(3),
			}),
		}),
	}
	if got := CountFiles(tree); got != 3 {
		t.Fatalf("expected 3 files, got %d", got)
	}
}

func TestContainsNameMatchesSubstrings(t *testing.T) {
	tree := Tree{
		"src/": Dir(Tree{
			"README.md": File(1),
		}),
	}
	if !ContainsName(tree, "README") {
		t.Fatalf("expected README match")
	}
	if ContainsName(tree, "LICENSE") {
		t.Fatalf("did not expect LICENSE match")
	}
}

func TestHasDirMatchesDirectoriesOnly(t *testing.T) {
	tree := Tree{
		"tests/":    Dir(Tree{}),
		"tests.txt": File(1),
	}
	if !HasDir(tree, "tests") {
		t.Fatalf("expected tests directory match")
	}
	if HasDir(tree, "docs") {
		t.Fatalf("did not expect docs directory match")
	}
}
