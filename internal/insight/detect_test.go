package insight

import (
	"reflect"
	"testing"
)

func TestDetectTechnologiesFromExtensionsAndMarkers(t *testing.T) {
	tree := Tree{
		"package.json": File(100),
		"src/": Dir(Tree{
			"App.tsx":   File(200),
			"helper.ts": File(50),
		}),
		"Dockerfile": File(30),
	}

	got := DetectTechnologies(tree, Metadata{Language: "TypeScript"})
	want := []string{"Docker", "JavaScript", "Node.js", "React", "TypeScript", "npm"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestDetectTechnologiesGithubDirAndVitePrefix(t *testing.T) {
	tree := Tree{
		".github/":       Dir(Tree{"workflows/": Dir(Tree{"ci.yml": File(1)})}),
		"vite.config.ts": File(10),
	}

	got := DetectTechnologies(tree, Metadata{})
	want := []string{"GitHub Actions", "TypeScript", "Vite"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestDetectTechnologiesDeduplicatesLanguage(t *testing.T) {
	tree := Tree{"main.go": File(10)}
	got := DetectTechnologies(tree, Metadata{Language: "Go"})
	want := []string{"Go"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestDetectTechnologiesEmptyTreeUsesLanguageOnly(t *testing.T) {
	got := DetectTechnologies(Tree{}, Metadata{Language: "Python"})
	want := []string{"Python"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}
