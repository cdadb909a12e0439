package insight

import (
	"reflect"
	"testing"
)

func TestAnalyzePatternsFromDirectoryLayout(t *testing.T) {
	tree := Tree{
		"components/": Dir(Tree{"Button.tsx": File(1)}),
		"hooks/":      Dir(Tree{"useAuth.ts": File(1)}),
		"tests/":      Dir(Tree{}),
		"README.md":   File(5),
	}

	got := AnalyzePatterns(tree, nil)
	want := []string{
		"Component-based architecture",
		"Custom hooks pattern",
		"Test-driven development",
		"Documentation practices",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestAnalyzePatternsAlternateDirNames(t *testing.T) {
	tree := Tree{
		"views/":   Dir(Tree{}),
		"api/":     Dir(Tree{}),
		"helpers/": Dir(Tree{}),
	}

	got := AnalyzePatterns(tree, nil)
	want := []string{
		"Page-based routing",
		"Service layer architecture",
		"Utility functions organization",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestAnalyzePatternsFromTechnologies(t *testing.T) {
	got := AnalyzePatterns(Tree{}, []string{"TypeScript", "React", "Tailwind CSS"})
	want := []string{
		"Type-safe development",
		"React functional components",
		"Utility-first CSS",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestAnalyzePatternsDockerAndEnvSignals(t *testing.T) {
	tree := Tree{
		"docker-compose.yml": File(1),
		".env.example":       File(1),
	}
	got := AnalyzePatterns(tree, nil)
	want := []string{
		"Containerization patterns",
		"Environment configuration",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}
