package insight

import (
	"path"
	"sort"
	"strings"
)

// extensionLabels maps file extensions to the technologies they indicate.
var extensionLabels = map[string][]string{
	".tsx":   {"React", "JavaScript"},
	".jsx":   {"React", "JavaScript"},
	".ts":    {"TypeScript"},
	".vue":   {"Vue.js"},
	".py":    {"Python"},
	".java":  {"Java"},
	".go":    {"Go"},
	".rs":    {"Rust"},
	".php":   {"PHP"},
	".rb":    {"Ruby"},
	".swift": {"Swift"},
	".kt":    {"Kotlin"},
	".dart":  {"Dart"},
}

// markerLabels maps well-known file names to the technologies they indicate.
var markerLabels = map[string][]string{
	"package.json":       {"Node.js", "npm"},
	"Cargo.toml":         {"Rust"},
	"requirements.txt":   {"Python"},
	"pyproject.toml":     {"Python"},
	"pom.xml":            {"Java"},
	"build.gradle":       {"Java"},
	"Gemfile":            {"Ruby"},
	"composer.json":      {"PHP"},
	"pubspec.yaml":       {"Dart", "Flutter"},
	"webpack.config.js":  {"Webpack"},
	"tailwind.config.js": {"Tailwind CSS"},
	"next.config.js":     {"Next.js"},
	"nuxt.config.js":     {"Nuxt.js"},
	"angular.json":       {"Angular"},
	"vue.config.js":      {"Vue.js"},
	"svelte.config.js":   {"Svelte"},
	"Dockerfile":         {"Docker"},
	"docker-compose.yml": {"Docker Compose"},
}

// DetectTechnologies scans the tree for extension and marker-file signals and
// folds in the remote-reported primary language. The result is sorted and
// deduplicated.
func DetectTechnologies(tree Tree, meta Metadata) []string {
	seen := map[string]bool{}
	add := func(labels ...string) {
		for _, label := range labels {
			seen[label] = true
		}
	}

	Walk(tree, func(name string, node Node) bool {
		if node.IsDir() {
			if strings.TrimSuffix(name, "/") == ".github" {
				add("GitHub Actions")
			}
			return false
		}
		if labels, ok := extensionLabels[path.Ext(name)]; ok {
			add(labels...)
		}
		if labels, ok := markerLabels[name]; ok {
			add(labels...)
		}
		if strings.HasPrefix(name, "vite.config.") {
			add("Vite")
		}
		return false
	})

	if meta.Language != "" {
		add(meta.Language)
	}

	technologies := make([]string, 0, len(seen))
	for label := range seen {
		technologies = append(technologies, label)
	}
	sort.Strings(technologies)
	return technologies
}
