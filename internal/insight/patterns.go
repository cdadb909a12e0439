package insight

// dirPatterns pairs directory-name signals with the architecture pattern they
// indicate. Order is stable so results are deterministic.
var dirPatterns = []struct {
	dirs    []string
	pattern string
}{
	{[]string{"components"}, "Component-based architecture"},
	{[]string{"pages", "views"}, "Page-based routing"},
	{[]string{"hooks"}, "Custom hooks pattern"},
	{[]string{"services", "api"}, "Service layer architecture"},
	{[]string{"utils", "helpers"}, "Utility functions organization"},
	{[]string{"models", "entities"}, "Data modeling patterns"},
	{[]string{"controllers"}, "MVC architecture"},
	{[]string{"middleware"}, "Middleware pattern"},
	{[]string{"store", "redux"}, "State management patterns"},
	{[]string{"tests", "__tests__"}, "Test-driven development"},
}

// techPatterns pairs detected technologies with the development pattern they imply.
var techPatterns = []struct {
	tech    string
	pattern string
}{
	{"TypeScript", "Type-safe development"},
	{"React", "React functional components"},
	{"Vue.js", "Vue composition patterns"},
	{"Next.js", "Full-stack React framework"},
	{"Tailwind CSS", "Utility-first CSS"},
}

// AnalyzePatterns derives architecture and development patterns from the file
// tree layout and the detected technology set.
func AnalyzePatterns(tree Tree, technologies []string) []string {
	var patterns []string

	for _, rule := range dirPatterns {
		for _, dir := range rule.dirs {
			if HasDir(tree, dir) {
				patterns = append(patterns, rule.pattern)
				break
			}
		}
	}

	if ContainsName(tree, "docker") {
		patterns = append(patterns, "Containerization patterns")
	}
	if ContainsName(tree, ".env") {
		patterns = append(patterns, "Environment configuration")
	}
	if ContainsName(tree, "README") {
		patterns = append(patterns, "Documentation practices")
	}

	detected := map[string]bool{}
	for _, tech := range technologies {
		detected[tech] = true
	}
	for _, rule := range techPatterns {
		if detected[rule.tech] {
			patterns = append(patterns, rule.pattern)
		}
	}

	return patterns
}
