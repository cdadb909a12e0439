package insight

// Recommend produces actionable improvement suggestions from the file tree,
// the detected technologies and the remote-reported metadata.
func Recommend(tree Tree, technologies []string, meta Metadata) []string {
	detected := map[string]bool{}
	for _, tech := range technologies {
		detected[tech] = true
	}

	var recs []string
	if !HasDir(tree, "test") && !HasDir(tree, "__tests__") {
		recs = append(recs, "Add unit tests to improve code reliability")
	}
	if !ContainsName(tree, "README") {
		recs = append(recs, "Add a comprehensive README.md file")
	}
	if !HasDir(tree, ".github") {
		recs = append(recs, "Set up GitHub Actions for CI/CD")
	}
	if !ContainsName(tree, ".env") && (detected["Node.js"] || detected["Python"]) {
		recs = append(recs, "Add environment configuration files")
	}
	if !ContainsName(tree, "Dockerfile") && len(technologies) > 2 {
		recs = append(recs, "Consider containerizing the application with Docker")
	}
	if detected["JavaScript"] && !detected["TypeScript"] {
		recs = append(recs, "Consider migrating to TypeScript for better type safety")
	}
	if detected["JavaScript"] || detected["TypeScript"] {
		if !ContainsName(tree, "eslint") {
			recs = append(recs, "Add ESLint for code quality enforcement")
		}
		if !ContainsName(tree, "prettier") {
			recs = append(recs, "Add Prettier for consistent code formatting")
		}
	}
	if ContainsName(tree, "package.json") {
		recs = append(recs, "Regular dependency updates and security audits")
	}
	if detected["React"] {
		recs = append(recs, "Implement code splitting and lazy loading")
	}
	if meta.Stars > 100 {
		recs = append(recs, "Consider adding contributor guidelines")
	}
	return recs
}
