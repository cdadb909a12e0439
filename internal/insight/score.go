package insight

import "math"

// advancedTechnologies carry an extra complexity weight each.
var advancedTechnologies = map[string]bool{
	"TypeScript": true,
	"Rust":       true,
	"Go":         true,
	"Docker":     true,
	"Kubernetes": true,
}

// ComplexityScore rates the repository on a 1.0 to 10.0 scale from file
// count, technology breadth, reported size, popularity and the presence of
// advanced technologies. The result is rounded to one decimal place.
func ComplexityScore(tree Tree, technologies []string, meta Metadata) float64 {
	score := 1.0
	score += math.Min(3.0, float64(CountFiles(tree))/20.0)
	score += math.Min(2.0, float64(len(technologies))/5.0)

	if meta.SizeKB > 1000 {
		score += 1.0
	}
	if meta.SizeKB > 10000 {
		score += 1.0
	}
	if meta.Stars > 10 {
		score += 0.5
	}
	if meta.Forks > 5 {
		score += 0.5
	}
	for _, tech := range technologies {
		if advancedTechnologies[tech] {
			score += 0.3
		}
	}

	return math.Round(math.Min(10.0, score)*10) / 10
}
