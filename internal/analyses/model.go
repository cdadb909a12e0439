package analyses

import (
	"time"

	"vibe-backend/internal/insight"
)

// Analysis is the stored result of one repository analysis run.
type Analysis struct {
	ID              string       `json:"id"`
	RepositoryID    string       `json:"repositoryId"`
	FileStructure   insight.Tree `json:"fileStructure"`
	Technologies    []string     `json:"technologiesDetected"`
	Patterns        []string     `json:"patternsFound"`
	Recommendations []string     `json:"recommendations"`
	ComplexityScore float64      `json:"complexityScore"`
	CreatedAt       time.Time    `json:"createdAt"`
}
