package history

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-analyzer/internal/types"
)

func sampleRecord(filename string, n int) types.AnalysisRecord {
	return types.AnalysisRecord{
		ID:            uuid.New(),
		CreatedAt:     time.Date(2026, 3, 14, 9, 26, n, 500000000, time.UTC),
		Filename:      filename,
		MatchScore:    50,
		SemanticScore: 71.25,
		Suggestions:   []string{"looking", "docker", "experience"},
		ResumeText:    fmt.Sprintf("Experienced Python developer with AWS skills #%d", n),
		JobText:       "Looking for Python developer with Docker and AWS experience",
	}
}
