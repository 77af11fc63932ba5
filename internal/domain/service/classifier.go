package service

import "context"

// LabelScore is a single (label, score) pair produced by a zero-shot model.
type LabelScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Classifier ranks a set of candidate labels against an input.
// Implementations return pairs ordered by score, highest first;
// callers typically consume only the top entry.
type Classifier interface {
	// Classify ranks the candidate labels against the given input.
	// For text classifiers the input is the grievance text; for image
	// classifiers it is a resource locator for the image.
	Classify(ctx context.Context, input string, candidateLabels []string) ([]LabelScore, error)
}
