package entity

// Classification is the canonical result of classifying a single grievance.
// It is the unit stored in the cache and returned to API clients.
type Classification struct {
	Label         string  `json:"label"`
	Score         float64 `json:"score"`
	OriginalLabel string  `json:"original_label"`
}
