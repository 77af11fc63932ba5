package category

import "sort"

// DefaultCategory is returned for any raw label the mapping does not know.
const DefaultCategory = "Other"

// Mapping translates raw model labels into the canonical category set
// exposed to clients. Lookups are case-sensitive exact matches.
// A Mapping is built once at startup and never mutated afterwards.
type Mapping struct {
	table      map[string]string
	defaultCat string
}

// defaultTable pairs the candidate labels offered to the zero-shot model
// with the canonical civic categories. The verbose phrasings on the left
// give the model more to work with than single words would.
var defaultTable = map[string]string{
	"water supply or leakage issue":     "Water",
	"electricity or power outage":       "Power",
	"road damage or potholes":           "Road",
	"garbage or sanitation problem":     "Sanitation",
	"public health or medical hazard":   "Health",
	"streetlight or public lighting":    "Power",
	"sewage or drainage blockage":       "Sanitation",
	"irrelevant or spam content":        "Spam",
	"Water":                             "Water",
	"Power":                             "Power",
	"Road":                              "Road",
	"Sanitation":                        "Sanitation",
	"Health":                            "Health",
	"Spam":                              "Spam",
}

// NewDefaultMapping returns the standard grievance category mapping.
func NewDefaultMapping() *Mapping {
	return NewMapping(defaultTable, DefaultCategory)
}

// NewMapping builds a mapping from the given table. The table is copied so
// callers cannot mutate the mapping after construction.
func NewMapping(table map[string]string, defaultCat string) *Mapping {
	m := &Mapping{
		table:      make(map[string]string, len(table)),
		defaultCat: defaultCat,
	}
	for k, v := range table {
		m.table[k] = v
	}
	return m
}

// Normalize maps a raw model label to its canonical category.
// Unknown labels map to the default category.
func (m *Mapping) Normalize(rawLabel string) string {
	if canonical, ok := m.table[rawLabel]; ok {
		return canonical
	}
	return m.defaultCat
}

// CandidateLabels returns the full set of raw labels to offer the
// classifier, sorted for deterministic ordering.
func (m *Mapping) CandidateLabels() []string {
	labels := make([]string, 0, len(m.table))
	for k := range m.table {
		labels = append(labels, k)
	}
	sort.Strings(labels)
	return labels
}

// Canonical returns the deduplicated, sorted set of canonical categories.
func (m *Mapping) Canonical() []string {
	seen := make(map[string]struct{}, len(m.table))
	for _, v := range m.table {
		seen[v] = struct{}{}
	}
	cats := make([]string, 0, len(seen))
	for c := range seen {
		cats = append(cats, c)
	}
	sort.Strings(cats)
	return cats
}
