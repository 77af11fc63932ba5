package client

import (
	"context"
	"sort"

	"github.com/Pravhesh/GrievAI/internal/domain/service"
)

// TextClassifier adapts HFClient to the Classifier interface for
// grievance text.
type TextClassifier struct {
	client *HFClient
	model  string
}

// NewTextClassifier creates a zero-shot text classifier using the given model.
func NewTextClassifier(client *HFClient, model string) service.Classifier {
	return &TextClassifier{client: client, model: model}
}

// Classify ranks the candidate labels against the text, highest score first.
func (c *TextClassifier) Classify(ctx context.Context, input string, candidateLabels []string) ([]service.LabelScore, error) {
	resp, err := c.client.ZeroShotText(ctx, c.model, input, candidateLabels)
	if err != nil {
		return nil, err
	}

	pairs := make([]service.LabelScore, len(resp.Labels))
	for i, label := range resp.Labels {
		pairs[i] = service.LabelScore{Label: label, Score: resp.Scores[i]}
	}
	sortByScore(pairs)
	return pairs, nil
}

// ImageClassifier adapts HFClient to the Classifier interface for image
// locators.
type ImageClassifier struct {
	client *HFClient
	model  string
}

// NewImageClassifier creates a zero-shot image classifier using the given model.
func NewImageClassifier(client *HFClient, model string) service.Classifier {
	return &ImageClassifier{client: client, model: model}
}

// Classify ranks the candidate labels against the image, highest score first.
func (c *ImageClassifier) Classify(ctx context.Context, input string, candidateLabels []string) ([]service.LabelScore, error) {
	results, err := c.client.ZeroShotImage(ctx, c.model, input, candidateLabels)
	if err != nil {
		return nil, err
	}

	pairs := make([]service.LabelScore, len(results))
	for i, r := range results {
		pairs[i] = service.LabelScore{Label: r.Label, Score: r.Score}
	}
	sortByScore(pairs)
	return pairs, nil
}

// sortByScore enforces descending score order; the API already returns
// results sorted, but downstream consumes only the top entry so the
// ordering contract is worth pinning down.
func sortByScore(pairs []service.LabelScore) {
	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].Score > pairs[j].Score
	})
}
