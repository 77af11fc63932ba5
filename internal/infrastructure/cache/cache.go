package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"

	"github.com/Pravhesh/GrievAI/internal/domain/entity"
)

// Store is a content-addressed, time-expiring store of classification
// results. Implementations are safe for concurrent use; expired entries
// are never returned from Get.
type Store interface {
	Get(ctx context.Context, key string) (entity.Classification, bool, error)
	Set(ctx context.Context, key string, value entity.Classification) error
}

// Key derives the cache key for an input. The caller is responsible for
// normalizing the input first (trim + lowercase for text); two requests
// with the same normalized content always map to the same key.
func Key(input string) string {
	sum := sha256.Sum256([]byte(input))
	return hex.EncodeToString(sum[:])
}
