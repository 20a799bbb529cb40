// ABOUTME: Fail-soft batch decoding for document collections.
// ABOUTME: One malformed document is skipped and logged, never failing siblings.
package codec

import (
	"github.com/charmbracelet/log"
	"github.com/splitfitapp/splitfit/internal/store"
)

// DecodeFunc decodes a single document into an entity.
type DecodeFunc[T any] func(store.Document) (T, error)

// DecodeAll decodes every document in docs, dropping the ones that fail.
// Each skip is reported through the logger at warn level; the batch
// itself always succeeds.
func DecodeAll[T any](logger *log.Logger, docs []store.Document, decode DecodeFunc[T]) []T {
	if logger == nil {
		logger = log.Default()
	}

	var out []T
	for _, d := range docs {
		entity, err := decode(d)
		if err != nil {
			logger.Warn("skipping malformed document", "err", err)
			continue
		}
		out = append(out, entity)
	}
	return out
}
