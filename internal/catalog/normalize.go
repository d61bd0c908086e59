package catalog

import (
	"context"
	"fmt"
	"strconv"

	"github.com/comicgate/comicgate/internal/logger"
	"github.com/comicgate/comicgate/models"
)

// thumbnailExtension is appended to every upstream thumbnail path.
const thumbnailExtension = ".jpg"

// Normalize maps one raw catalog entity onto the uniform result record.
//
// The entity kind is decided by a single tagged-union check
// ([models.RawEntity.Kind]) instead of guessing from arbitrary fields:
//   - characters map their name to Label and their appearance count to Meta;
//   - comics map their title to Label and their first date string to Meta;
//   - anything else is rejected with [ErrMalformedEntity].
//
// A comic whose dates list is present but empty is malformed as well; it
// must never turn into an out-of-range index.
func Normalize(entity models.RawEntity) (models.NormalizedResult, error) {
	result := models.NormalizedResult{
		ID:       entity.ID,
		ImageURL: entity.Thumbnail.Path + thumbnailExtension,
	}

	switch entity.Kind() {
	case models.KindCharacter:
		result.Label = entity.Name
		result.Meta = strconv.Itoa(entity.Comics.Available)
		return result, nil

	case models.KindComic:
		if len(entity.Dates) == 0 {
			return models.NormalizedResult{}, fmt.Errorf("%w: entity %d has an empty dates list", ErrMalformedEntity, entity.ID)
		}
		result.Label = entity.Title
		result.Meta = entity.Dates[0].Date
		return result, nil

	default:
		return models.NormalizedResult{}, fmt.Errorf("%w: entity %d has neither comics nor dates", ErrMalformedEntity, entity.ID)
	}
}

// NormalizeAll normalizes a batch of raw entities, preserving input order
// and performing no deduplication.
//
// Malformed entities are skipped explicitly: each skip is logged with its
// position so the truncation is visible, and well-formed entities in the
// same batch are unaffected. A non-empty batch where every entity is
// malformed returns [ErrMalformedEntity] instead of masquerading as an
// empty search result.
func NormalizeAll(ctx context.Context, entities []models.RawEntity) ([]models.NormalizedResult, error) {
	log := logger.FromContext(ctx)

	results := make([]models.NormalizedResult, 0, len(entities))
	skipped := 0
	for i, entity := range entities {
		result, err := Normalize(entity)
		if err != nil {
			log.Err(err).Int("index", i).Int64("id", entity.ID).Msg("skipping malformed catalog entity")
			skipped++
			continue
		}
		results = append(results, result)
	}

	if skipped > 0 && len(results) == 0 {
		return nil, fmt.Errorf("%w: all %d entities in batch rejected", ErrMalformedEntity, skipped)
	}

	return results, nil
}
