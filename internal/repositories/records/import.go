package records

import (
	"context"
	"encoding/json"
	"io"
	"log"

	"github.com/KirkDiggler/battler-opacity/internal/entities"
	apperr "github.com/KirkDiggler/battler-opacity/internal/errors"
)

// Import reads a JSON array of records and stores each one.
// It returns the number of records stored.
func Import(ctx context.Context, repo Repository, r io.Reader) (int, error) {
	var data []Data
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return 0, apperr.WrapWithCode(err, apperr.CodeInvalidArgument, "failed to decode records")
	}

	for i := range data {
		record := &entities.Record{
			Kind: data[i].Kind,
			ID:   data[i].ID,
			Name: data[i].Name,
			Note: data[i].Note,
		}
		if err := repo.Put(ctx, record); err != nil {
			return i, apperr.Wrapf(err, "failed to import record %d", i)
		}
	}

	log.Printf("Imported %d records", len(data))
	return len(data), nil
}
