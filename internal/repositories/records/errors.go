package records

import (
	"github.com/KirkDiggler/battler-opacity/internal/entities"
	apperr "github.com/KirkDiggler/battler-opacity/internal/errors"
)

func validateKey(kind entities.RecordKind, id int) error {
	if !kind.Valid() {
		return apperr.InvalidArgumentf("unknown record kind %q", kind)
	}
	if id <= 0 {
		return apperr.InvalidArgumentf("record ID must be positive (got %d)", id)
	}
	return nil
}

func validateRecord(record *entities.Record) error {
	if record == nil {
		return apperr.InvalidArgument("record cannot be nil")
	}
	return validateKey(record.Kind, record.ID)
}

func newNotFoundError(kind entities.RecordKind, id int) error {
	return apperr.NotFoundf("%s %d not found", kind, id).
		WithMeta("kind", string(kind)).
		WithMeta("id", id)
}
