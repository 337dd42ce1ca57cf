package records

import (
	"github.com/KirkDiggler/battler-opacity/internal/entities"
	"github.com/KirkDiggler/battler-opacity/internal/notetag"
)

func toData(record *entities.Record) *Data {
	return &Data{
		Kind: record.Kind,
		ID:   record.ID,
		Name: record.Name,
		Note: record.Note,
	}
}

func toRecord(data *Data) *entities.Record {
	record := &entities.Record{
		Kind: data.Kind,
		ID:   data.ID,
		Name: data.Name,
		Note: data.Note,
	}
	notetag.Apply(record)
	return record
}
