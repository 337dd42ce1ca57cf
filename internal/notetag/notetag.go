// Package notetag extracts <Name: value> tags from database record notes.
package notetag

import (
	"regexp"

	"github.com/KirkDiggler/battler-opacity/internal/entities"
)

var tagPattern = regexp.MustCompile(`<([^<>:]+)(:?)([^>]*)>`)

// Extract returns the tags found in note. <Name: value> stores the raw text
// after the colon, <Name> stores true. A later tag with the same name wins.
func Extract(note string) entities.Metadata {
	meta := entities.Metadata{}
	for _, m := range tagPattern.FindAllStringSubmatch(note, -1) {
		if m[2] == ":" {
			meta.Set(m[1], m[3])
		} else {
			meta.Set(m[1], true)
		}
	}
	return meta
}

// Apply refreshes record.Meta from its note
func Apply(record *entities.Record) {
	if record == nil {
		return
	}
	record.Meta = Extract(record.Note)
}
