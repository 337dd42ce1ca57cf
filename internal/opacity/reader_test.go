package opacity

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

type noteRecord map[string]any

func (r noteRecord) Tag(name string) (any, bool) {
	v, ok := r[name]
	return v, ok
}

func tagged(v any) noteRecord {
	return noteRecord{TagName: v}
}

func TestReadTagValue(t *testing.T) {
	tests := []struct {
		name     string
		record   Tagged
		expected float64
	}{
		{name: "nil record", record: nil, expected: 255},
		{name: "record without tag", record: noteRecord{"Other": "12"}, expected: 255},
		{name: "valueless tag", record: tagged(true), expected: 255},
		{name: "false flag", record: tagged(false), expected: 255},
		{name: "non numeric string", record: tagged("half"), expected: 255},
		{name: "empty string", record: tagged(""), expected: 255},
		{name: "blank string", record: tagged("   "), expected: 255},
		{name: "NaN string", record: tagged("NaN"), expected: 255},
		{name: "NaN float", record: tagged(math.NaN()), expected: 255},
		{name: "unsupported type", record: tagged([]int{1}), expected: 255},
		{name: "string with leading space", record: tagged(" 128"), expected: 128},
		{name: "fractional string keeps precision", record: tagged("127.5"), expected: 127.5},
		{name: "zero is preserved", record: tagged("0"), expected: 0},
		{name: "full is preserved", record: tagged("255"), expected: 255},
		{name: "int value", record: tagged(64), expected: 64},
		{name: "float value", record: tagged(32.25), expected: 32.25},
		{name: "json number", record: tagged(json.Number("100")), expected: 100},
		{name: "hex string", record: tagged("0x80"), expected: 128},
		{name: "above range clamps", record: tagged("300"), expected: 255},
		{name: "below range clamps", record: tagged(-20), expected: 0},
		{name: "overflow clamps", record: tagged("1e999"), expected: 255},
		{name: "negative infinity clamps", record: tagged("-Infinity"), expected: 0},
		{name: "positive infinity clamps", record: tagged("+Infinity"), expected: 255},
		{name: "lowercase infinity is not a number", record: tagged("-infinity"), expected: 255},
		{name: "short inf is not a number", record: tagged("-inf"), expected: 255},
		{name: "mixed case infinity is not a number", record: tagged("-INFINITY"), expected: 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ReadTagValue(tt.record))
		})
	}
}

func TestReadTagValue_UsesFixedTagName(t *testing.T) {
	record := noteRecord{"battler opacity": "10", "Battler Opacity ": "20"}
	assert.Equal(t, float64(255), ReadTagValue(record))
}
