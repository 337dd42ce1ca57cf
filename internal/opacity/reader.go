package opacity

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
)

// ReadTagValue returns the record's tag value clamped to [0,255].
// Missing records, missing tags and values that are not numbers read as 255.
func ReadTagValue(record Tagged) float64 {
	if record == nil {
		return MaxOpacity
	}

	raw, ok := record.Tag(TagName)
	if !ok {
		return MaxOpacity
	}

	value, ok := toNumber(raw)
	if !ok {
		return MaxOpacity
	}

	return clamp(value)
}

func toNumber(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, !math.IsNaN(v)
	case float32:
		return float64(v), !math.IsNaN(float64(v))
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint:
		return float64(v), true
	case json.Number:
		return parseNumber(v.String())
	case string:
		return parseNumber(v)
	default:
		// includes the valueless tag sentinel (true)
		return 0, false
	}
}

func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	lower := strings.ToLower(s)
	if strings.HasPrefix(lower, "0x") || strings.HasPrefix(lower, "0b") || strings.HasPrefix(lower, "0o") {
		if strings.Contains(s, "_") {
			return 0, false
		}
		n, err := strconv.ParseInt(s, 0, 64)
		if err != nil {
			return 0, false
		}
		return float64(n), true
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// overflow still yields a usable ±Inf that clamps
		if errors.Is(err, strconv.ErrRange) {
			return f, true
		}
		return 0, false
	}
	if math.IsInf(f, 0) && strings.TrimLeft(s, "+-") != "Infinity" {
		// only the exact spelling Infinity names an infinite tag value
		return 0, false
	}
	return f, !math.IsNaN(f)
}

func clamp(v float64) float64 {
	return math.Max(MinOpacity, math.Min(MaxOpacity, v))
}
