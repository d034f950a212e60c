package feed

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Record is one raw dataset entry keyed by the dataset field names, which
// match the aggregate field names.
type Record map[string]any

// String returns field as a trimmed string. Numbers are rendered in their
// shortest form; missing and null values read as "".
func (r Record) String(field string) string {
	switch v := r[field].(type) {
	case string:
		return strings.TrimSpace(v)
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return ""
}

// OriginalOrder returns the dataset's own record number, which may arrive as
// a number or a string.
func (r Record) OriginalOrder() string {
	return r.String("original_order")
}
