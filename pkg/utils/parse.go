package utils

import (
	"encoding/json"
	"fmt"
	"strings"
)

// OrderedRef is a parsed gallery/relation entry: a referenced id plus its
// display order.
type OrderedRef struct {
	ID    string
	Order int
}

func formatErr(field string) error { return fmt.Errorf("Invalid %s format", field) }

// ParseStringList accepts a JSON array, a bracket-prefixed JSON string, or a
// comma-separated string. Entries are trimmed and empties dropped.
func ParseStringList(field string, v any) ([]string, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case []string:
		return cleanList(t), nil
	case []any:
		out := make([]string, 0, len(t))
		for _, e := range t {
			s, ok := e.(string)
			if !ok {
				return nil, formatErr(field)
			}
			out = append(out, s)
		}
		return cleanList(out), nil
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return nil, nil
		}
		if strings.HasPrefix(s, "[") {
			var arr []string
			if err := json.Unmarshal([]byte(s), &arr); err != nil {
				return nil, formatErr(field)
			}
			return cleanList(arr), nil
		}
		return cleanList(strings.Split(s, ",")), nil
	default:
		return nil, formatErr(field)
	}
}

// ParseOrderedList accepts the same shapes as ParseStringList plus arrays of
// {id, order} objects. Array entries default their order to the array index;
// a lone plain string becomes a single entry with order 0.
func ParseOrderedList(field string, v any) ([]OrderedRef, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case []any:
		out := make([]OrderedRef, 0, len(t))
		for i, e := range t {
			ref, err := orderedElem(field, e, i)
			if err != nil {
				return nil, err
			}
			if ref.ID != "" {
				out = append(out, ref)
			}
		}
		return out, nil
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return nil, nil
		}
		if strings.HasPrefix(s, "[") {
			var arr []any
			if err := json.Unmarshal([]byte(s), &arr); err != nil {
				return nil, formatErr(field)
			}
			return ParseOrderedList(field, arr)
		}
		if strings.Contains(s, ",") {
			var out []OrderedRef
			for i, p := range cleanList(strings.Split(s, ",")) {
				out = append(out, OrderedRef{ID: p, Order: i})
			}
			return out, nil
		}
		return []OrderedRef{{ID: s, Order: 0}}, nil
	default:
		return nil, formatErr(field)
	}
}

func orderedElem(field string, e any, idx int) (OrderedRef, error) {
	switch el := e.(type) {
	case string:
		return OrderedRef{ID: strings.TrimSpace(el), Order: idx}, nil
	case map[string]any:
		id, _ := el["id"].(string)
		if id == "" {
			id, _ = el["mediaId"].(string)
		}
		if strings.TrimSpace(id) == "" {
			return OrderedRef{}, formatErr(field)
		}
		order := idx
		if n, ok := el["order"].(float64); ok {
			order = int(n)
		}
		return OrderedRef{ID: strings.TrimSpace(id), Order: order}, nil
	default:
		return OrderedRef{}, formatErr(field)
	}
}

func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if t := strings.TrimSpace(s); t != "" {
			out = append(out, t)
		}
	}
	return out
}
