// Package query evaluates JSONPath expressions against collection snapshots.
package query

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/aalvaropc/hatchery/internal/domain"
)

// Evaluate runs expr against the JSON form of snap and returns one string
// per matched value. Scalars are printed plainly; objects and arrays as JSON.
//
// A filter that matches nothing yields an empty result, not an error.
func Evaluate(snap domain.Snapshot, expr string) ([]string, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, invalid(expr, fmt.Errorf("%w: empty jsonpath expression", domain.ErrInvalidQuery))
	}

	doc, err := toDocument(snap)
	if err != nil {
		return nil, err
	}

	val, err := jsonpath.Get(expr, doc)
	if err != nil {
		return nil, invalid(expr, fmt.Errorf("%w: %v", domain.ErrInvalidQuery, err))
	}

	if arr, ok := val.([]any); ok {
		out := make([]string, 0, len(arr))
		for _, v := range arr {
			s, err := toString(v)
			if err != nil {
				return nil, err
			}
			out = append(out, s)
		}
		return out, nil
	}

	s, err := toString(val)
	if err != nil {
		return nil, err
	}
	return []string{s}, nil
}

// toDocument round-trips through JSON so the expression sees the exported
// field names and plain map/slice values.
func toDocument(snap domain.Snapshot) (any, error) {
	b, err := json.Marshal(snap)
	if err != nil {
		return nil, err
	}
	var doc any
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func toString(v any) (string, error) {
	switch t := v.(type) {
	case nil:
		return "null", nil
	case string:
		return t, nil
	case float64, bool:
		return fmt.Sprint(t), nil
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
}

func invalid(expr string, err error) error {
	return &domain.OpError{Op: "query.evaluate", Kind: domain.KindInvalidQuery, Path: expr, Err: err}
}
