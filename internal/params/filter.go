package params

import (
	"errors"
	"math"
	"regexp"
	"strconv"
)

// RFC-4122 string form: version digit 1-5, variant digit 8/9/a/b, case
// insensitive.
var uuidPattern = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[1-5][0-9a-fA-F]{3}-[89abAB][0-9a-fA-F]{3}-[0-9a-fA-F]{12}$`)

var (
	ErrInvalidUUID   = errors.New("uuid must be a valid UUID")
	ErrInvalidID     = errors.New("id must be an integer")
	ErrInvalidAmount = errors.New("amount must be a number")
)

// ValidateFilters drops every entry whose value is falsy (the backend treats
// absent and falsy filters the same, so omitting avoids ambiguous queries)
// and checks the format of the three special fields when present: uuid must
// be RFC-4122, id must be an integer, amount must be numeric.
//
// Pure and idempotent: validating its own output returns an equal map. On
// failure the caller must surface the error instead of dispatching a query.
func ValidateFilters(filters map[string]interface{}) (map[string]interface{}, error) {
	cleaned := make(map[string]interface{}, len(filters))
	for key, value := range filters {
		if isFalsy(value) {
			continue
		}
		cleaned[key] = value
	}

	if v, ok := cleaned["uuid"]; ok {
		s, isStr := v.(string)
		if !isStr || !uuidPattern.MatchString(s) {
			return nil, ErrInvalidUUID
		}
	}
	if v, ok := cleaned["id"]; ok && !isInteger(v) {
		return nil, ErrInvalidID
	}
	if v, ok := cleaned["amount"]; ok && !isNumeric(v) {
		return nil, ErrInvalidAmount
	}

	return cleaned, nil
}

func isFalsy(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case bool:
		return !t
	case int:
		return t == 0
	case int64:
		return t == 0
	case float64:
		return t == 0
	}
	return false
}

func isInteger(v interface{}) bool {
	switch t := v.(type) {
	case int, int64:
		return true
	case float64:
		return t == math.Trunc(t)
	case string:
		_, err := strconv.ParseInt(t, 10, 64)
		return err == nil
	}
	return false
}

func isNumeric(v interface{}) bool {
	switch t := v.(type) {
	case int, int64, float64:
		return true
	case string:
		_, err := strconv.ParseFloat(t, 64)
		return err == nil
	}
	return false
}
