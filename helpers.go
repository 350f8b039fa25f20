package fieldtypes

import (
	"fmt"
	"strconv"
	"strings"
)

///////////////////////////////////////////////////////////////////////////////
// Helpers
///////////////////////////////////////////////////////////////////////////////

// checkboxValue converts a submitted checkbox value to a bool.
//
// Currently supports:
//   - bool
//   - strings "on", "yes", "off", "no" (case-insensitive)
//   - strings accepted by strconv.ParseBool ("1", "0", "true", "false", ...)
//   - integers and floats equal to 0 or 1 (JSON numbers decode to float64)
func checkboxValue(value any) (bool, bool) {
	switch v := value.(type) {
	case bool:
		return v, true
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "on", "yes":
			return true, true
		case "off", "no":
			return false, true
		}
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return false, false
		}
		return b, true
	case int:
		return intCheckbox(int64(v))
	case int64:
		return intCheckbox(v)
	case float64:
		if v != float64(int64(v)) {
			return false, false
		}
		return intCheckbox(int64(v))
	default:
		return false, false
	}
}

func intCheckbox(v int64) (bool, bool) {
	switch v {
	case 0:
		return false, true
	case 1:
		return true, true
	default:
		return false, false
	}
}

// stringValue returns value as a string when it is one, or a
// fmt.Stringer.
func stringValue(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case fmt.Stringer:
		return v.String(), true
	default:
		return "", false
	}
}
