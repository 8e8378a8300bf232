package cli

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

var AllowedFormats = []string{"space", "comma", "newline", "json"}

// CheckFormat validates a --format value.
func CheckFormat(format string) error {
	if !slices.Contains(AllowedFormats, format) {
		return errors.Errorf("invalid format: %s, allowed formats are: %v", format, AllowedFormats)
	}
	return nil
}

// FormatValues renders values in format. Text formats print each value with
// fmt.Sprint; json keeps numbers as numbers.
func FormatValues(format string, values []any) (string, error) {
	if err := CheckFormat(format); err != nil {
		return "", err
	}
	if format == "json" {
		if len(values) == 0 {
			return "[]", nil
		}
		data, err := json.Marshal(values)
		if err != nil {
			return "", errors.Wrap(err, "failed to marshal values to json")
		}
		return string(data), nil
	}

	var sep string
	switch format {
	case "comma":
		sep = ","
	case "newline":
		sep = "\n"
	default:
		sep = " "
	}
	return strings.Join(lo.Map(values, func(v any, _ int) string { return fmt.Sprint(v) }), sep), nil
}
