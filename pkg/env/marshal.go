package env

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// MarshalEnv renders a struct as .env file content using its env tags.
//
// Zero-valued fields fall back to their envDefault tag and are skipped when
// there is none. An envComment tag is written as a "# ..." line above the
// field, and a field tagged envSection starts a blank-line separated block.
func MarshalEnv(c any) (string, error) {
	v := reflect.Indirect(reflect.ValueOf(c))
	if v.Kind() != reflect.Struct {
		return "", fmt.Errorf("env: expected struct, got %s", v.Kind())
	}
	t := v.Type()

	var b strings.Builder
	for i := 0; i < v.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("env")

		if tag == "" || !field.IsExported() {
			continue
		}

		// Tag looks like "KEY,required,notEmpty"
		key, _, _ := strings.Cut(tag, ",")
		if key == "" {
			continue
		}

		val := v.Field(i)
		var strVal string
		if isZeroValue(val) {
			def, ok := field.Tag.Lookup("envDefault")
			if !ok {
				continue
			}
			strVal = def
		} else {
			strVal = formatValue(val)
		}

		if section, ok := field.Tag.Lookup("envSection"); ok {
			if b.Len() > 0 {
				b.WriteString("\n")
			}
			fmt.Fprintf(&b, "# %s\n", section)
		}
		if comment, ok := field.Tag.Lookup("envComment"); ok {
			fmt.Fprintf(&b, "# %s\n", comment)
		}
		fmt.Fprintf(&b, "%s=%s\n", key, quoteIfNeeded(strVal))
	}

	return b.String(), nil
}

// dotenvEscaper covers exactly the escapes godotenv decodes inside double
// quotes; "\$" keeps a literal dollar from being expanded as a variable.
// Anything else is written literally.
var dotenvEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	`$`, `\$`,
)

// quoteIfNeeded double-quotes values that a dotenv parser would otherwise
// split or truncate.
func quoteIfNeeded(s string) string {
	if s == "" || strings.ContainsAny(s, " \t#\"'\n\r\\$") {
		return `"` + dotenvEscaper.Replace(s) + `"`
	}
	return s
}

// isZeroValue checks if a reflect.Value is the zero value for its type
func isZeroValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return v.String() == ""
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
		return v.IsNil()
	default:
		return v.IsZero()
	}
}

// formatValue converts a reflect.Value to its string representation
func formatValue(v reflect.Value) string {
	switch v.Kind() {
	case reflect.String:
		return v.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10)
	case reflect.Float32:
		return strconv.FormatFloat(v.Float(), 'f', -1, 32)
	case reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', -1, 64)
	case reflect.Bool:
		return strconv.FormatBool(v.Bool())
	default:
		return fmt.Sprintf("%v", v.Interface())
	}
}
