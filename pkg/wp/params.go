package wp

import (
	"fmt"
	"net/url"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Params holds query parameters for a request. Absent values (nil, nil
// pointers and empty strings) are dropped when encoding.
type Params map[string]any

// Set assigns a value and returns the receiver for chaining. A nil receiver
// yields a new Params.
func (p Params) Set(key string, value any) Params {
	if p == nil {
		return Params{key: value}
	}

	p[key] = value

	return p
}

// Values converts the surviving parameters to url.Values.
func (p Params) Values() url.Values {
	values := url.Values{}

	for key, raw := range p {
		value, ok := formatParam(raw)
		if !ok {
			continue
		}

		values.Set(key, value)
	}

	return values
}

// Encode returns the percent-encoded query string sorted by key, or "" when
// no parameter survives.
func (p Params) Encode() string {
	values := p.Values()
	if len(values) == 0 {
		return ""
	}

	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, url.QueryEscape(key)+"="+url.QueryEscape(values.Get(key)))
	}

	return strings.Join(parts, "&")
}

// formatParam renders a scalar parameter. The second result is false when the
// value is absent.
func formatParam(raw any) (string, bool) {
	switch value := raw.(type) {
	case nil:
		return "", false
	case string:
		return value, value != ""
	case bool:
		return strconv.FormatBool(value), true
	case int:
		return strconv.Itoa(value), true
	case int64:
		return strconv.FormatInt(value, 10), true
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64), true
	case time.Time:
		return value.Format(time.RFC3339), true
	case Time:
		return value.Format(time.RFC3339), true
	case []int:
		if len(value) == 0 {
			return "", false
		}

		items := make([]string, len(value))
		for i, item := range value {
			items[i] = strconv.Itoa(item)
		}

		return strings.Join(items, ","), true
	case []string:
		if len(value) == 0 {
			return "", false
		}

		return strings.Join(value, ","), true
	case fmt.Stringer:
		if isNilPointer(value) {
			return "", false
		}

		return formatParam(value.String())
	}

	rv := reflect.ValueOf(raw)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return "", false
		}

		return formatParam(rv.Elem().Interface())
	}

	return fmt.Sprint(raw), true
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)

	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
