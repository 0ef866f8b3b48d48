package wp

import (
	"bytes"
	"fmt"
	"time"
)

// wordpressTimeLayout is the zone-less layout WordPress uses for date fields.
const wordpressTimeLayout = "2006-01-02T15:04:05"

// Time wraps time.Time to accept WordPress timestamps, which omit the zone
// offset on the non-GMT fields.
type Time struct {
	time.Time
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Time) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) || bytes.Equal(data, []byte(`""`)) {
		t.Time = time.Time{}

		return nil
	}

	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("%w: %s", ErrInvalidTime, data)
	}

	raw := string(data[1 : len(data)-1])

	for _, layout := range []string{time.RFC3339Nano, wordpressTimeLayout} {
		parsed, err := time.Parse(layout, raw)
		if err == nil {
			t.Time = parsed

			return nil
		}
	}

	return fmt.Errorf("%w: %q", ErrInvalidTime, raw)
}

// MarshalJSON implements json.Marshaler using the WordPress layout.
func (t Time) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}

	return []byte(`"` + t.Format(wordpressTimeLayout) + `"`), nil
}

// MarshalYAML implements yaml.Marshaler.
func (t Time) MarshalYAML() (interface{}, error) {
	if t.IsZero() {
		return nil, nil
	}

	return t.Format(wordpressTimeLayout), nil
}

// String formats the time for display.
func (t Time) String() string {
	if t.IsZero() {
		return ""
	}

	return t.Format("2006-01-02 15:04:05")
}
