package entry

import (
	"encoding/json"
	"fmt"
	"time"
)

// TimestampLayout matches the millisecond ISO-8601 form the journal has
// always persisted, e.g. 2024-03-01T18:22:05.123Z.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

func ParseTime(v string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, v)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

type Timestamp struct {
	time.Time
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(fmt.Sprintf("%q", t.String())), nil
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var timestamp string
	if err := json.Unmarshal(b, &timestamp); err != nil {
		return err
	}
	if timestamp == "" {
		t.Time = time.Time{}
		return nil
	}
	var err error
	t.Time, err = ParseTime(timestamp)
	return err
}

func (t Timestamp) String() string {
	return t.UTC().Format(TimestampLayout)
}

func (t Timestamp) MarshalYAML() (interface{}, error) {
	if t.IsZero() {
		return "", nil
	}
	return t.String(), nil
}
