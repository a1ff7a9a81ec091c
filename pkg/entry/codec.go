package entry

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"tableflip.dev/mindtrackr/pkg/mood"
)

// SchemaVersion is the canonical persisted shape: a JSON array of
// {id, date, mood, text, createdAt} objects with string fields.
//
// Version 1 records (numeric id, no createdAt) are still accepted on read
// and are always written back in the current shape.
const SchemaVersion = 2

// LegacyIDPrefix marks ids converted from version 1 numeric ids.
const LegacyIDPrefix = "legacy-"

// ErrNotArray is returned by Decode when the payload is not a JSON array.
var ErrNotArray = errors.New("entry: persisted payload is not a JSON array")

// Problem describes a persisted record that was dropped during Decode.
type Problem struct {
	Index  int
	ID     string
	Reason string
}

func (p Problem) String() string {
	if p.ID != "" {
		return fmt.Sprintf("record %d (%s): %s", p.Index, p.ID, p.Reason)
	}
	return fmt.Sprintf("record %d: %s", p.Index, p.Reason)
}

type record struct {
	ID        json.RawMessage `json:"id"`
	Date      json.RawMessage `json:"date"`
	Mood      json.RawMessage `json:"mood"`
	Text      json.RawMessage `json:"text"`
	CreatedAt json.RawMessage `json:"createdAt"`
}

// Encode serialises entries in the canonical shape.
func Encode(entries []*Entry) ([]byte, error) {
	if entries == nil {
		entries = []*Entry{}
	}
	return json.Marshal(entries)
}

// Decode parses a persisted payload. Malformed records are dropped and
// reported as problems; well-formed records are kept in order. Only a
// payload that is not an array at all yields an error.
func Decode(data []byte) ([]*Entry, []Problem, error) {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrNotArray, err)
	}
	if raws == nil {
		return nil, nil, ErrNotArray
	}

	entries := make([]*Entry, 0, len(raws))
	var problems []Problem
	seen := make(map[string]struct{}, len(raws))
	for i, raw := range raws {
		e, err := decodeRecord(raw)
		if err != nil {
			p := Problem{Index: i, Reason: err.Error()}
			if e != nil {
				p.ID = e.ID
			}
			problems = append(problems, p)
			continue
		}
		if _, dup := seen[e.ID]; dup {
			problems = append(problems, Problem{Index: i, ID: e.ID, Reason: "duplicate id"})
			continue
		}
		seen[e.ID] = struct{}{}
		entries = append(entries, e)
	}
	return entries, problems, nil
}

func decodeRecord(raw json.RawMessage) (*Entry, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, errors.New("not an object")
	}
	var r record
	if err := json.Unmarshal(trimmed, &r); err != nil {
		return nil, err
	}

	e := &Entry{}
	legacy := false
	if id, ok := asString(r.ID); ok && id != "" {
		e.ID = id
	} else if n, ok := asInteger(r.ID); ok {
		e.ID = LegacyIDPrefix + strconv.FormatInt(n, 10)
		legacy = true
	} else {
		return nil, errors.New("id must be a non-empty string")
	}

	date, ok := asString(r.Date)
	if !ok {
		return e, errors.New("date must be a string")
	}
	d, err := ParseDate(date)
	if err != nil {
		return e, err
	}
	e.Date = d

	m, ok := asString(r.Mood)
	if !ok {
		return e, errors.New("mood must be a string")
	}
	e.Mood = mood.Mood(m)

	text, ok := asString(r.Text)
	if !ok {
		return e, errors.New("text must be a string")
	}
	e.Text = text

	if err := Validate(e.Text, e.Mood); err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			return e, fmt.Errorf("invalid record: %s", verr.Reason)
		}
		return e, err
	}

	switch created, ok := asString(r.CreatedAt); {
	case ok && created != "":
		ts, err := ParseTime(created)
		if err != nil {
			return e, fmt.Errorf("createdAt: %w", err)
		}
		e.CreatedAt = Timestamp{Time: ts}
	case isAbsent(r.CreatedAt):
		// Version 1 records never had createdAt; version 2 records
		// written by hand may omit it too.
		e.CreatedAt = Timestamp{Time: e.Date.Time()}
	default:
		if !legacy {
			return e, errors.New("createdAt must be a string")
		}
		e.CreatedAt = Timestamp{Time: e.Date.Time()}
	}
	return e, nil
}

func isAbsent(raw json.RawMessage) bool {
	t := bytes.TrimSpace(raw)
	return len(t) == 0 || bytes.Equal(t, []byte("null")) || bytes.Equal(t, []byte(`""`))
}

func asString(raw json.RawMessage) (string, bool) {
	t := bytes.TrimSpace(raw)
	if len(t) == 0 || t[0] != '"' {
		return "", false
	}
	var s string
	if err := json.Unmarshal(t, &s); err != nil {
		return "", false
	}
	return s, true
}

func asInteger(raw json.RawMessage) (int64, bool) {
	t := bytes.TrimSpace(raw)
	if len(t) == 0 {
		return 0, false
	}
	var n json.Number
	dec := json.NewDecoder(bytes.NewReader(t))
	dec.UseNumber()
	if err := dec.Decode(&n); err != nil {
		return 0, false
	}
	v, err := n.Int64()
	if err != nil {
		return 0, false
	}
	return v, true
}
