package model

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/m-mizutani/goerr/v2"
)

// Timestamp is a time.Time that also accepts the zone-less ISO 8601 strings
// the chatbot backend emits. A zone-less value is a wall-clock reading: it is
// held as UTC and keeps the same clock reading in every display location.
type Timestamp struct {
	time.Time
	zoneless bool
}

const zonelessLayout = "2006-01-02T15:04:05.999999999"

var zonelessLayouts = []string{
	zonelessLayout,
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// ParseTimestamp parses s with every layout the backend is known to produce
func ParseTimestamp(s string) (Timestamp, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return Timestamp{Time: t}, nil
	}
	for _, layout := range zonelessLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Timestamp{Time: t, zoneless: true}, nil
		}
	}
	return Timestamp{}, goerr.Wrap(ErrInvalidTimestamp, "unsupported timestamp format", goerr.V(TimestampKey, s))
}

// Zoneless reports whether the backend sent no zone for this value
func (t Timestamp) Zoneless() bool {
	return t.zoneless
}

// InLocation returns the time to display in loc. Zoned values are converted;
// zone-less values keep their wall clock.
func (t Timestamp) InLocation(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	if !t.zoneless {
		return t.Time.In(loc)
	}
	y, mo, d := t.Date()
	h, mi, sec := t.Clock()
	return time.Date(y, mo, d, h, mi, sec, t.Nanosecond(), loc)
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*t = Timestamp{}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return goerr.Wrap(err, "timestamp must be a JSON string", goerr.V(TimestampKey, string(data)))
	}
	if s == "" {
		*t = Timestamp{}
		return nil
	}

	parsed, err := ParseTimestamp(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	if t.zoneless {
		return json.Marshal(t.Format(zonelessLayout))
	}
	return json.Marshal(t.Format(time.RFC3339Nano))
}
