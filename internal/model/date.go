package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// Date is a calendar date that travels as "YYYY-MM-DD" in JSON views.
type Date struct {
	time.Time
}

func NewDate(t *time.Time) *Date {
	if t == nil || t.IsZero() {
		return nil
	}
	return &Date{Time: *t}
}

// UnmarshalJSON reads back what MarshalJSON writes. It replaces the method
// promoted from time.Time, which expects RFC 3339.
func (d *Date) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		d.Time = time.Time{}
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("invalid date format (string expected): %w", err)
	}

	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return fmt.Errorf("cannot parse date: %s", s)
	}
	d.Time = t
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.Time.IsZero() {
		return []byte(`null`), nil
	}

	return json.Marshal(d.Time.Format(DateLayout))
}
