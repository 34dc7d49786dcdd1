// Package dto provides data transfer objects for the milestone HTTP layer.
package dto

import (
	"fmt"
	"strings"
	"time"
)

// dateLayout is the wire format for milestone dates.
const dateLayout = "2006-01-02"

// Date is a calendar date serialized as "yyyy-mm-dd" in JSON.
type Date struct {
	time.Time
}

// NewDate wraps a time.Time pointer as a Date pointer, dropping the time part.
func NewDate(t *time.Time) *Date {
	if t == nil {
		return nil
	}
	return &Date{time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// AsTime returns the date as a time.Time pointer for domain use.
func (d *Date) AsTime() *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}

// MarshalJSON serializes the date as "yyyy-mm-dd".
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

// UnmarshalJSON parses a "yyyy-mm-dd" date.
func (d *Date) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "null" || value == "" {
		return nil
	}

	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return fmt.Errorf("invalid date %q: expected format yyyy-mm-dd", value)
	}

	d.Time = parsed
	return nil
}
