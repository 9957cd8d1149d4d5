// Package types implements special types for the backend.
package types

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// Date is a calendar date without a time component.
//
// Budgets, transactions, savings goals and contributions are dated to the
// day, never to a point in time.
type Date time.Time

// NewDate returns a new Date.
func NewDate(year int, month time.Month, day int) Date {
	return Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the Date on which a time occurs, in UTC.
func DateOf(t time.Time) Date {
	year, month, day := t.In(time.UTC).Date()
	return NewDate(year, month, day)
}

// ParseDate parses a string in RFC 3339 full-date format.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, err
	}

	return DateOf(t), nil
}

// String returns the date formatted as YYYY-MM-DD.
func (d Date) String() string {
	return time.Time(d).Format("2006-01-02")
}

// IsZero reports whether the date is the zero value.
func (d Date) IsZero() bool {
	return time.Time(d).IsZero()
}

// Before reports whether d is before the other date.
func (d Date) Before(other Date) bool {
	return time.Time(d).Before(time.Time(other))
}

// After reports whether d is after the other date.
func (d Date) After(other Date) bool {
	return time.Time(d).After(time.Time(other))
}

// Equal reports whether both dates represent the same day.
func (d Date) Equal(other Date) bool {
	return time.Time(d).Equal(time.Time(other))
}

// MarshalJSON implements the json.Marshaler interface.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", d.String())), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// Both full-date strings and RFC 3339 timestamps are accepted,
// for timestamps everything after the day is ignored.
func (d *Date) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		return nil
	}

	parsed, err := ParseDate(value)
	if err != nil {
		t, tErr := time.Parse(time.RFC3339, value)
		if tErr != nil {
			return err
		}
		parsed = DateOf(t)
	}

	*d = parsed
	return nil
}

// UnmarshalParam implements gin's binding.BindUnmarshaler interface
// so that Date can be used in query and URI parameters.
func (d *Date) UnmarshalParam(param string) error {
	if param == "" {
		return nil
	}

	parsed, err := ParseDate(param)
	if err != nil {
		return err
	}

	*d = parsed
	return nil
}

// Value implements the driver.Valuer interface.
func (d Date) Value() (driver.Value, error) {
	return d.String(), nil
}

// Scan implements the sql.Scanner interface.
func (d *Date) Scan(value interface{}) error {
	if value == nil {
		*d = Date{}
		return nil
	}

	switch v := value.(type) {
	case time.Time:
		*d = DateOf(v)
		return nil
	case string:
		// sqlite may return either the bare date or a full timestamp
		parsed, err := ParseDate(v)
		if err != nil {
			t, tErr := time.Parse(time.RFC3339, v)
			if tErr != nil {
				return err
			}
			parsed = DateOf(t)
		}
		*d = parsed
		return nil
	case []byte:
		return d.Scan(string(v))
	}

	return fmt.Errorf("unsupported data type %T for Date", value)
}
