// Package models holds the view models shown by the CLI screens.
package models

import (
	"fmt"
	"time"
)

const InvalidDate = "Invalid date"

// Operator is one registered agricultural operator as listed in the
// directory. Dates are kept as the raw strings returned by the store and
// formatted on display.
type Operator struct {
	CIN       string
	LastName  string
	FirstName string
	Male      bool
	BirthDate string
	CreatedAt string
	TypeID    int64
	TypeLabel string
	ImageURL  string
}

// FullName is "last first", the string the directory search matches on.
func (o Operator) FullName() string {
	return o.LastName + " " + o.FirstName
}

func (o Operator) SexLabel() string {
	if o.Male {
		return "Homme"
	}
	return "Femme"
}

// Position is a geographic point in decimal degrees.
type Position struct {
	Latitude  float64
	Longitude float64
}

// LandPlot is a parcel with its resolved position.
type LandPlot struct {
	Position Position
	AreaSqM  float64
}

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseDate accepts the date and timestamp shapes the store emits.
func ParseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatDate renders s as dd/mm/yyyy in UTC, or InvalidDate when s is
// empty or unparseable.
func FormatDate(s string) string {
	if s == "" {
		return InvalidDate
	}
	t, ok := ParseDate(s)
	if !ok {
		return InvalidDate
	}
	t = t.UTC()
	return fmt.Sprintf("%02d/%02d/%04d", t.Day(), int(t.Month()), t.Year())
}
