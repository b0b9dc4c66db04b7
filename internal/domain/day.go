// internal/domain/day.go
package domain

import "strings"

// Day is one of the seven calendar days used to index a training week.
type Day string

const (
	Monday    Day = "mon"
	Tuesday   Day = "tue"
	Wednesday Day = "wed"
	Thursday  Day = "thu"
	Friday    Day = "fri"
	Saturday  Day = "sat"
	Sunday    Day = "sun"
)

// Days lists the week in calendar order, Monday first.
var Days = [7]Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

var dayLabels = map[Day]string{
	Monday:    "Monday",
	Tuesday:   "Tuesday",
	Wednesday: "Wednesday",
	Thursday:  "Thursday",
	Friday:    "Friday",
	Saturday:  "Saturday",
	Sunday:    "Sunday",
}

// Index returns the calendar position (mon=0 … sun=6), or -1 for an unknown day.
func (d Day) Index() int {
	for i, day := range Days {
		if day == d {
			return i
		}
	}
	return -1
}

// Valid reports whether d is one of the seven known days.
func (d Day) Valid() bool {
	return d.Index() >= 0
}

// Label is the full English name, e.g. "Monday".
func (d Day) Label() string {
	return dayLabels[d]
}

// Short is the three-letter display name, e.g. "Mon".
func (d Day) Short() string {
	if !d.Valid() {
		return string(d)
	}
	return strings.ToUpper(string(d[:1])) + string(d[1:])
}

// Next returns the following calendar day, wrapping from Sunday to Monday.
func (d Day) Next() Day {
	i := d.Index()
	if i < 0 {
		return d
	}
	return Days[(i+1)%len(Days)]
}

// Distance is the linear index distance between two days. It does not wrap:
// Sunday and Monday are six days apart.
func (d Day) Distance(other Day) int {
	diff := d.Index() - other.Index()
	if diff < 0 {
		return -diff
	}
	return diff
}

// ParseDay accepts a day token case-insensitively ("Tue", "tue").
func ParseDay(s string) (Day, bool) {
	d := Day(strings.ToLower(strings.TrimSpace(s)))
	return d, d.Valid()
}
