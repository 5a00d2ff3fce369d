package models

import "fmt"

// Weekday names indexed the way the backend stores week_day (0 = Sunday).
var weekdayNames = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// ScheduleSlot is one availability window of a class.
type ScheduleSlot struct {
	WeekDay int `json:"week_day"`
	From    int `json:"from"` // minutes since midnight
	To      int `json:"to"`   // minutes since midnight
}

// String renders the slot as "Mon 08:00-12:00".
func (s ScheduleSlot) String() string {
	day := "?"
	if s.WeekDay >= 0 && s.WeekDay < len(weekdayNames) {
		day = weekdayNames[s.WeekDay]
	}
	return fmt.Sprintf("%s %s-%s", day, clock(s.From), clock(s.To))
}

func clock(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// Teacher is a tutor record as returned by the classes endpoint and as
// stored, in full, in the favorites value.
type Teacher struct {
	ID       int64          `json:"id"`
	UserID   int64          `json:"user_id,omitempty"`
	Name     string         `json:"name"`
	Avatar   string         `json:"avatar,omitempty"`
	Whatsapp string         `json:"whatsapp,omitempty"`
	Bio      string         `json:"bio,omitempty"`
	Subject  string         `json:"subject"`
	Cost     float64        `json:"cost"`
	Schedule []ScheduleSlot `json:"schedule,omitempty"`
}

// ClassFilters is the subject/week day/time triple sent to the search
// endpoint. Values are passed through untouched; empty means "no filter"
// on the server side.
type ClassFilters struct {
	Subject string
	WeekDay string
	Time    string
}
