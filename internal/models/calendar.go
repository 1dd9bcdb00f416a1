package models

import "fmt"

// Day identifies a scheduling day within the Monday-Friday work week.
type Day string

const (
	Monday    Day = "Mon"
	Tuesday   Day = "Tue"
	Wednesday Day = "Wed"
	Thursday  Day = "Thu"
	Friday    Day = "Fri"
)

// Days lists the work week in scheduling order.
var Days = []Day{Monday, Tuesday, Wednesday, Thursday, Friday}

const (
	// NumDays is the number of scheduling days per week.
	NumDays = 5
	// SlotsPerDay is the number of 30-minute slots between 08:00 and 17:00.
	SlotsPerDay = 18
	// SlotsPerHour converts hours to 30-minute slots.
	SlotsPerHour = 2
	// UnitsPerHour converts hours to quarter-hour accounting units.
	UnitsPerHour = 4
)

// SlotStarts holds the wall-clock start of each slot index, matching the
// availability column headers in the staff CSV (e.g. "Mon_08:00").
var SlotStarts = []string{
	"08:00", "08:30", "09:00", "09:30", "10:00", "10:30",
	"11:00", "11:30", "12:00", "12:30", "13:00", "13:30",
	"14:00", "14:30", "15:00", "15:30", "16:00", "16:30",
}

// SlotNames holds the display name of each slot index.
var SlotNames = []string{
	"8:00-8:30", "8:30-9:00", "9:00-9:30", "9:30-10:00",
	"10:00-10:30", "10:30-11:00", "11:00-11:30", "11:30-12:00",
	"12:00-12:30", "12:30-1:00", "1:00-1:30", "1:30-2:00",
	"2:00-2:30", "2:30-3:00", "3:00-3:30", "3:30-4:00",
	"4:00-4:30", "4:30-5:00",
}

// TimeSlot is the atomic 30-minute scheduling unit.
type TimeSlot struct {
	Day   Day
	Index int
}

// String renders the slot as "Mon 8:00-8:30".
func (s TimeSlot) String() string {
	if s.Index < 0 || s.Index >= SlotsPerDay {
		return fmt.Sprintf("%s slot[%d]", s.Day, s.Index)
	}
	return fmt.Sprintf("%s %s", s.Day, SlotNames[s.Index])
}

// AllSlots enumerates the 90 weekly slots in fixed model-build order.
func AllSlots() []TimeSlot {
	slots := make([]TimeSlot, 0, NumDays*SlotsPerDay)
	for _, d := range Days {
		for t := 0; t < SlotsPerDay; t++ {
			slots = append(slots, TimeSlot{Day: d, Index: t})
		}
	}
	return slots
}

// DayIndex returns the position of d in the work week, or -1.
func DayIndex(d Day) int {
	for i, day := range Days {
		if day == d {
			return i
		}
	}
	return -1
}
