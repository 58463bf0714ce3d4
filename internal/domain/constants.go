package domain

import "time"

// Engine defaults
const (
	SlotStep   = 15 * time.Minute
	HoldPeriod = 30 * time.Minute
)

// Time format constants
const (
	DateFormat = "01/02/2006" // MM/dd/yyyy
	TimeFormat = "03:04 PM"   // hh:mm AM/PM
)

// TimeInputFormats допустимые форматы времени смены на входе
// Часы без ведущего нуля ("9:00 AM") тоже принимаются, на выходе всегда TimeFormat
var TimeInputFormats = []string{
	TimeFormat,
	"3:04 PM",
}

// Status messages shown to the provider after adding a shift
const (
	MsgShiftAlreadyAdded = "Schedule already added"
	MsgShiftAdded        = "Successfully added shift %s %s - %s"
)
