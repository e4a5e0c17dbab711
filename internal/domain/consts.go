package domain

import "time"

// DefaultScheduleTime is the time of day used when a schedule policy omits it.
const DefaultScheduleTime = "12:00"

// DefaultOverdueDelay is how far into the future an overdue one-off task is
// pushed when it is reloaded at startup.
const DefaultOverdueDelay = 5 * time.Second

// SystemOperator is recorded as processed_by for approvals made by the engine
// itself (auto-approve and scheduled runs).
const SystemOperator int64 = 0

// WeekdayNames maps weekday numbers (0=Monday) to their English names
var WeekdayNames = map[int]string{
	0: "Monday",
	1: "Tuesday",
	2: "Wednesday",
	3: "Thursday",
	4: "Friday",
	5: "Saturday",
	6: "Sunday",
}

// WeekdayAliases maps short names accepted in admin commands to weekday numbers
var WeekdayAliases = map[string]int{
	"mon": 0,
	"tue": 1,
	"wed": 2,
	"thu": 3,
	"fri": 4,
	"sat": 5,
	"sun": 6,
}
