package flows

// marketHolidays are NSE trading holidays, keyed YYYY-MM-DD and evaluated
// in IST. Keep this list aligned with the exchange calendar.
var marketHolidays = map[string]bool{
	"2024-12-25": true,
	"2025-01-26": true,
	"2025-02-26": true,
	"2025-03-14": true,
	"2025-03-31": true,
	"2025-04-10": true,
	"2025-04-14": true,
	"2025-04-18": true,
	"2025-05-01": true,
	"2025-06-07": true,
	"2025-08-15": true,
	"2025-08-16": true,
	"2025-08-27": true,
	"2025-10-02": true,
	"2025-10-21": true,
	"2025-10-22": true,
	"2025-11-05": true,
	"2025-12-25": true,
	"2026-01-26": true,
}

// IsHoliday reports whether the YYYY-MM-DD date is an exchange holiday.
func IsHoliday(ymd string) bool {
	return marketHolidays[ymd]
}
