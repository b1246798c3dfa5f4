package synth

import (
	"fmt"
	"time"
)

// IST is the Indian Standard Time zone, fixed at UTC+5:30. The market
// calendar never observes daylight saving, so a fixed offset is correct.
var IST = time.FixedZone("Asia/Kolkata", 5*3600+30*60)

// Bucket describes the seed window an instant falls into. Within one bucket
// (a 5-minute block while the market is open, or the whole period while it
// is closed) every derived seed is identical, which is what keeps repeated
// polling from flickering between different synthetic series.
type Bucket struct {
	// Open reports whether the market is open at the instant: Monday to
	// Friday, 09:15-15:30 IST inclusive.
	Open bool
	// Seed is the generation seed: "YYYY-MM-DD-HH-B" while open (B is the
	// 5-minute block of the hour), "YYYY-MM-DD-close" while closed.
	Seed string
	// EffectiveDate is the trading date the seed is anchored to, formatted
	// YYYY-MM-DD.
	EffectiveDate string
}

// DeriveBucket computes the seed bucket for an instant. The instant is an
// explicit parameter so the derivation stays a pure function; callers pass
// time.Now() at the edge.
//
// The effective trading date only consults the weekday, not the exchange
// holiday list: a holiday weekday is still treated as a trading day here.
func DeriveBucket(now time.Time) Bucket {
	ist := now.In(IST)

	weekday := ist.Weekday()
	hour := ist.Hour()
	minute := ist.Minute()

	isWeekday := weekday >= time.Monday && weekday <= time.Friday
	inHours := (hour > 9 || (hour == 9 && minute >= 15)) &&
		(hour < 15 || (hour == 15 && minute <= 30))
	open := isWeekday && inHours

	// Anchor closed periods to the most recent trading day's session.
	effective := ist
	if !isWeekday {
		if weekday == time.Saturday {
			effective = effective.AddDate(0, 0, -1)
		} else {
			effective = effective.AddDate(0, 0, -2)
		}
	} else if hour < 9 || (hour == 9 && minute < 15) {
		if weekday == time.Monday {
			effective = effective.AddDate(0, 0, -3)
		} else {
			effective = effective.AddDate(0, 0, -1)
		}
	}

	ymd := effective.Format("2006-01-02")

	seed := ymd + "-close"
	if open {
		seed = fmt.Sprintf("%s-%02d-%d", ymd, hour, minute/5)
	}

	return Bucket{
		Open:          open,
		Seed:          seed,
		EffectiveDate: ymd,
	}
}
