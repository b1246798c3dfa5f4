// Package flows generates deterministic synthetic FII/DII institutional
// flow data for recent trading days. Unlike the seed derivation used by the
// market synthesizer, trading-day selection here is holiday-aware: weekends
// and exchange holidays are both skipped.
package flows

import (
	"math"
	"time"

	"github.com/marketpulse-io/marketpulse/internal/synth"
	"github.com/marketpulse-io/marketpulse/internal/types"
)

// maxLookbackDays bounds the backward walk when searching for trading days.
const maxLookbackDays = 90

// IsTradingDay reports whether the instant falls on an IST trading day:
// a weekday that is not an exchange holiday.
func IsTradingDay(t time.Time) bool {
	ist := t.In(synth.IST)

	weekday := ist.Weekday()
	if weekday == time.Saturday || weekday == time.Sunday {
		return false
	}

	return !IsHoliday(ist.Format("2006-01-02"))
}

// Report generates FII and DII net flows for the most recent "days" trading
// days at or before now, newest first. Each day's values come from a
// Mulberry32 generator seeded by the date string, so the report is stable
// for a given calendar date regardless of when it is requested.
func Report(now time.Time, days int) types.FlowReport {
	report := types.FlowReport{
		FIIData: make([]types.FIIEntry, 0, days),
		DIIData: make([]types.DIIEntry, 0, days),
	}

	daysBack := 0
	for len(report.FIIData) < days && daysBack < maxLookbackDays {
		date := now.In(synth.IST).AddDate(0, 0, -daysBack)
		daysBack++

		if !IsTradingDay(date) {
			continue
		}

		ymd := date.Format("2006-01-02")
		display := date.Format("02 Jan 2006")
		random := synth.Mulberry32(synth.HashString(ymd))

		inRange := func(min, max float64) float64 {
			return math.Round((min+random()*(max-min))*100) / 100
		}

		// FII ranges lean net-seller in equity; DII lean net-buyer,
		// absorbing the FII selling.
		report.FIIData = append(report.FIIData, types.FIIEntry{
			Date:   display,
			Index:  inRange(-3500, 1500),
			Debt:   inRange(-600, 900),
			Hybrid: inRange(-250, 350),
		})

		report.DIIData = append(report.DIIData, types.DIIEntry{
			Date:   display,
			Equity: inRange(1500, 4500),
			Debt:   inRange(-600, 1800),
			Hybrid: inRange(-300, 700),
		})
	}

	return report
}
