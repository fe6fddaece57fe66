package ingestion

import "time"

// fixedHolidays are the national holidays (month-day) on which B3 does not trade.
var fixedHolidays = map[string]struct{}{
	"01-01": {}, // New Year
	"04-21": {}, // Tiradentes
	"05-01": {}, // Labor Day
	"09-07": {}, // Independence Day
	"10-12": {}, // Our Lady Aparecida
	"11-02": {}, // All Souls' Day
	"11-15": {}, // Republic Proclamation
	"11-20": {}, // Black Consciousness Day (national since 2024)
	"12-25": {}, // Christmas
}

// LastNBusinessDays returns the last n Brazilian business days (most recent first),
// starting at from's calendar day. Dates are UTC midnights.
func LastNBusinessDays(n int, from time.Time) []time.Time {
	out := make([]time.Time, 0, n)
	d := truncateToDate(from)

	for len(out) < n {
		if isBusinessDayBR(d) {
			out = append(out, d)
		}
		d = d.AddDate(0, 0, -1)
	}
	return out
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// isBusinessDayBR returns true if date is a business day in Brazil.
func isBusinessDayBR(d time.Time) bool {
	if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return false
	}
	key := d.Format("01-02")
	if _, ok := fixedHolidays[key]; ok && (key != "11-20" || d.Year() >= 2024) {
		return false
	}

	day := truncateToDate(d)
	for _, h := range movableHolidays(d.Year()) {
		if day.Equal(h) {
			return false
		}
	}
	return true
}

// movableHolidays returns Carnival Monday and Tuesday, Good Friday and Corpus Christi.
func movableHolidays(year int) [4]time.Time {
	easter := easterSunday(year)
	return [4]time.Time{
		easter.AddDate(0, 0, -48),
		easter.AddDate(0, 0, -47),
		easter.AddDate(0, 0, -2),
		easter.AddDate(0, 0, 60),
	}
}

// easterSunday returns the date of Easter Sunday for a given year
// (Meeus/Jones/Butcher algorithm).
func easterSunday(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := ((h + l - 7*m + 114) % 31) + 1

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}
