// Package aggregate turns raw case rows into the chart series shown on the
// dashboards. Everything here is pure: no I/O, no clock reads.
package aggregate

import (
	"sort"
	"strings"
	"time"

	"afyajirani-backend/internal/models"
)

// Tracked disease buckets.
const (
	Cholera = "cholera"
	Malaria = "malaria"
	COVID   = "covid"
)

// WindowDays is the length of the trailing cases-over-time window.
const WindowDays = 7

// UnknownLocation labels cases reported without a location.
const UnknownLocation = "Unknown"

// Counts holds one counter per tracked disease.
type Counts struct {
	Cholera int `json:"Cholera"`
	Malaria int `json:"Malaria"`
	COVID   int `json:"COVID"`
}

func (c *Counts) add(bucket string) {
	switch bucket {
	case Cholera:
		c.Cholera++
	case Malaria:
		c.Malaria++
	case COVID:
		c.COVID++
	}
}

// Total is the sum over all buckets.
func (c Counts) Total() int {
	return c.Cholera + c.Malaria + c.COVID
}

// Distribution counts cases per tracked disease.
type Distribution struct {
	Cholera int `json:"cholera"`
	Malaria int `json:"malaria"`
	COVID   int `json:"covid"`
}

// DayCount is one point of the cases-over-time series.
type DayCount struct {
	Date string `json:"date"`
	Counts
}

// LocationCount is one bar of the cases-by-location chart.
type LocationCount struct {
	Location string `json:"location"`
	Counts
}

// Series bundles the three derived views of a case set.
type Series struct {
	Distribution    Distribution    `json:"disease_distribution"`
	CasesOverTime   []DayCount      `json:"cases_over_time"`
	CasesByLocation []LocationCount `json:"cases_by_location"`
}

var aliases = map[string]string{
	"cholera": Cholera,
	"malaria": Malaria,
	"covid":   COVID,
	"covid19": COVID,
}

// NormalizeDisease folds a disease label to its bucket: case-insensitive,
// hyphens and spaces removed, "covid19" aliased to "covid". Returns "" for
// anything that is not tracked.
func NormalizeDisease(disease string) string {
	key := strings.ToLower(disease)
	key = strings.ReplaceAll(key, "-", "")
	key = strings.ReplaceAll(key, " ", "")
	return aliases[key]
}

// DiseaseDistribution counts rows per tracked disease. Rows with other or
// missing diseases are skipped.
func DiseaseDistribution(rows []models.Case) Distribution {
	var c Counts
	for _, r := range rows {
		c.add(NormalizeDisease(r.Disease))
	}
	return Distribution{Cholera: c.Cholera, Malaria: c.Malaria, COVID: c.COVID}
}

// Window returns the WindowDays calendar dates ending at today, ascending.
func Window(today time.Time) []string {
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	dates := make([]string, WindowDays)
	for i := 0; i < WindowDays; i++ {
		dates[i] = day.AddDate(0, 0, i-(WindowDays-1)).Format(models.DateLayout)
	}
	return dates
}

// CasesOverTime buckets rows by day over the trailing window ending at today.
// The result always has WindowDays entries; days without cases are zero.
func CasesOverTime(rows []models.Case, today time.Time) []DayCount {
	dates := Window(today)
	series := make([]DayCount, len(dates))
	index := make(map[string]int, len(dates))
	for i, d := range dates {
		series[i].Date = d
		index[d] = i
	}

	for _, r := range rows {
		i, ok := index[dayOf(r.Date)]
		if !ok {
			continue
		}
		series[i].add(NormalizeDisease(r.Disease))
	}
	return series
}

// CasesByLocation groups rows by their exact location string. Every location
// that appears gets an entry, even if none of its cases are tracked.
// Entries are sorted by location so the output does not depend on row order.
func CasesByLocation(rows []models.Case) []LocationCount {
	groups := make(map[string]*LocationCount)
	for _, r := range rows {
		loc := r.Location
		if loc == "" {
			loc = UnknownLocation
		}
		g, ok := groups[loc]
		if !ok {
			g = &LocationCount{Location: loc}
			groups[loc] = g
		}
		g.add(NormalizeDisease(r.Disease))
	}

	out := make([]LocationCount, 0, len(groups))
	for _, g := range groups {
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Location < out[j].Location })
	return out
}

// Summarize computes all three views at once.
func Summarize(rows []models.Case, today time.Time) Series {
	return Series{
		Distribution:    DiseaseDistribution(rows),
		CasesOverTime:   CasesOverTime(rows, today),
		CasesByLocation: CasesByLocation(rows),
	}
}

// dayOf accepts both bare dates and timestamps some drivers hand back for
// DATE columns ("2024-06-01T00:00:00Z").
func dayOf(date string) string {
	if len(date) > len(models.DateLayout) {
		return date[:len(models.DateLayout)]
	}
	return date
}
