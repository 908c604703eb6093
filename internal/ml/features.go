package ml

import (
	"sort"
	"time"

	"github.com/crickstats/stats-api/internal/models"
)

const (
	formWindow    = 5
	neutralSignal = 0.5
)

// Feature vector layout.
const (
	featTeam1 = iota
	featTeam2
	featVenue
	featTossWinner
	featTossDecision
	featTeam1Form
	featTeam2Form
	featTeam1H2H
	featTeam2H2H
	featTeam1Venue
	featTeam2Venue
	numFeatures
)

// signals are the history-derived inputs for one fixture.
type signals struct {
	form1, form2   float64
	h2h1, h2h2     float64
	venue1, venue2 float64
}

// history is the match table in stable date order.
type history []models.Match

func newHistory(matches []models.Match) history {
	h := make(history, len(matches))
	copy(h, matches)
	sort.SliceStable(h, func(i, j int) bool { return h[i].Date.Before(h[j].Date) })
	return h
}

// signalsBefore derives form, head-to-head and venue signals from matches
// strictly earlier than cutoff.
func (h history) signalsBefore(cutoff time.Time, team1, team2, venue string) signals {
	return h.collect(&cutoff, team1, team2, venue)
}

// signalsNow derives the same signals from the whole history.
func (h history) signalsNow(team1, team2, venue string) signals {
	return h.collect(nil, team1, team2, venue)
}

func (h history) collect(cutoff *time.Time, team1, team2, venue string) signals {
	var (
		recent1, recent2     []bool
		h2hTotal, h2h1, h2h2 int
		v1Total, v1Wins      int
		v2Total, v2Wins      int
	)

	for i := range h {
		m := &h[i]
		if cutoff != nil && !m.Date.Before(*cutoff) {
			break
		}
		in1, in2 := m.Involves(team1), m.Involves(team2)
		if in1 {
			recent1 = append(recent1, m.Winner == team1)
		}
		if in2 {
			recent2 = append(recent2, m.Winner == team2)
		}
		if in1 && in2 {
			h2hTotal++
			switch m.Winner {
			case team1:
				h2h1++
			case team2:
				h2h2++
			}
		}
		if m.Venue == venue {
			if in1 {
				v1Total++
				if m.Winner == team1 {
					v1Wins++
				}
			}
			if in2 {
				v2Total++
				if m.Winner == team2 {
					v2Wins++
				}
			}
		}
	}

	return signals{
		form1:  form(recent1),
		form2:  form(recent2),
		h2h1:   fraction(h2h1, h2hTotal),
		h2h2:   fraction(h2h2, h2hTotal),
		venue1: fraction(v1Wins, v1Total),
		venue2: fraction(v2Wins, v2Total),
	}
}

func form(results []bool) float64 {
	if len(results) > formWindow {
		results = results[len(results)-formWindow:]
	}
	wins := 0
	for _, w := range results {
		if w {
			wins++
		}
	}
	return fraction(wins, len(results))
}

// fraction falls back to the neutral 0.5 without history.
func fraction(num, den int) float64 {
	if den == 0 {
		return neutralSignal
	}
	return float64(num) / float64(den)
}

// encoder maps category labels to stable integer codes.
type encoder struct {
	codes  map[string]int
	labels []string
}

func newEncoder(values []string) *encoder {
	set := make(map[string]struct{})
	for _, v := range values {
		set[v] = struct{}{}
	}
	labels := make([]string, 0, len(set))
	for v := range set {
		labels = append(labels, v)
	}
	sort.Strings(labels)

	e := &encoder{codes: make(map[string]int, len(labels)), labels: labels}
	for i, l := range labels {
		e.codes[l] = i
	}
	return e
}

func (e *encoder) code(v string) (int, bool) {
	c, ok := e.codes[v]
	return c, ok
}

// vector assembles a feature row. Callers have already encoded the categories.
func vector(team1, team2, venue, tossWinner, tossDecision int, s signals) []float64 {
	x := make([]float64, numFeatures)
	x[featTeam1] = float64(team1)
	x[featTeam2] = float64(team2)
	x[featVenue] = float64(venue)
	x[featTossWinner] = float64(tossWinner)
	x[featTossDecision] = float64(tossDecision)
	x[featTeam1Form] = s.form1
	x[featTeam2Form] = s.form2
	x[featTeam1H2H] = s.h2h1
	x[featTeam2H2H] = s.h2h2
	x[featTeam1Venue] = s.venue1
	x[featTeam2Venue] = s.venue2
	return x
}
