// Package dataset loads the match and delivery tables and exposes them as an
// immutable snapshot.
package dataset

import (
	"sort"

	"github.com/crickstats/stats-api/internal/models"
)

// Dataset is built once and never mutated; it is safe for concurrent readers.
type Dataset struct {
	Matches    []models.Match
	Deliveries []models.Delivery

	matchByID map[string]int
	seasons   []string
	teams     []string
	venues    []string
}

// New builds the lookup indexes over already preprocessed tables.
func New(matches []models.Match, deliveries []models.Delivery) *Dataset {
	ds := &Dataset{
		Matches:    matches,
		Deliveries: deliveries,
		matchByID:  make(map[string]int, len(matches)),
	}

	seasons := make(map[string]struct{})
	teams := make(map[string]struct{})
	venues := make(map[string]struct{})
	for i := range matches {
		m := &matches[i]
		ds.matchByID[m.ID] = i
		if m.Season != "" {
			seasons[m.Season] = struct{}{}
		}
		for _, t := range []string{m.Team1, m.Team2} {
			if t != "" {
				teams[t] = struct{}{}
			}
		}
		if m.Venue != "" {
			venues[m.Venue] = struct{}{}
		}
	}

	ds.seasons = sortedKeys(seasons)
	ds.teams = sortedKeys(teams)
	ds.venues = sortedKeys(venues)
	return ds
}

// Match looks up a match by id.
func (d *Dataset) Match(id string) (*models.Match, bool) {
	i, ok := d.matchByID[id]
	if !ok {
		return nil, false
	}
	return &d.Matches[i], true
}

// SeasonOf returns the season of the referenced match, or "" when the id is unknown.
func (d *Dataset) SeasonOf(matchID string) string {
	if m, ok := d.Match(matchID); ok {
		return m.Season
	}
	return ""
}

// DeliveriesInSeason returns deliveries whose match belongs to season.
// Deliveries referencing unknown matches are skipped.
func (d *Dataset) DeliveriesInSeason(season string) []models.Delivery {
	var out []models.Delivery
	for i := range d.Deliveries {
		if d.SeasonOf(d.Deliveries[i].MatchID) == season {
			out = append(out, d.Deliveries[i])
		}
	}
	return out
}

func (d *Dataset) Seasons() []string { return d.seasons }
func (d *Dataset) Teams() []string   { return d.teams }
func (d *Dataset) Venues() []string  { return d.venues }

func (d *Dataset) HasTeam(team string) bool     { return contains(d.teams, team) }
func (d *Dataset) HasVenue(venue string) bool   { return contains(d.venues, venue) }
func (d *Dataset) HasSeason(season string) bool { return contains(d.seasons, season) }

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func contains(sorted []string, v string) bool {
	i := sort.SearchStrings(sorted, v)
	return i < len(sorted) && sorted[i] == v
}
