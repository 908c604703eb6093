package dataset

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/crickstats/stats-api/internal/models"
)

// Column names of the match table.
const (
	colID            = "Id"
	colSeason        = "Season"
	colMatchNo       = "Match_No"
	colDate          = "Date"
	colMatchType     = "Match_Type"
	colVenue         = "Venue"
	colTeam1         = "Team1"
	colTeam2         = "Team2"
	colTossWinner    = "Toss_Winner"
	colTossDecision  = "Toss_Decision"
	colTeam1Runs     = "Team1_Runs"
	colTeam1Wickets  = "Team1_Wickets"
	colTeam2Runs     = "Team2_Runs"
	colTeam2Wickets  = "Team2_Wickets"
	colWinner        = "Winner"
	colResult        = "Result"
	colPlayerOfMatch = "Player_Of_Match"
	colSuperOver     = "Super_Over"
)

// Column names of the delivery table.
const (
	colMatchID         = "Match_Id"
	colInning          = "Inning"
	colOver            = "Over"
	colBall            = "Ball"
	colBatter          = "Batter"
	colBowler          = "Bowler"
	colNonStriker      = "Non_Striker"
	colBattingTeam     = "Batting_Team"
	colBowlingTeam     = "Bowling_Team"
	colBatsmanRuns     = "Batsman_Runs"
	colExtraRuns       = "Extra_Runs"
	colTotalRuns       = "Total_Runs"
	colIsWicket        = "Is_Wicket"
	colDismissalKind   = "Dismissal_Kind"
	colPlayerDismissed = "Player_Dismissed"
	colFielder         = "Fielder"
	colExtrasType      = "Extras_Type"
)

// MatchColumns and DeliveryColumns are the header contracts, in file order.
var (
	MatchColumns = []string{
		colID, colSeason, colTeam1, colTeam2, colVenue, colTossWinner, colTossDecision,
		colMatchType, colTeam1Runs, colTeam1Wickets, colTeam2Runs, colTeam2Wickets,
		colWinner, colDate, colSuperOver, colResult, colPlayerOfMatch, colMatchNo,
	}
	DeliveryColumns = []string{
		colMatchID, colInning, colOver, colBall, colBatter, colBowler, colNonStriker,
		colBattingTeam, colBowlingTeam, colBatsmanRuns, colExtraRuns, colTotalRuns,
		colIsWicket, colDismissalKind, colPlayerDismissed, colFielder, colExtrasType,
	}
)

var requiredMatchColumns = []string{colID, colSeason, colTeam1, colTeam2, colVenue, colWinner, colDate}
var requiredDeliveryColumns = []string{colMatchID, colBatter, colBowler, colBatsmanRuns, colIsWicket}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"02/01/2006",
	"2006/01/02",
}

// Load reads both tables concurrently and returns the frozen snapshot.
func Load(ctx context.Context, matchesPath, deliveriesPath string) (*Dataset, error) {
	var (
		matches    []models.Match
		deliveries []models.Delivery
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		matches, err = LoadMatches(ctx, matchesPath)
		return err
	})
	g.Go(func() error {
		var err error
		deliveries, err = LoadDeliveries(ctx, deliveriesPath)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return New(matches, deliveries), nil
}

// LoadMatches reads and preprocesses the match table.
func LoadMatches(ctx context.Context, path string) ([]models.Match, error) {
	t, err := readTable(path)
	if err != nil {
		return nil, err
	}
	if err := t.require(requiredMatchColumns...); err != nil {
		return nil, fmt.Errorf("matches %s: %w", path, err)
	}

	out := make([]models.Match, 0, len(t.rows))
	for i, row := range t.rows {
		if i%10000 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		if len(row) == 0 || t.str(row, colID) == "" {
			continue
		}
		out = append(out, parseMatch(t, row))
	}
	return out, nil
}

// LoadDeliveries reads and preprocesses the delivery table.
func LoadDeliveries(ctx context.Context, path string) ([]models.Delivery, error) {
	t, err := readTable(path)
	if err != nil {
		return nil, err
	}
	if err := t.require(requiredDeliveryColumns...); err != nil {
		return nil, fmt.Errorf("deliveries %s: %w", path, err)
	}

	out := make([]models.Delivery, 0, len(t.rows))
	for i, row := range t.rows {
		if i%10000 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		if len(row) == 0 {
			continue
		}
		out = append(out, parseDelivery(t, row))
	}
	return out, nil
}

func parseMatch(t *table, row []string) models.Match {
	m := models.Match{
		ID:            t.str(row, colID),
		Season:        t.str(row, colSeason),
		MatchNo:       t.str(row, colMatchNo),
		Date:          parseDate(t.str(row, colDate)),
		MatchType:     t.str(row, colMatchType),
		Venue:         t.str(row, colVenue),
		Team1:         t.str(row, colTeam1),
		Team2:         t.str(row, colTeam2),
		TossWinner:    t.str(row, colTossWinner),
		TossDecision:  t.str(row, colTossDecision),
		Team1Runs:     t.num(row, colTeam1Runs),
		Team1Wickets:  t.num(row, colTeam1Wickets),
		Team2Runs:     t.num(row, colTeam2Runs),
		Team2Wickets:  t.num(row, colTeam2Wickets),
		Winner:        t.str(row, colWinner),
		Result:        t.str(row, colResult),
		PlayerOfMatch: t.str(row, colPlayerOfMatch),
		SuperOver:     t.flag(row, colSuperOver),
	}

	// Sentinel fills.
	if m.Winner == "" {
		m.Winner = models.NoResult
	}
	if m.Result == "" {
		m.Result = models.NoResult
	}
	if m.PlayerOfMatch == "" {
		m.PlayerOfMatch = models.NotAwarded
	}
	if m.TossDecision == "" {
		m.TossDecision = models.UnknownToss
	}
	return m
}

func parseDelivery(t *table, row []string) models.Delivery {
	return models.Delivery{
		MatchID:         t.str(row, colMatchID),
		Inning:          t.num(row, colInning),
		Over:            t.num(row, colOver),
		Ball:            t.num(row, colBall),
		Batter:          t.str(row, colBatter),
		Bowler:          t.str(row, colBowler),
		NonStriker:      t.str(row, colNonStriker),
		BattingTeam:     t.str(row, colBattingTeam),
		BowlingTeam:     t.str(row, colBowlingTeam),
		BatsmanRuns:     t.num(row, colBatsmanRuns),
		ExtraRuns:       t.num(row, colExtraRuns),
		TotalRuns:       t.num(row, colTotalRuns),
		IsWicket:        t.num(row, colIsWicket) != 0 || t.flag(row, colIsWicket),
		DismissalKind:   t.str(row, colDismissalKind),
		PlayerDismissed: t.str(row, colPlayerDismissed),
		Fielder:         t.str(row, colFielder),
		ExtrasType:      t.str(row, colExtrasType),
	}
}

// parseDate returns the zero time for unparseable input.
func parseDate(s string) time.Time {
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return d
		}
	}
	return time.Time{}
}
