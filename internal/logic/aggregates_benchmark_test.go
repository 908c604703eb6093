package logic

import (
	"fmt"
	"testing"

	"github.com/crickstats/stats-api/internal/models"
)

func benchData(nMatches, ballsPerMatch int) ([]models.Match, []models.Delivery) {
	teams := []string{"A", "B", "C", "D", "E", "F", "G", "H"}
	matches := make([]models.Match, nMatches)
	deliveries := make([]models.Delivery, 0, nMatches*ballsPerMatch)
	for i := range matches {
		t1, t2 := teams[i%len(teams)], teams[(i+3)%len(teams)]
		id := fmt.Sprint(i)
		matches[i] = match(id, fmt.Sprint(2008+i%16), t1, t2, fmt.Sprintf("V%d", i%10), t1, models.TossBat, t2, 160+i%40, 150+i%30)
		for b := 0; b < ballsPerMatch; b++ {
			d := ball(id, 1+b/120, fmt.Sprintf("bat%d", b%40), fmt.Sprintf("bowl%d", b%25), t1, t2, b%7)
			if b%23 == 0 {
				d = wicket(d, "Caught")
			}
			deliveries = append(deliveries, d)
		}
	}
	return matches, deliveries
}

func BenchmarkTeamPerformance(b *testing.B) {
	matches, _ := benchData(1100, 0)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		TeamPerformance(matches, "A")
	}
}

func BenchmarkBuildPlayerStats(b *testing.B) {
	_, deliveries := benchData(1100, 240)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		BuildPlayerStats(deliveries)
	}
}

func BenchmarkPlayerVsTeam(b *testing.B) {
	_, deliveries := benchData(1100, 240)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		PlayerVsTeam(deliveries, "bat3", "D")
	}
}
