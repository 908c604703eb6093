package ml

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	predictions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "crickstats_predictions_total",
		Help: "Win probability predictions by method",
	}, []string{"method"})

	trainingOutcome = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "crickstats_predictor_training_total",
		Help: "Predictor training runs by outcome",
	}, []string{"outcome"})

	similarityLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "crickstats_similarity_lookups_total",
		Help: "Similar player lookups by outcome",
	}, []string{"outcome"})
)
