package model

import (
	"math"

	"github.com/pkg/errors"
)

const defaultDecisionThreshold = 0.5

type LogisticParams struct {
	Weights   []float64
	Intercept float64
	// Threshold on the positive class probability; zero means 0.5.
	Threshold float64
}

type logisticRegression struct {
	weights   []float64
	intercept float64
	threshold float64
}

func newLogisticRegression(p *LogisticParams, featureCount int) (*logisticRegression, error) {
	if p == nil {
		return nil, errors.New("logistic regression has no parameters")
	}
	if len(p.Weights) != featureCount {
		return nil, errors.Errorf("logistic regression has %d weights, expected %d", len(p.Weights), featureCount)
	}
	threshold := p.Threshold
	if threshold == 0 {
		threshold = defaultDecisionThreshold
	}
	if threshold <= 0 || threshold >= 1 || math.IsNaN(threshold) {
		return nil, errors.Errorf("decision threshold out of range: %g", threshold)
	}
	return &logisticRegression{
		weights:   append([]float64(nil), p.Weights...),
		intercept: p.Intercept,
		threshold: threshold,
	}, nil
}

func (lr *logisticRegression) probability(x []float64) float64 {
	z := lr.intercept
	for i, w := range lr.weights {
		z += w * x[i]
	}
	return 1 / (1 + math.Exp(-z))
}

func (lr *logisticRegression) classify(x []float64) int {
	if lr.probability(x) >= lr.threshold {
		return 1
	}
	return 0
}
