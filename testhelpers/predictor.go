package testhelpers

import (
	"context"
	"testing"

	"github.com/jbeshir/referral-predictor-frontend/data"
)

type Predictor struct {
	PredictFunc func(ctx context.Context, frame data.Frame) ([]int, error)
}

func NewPredictor(t *testing.T) *Predictor {
	return &Predictor{
		PredictFunc: func(ctx context.Context, frame data.Frame) ([]int, error) {
			t.Error("Predict should not be called")
			return nil, nil
		},
	}
}

// NewConstantPredictor returns a Predictor which answers every call with
// labels.
func NewConstantPredictor(labels ...int) *Predictor {
	return &Predictor{
		PredictFunc: func(ctx context.Context, frame data.Frame) ([]int, error) {
			return append([]int(nil), labels...), nil
		},
	}
}

func (p *Predictor) Predict(ctx context.Context, frame data.Frame) ([]int, error) {
	return p.PredictFunc(ctx, frame)
}
