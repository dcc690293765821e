package controllers

import (
	"context"
	"net/http"

	"github.com/jbeshir/referral-predictor-frontend/data"
)

type ContextMaker interface {
	MakeContext(r *http.Request) (context.Context, error)
}

type Predictor interface {
	Predict(ctx context.Context, frame data.Frame) ([]int, error)
}
