package model

import (
	"context"

	"github.com/jbeshir/moonbird-auth-frontend/ctxlogrus"
	"github.com/jbeshir/referral-predictor-frontend/data"
	"github.com/pkg/errors"
)

type classifier interface {
	classify(x []float64) int
}

// Model is a loaded predictor. It is never modified after loading, so one
// Model may serve any number of concurrent requests.
type Model struct {
	kind    string
	columns []string
	c       classifier
}

func newModel(a Artifact) (*Model, error) {
	if len(a.Columns) == 0 {
		return nil, errors.New("artifact has no feature columns")
	}
	columns := append([]string(nil), a.Columns...)

	var c classifier
	var err error
	switch a.Kind {
	case KindDecisionTree:
		c, err = newDecisionTree(a.Tree, len(columns))
	case KindLogisticRegression:
		c, err = newLogisticRegression(a.Logistic, len(columns))
	default:
		err = errors.Errorf("unsupported predictor kind %q", a.Kind)
	}
	if err != nil {
		return nil, err
	}

	return &Model{
		kind:    a.Kind,
		columns: columns,
		c:       c,
	}, nil
}

func (m *Model) Kind() string {
	return m.kind
}

func (m *Model) Columns() []string {
	return append([]string(nil), m.columns...)
}

// Predict returns one label per row of frame. The frame's columns must be
// exactly the columns the model was fitted on, in the same order.
func (m *Model) Predict(ctx context.Context, frame data.Frame) ([]int, error) {
	l := ctxlogrus.Get(ctx)
	l.Debugf("Predicting from inputs: %v", frame.Rows)

	if !sameColumns(m.columns, frame.Columns) {
		return nil, errors.Errorf("feature names mismatch: fitted on %v, given %v", m.columns, frame.Columns)
	}

	labels := make([]int, 0, len(frame.Rows))
	for i, row := range frame.Rows {
		if len(row) != len(m.columns) {
			return nil, errors.Errorf("row %d has %d values, expected %d", i, len(row), len(m.columns))
		}
		labels = append(labels, m.c.classify(row))
	}
	return labels, nil
}

func sameColumns(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
