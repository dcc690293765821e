// Package form holds the state of the referral form and the handlers for
// each kind of interaction with it, independent of how the form is drawn.
package form

import (
	"context"
	"fmt"

	"github.com/jbeshir/moonbird-auth-frontend/ctxlogrus"
	"github.com/jbeshir/referral-predictor-frontend/data"
	"github.com/pkg/errors"
)

const (
	MessageYes = "Recommended: YES"
	MessageNo  = "Recommended: NO"
)

type Phase int

const (
	Idle Phase = iota
	Submitted
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Submitted:
		return "submitted"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

type Predictor interface {
	Predict(ctx context.Context, frame data.Frame) ([]int, error)
}

// PredictionError is a failed submission. The session is usable again
// afterwards.
type PredictionError struct {
	Err error
}

func (e *PredictionError) Error() string {
	return fmt.Sprintf("prediction failed: %s", e.Err)
}

func (e *PredictionError) Unwrap() error {
	return e.Err
}

func (e *PredictionError) Cause() error {
	return e.Err
}

type Outcome struct {
	Record      data.InputRecord
	Label       int
	Recommended bool
	Message     string
}

// MessageFor maps a predicted label to what the user sees. Only a label of
// exactly 1 is a recommendation.
func MessageFor(label int) string {
	if label == 1 {
		return MessageYes
	}
	return MessageNo
}

type Session struct {
	ratings map[data.Dimension]int
	choices map[data.ChoiceField]string
	phase   Phase
}

func NewSession() *Session {
	s := &Session{
		ratings: make(map[data.Dimension]int, len(data.Dimensions)),
		choices: make(map[data.ChoiceField]string, 2),
		phase:   Idle,
	}
	for _, d := range data.Dimensions {
		s.ratings[d] = data.DefaultRating
	}
	for _, f := range []data.ChoiceField{data.TravellerType, data.Cabin} {
		s.choices[f] = f.Options()[0]
	}
	return s
}

func (s *Session) Phase() Phase {
	return s.phase
}

func (s *Session) Rating(d data.Dimension) int {
	return s.ratings[d]
}

func (s *Session) Choice(f data.ChoiceField) string {
	return s.choices[f]
}

// OnRatingChanged records a slider movement. The slider can't leave
// [MinRating, MaxRating], so neither can the stored value.
func (s *Session) OnRatingChanged(d data.Dimension, value int) {
	if !d.Valid() {
		return
	}
	s.ratings[d] = data.ClampRating(value)
}

// OnChoiceChanged records a dropdown selection; anything outside the
// field's options selects the first option.
func (s *Session) OnChoiceChanged(f data.ChoiceField, value string) {
	options := f.Options()
	if options == nil {
		return
	}
	s.choices[f] = data.ParseChoice(options, value)
}

// OnSubmit builds a record from the current ratings and asks p for its
// label. Every call runs the full sequence again.
func (s *Session) OnSubmit(ctx context.Context, p Predictor) (*Outcome, error) {
	s.phase = Submitted
	defer func() {
		s.phase = Idle
	}()

	l := ctxlogrus.Get(ctx)

	record := data.NewInputRecord(s.ratings)
	labels, err := p.Predict(ctx, record.Frame())
	if err != nil {
		return nil, &PredictionError{Err: err}
	}
	if len(labels) != 1 {
		return nil, &PredictionError{
			Err: errors.Errorf("expected one label for one row, got %d", len(labels)),
		}
	}

	label := labels[0]
	if label != 0 && label != 1 {
		l.Warnf("Predictor returned unexpected label %d, treating as no recommendation", label)
	}

	return &Outcome{
		Record:      record,
		Label:       label,
		Recommended: label == 1,
		Message:     MessageFor(label),
	}, nil
}
