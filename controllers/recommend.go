package controllers

import (
	"context"
	"net/http"
	"sync"

	"github.com/jbeshir/moonbird-auth-frontend/ctxlogrus"
	"github.com/jbeshir/referral-predictor-frontend/data"
	"github.com/jbeshir/referral-predictor-frontend/form"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// ActionRecommend is the value the "Get Recommendation" button submits as
// the action field.
const ActionRecommend = "recommend"

type Recommend struct {
	Predictor Predictor
	// Limiter throttles submissions when set.
	Limiter *rate.Limiter

	submitMu sync.Mutex
}

type RecommendInput struct {
	Ratings map[data.Dimension]string
	Choices map[data.ChoiceField]string
	Action  string
}

type RatingWidget struct {
	Name  string
	Label string
	Min   int
	Max   int
	Value int
}

type ChoiceWidget struct {
	Name    string
	Label   string
	Options []string
	Value   string
}

type RecommendResult struct {
	Ratings       []RatingWidget
	Choices       []ChoiceWidget
	Submitted     bool
	Outcome       *form.Outcome
	PredictionErr error
}

type WebFormResponder interface {
	OnContextError(w http.ResponseWriter, err error)
	OnResult(w http.ResponseWriter, r *RecommendResult)
}

func (c *Recommend) HandleFunc(cm ContextMaker, resp WebFormResponder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, err := cm.MakeContext(r)
		if err != nil {
			resp.OnContextError(w, err)
			return
		}

		input := &RecommendInput{
			Ratings: make(map[data.Dimension]string, len(data.Dimensions)),
			Choices: make(map[data.ChoiceField]string, 2),
			Action:  r.FormValue("action"),
		}
		for _, d := range data.Dimensions {
			input.Ratings[d] = r.FormValue(d.Column())
		}
		for _, f := range []data.ChoiceField{data.TravellerType, data.Cabin} {
			input.Choices[f] = r.FormValue(f.Name())
		}

		result := c.handle(ctx, input)
		resp.OnResult(w, result)
	}
}

func (c *Recommend) handle(ctx context.Context, input *RecommendInput) *RecommendResult {
	ctx = ctxlogrus.WithFields(ctx, logrus.Fields{
		"controller": "Recommend",
	})
	l := ctxlogrus.Get(ctx)

	// The page is rebuilt from the submitted widget values on every request,
	// one change event per widget.
	s := form.NewSession()
	for _, d := range data.Dimensions {
		s.OnRatingChanged(d, data.ParseRating(input.Ratings[d]))
	}
	for _, f := range []data.ChoiceField{data.TravellerType, data.Cabin} {
		s.OnChoiceChanged(f, input.Choices[f])
	}

	result := new(RecommendResult)
	if input.Action == ActionRecommend {
		result.Submitted = true
		result.Outcome, result.PredictionErr = c.submit(ctx, s)
		if result.PredictionErr != nil {
			l.Errorf("Unable to generate requested recommendation: %s", result.PredictionErr)
		} else {
			l.Infof("Predicted label %d for ratings %v", result.Outcome.Label, result.Outcome.Record.Values())
		}
	}

	for _, d := range data.Dimensions {
		result.Ratings = append(result.Ratings, RatingWidget{
			Name:  d.Column(),
			Label: d.Label(),
			Min:   data.MinRating,
			Max:   data.MaxRating,
			Value: s.Rating(d),
		})
	}
	for _, f := range []data.ChoiceField{data.TravellerType, data.Cabin} {
		result.Choices = append(result.Choices, ChoiceWidget{
			Name:    f.Name(),
			Label:   f.Label(),
			Options: f.Options(),
			Value:   s.Choice(f),
		})
	}
	return result
}

// submit runs one submission at a time.
func (c *Recommend) submit(ctx context.Context, s *form.Session) (*form.Outcome, error) {
	c.submitMu.Lock()
	defer c.submitMu.Unlock()

	if c.Limiter != nil {
		if err := c.Limiter.Wait(ctx); err != nil {
			return nil, &form.PredictionError{Err: errors.Wrap(err, "submission throttled")}
		}
	}

	return s.OnSubmit(ctx, c.Predictor)
}
