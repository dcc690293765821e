package controllers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jbeshir/moonbird-auth-frontend/ctxlogrus"
	"github.com/jbeshir/referral-predictor-frontend/data"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Health reports ready once the predictor answers for the form's default
// ratings.
type Health struct {
	Predictor Predictor
}

type WebSimpleResponder interface {
	OnContextError(w http.ResponseWriter, err error)
	OnError(ctx context.Context, w http.ResponseWriter, err error)
	OnSuccess(w http.ResponseWriter, message string)
}

func (c *Health) HandleFunc(cm ContextMaker, resp WebSimpleResponder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, err := cm.MakeContext(r)
		if err != nil {
			resp.OnContextError(w, err)
			return
		}

		message, err := c.handle(ctx)
		if err != nil {
			resp.OnError(ctx, w, err)
		} else {
			resp.OnSuccess(w, message)
		}
	}
}

func (c *Health) handle(ctx context.Context) (string, error) {
	ctx = ctxlogrus.WithFields(ctx, logrus.Fields{
		"controller": "Health",
	})

	if c.Predictor == nil {
		return "", errors.New("no predictor loaded")
	}

	record := data.NewInputRecord(nil)
	labels, err := c.Predictor.Predict(ctx, record.Frame())
	if err != nil {
		return "", errors.Wrap(err, "predictor failed for default ratings")
	}
	if len(labels) != 1 {
		return "", errors.Errorf("predictor returned %d labels for one row", len(labels))
	}

	return fmt.Sprintf("OK: predicted label %d for default ratings", labels[0]), nil
}
