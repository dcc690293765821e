package responders

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jbeshir/moonbird-auth-frontend/ctxlogrus"
)

// WebSimpleResponder answers with plain text. Error details are only shown
// when ExposeErrors is set.
type WebSimpleResponder struct {
	ExposeErrors bool
}

func (r *WebSimpleResponder) OnContextError(w http.ResponseWriter, err error) {
	r.writeError(w, err)
}

func (r *WebSimpleResponder) OnError(ctx context.Context, w http.ResponseWriter, err error) {
	ctxlogrus.Get(ctx).Errorf("Health check failed: %s", err)
	r.writeError(w, err)
}

func (r *WebSimpleResponder) OnSuccess(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, message)
}

func (r *WebSimpleResponder) writeError(w http.ResponseWriter, err error) {
	msg := http.StatusText(http.StatusInternalServerError)
	if r.ExposeErrors {
		msg = fmt.Sprintf("%s: %s", msg, err)
	}
	http.Error(w, msg, http.StatusInternalServerError)
}
