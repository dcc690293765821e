package main

import (
	"context"
	"net/http"

	"github.com/jbeshir/moonbird-auth-frontend/ctxlogrus"
	"github.com/sirupsen/logrus"
)

type LocalContextMaker struct{}

func (cm *LocalContextMaker) MakeContext(r *http.Request) (context.Context, error) {
	fields := logrus.Fields{
		"method": r.Method,
		"remote": r.RemoteAddr,
	}
	if r.URL != nil {
		fields["path"] = r.URL.Path
	}
	return ctxlogrus.WithFields(r.Context(), fields), nil
}
