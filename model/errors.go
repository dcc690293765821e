package model

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrArtifactNotFound is returned by Load when there is no file at the
// artifact path.
var ErrArtifactNotFound = errors.New("model artifact not found")

// DeserializationError means the artifact exists but its contents are not a
// usable predictor.
type DeserializationError struct {
	Path string
	Err  error
}

func (e *DeserializationError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("couldn't deserialize model artifact: %s", e.Err)
	}
	return fmt.Sprintf("couldn't deserialize model artifact %s: %s", e.Path, e.Err)
}

func (e *DeserializationError) Unwrap() error {
	return e.Err
}

func (e *DeserializationError) Cause() error {
	return e.Err
}
