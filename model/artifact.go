package model

import (
	"context"
	"encoding/gob"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/jbeshir/moonbird-auth-frontend/ctxlogrus"
	"github.com/pkg/errors"
)

const DefaultArtifactPath = "model.pkl"

const (
	KindDecisionTree       = "decision_tree"
	KindLogisticRegression = "logistic_regression"
)

// Artifact is the serialized form of a fitted predictor.
type Artifact struct {
	Kind     string
	Columns  []string
	Tree     []TreeNode
	Logistic *LogisticParams
}

// Load reads the artifact at path. The file is closed before Load returns,
// whether or not decoding succeeded.
func Load(ctx context.Context, path string) (*Model, error) {
	l := ctxlogrus.Get(ctx)

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(ErrArtifactNotFound, "no file at %s", path)
		}
		return nil, errors.Wrap(err, "couldn't open model artifact")
	}
	defer f.Close()

	m, err := Decode(f)
	if err != nil {
		if de, ok := err.(*DeserializationError); ok {
			de.Path = path
		}
		return nil, err
	}

	l.Infof("Loaded %s model from %s with columns %v", m.Kind(), path, m.Columns())
	return m, nil
}

// Decode reads one artifact from r.
func Decode(r io.Reader) (*Model, error) {
	var a Artifact
	if err := gob.NewDecoder(r).Decode(&a); err != nil {
		return nil, &DeserializationError{Err: err}
	}

	m, err := newModel(a)
	if err != nil {
		return nil, &DeserializationError{Err: err}
	}
	return m, nil
}

// Save writes a in the format Load reads. Artifacts that wouldn't load are
// rejected.
func Save(w io.Writer, a Artifact) error {
	if _, err := newModel(a); err != nil {
		return errors.Wrap(err, "refusing to save invalid artifact")
	}
	return errors.Wrap(gob.NewEncoder(w).Encode(&a), "couldn't encode artifact")
}

// SaveFile writes a to path. The artifact is written to a temporary file
// beside path and renamed into place, so a failed save leaves any existing
// artifact untouched.
func SaveFile(path string, a Artifact) error {
	if _, err := newModel(a); err != nil {
		return errors.Wrap(err, "refusing to save invalid artifact")
	}

	f, err := ioutil.TempFile(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return errors.Wrap(err, "couldn't create artifact file")
	}
	tmpPath := f.Name()

	err = Save(f, a)
	if closeErr := f.Close(); err == nil && closeErr != nil {
		err = errors.Wrap(closeErr, "couldn't close artifact file")
	}
	if err == nil {
		err = errors.Wrap(os.Rename(tmpPath, path), "couldn't move artifact into place")
	}
	if err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}
