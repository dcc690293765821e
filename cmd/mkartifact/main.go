// Command mkartifact writes a predictor artifact from a YAML description of
// an already-fitted model.
//
// Usage:
//
//	mkartifact description.yaml [model.pkl]
package main

import (
	"io"
	"io/ioutil"
	"os"

	"github.com/jbeshir/referral-predictor-frontend/model"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

type description struct {
	Kind     string            `yaml:"kind"`
	Columns  []string          `yaml:"columns"`
	Tree     []treeNode        `yaml:"tree"`
	Logistic *logisticSettings `yaml:"logistic"`
}

type treeNode struct {
	Feature   int     `yaml:"feature"`
	Threshold float64 `yaml:"threshold"`
	Left      int     `yaml:"left"`
	Right     int     `yaml:"right"`
	Leaf      bool    `yaml:"leaf"`
	Label     int     `yaml:"label"`
}

type logisticSettings struct {
	Weights   []float64 `yaml:"weights"`
	Intercept float64   `yaml:"intercept"`
	Threshold float64   `yaml:"threshold"`
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		logrus.Fatal(err)
	}
}

func run(args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return errors.New("usage: mkartifact description.yaml [output]")
	}
	out := model.DefaultArtifactPath
	if len(args) == 2 {
		out = args[1]
	}

	f, err := os.Open(args[0])
	if err != nil {
		return errors.Wrap(err, "couldn't open description")
	}
	defer f.Close()

	a, err := readDescription(f)
	if err != nil {
		return err
	}
	if err := model.SaveFile(out, a); err != nil {
		return errors.Wrap(err, "couldn't write artifact")
	}
	logrus.Infof("Wrote %s artifact with columns %v to %s", a.Kind, a.Columns, out)
	return nil
}

func readDescription(r io.Reader) (model.Artifact, error) {
	content, err := ioutil.ReadAll(r)
	if err != nil {
		return model.Artifact{}, errors.Wrap(err, "couldn't read description")
	}

	var d description
	if err := yaml.UnmarshalStrict(content, &d); err != nil {
		return model.Artifact{}, errors.Wrap(err, "couldn't parse description")
	}

	a := model.Artifact{
		Kind:    d.Kind,
		Columns: d.Columns,
	}
	for _, n := range d.Tree {
		a.Tree = append(a.Tree, model.TreeNode{
			FeatureIdx: n.Feature,
			Threshold:  n.Threshold,
			LeftChild:  n.Left,
			RightChild: n.Right,
			IsLeaf:     n.Leaf,
			ClassLabel: n.Label,
		})
	}
	if d.Logistic != nil {
		a.Logistic = &model.LogisticParams{
			Weights:   d.Logistic.Weights,
			Intercept: d.Logistic.Intercept,
			Threshold: d.Logistic.Threshold,
		}
	}
	return a, nil
}
