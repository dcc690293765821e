package model

import (
	"path/filepath"
	"testing"
)

var testColumns = []string{"seat_comfort", "cabin_service", "food_bev", "entertainment", "ground_service", "value_for_money"}

// testTreeArtifact recommends when value_for_money > 2, except that a seat
// comfort of 0 always yields label 2.
func testTreeArtifact() Artifact {
	return Artifact{
		Kind:    KindDecisionTree,
		Columns: testColumns,
		Tree: []TreeNode{
			{FeatureIdx: 0, Threshold: 0, LeftChild: 1, RightChild: 2},
			{IsLeaf: true, ClassLabel: 2},
			{FeatureIdx: 5, Threshold: 2, LeftChild: 3, RightChild: 4},
			{IsLeaf: true, ClassLabel: 0},
			{IsLeaf: true, ClassLabel: 1},
		},
	}
}

func testLogisticArtifact() Artifact {
	return Artifact{
		Kind:    KindLogisticRegression,
		Columns: testColumns,
		Logistic: &LogisticParams{
			Weights:   []float64{0.5, 0.5, 0.2, 0.1, 0.3, 0.9},
			Intercept: -6,
		},
	}
}

func writeTestArtifact(t *testing.T, a Artifact) string {
	path := filepath.Join(t.TempDir(), DefaultArtifactPath)
	if err := SaveFile(path, a); err != nil {
		t.Fatalf("Unexpected error saving artifact: %s", err)
	}
	return path
}
