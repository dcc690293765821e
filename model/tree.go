package model

import (
	"github.com/pkg/errors"
)

// TreeNode is one node of a flattened decision tree. Children always sit
// after their parent in the node slice.
type TreeNode struct {
	FeatureIdx int
	Threshold  float64
	LeftChild  int
	RightChild int
	ClassLabel int
	IsLeaf     bool
}

type decisionTree struct {
	nodes []TreeNode
}

func newDecisionTree(nodes []TreeNode, featureCount int) (*decisionTree, error) {
	if len(nodes) == 0 {
		return nil, errors.New("decision tree has no nodes")
	}
	for i, n := range nodes {
		if n.IsLeaf {
			continue
		}
		if n.FeatureIdx < 0 || n.FeatureIdx >= featureCount {
			return nil, errors.Errorf("node %d splits on feature %d, only %d features", i, n.FeatureIdx, featureCount)
		}
		for _, child := range []int{n.LeftChild, n.RightChild} {
			if child <= i || child >= len(nodes) {
				return nil, errors.Errorf("node %d has invalid child %d", i, child)
			}
		}
	}
	return &decisionTree{nodes: append([]TreeNode(nil), nodes...)}, nil
}

func (dt *decisionTree) classify(x []float64) int {
	idx := 0
	for {
		node := dt.nodes[idx]
		if node.IsLeaf {
			return node.ClassLabel
		}
		if x[node.FeatureIdx] <= node.Threshold {
			idx = node.LeftChild
		} else {
			idx = node.RightChild
		}
	}
}
