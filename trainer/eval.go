package trainer

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/neurlang/trainlabels/datasets"
)

// EvalDataset is either a SingleEval or a *NamedEval
type EvalDataset interface {
	evalDataset()
}

// SingleEval is one evaluation dataset
type SingleEval struct {
	Dataset datasets.Dataset
}

func (SingleEval) evalDataset() {}

// NamedEval maps names to evaluation datasets, keeping insertion order
type NamedEval struct {
	m *orderedmap.OrderedMap[string, datasets.Dataset]
}

func (*NamedEval) evalDataset() {}

// NewNamedEval creates an empty NamedEval
func NewNamedEval() *NamedEval {
	return &NamedEval{m: orderedmap.New[string, datasets.Dataset]()}
}

// Set adds or replaces the dataset under name. A replaced name keeps its position.
func (n *NamedEval) Set(name string, ds datasets.Dataset) *NamedEval {
	n.init()
	n.m.Set(name, ds)
	return n
}

// Get returns the dataset stored under name
func (n *NamedEval) Get(name string) (datasets.Dataset, bool) {
	if n.m == nil {
		return nil, false
	}
	return n.m.Get(name)
}

// Len returns the number of named datasets
func (n *NamedEval) Len() int {
	if n.m == nil {
		return 0
	}
	return n.m.Len()
}

// Keys returns the names in insertion order
func (n *NamedEval) Keys() (keys []string) {
	n.Range(func(name string, _ datasets.Dataset) bool {
		keys = append(keys, name)
		return true
	})
	return
}

// Range calls f for each name in insertion order until f returns false
func (n *NamedEval) Range(f func(name string, ds datasets.Dataset) bool) {
	if n.m == nil {
		return
	}
	for pair := n.m.Oldest(); pair != nil; pair = pair.Next() {
		if !f(pair.Key, pair.Value) {
			return
		}
	}
}

func (n *NamedEval) init() {
	if n.m == nil {
		n.m = orderedmap.New[string, datasets.Dataset]()
	}
}
