package datasets

import (
	"reflect"

	"github.com/pkg/errors"

	"github.com/neurlang/trainlabels/logger"
	"github.com/neurlang/trainlabels/parallel"
)

// DefaultBatchSize is the number of examples per batch used by FromExamples
const DefaultBatchSize = 1000

// ErrRaggedBatch is returned by an unbatched Map over a batch whose columns
// are not sequences of equal length
var ErrRaggedBatch = errors.New("batch columns are not sequences of equal length")

// Memory is an in-memory Dataset stored as a list of batches
type Memory struct {
	batches []Batch

	// Logger receives the map progress, nil means logger.Default()
	Logger logger.Logger
}

// NewMemory creates a dataset holding the batches as given
func NewMemory(batches ...Batch) *Memory {
	return &Memory{batches: batches}
}

// FromExamples groups examples into batches of at most batchSize rows,
// each field becoming a []any column. Fields missing in an example are nil.
func FromExamples(examples []Example, batchSize int) *Memory {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	var fields = make(map[string]struct{})
	for _, ex := range examples {
		for k := range ex {
			fields[k] = struct{}{}
		}
	}
	var m Memory
	for start := 0; start < len(examples); start += batchSize {
		end := start + batchSize
		if end > len(examples) {
			end = len(examples)
		}
		var b = make(Batch, len(fields))
		for k := range fields {
			var col = make([]any, end-start)
			for i, ex := range examples[start:end] {
				col[i] = ex[k]
			}
			b[k] = col
		}
		m.batches = append(m.batches, b)
	}
	return &m
}

// Len returns the number of batches
func (m *Memory) Len() int {
	return len(m.batches)
}

// Batches returns shallow copies of the stored batches
func (m *Memory) Batches() []Batch {
	var o = make([]Batch, len(m.batches))
	for i, b := range m.batches {
		o[i] = b.Copy()
	}
	return o
}

// Map applies fn to every batch, or to every example when opts.Batched is false.
// On error no dataset is returned and the receiver is left untouched.
func (m *Memory) Map(fn MapFunc, opts MapOptions) (Dataset, error) {
	threads := opts.Threads
	if threads <= 0 {
		threads = parallel.DefaultThreads()
	}
	desc := opts.Desc
	if desc == "" {
		desc = "map"
	}

	var out = make([]Batch, len(m.batches))
	err := parallel.ForEach(len(m.batches), threads, func(i int) (err error) {
		if opts.Batched {
			out[i], err = mapBatch(fn, m.batches[i])
		} else {
			out[i], err = mapExamples(fn, m.batches[i])
		}
		return errors.Wrapf(err, "%s: batch %d", desc, i)
	})
	if err != nil {
		return nil, err
	}

	logger.Or(m.Logger).Info(desc, "batches", len(out), "threads", threads)
	return &Memory{batches: out, Logger: m.Logger}, nil
}

func mapBatch(fn MapFunc, b Batch) (Batch, error) {
	update, err := fn(b.Copy())
	if err != nil {
		return nil, err
	}
	return b.Copy().Merge(update), nil
}

func mapExamples(fn MapFunc, b Batch) (Batch, error) {
	n, err := rows(b)
	if err != nil {
		return nil, err
	}
	var updated = make(map[string][]any)
	for i := 0; i < n; i++ {
		var ex = make(Batch, len(b))
		for k, v := range b {
			ex[k] = reflect.ValueOf(v).Index(i).Interface()
		}
		update, err := fn(ex)
		if err != nil {
			return nil, errors.Wrapf(err, "example %d", i)
		}
		for k, v := range update {
			if updated[k] == nil {
				updated[k] = make([]any, n)
			}
			updated[k][i] = v
		}
	}
	var o = b.Copy()
	for k, col := range updated {
		o[k] = col
	}
	return o, nil
}

// rows reports the common column length of b
func rows(b Batch) (n int, err error) {
	first := true
	for k, v := range b {
		l, ok := SequenceLen(v)
		if !ok || (!first && l != n) {
			return 0, errors.Wrapf(ErrRaggedBatch, "field %q", k)
		}
		n, first = l, false
	}
	return n, nil
}

// IsSequence reports whether v is a slice or an array
func IsSequence(v any) bool {
	_, ok := SequenceLen(v)
	return ok
}

// SequenceLen returns the length of v when v is a slice or an array
func SequenceLen(v any) (int, bool) {
	switch s := v.(type) {
	case []any:
		return len(s), true
	case nil:
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return rv.Len(), true
	}
	return 0, false
}
