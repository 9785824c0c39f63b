// Package datasets implements the dataset types consumed by the trainer
package datasets

// Batch maps a field name to a container of per-example values.
// Usually each value is a []any with one entry per example, but a batch
// may also carry a bare scalar under a field.
type Batch map[string]any

// Example is a single row, field name to value
type Example map[string]any

// MapFunc transforms a batch. Fields present in the returned batch overwrite
// the corresponding fields of the input, every other field is retained.
type MapFunc func(Batch) (Batch, error)

// MapOptions controls a Map call
type MapOptions struct {
	Batched bool   // fn receives whole batches instead of single examples
	Desc    string // progress description, logged when the map finishes
	Threads int    // number of batches processed concurrently, 0 means all cores
}

// Dataset is a sequence of examples supporting a map operation.
// Map never modifies the receiver, it returns the transformed dataset.
type Dataset interface {
	Map(fn MapFunc, opts MapOptions) (Dataset, error)
}

// Copy returns a shallow copy of the batch
func (b Batch) Copy() Batch {
	if b == nil {
		return nil
	}
	var o = make(Batch, len(b))
	for k, v := range b {
		o[k] = v
	}
	return o
}

// Merge overwrites the fields of b with the fields of update and returns b
func (b Batch) Merge(update Batch) Batch {
	for k, v := range update {
		b[k] = v
	}
	return b
}
