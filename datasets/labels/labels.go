package labels

import (
	"github.com/pkg/errors"

	"github.com/neurlang/trainlabels/datasets"
)

// Field is the name of the supervision target field
const Field = "labels"

// ValidationError reports a field required by training that a batch lacks
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return "Labels not found in the dataset. Ensure your JSONL contains '" + e.Field + "' field."
}

// Is makes every missing labels error match ErrMissingLabels
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	return ok && t.Field == e.Field
}

// ErrMissingLabels is matched by the error NormalizeBatch returns when labels are absent
var ErrMissingLabels error = &ValidationError{Field: Field}

// NormalizeBatch keeps the existing labels of a batch in sequence form.
// A slice or array is returned unchanged, anything else is wrapped
// into a single element []any. Only the labels field is returned.
func NormalizeBatch(batch datasets.Batch) (datasets.Batch, error) {
	value, ok := batch[Field]
	if !ok {
		return nil, errors.WithStack(&ValidationError{Field: Field})
	}
	if datasets.IsSequence(value) {
		return datasets.Batch{Field: value}, nil
	}
	return datasets.Batch{Field: []any{value}}, nil
}
