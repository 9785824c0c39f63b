package trainer

import (
	"github.com/pkg/errors"

	"github.com/neurlang/trainlabels/datasets"
	"github.com/neurlang/trainlabels/datasets/labels"
	"github.com/neurlang/trainlabels/logger"
)

// Trainer holds the dataset partitions used for training
type Trainer struct {
	TrainDataset datasets.Dataset // nil when absent
	EvalDataset  EvalDataset      // nil when absent

	Threads int           // batches mapped concurrently, 0 means all cores
	Logger  logger.Logger // nil means logger.Default()
}

// TrainWithExistingLabels prepares a trainer to train on labels already present
// in its datasets (JSONL rows with input_ids, attention_mask and labels).
// Each partition is replaced by its batched map through labels.NormalizeBatch.
//
// Processing stops at the first failing partition, partitions mapped before
// it keep their new datasets.
func TrainWithExistingLabels(t *Trainer) (*Trainer, error) {
	if t == nil {
		return nil, nil
	}
	log := logger.Or(t.Logger)

	if t.TrainDataset != nil {
		ds, err := t.normalize(t.TrainDataset, "Processing training dataset")
		if err != nil {
			return t, err
		}
		t.TrainDataset = ds
	}

	switch eval := t.EvalDataset.(type) {
	case nil:
	case *NamedEval:
		if eval == nil {
			break
		}
		var err error
		eval.Range(func(name string, ds datasets.Dataset) bool {
			if ds == nil {
				log.Warn("skipping absent evaluation dataset", "name", name)
				return true
			}
			ds, err = t.normalize(ds, "Processing evaluation dataset "+name)
			if err != nil {
				return false
			}
			eval.Set(name, ds)
			return true
		})
		if err != nil {
			return t, err
		}
	case SingleEval:
		if eval.Dataset == nil {
			break
		}
		ds, err := t.normalize(eval.Dataset, "Processing evaluation dataset")
		if err != nil {
			return t, err
		}
		t.EvalDataset = SingleEval{Dataset: ds}
	}

	return t, nil
}

func (t *Trainer) normalize(ds datasets.Dataset, desc string) (datasets.Dataset, error) {
	out, err := ds.Map(labels.NormalizeBatch, datasets.MapOptions{
		Batched: true,
		Desc:    desc,
		Threads: t.Threads,
	})
	if err != nil {
		return nil, errors.Wrap(err, "normalize labels")
	}
	return out, nil
}
