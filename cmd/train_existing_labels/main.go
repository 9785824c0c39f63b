package main

import "flag"
import "fmt"
import "os"

import "github.com/neurlang/trainlabels/datasets"
import "github.com/neurlang/trainlabels/logger"
import "github.com/neurlang/trainlabels/trainer"

// sample returns n synthetic rows, every third one labeled by a bare class id
func sample(n, offset int) (rows []datasets.Example) {
	for i := 0; i < n; i++ {
		ids := []int{offset + i, offset + i + 1}
		var label any = []int{-100, offset + i + 1}
		if i%3 == 0 {
			label = offset + i
		}
		rows = append(rows, datasets.Example{
			"input_ids":      ids,
			"attention_mask": []int{1, 1},
			"labels":         label,
		})
	}
	return
}

func main() {
	threads := flag.Int("threads", 0, "batches mapped concurrently, 0 means all cores")
	batch := flag.Int("batch", 4, "examples per batch")
	rows := flag.Int("rows", 10, "examples per partition")
	logLevel := flag.String("log-level", "info", "log level (debug, info, warn, error)")
	logJSON := flag.Bool("log-json", false, "log in json format")
	flag.Parse()

	cfg := logger.DefaultConfig()
	cfg.Level = logger.LogLevel(*logLevel)
	cfg.JSON = *logJSON
	log := logger.NewLogger(cfg)
	logger.SetDefault(log)

	var train = datasets.FromExamples(sample(*rows, 0), *batch)
	var dev = datasets.FromExamples(sample(*rows/2, 1000), *batch)
	// a batch holding one example whose labels column was stored unwrapped
	var test = datasets.NewMemory(datasets.Batch{
		"input_ids":      []any{[]int{2000, 2001}},
		"attention_mask": []any{[]int{1, 1}},
		"labels":         2001,
	})

	t := &trainer.Trainer{
		TrainDataset: train,
		EvalDataset:  trainer.NewNamedEval().Set("dev", dev).Set("test", test),
		Threads:      *threads,
		Logger:       log,
	}
	if _, err := trainer.TrainWithExistingLabels(t); err != nil {
		log.Error("label normalization failed", "err", err)
		os.Exit(1)
	}

	report("train", t.TrainDataset)
	t.EvalDataset.(*trainer.NamedEval).Range(func(name string, ds datasets.Dataset) bool {
		report(name, ds)
		return true
	})
}

func report(name string, ds datasets.Dataset) {
	m, ok := ds.(*datasets.Memory)
	if !ok {
		return
	}
	for i, b := range m.Batches() {
		fmt.Printf("%s batch %d labels %v\n", name, i, b["labels"])
	}
}
