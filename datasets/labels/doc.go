// Package labels normalizes the existing labels field of dataset batches.
// Datasets read from JSONL already carry input_ids, attention_mask and labels
// per example, this package makes sure labels stay a sequence before training.
package labels
