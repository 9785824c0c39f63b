// Package main provides a demo program for preparing datasets that already carry labels.
// It builds small in-memory train and evaluation partitions shaped like JSONL rows
// (input_ids, attention_mask, labels) and normalizes their labels before training.
package main
