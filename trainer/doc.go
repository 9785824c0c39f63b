// Package trainer provides the dataset partitions of a training run and
// prepares them for training on labels that the datasets already contain.
package trainer
