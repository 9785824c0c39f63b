// Package parallel provides bounded concurrent loops used to process dataset batches.
package parallel
