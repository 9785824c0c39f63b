package parallel

import "runtime"

import "github.com/klauspost/cpuid/v2"

// DefaultThreads reports the number of logical cores
func DefaultThreads() int {
	if n := cpuid.CPU.LogicalCores; n > 0 {
		return n
	}
	return runtime.NumCPU()
}
