package parallel

import "golang.org/x/sync/errgroup"

// ForEach executes a for loop with a limited number of concurrent goroutines.
// Each goroutine processes one integer, from 0 to length.
// It returns the error of the lowest index whose body failed.
func ForEach(length, limit int, body func(i int) error) error {
	if limit <= 0 {
		limit = 1 // Default to 1 if limit is zero or negative
	}
	if length <= 0 {
		return nil // No iterations to perform
	}

	var errs = make([]error, length)
	var g errgroup.Group
	g.SetLimit(limit)

	for i := 0; i < length; i++ {
		i := i
		g.Go(func() error {
			errs[i] = body(i)
			return nil
		})
	}
	_ = g.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
