package parallel

import "sync"

// Map runs fn over every input on a worker pool and returns the outputs
// in input order, so concurrent execution never changes result ordering.
// All inputs run even when some fail; the first error in input order is
// returned.
func Map[In any, Out any](workers int, inputs []In, fn func(In) (Out, error)) ([]Out, error) {
	if len(inputs) == 0 {
		return nil, nil
	}

	pool, err := NewWorkerPool(workers)
	if err != nil {
		return nil, err
	}

	outputs := make([]Out, len(inputs))
	errs := make([]error, len(inputs))

	var wg sync.WaitGroup
	for i := range inputs {
		i := i
		wg.Add(1)
		pool.Submit(func() {
			defer wg.Done()
			outputs[i], errs[i] = fn(inputs[i])
		})
	}
	wg.Wait()
	pool.Close()

	for _, err := range errs {
		if err != nil {
			return outputs, err
		}
	}
	return outputs, nil
}
