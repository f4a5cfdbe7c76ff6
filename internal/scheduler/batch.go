package scheduler

import (
	"math/rand"

	"github.com/hamed0406/healthmon/internal/endpoint"
)

// Batches shuffles a copy of the endpoint list and partitions it into
// groups of min(2*maxConcurrency, N). The shuffle lowers the odds that
// endpoints of the same domain land in the same concurrency window,
// which softens rate-limit pile-up against a single domain; batching
// itself bounds how much work is in flight at once.
func Batches(eps []endpoint.Endpoint, maxConcurrency int) [][]endpoint.Endpoint {
	if len(eps) == 0 {
		return nil
	}
	if maxConcurrency < 1 {
		maxConcurrency = 1
	}

	shuffled := make([]endpoint.Endpoint, len(eps))
	copy(shuffled, eps)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	size := 2 * maxConcurrency
	if size > len(shuffled) {
		size = len(shuffled)
	}

	batches := make([][]endpoint.Endpoint, 0, (len(shuffled)+size-1)/size)
	for i := 0; i < len(shuffled); i += size {
		end := i + size
		if end > len(shuffled) {
			end = len(shuffled)
		}
		batches = append(batches, shuffled[i:end])
	}
	return batches
}
