package crawl

import "golang.org/x/time/rate"

// NewLimiter returns a token-bucket limiter pacing article downloads at
// rps requests per second with a burst of 1 (no bursting). The gazette
// API is a single host, so one shared bucket covers every worker.
func NewLimiter(rps float64) *rate.Limiter {
	return rate.NewLimiter(rate.Limit(rps), 1)
}
