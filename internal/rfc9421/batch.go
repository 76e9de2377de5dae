package rfc9421

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// BatchVerifyRequest is one (message, verify options) pair submitted to
// VerifyAll (§C9).
type BatchVerifyRequest struct {
	Message Message
	Options VerifyOptions
}

// BatchVerifyResult is a single request's outcome, correlated by index
// with its BatchVerifyRequest.
type BatchVerifyResult struct {
	OK  bool
	Err error
}

// VerifyAll runs verifier.Verify over every request concurrently with
// bounded parallelism, returning results in input order regardless of
// completion order. One request's failure does not cancel the others —
// this is a fan-out of independent verifications, not a transaction.
// Context cancellation stops launching new verifications; in-flight ones
// still report their result.
func VerifyAll(ctx context.Context, verifier *Verifier, requests []BatchVerifyRequest) []BatchVerifyResult {
	results := make([]BatchVerifyResult, len(requests))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, req := range requests {
		i, req := i, req
		g.Go(func() error {
			select {
			case <-ctx.Done():
				results[i] = BatchVerifyResult{OK: false, Err: ctx.Err()}
				return nil
			default:
			}
			err := verifier.Verify(req.Message, req.Options)
			results[i] = BatchVerifyResult{OK: err == nil, Err: err}
			return nil
		})
	}
	_ = g.Wait()

	return results
}
