package service

import "context"

// SequenceSource hands out the next value of a named durable counter.
// Implementations must make the increment atomic at the store level;
// repository.SequenceRepo satisfies this with a single row-locked
// UPDATE. Values obtained from Next are consumed immediately: if the
// caller's own persist step fails afterwards, the value is skipped,
// never returned to the pool.
type SequenceSource interface {
	Next(ctx context.Context, name string) (uint64, error)
}
