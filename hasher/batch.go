package hasher

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ErrContract wraps a contract violation raised while hashing one input of a batch
var ErrContract = errors.New("hasher: contract violation")

// Batch hashes every input with fn concurrently, bounded by GOMAXPROCS.
// Results are in input order. A contract violation on any input, or ctx
// being cancelled, aborts the batch.
func Batch(ctx context.Context, fn Func, inputs [][]byte) ([][OutputSize]byte, error) {
	out := make([][OutputSize]byte, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i := range inputs {
		if gctx.Err() != nil {
			break
		}
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return hashOne(fn, inputs[i], out[i][:], i)
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func hashOne(fn Func, input, output []byte, index int) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: input %d: %v", ErrContract, index, r)
		}
	}()
	fn(input, output)
	return nil
}
