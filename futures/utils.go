package futures

import (
	"context"

	"github.com/abevier/rsk/result"
)

// ResolveAll waits for all of the provided Futures to complete and returns a result.Result for each
// future at the index corresponding to the provided slice.
// If any future was aborted or canceled, or if the provided context is canceled, the first such
// error is returned instead of the results.
func ResolveAll[S any, F any](ctx context.Context, fs []*Future[S, F]) ([]result.Result[S, F], error) {
	res := make([]result.Result[S, F], 0, len(fs))

	for _, f := range fs {
		r, err := f.Get(ctx)
		if err != nil {
			return nil, err
		}
		res = append(res, r)
	}

	return res, nil
}
