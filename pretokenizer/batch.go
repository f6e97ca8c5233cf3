package pretokenizer

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// SplitAll splits every text with p, running at most limit splits at a time
// (limit <= 0 means no limit). Results keep the order of texts. SplitAll stops
// scheduling work once ctx is done and returns ctx.Err().
func SplitAll(ctx context.Context, p PreTokenizer, texts []string, limit int) ([][]string, error) {
	out := make([][]string, len(texts))

	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, text := range texts {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out[i] = p.Split(text)
			return nil
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
