package pipeline

import (
	"context"

	"github.com/aniruddha-beep/movie-suggestion/core"
)

// Pipeline 是核心抽象：把推荐逻辑拆成可组合的 Node 链。
type Pipeline struct {
	Nodes []Node
}

func (p *Pipeline) Run(
	ctx context.Context,
	qctx *core.QueryContext,
	items []*core.Item,
) ([]*core.Item, error) {
	cur := items
	for _, node := range p.Nodes {
		next, err := node.Process(ctx, qctx, cur)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}
