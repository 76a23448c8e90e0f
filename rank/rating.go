package rank

import (
	"context"
	"sort"

	"github.com/aniruddha-beep/movie-suggestion/core"
	"github.com/aniruddha-beep/movie-suggestion/pipeline"
	"github.com/aniruddha-beep/movie-suggestion/pkg/utils"
)

// RatingNode 是相似度排序的回退分支：按 vote_average 降序，
// 同分再按 popularity 降序。稳定排序，余下平局保持目录原始顺序。
//
// - 写入 labels：rank_source = rating
// - 更新 item.Score 为 vote_average
type RatingNode struct {
	Catalog *core.Catalog
}

func (n *RatingNode) Name() string        { return "rank.rating" }
func (n *RatingNode) Kind() pipeline.Kind { return pipeline.KindRank }

func (n *RatingNode) Process(
	_ context.Context,
	_ *core.QueryContext,
	items []*core.Item,
) ([]*core.Item, error) {
	if n.Catalog == nil || len(items) == 0 {
		return items, nil
	}

	for _, it := range items {
		if it == nil {
			continue
		}
		if m := n.Catalog.Movie(it.Index); m != nil {
			it.Score = m.VoteAverage
		}
		it.PutLabel("rank_source", utils.Label{Value: "rating", Source: "rank"})
	}

	sort.SliceStable(items, func(i, j int) bool {
		mi := n.movie(items[i])
		mj := n.movie(items[j])
		if mi == nil {
			return false
		}
		if mj == nil {
			return true
		}
		if mi.VoteAverage != mj.VoteAverage {
			return mi.VoteAverage > mj.VoteAverage
		}
		return mi.Popularity > mj.Popularity
	})
	return items, nil
}

func (n *RatingNode) movie(it *core.Item) *core.Movie {
	if it == nil {
		return nil
	}
	return n.Catalog.Movie(it.Index)
}
