package rank

import (
	"context"
	"sort"

	"github.com/aniruddha-beep/movie-suggestion/core"
	"github.com/aniruddha-beep/movie-suggestion/pipeline"
	"github.com/aniruddha-beep/movie-suggestion/pkg/utils"
	"github.com/aniruddha-beep/movie-suggestion/textsim"
)

// SimilarityNode 按与种子影片的文本相似度降序排序。
// Seed 是种子影片在目录中的行号，由调用方在安装节点前解析；
// 解析失败时应安装 RatingNode 而不是本节点。
//
// - 写入 labels：rank_source = similarity
// - 更新 item.Score 为 similarity[Seed][item.Index]
// - 稳定排序：同分保持目录原始相对顺序
type SimilarityNode struct {
	Matrix *textsim.Matrix
	Seed   int
}

func (n *SimilarityNode) Name() string        { return "rank.similarity" }
func (n *SimilarityNode) Kind() pipeline.Kind { return pipeline.KindRank }

func (n *SimilarityNode) Process(
	_ context.Context,
	_ *core.QueryContext,
	items []*core.Item,
) ([]*core.Item, error) {
	if n.Matrix == nil || len(items) == 0 {
		return items, nil
	}

	for _, it := range items {
		if it == nil {
			continue
		}
		it.Score = n.Matrix.At(n.Seed, it.Index)
		it.PutLabel("rank_source", utils.Label{Value: "similarity", Source: "rank"})
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i] == nil {
			return false
		}
		if items[j] == nil {
			return true
		}
		return items[i].Score > items[j].Score
	})
	return items, nil
}
