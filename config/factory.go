package config

import (
	"fmt"

	"github.com/aniruddha-beep/movie-suggestion/core"
	"github.com/aniruddha-beep/movie-suggestion/filter"
	"github.com/aniruddha-beep/movie-suggestion/pipeline"
	"github.com/aniruddha-beep/movie-suggestion/pkg/conv"
	"github.com/aniruddha-beep/movie-suggestion/rank"
	"github.com/aniruddha-beep/movie-suggestion/rerank"
	"github.com/aniruddha-beep/movie-suggestion/textsim"
)

// DefaultFactory 返回一个包含内置 Node 构建器的工厂。
// 目录与矩阵是启动期工件，通过闭包注入；查询相关的过滤器
//（语言/情绪/片长）读取 QueryContext，无需配置即可安装。
func DefaultFactory(cat *core.Catalog, m *textsim.Matrix) *pipeline.NodeFactory {
	factory := pipeline.NewNodeFactory()

	factory.Register("filter.query", func(cfg map[string]interface{}) (pipeline.Node, error) {
		return buildQueryFilterNode(cat, cfg)
	})
	factory.Register("rank.rating", func(_ map[string]interface{}) (pipeline.Node, error) {
		return &rank.RatingNode{Catalog: cat}, nil
	})
	factory.Register("rank.similarity", func(cfg map[string]interface{}) (pipeline.Node, error) {
		// 固定种子的相似度排序：seed 配置为标题，构建期解析为行号。
		// 按查询动态选种子的链路走 engine，不走配置。
		title := conv.ConfigGet[string](cfg, "seed", "")
		idx, ok := cat.ResolveTitle(title)
		if !ok {
			return nil, fmt.Errorf("rank.similarity: seed title %q not in catalog", title)
		}
		return &rank.SimilarityNode{Matrix: m, Seed: idx}, nil
	})
	factory.Register("rerank.topn", func(cfg map[string]interface{}) (pipeline.Node, error) {
		n := int(conv.ConfigGetInt64(cfg, "n", 5))
		return &rerank.TopNNode{N: n}, nil
	})

	return factory
}

// buildQueryFilterNode 组装标准的查询过滤节点：
// 语言/情绪/片长过滤器始终安装（查询为空时自身为 no-op），
// rules 配置项提供可选的 CEL 规则。
func buildQueryFilterNode(cat *core.Catalog, cfg map[string]interface{}) (pipeline.Node, error) {
	filters := []filter.Filter{
		&filter.LanguageFilter{},
		&filter.GenreFilter{},
		&filter.LengthFilter{},
	}

	rules := conv.SliceAnyToString(cfg["rules"])
	rf, err := filter.NewRuleFilter(rules)
	if err != nil {
		return nil, err
	}
	if rf != nil {
		filters = append(filters, rf)
	}

	return &filter.FilterNode{Catalog: cat, Filters: filters}, nil
}
