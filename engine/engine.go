// Package engine 把过滤/排序/截断节点组装成一次查询的 Pipeline，
// 并在排序结果上并发补全海报。
package engine

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/aniruddha-beep/movie-suggestion/core"
	"github.com/aniruddha-beep/movie-suggestion/filter"
	"github.com/aniruddha-beep/movie-suggestion/mood"
	"github.com/aniruddha-beep/movie-suggestion/pipeline"
	"github.com/aniruddha-beep/movie-suggestion/poster"
	"github.com/aniruddha-beep/movie-suggestion/rank"
	"github.com/aniruddha-beep/movie-suggestion/rerank"
	"github.com/aniruddha-beep/movie-suggestion/textsim"
)

// DefaultTopN 是未指定时的结果截断数量。
const DefaultTopN = 5

// PosterFetcher 是海报补全的协作方接口：尽力而为，永不出错。
type PosterFetcher interface {
	Fetch(ctx context.Context, title string) string
}

// Recommendation 是对外输出的影片摘要。
type Recommendation struct {
	Title       string   `json:"title"`
	ReleaseDate string   `json:"release_date"`
	VoteAverage float64  `json:"vote_average"`
	Genres      []string `json:"genres"`
	Poster      string   `json:"poster"`
}

// Engine 持有启动时构建的两个不可变工件（目录与相似度矩阵），
// 按查询组装 Pipeline 执行。Engine 本身无状态，可被并发使用。
type Engine struct {
	Catalog *core.Catalog
	Matrix  *textsim.Matrix
	Poster  PosterFetcher

	// Rules 是配置提供的可选规则过滤器，nil 表示不安装。
	Rules *filter.RuleFilter

	// TopN 是服务级默认截断数量，<= 0 时使用 DefaultTopN。
	TopN int
}

// Recommend 执行一次推荐查询。
//
// 所有输入都是可选的：缺失或未识别的值降级为"不过滤"或回退排序，
// 从不报错；过滤后为空直接返回空结果。错误只可能来自 Pipeline
// 自身（当前节点集合下实际不会发生）。
func (e *Engine) Recommend(ctx context.Context, qctx *core.QueryContext) ([]Recommendation, error) {
	if qctx == nil {
		qctx = &core.QueryContext{}
	}

	// 候选集从目录全量行号播种
	items := make([]*core.Item, e.Catalog.Len())
	for i := range items {
		items[i] = core.NewItem(i)
	}

	var filters []filter.Filter
	if qctx.Language != "" {
		filters = append(filters, &filter.LanguageFilter{})
	}
	if _, ok := mood.Genres(qctx.Mood); ok {
		// 未识别的情绪不安装过滤器：不报错，也不过滤
		filters = append(filters, &filter.GenreFilter{})
	}
	if qctx.Length != "" {
		filters = append(filters, &filter.LengthFilter{})
	}
	if e.Rules != nil {
		filters = append(filters, e.Rules)
	}

	// 排序分支：种子标题解析成功走相似度，否则回退评分/热度
	var rankNode pipeline.Node
	if idx, ok := e.Catalog.ResolveTitle(qctx.FavoriteTitle); ok {
		rankNode = &rank.SimilarityNode{Matrix: e.Matrix, Seed: idx}
	} else {
		rankNode = &rank.RatingNode{Catalog: e.Catalog}
	}

	p := &pipeline.Pipeline{
		Nodes: []pipeline.Node{
			&filter.FilterNode{Catalog: e.Catalog, Filters: filters},
			rankNode,
			&rerank.TopNNode{N: e.topN(qctx)},
		},
	}

	ranked, err := p.Run(ctx, qctx, items)
	if err != nil {
		return nil, err
	}

	return e.decorate(ctx, ranked), nil
}

func (e *Engine) topN(qctx *core.QueryContext) int {
	if qctx.TopN > 0 {
		return qctx.TopN
	}
	if e.TopN > 0 {
		return e.TopN
	}
	return DefaultTopN
}

// decorate 组装输出并并发补全海报。
// 各查询相互独立，完成顺序不影响输出顺序（输出顺序由排序决定）。
func (e *Engine) decorate(ctx context.Context, items []*core.Item) []Recommendation {
	out := make([]Recommendation, 0, len(items))
	for _, it := range items {
		m := e.Catalog.Movie(it.Index)
		if m == nil {
			continue
		}
		out = append(out, Recommendation{
			Title:       m.Title,
			ReleaseDate: m.ReleaseDate,
			VoteAverage: m.VoteAverage,
			Genres:      m.GenreList,
			Poster:      poster.DefaultPlaceholder,
		})
	}

	if e.Poster == nil {
		return out
	}

	eg, gctx := errgroup.WithContext(ctx)
	for i := range out {
		i := i
		eg.Go(func() error {
			out[i].Poster = e.Poster.Fetch(gctx, out[i].Title)
			return nil
		})
	}
	// Fetch 永不出错，Wait 只用于汇合
	_ = eg.Wait()
	return out
}
