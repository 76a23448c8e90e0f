package filter

import (
	"context"

	"github.com/aniruddha-beep/movie-suggestion/core"
	"github.com/aniruddha-beep/movie-suggestion/pkg/dsl"
)

// RuleFilter 按配置给出的 CEL 规则过滤候选：所有规则都为真才保留。
// 规则在构造时编译，编译失败是配置错误（启动期失败）；
// 求值失败按过滤器错误处理，由 FilterNode 跳过该过滤器（降级保留）。
type RuleFilter struct {
	programs []*dsl.Program
}

// NewRuleFilter 编译规则集合。空规则集返回 nil，调用方不安装该过滤器。
func NewRuleFilter(rules []string) (*RuleFilter, error) {
	if len(rules) == 0 {
		return nil, nil
	}
	programs := make([]*dsl.Program, 0, len(rules))
	for _, r := range rules {
		p, err := dsl.Compile(r)
		if err != nil {
			return nil, err
		}
		programs = append(programs, p)
	}
	return &RuleFilter{programs: programs}, nil
}

func (f *RuleFilter) Name() string {
	return "filter.rule"
}

func (f *RuleFilter) ShouldFilter(
	_ context.Context,
	qctx *core.QueryContext,
	movie *core.Movie,
) (bool, error) {
	movieVars := movieToVars(movie)
	queryVars := queryToVars(qctx)

	for _, p := range f.programs {
		ok, err := p.Eval(movieVars, queryVars)
		if err != nil {
			return false, err
		}
		if !ok {
			return true, nil
		}
	}
	return false, nil
}

// movieToVars 把影片摊平为 CEL 变量 map。
func movieToVars(m *core.Movie) map[string]any {
	genres := make([]any, len(m.GenreList))
	for i, g := range m.GenreList {
		genres[i] = g
	}
	return map[string]any{
		"title":             m.Title,
		"original_language": m.OriginalLanguage,
		"runtime":           m.Runtime,
		"length_cat":        m.LengthCat,
		"genres":            genres,
		"vote_average":      m.VoteAverage,
		"vote_count":        m.VoteCount,
		"popularity":        m.Popularity,
		"release_date":      m.ReleaseDate,
	}
}

// queryToVars 把查询上下文摊平为 CEL 变量 map。
func queryToVars(q *core.QueryContext) map[string]any {
	if q == nil {
		return map[string]any{}
	}
	vars := map[string]any{
		"mood":      q.Mood,
		"language":  q.Language,
		"length":    q.Length,
		"fav_movie": q.FavoriteTitle,
	}
	for k, v := range q.Params {
		vars[k] = v
	}
	return vars
}
