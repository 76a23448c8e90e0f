package filter

import (
	"context"

	"github.com/aniruddha-beep/movie-suggestion/core"
)

// LengthFilter 按片长分桶精确匹配。
// 注意：分桶值不做校验——未知的分桶（拼写错误等）会过滤掉全部候选，
// 得到空结果而不是错误。
type LengthFilter struct{}

func (f *LengthFilter) Name() string {
	return "filter.length"
}

func (f *LengthFilter) ShouldFilter(
	_ context.Context,
	qctx *core.QueryContext,
	movie *core.Movie,
) (bool, error) {
	if qctx == nil || qctx.Length == "" {
		return false, nil
	}
	return movie.LengthCat != qctx.Length, nil
}
