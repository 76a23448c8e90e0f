package filter

import (
	"context"
	"strings"

	"github.com/aniruddha-beep/movie-suggestion/core"
)

// LanguageFilter 按 original_language 过滤，大小写不敏感的精确匹配。
// 查询未给出语言时不应安装此过滤器。
type LanguageFilter struct{}

func (f *LanguageFilter) Name() string {
	return "filter.language"
}

func (f *LanguageFilter) ShouldFilter(
	_ context.Context,
	qctx *core.QueryContext,
	movie *core.Movie,
) (bool, error) {
	if qctx == nil || qctx.Language == "" {
		return false, nil
	}
	return !strings.EqualFold(movie.OriginalLanguage, qctx.Language), nil
}
