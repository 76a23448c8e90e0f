package filter

import (
	"context"

	"github.com/aniruddha-beep/movie-suggestion/core"
	"github.com/aniruddha-beep/movie-suggestion/mood"
)

// GenreFilter 按类型集合过滤：影片 GenreList 与目标集合有非空交集则保留。
// Genres 为空时从查询的情绪标签解析目标集合；未识别的情绪不做任何
// 过滤（no-op：既不报错，也不清空候选）。
type GenreFilter struct {
	Genres []string
}

func (f *GenreFilter) Name() string {
	return "filter.genre"
}

func (f *GenreFilter) ShouldFilter(
	_ context.Context,
	qctx *core.QueryContext,
	movie *core.Movie,
) (bool, error) {
	genres := f.Genres
	if len(genres) == 0 {
		if qctx == nil {
			return false, nil
		}
		g, ok := mood.Genres(qctx.Mood)
		if !ok {
			return false, nil
		}
		genres = g
	}
	return !movie.HasGenre(genres), nil
}
