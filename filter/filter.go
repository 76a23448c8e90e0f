package filter

import (
	"context"

	"github.com/aniruddha-beep/movie-suggestion/core"
)

// Filter 是过滤器的抽象接口，用于判断一部影片是否应该被过滤掉。
// 返回 true 表示应该过滤（移除），false 表示保留。
type Filter interface {
	// Name 返回过滤器名称
	Name() string

	// ShouldFilter 判断影片是否应该被过滤
	ShouldFilter(ctx context.Context, qctx *core.QueryContext, movie *core.Movie) (bool, error)
}
