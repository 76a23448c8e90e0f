package pipeline

import (
	"context"

	"github.com/aniruddha-beep/movie-suggestion/core"
)

// Kind 用于标记 Node 类型，方便观测/治理/编排（例如按阶段打点）。
type Kind string

const (
	KindFilter Kind = "filter" // 过滤阶段：剔除不符合约束的候选
	KindRank   Kind = "rank"   // 排序阶段：对候选打分并排序
	KindReRank Kind = "rerank" // 重排阶段：在排序结果上截断/修饰
)

// Node 是 Pipeline 的最小可扩展单元。
// 统一采用"输入 items -> 输出 items"的形态，方便 Filter 截断、Rank 重排等操作。
// 候选集由目录全量行号播种，不存在单独的召回阶段。
type Node interface {
	Name() string
	Kind() Kind

	Process(
		ctx context.Context,
		qctx *core.QueryContext,
		items []*core.Item,
	) ([]*core.Item, error)
}
