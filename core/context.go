package core

import "github.com/aniruddha-beep/movie-suggestion/pkg/utils"

// QueryContext 承载一次推荐请求的用户输入，贯穿整个 Pipeline 透传。
// 所有字段都是可选的：空值表示"不按该维度过滤/排序"，不是错误。
type QueryContext struct {
	// Mood 是用户给出的情绪标签，经 mood 包映射为类型集合。
	// 未识别的情绪不过滤（宽容降级，不是输入校验）。
	Mood string

	// Language 按 original_language 大小写不敏感精确匹配。
	Language string

	// Length 是片长分桶（short/medium/long），按 LengthCat 精确匹配。
	Length string

	// FavoriteTitle 是相似度排序的种子影片标题。
	// 解析失败时静默降级为评分/热度排序。
	FavoriteTitle string

	// TopN 是结果截断数量，<= 0 时使用服务默认值。
	TopN int

	// Labels 是请求级标签，用于解释与观测。
	Labels map[string]utils.Label

	// Params 请求级上下文参数，供规则过滤等扩展使用。
	Params map[string]any
}

// PutLabel 写入请求级 Label。
func (q *QueryContext) PutLabel(key string, lbl utils.Label) {
	if q.Labels == nil {
		q.Labels = make(map[string]utils.Label)
	}
	if old, ok := q.Labels[key]; ok {
		q.Labels[key] = utils.MergeLabel(old, lbl)
		return
	}
	q.Labels[key] = lbl
}

// GetLabel 获取请求级 Label。
func (q *QueryContext) GetLabel(key string) (utils.Label, bool) {
	if q.Labels == nil {
		return utils.Label{}, false
	}
	lbl, ok := q.Labels[key]
	return lbl, ok
}
