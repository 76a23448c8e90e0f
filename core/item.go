package core

import "github.com/aniruddha-beep/movie-suggestion/pkg/utils"

// Item 是推荐链路中的统一承载结构：目录行号、分数、标签。
// Index 关联 Catalog 与相似度矩阵的同一行；Score 用于排序决策；
// Labels 用于解释与观测（过滤原因、排序来源等）。
type Item struct {
	Index  int
	Score  float64
	Labels map[string]utils.Label
}

func NewItem(index int) *Item {
	return &Item{
		Index:  index,
		Score:  0,
		Labels: make(map[string]utils.Label),
	}
}

// PutLabel 写入 Label；若已存在同名 key，则按默认 Merge 规则累积。
func (it *Item) PutLabel(key string, lbl utils.Label) {
	if it.Labels == nil {
		it.Labels = make(map[string]utils.Label)
	}
	if old, ok := it.Labels[key]; ok {
		it.Labels[key] = utils.MergeLabel(old, lbl)
		return
	}
	it.Labels[key] = lbl
}
