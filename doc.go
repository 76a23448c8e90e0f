// Package moviesuggestion 是一个按情绪/语言/片长/喜爱影片推荐电影的
// 无状态打分服务。
//
// 设计要点：
// - Pipeline-first: 推荐逻辑通过 Node 串联（Filter → Rank → ReRank）
// - 启动期工件: 目录与相似度矩阵只构建一次，进程生命周期内只读共享
// - 降级优先: 逐行解析失败、查询值未识别、海报查询失败都降级，不报错
package moviesuggestion

import "github.com/aniruddha-beep/movie-suggestion/pipeline"

// 轻量 facade：便于直接使用核心抽象。
type Pipeline = pipeline.Pipeline
type Node = pipeline.Node
type Kind = pipeline.Kind

const (
	KindFilter = pipeline.KindFilter
	KindRank   = pipeline.KindRank
	KindReRank = pipeline.KindReRank
)
