// Package textsim 构建影片简介的 TF-IDF 向量表示与稠密余弦相似度矩阵。
//
// 索引只在启动时对全量简介构建一次，无增量更新路径；词表是那一次
// 构建观察到的全部词项。矩阵是 O(N²) 的时间与空间，只因目录规模
// 有界（低千行级）且只建一次才可接受。
package textsim

import (
	"math"
	"regexp"
	"strings"
)

// 词项为连续 2 个及以上的字母/数字（与常见向量化实现的
// token 规则一致），短于 2 的片段丢弃。
var tokenPattern = regexp.MustCompile(`[\pL\pN]{2,}`)

// tokenize 切分并小写化文本，剔除停用词。
func tokenize(text string) []string {
	raw := tokenPattern.FindAllString(strings.ToLower(text), -1)
	out := make([]string, 0, len(raw))
	for _, t := range raw {
		if IsStopWord(t) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// vector 是一条简介的稀疏 TF-IDF 向量：词项 ID -> 权重。
// 构建完成后已做 L2 归一化，两向量点积即余弦相似度。
type vector map[int]float64

// norm 返回向量的 L2 范数。
func (v vector) norm() float64 {
	var sum float64
	for _, w := range v {
		sum += w * w
	}
	return math.Sqrt(sum)
}

// dot 计算两个稀疏向量的点积，遍历较小的一方。
func dot(a, b vector) float64 {
	if len(b) < len(a) {
		a, b = b, a
	}
	var sum float64
	for id, wa := range a {
		if wb, ok := b[id]; ok {
			sum += wa * wb
		}
	}
	return sum
}

// vectorize 对整批简介做 TF-IDF 向量化。
// tf 为词项原始计数；idf = ln((1+n)/(1+df)) + 1（平滑），最后 L2 归一化。
// 空简介得到空向量（零向量）。
func vectorize(overviews []string) []vector {
	n := len(overviews)
	vocab := make(map[string]int)
	df := make([]int, 0)
	counts := make([]map[int]int, n)

	for i, text := range overviews {
		terms := tokenize(text)
		tc := make(map[int]int, len(terms))
		for _, t := range terms {
			id, ok := vocab[t]
			if !ok {
				id = len(vocab)
				vocab[t] = id
				df = append(df, 0)
			}
			tc[id]++
		}
		for id := range tc {
			df[id]++
		}
		counts[i] = tc
	}

	idf := make([]float64, len(df))
	for id, d := range df {
		idf[id] = math.Log(float64(1+n)/float64(1+d)) + 1
	}

	vecs := make([]vector, n)
	for i, tc := range counts {
		v := make(vector, len(tc))
		for id, c := range tc {
			v[id] = float64(c) * idf[id]
		}
		if nm := v.norm(); nm > 0 {
			for id := range v {
				v[id] /= nm
			}
		}
		vecs[i] = v
	}
	return vecs
}
