package core

import "strings"

// 片长分桶：runtime < 90 为 short，90~150（含）为 medium，> 150 为 long。
const (
	LengthShort  = "short"
	LengthMedium = "medium"
	LengthLong   = "long"
)

// LengthOf 按固定阈值把片长（分钟）映射到分桶。
func LengthOf(runtime float64) string {
	switch {
	case runtime < 90:
		return LengthShort
	case runtime <= 150:
		return LengthMedium
	default:
		return LengthLong
	}
}

// Movie 是目录中的一行，加载后不可变。
// GenreList 与 LengthCat 由加载阶段派生，保证非空（解析失败时为空集合）。
type Movie struct {
	Title            string
	OriginalLanguage string
	Overview         string
	Runtime          float64
	LengthCat        string
	GenreList        []string
	VoteAverage      float64
	VoteCount        int
	Popularity       float64
	ReleaseDate      string
}

// HasGenre 判断影片是否属于给定类型集合中的任意一个。
func (m *Movie) HasGenre(genres []string) bool {
	for _, g := range genres {
		for _, mg := range m.GenreList {
			if mg == g {
				return true
			}
		}
	}
	return false
}

// Catalog 是启动时构建的不可变影片表。
// 行号（切片下标）与相似度矩阵的行号一一对应，整个进程生命周期内不变。
type Catalog struct {
	movies   []*Movie
	titleIdx map[string]int // 小写标题 -> 首次出现的行号
}

// NewCatalog 从已归一化的影片列表构建 Catalog。
// 标题不保证唯一，重复标题保留第一次出现的行号（与解析顺序一致）。
func NewCatalog(movies []*Movie) *Catalog {
	idx := make(map[string]int, len(movies))
	for i, m := range movies {
		key := strings.ToLower(m.Title)
		if _, ok := idx[key]; !ok {
			idx[key] = i
		}
	}
	return &Catalog{movies: movies, titleIdx: idx}
}

func (c *Catalog) Len() int { return len(c.movies) }

// Movie 返回行号 i 对应的影片；越界返回 nil。
func (c *Catalog) Movie(i int) *Movie {
	if i < 0 || i >= len(c.movies) {
		return nil
	}
	return c.movies[i]
}

// Movies 返回底层切片（只读约定，调用方不得修改）。
func (c *Catalog) Movies() []*Movie { return c.movies }

// ResolveTitle 按标题（大小写不敏感的精确匹配）解析行号。
// 解析失败不是错误：调用方应降级到非相似度排序。
func (c *Catalog) ResolveTitle(title string) (int, bool) {
	if title == "" {
		return 0, false
	}
	i, ok := c.titleIdx[strings.ToLower(title)]
	return i, ok
}

// Overviews 按行序返回所有简介文本，供相似度索引构建使用。
// 缺失简介在加载阶段已归一化为空串，保证每行都可向量化。
func (c *Catalog) Overviews() []string {
	out := make([]string, len(c.movies))
	for i, m := range c.movies {
		out[i] = m.Overview
	}
	return out
}
