// Package catalog 把原始影片数据集解析为归一化的不可变 Catalog。
//
// 每行的解析遵循降级而非拒绝的约定：类型字段解析失败得到空集合，
// 缺失的片长以目录中位数填充，缺失的简介归一化为空串。只有整个
// 文件不可读/不可解析才是错误（启动期致命）。
package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"

	"github.com/aniruddha-beep/movie-suggestion/core"
)

// 数据集中本加载器关心的列；其余列忽略。
var requiredColumns = []string{"title", "genres", "original_language", "overview", "runtime", "vote_average", "vote_count", "popularity", "release_date"}

// Load 从 CSV 数据集构建 Catalog。
// 返回错误即视为无法构建有效状态，调用方（进程启动）应直接失败。
func Load(path string) (*core.Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	cat, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("load dataset %s: %w", path, err)
	}
	return cat, nil
}

// Read 从任意 reader 解析数据集（便于测试）。
func Read(r io.Reader) (*core.Catalog, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[name] = i
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, core.NewDomainError(core.ModuleCatalog, core.ErrorCodeInvalidInput,
				fmt.Sprintf("catalog: missing column %q", name))
		}
	}

	field := func(row []string, name string) string {
		i := cols[name]
		if i >= len(row) {
			return ""
		}
		return row[i]
	}

	var movies []*core.Movie
	var runtimes []float64 // 非缺失片长，用于中位数

	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}

		m := &core.Movie{
			Title:            field(row, "title"),
			OriginalLanguage: field(row, "original_language"),
			Overview:         field(row, "overview"), // 缺失值本就是空串
			GenreList:        ParseGenres(field(row, "genres")),
			VoteAverage:      parseFloat(field(row, "vote_average")),
			Popularity:       parseFloat(field(row, "popularity")),
			ReleaseDate:      field(row, "release_date"),
		}
		if v, err := strconv.Atoi(field(row, "vote_count")); err == nil {
			m.VoteCount = v
		}

		if rt, err := strconv.ParseFloat(field(row, "runtime"), 64); err == nil {
			m.Runtime = rt
			runtimes = append(runtimes, rt)
		} else {
			m.Runtime = math.NaN() // 标记缺失，下面统一以中位数填充
		}

		movies = append(movies, m)
	}

	med := median(runtimes)
	for _, m := range movies {
		if math.IsNaN(m.Runtime) {
			m.Runtime = med
		}
		m.LengthCat = core.LengthOf(m.Runtime)
	}

	return core.NewCatalog(movies), nil
}

func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// median 计算非缺失片长的中位数；偶数个取中间两数均值，空集返回 0。
func median(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	sorted := make([]float64, len(vals))
	copy(sorted, vals)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}
