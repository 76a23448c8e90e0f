package catalog

import (
	"encoding/json"
	"strings"
)

type genreEntry struct {
	Name string `json:"name"`
}

// ParseGenres 对原始 genres 字段做尽力解析（tolerant parse）：
// 字段可能是空值、"[]"，或一个序列化的对象列表（每个对象带 name）。
// 任何解析失败都降级为空集合，从不向调用方抛错——这是"尽力提取"，
// 不是严格校验。返回值保证非 nil。
func ParseGenres(cell string) []string {
	cell = strings.TrimSpace(cell)
	if cell == "" || cell == "[]" {
		return []string{}
	}

	entries, ok := decodeGenreList(cell)
	if !ok {
		// 数据集中偶见单引号序列化的列表，按 JSON 修复后重试
		entries, ok = decodeGenreList(strings.ReplaceAll(cell, "'", `"`))
	}
	if !ok {
		return []string{}
	}

	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Name != "" {
			out = append(out, e.Name)
		}
	}
	return out
}

func decodeGenreList(s string) ([]genreEntry, bool) {
	var entries []genreEntry
	if err := json.Unmarshal([]byte(s), &entries); err != nil {
		return nil, false
	}
	return entries, true
}
