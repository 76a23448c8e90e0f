package filter

import (
	"context"
	"testing"

	"github.com/aniruddha-beep/movie-suggestion/core"
)

func testCatalog() *core.Catalog {
	return core.NewCatalog([]*core.Movie{
		{Title: "Alpha", OriginalLanguage: "en", LengthCat: core.LengthMedium, GenreList: []string{"Horror", "Thriller"}},
		{Title: "Beta", OriginalLanguage: "EN", LengthCat: core.LengthShort, GenreList: []string{"Comedy"}},
		{Title: "Gamma", OriginalLanguage: "ko", LengthCat: core.LengthMedium, GenreList: []string{"Horror"}},
		{Title: "Delta", OriginalLanguage: "en", LengthCat: core.LengthLong, GenreList: []string{}},
	})
}

func seedItems(n int) []*core.Item {
	items := make([]*core.Item, n)
	for i := range items {
		items[i] = core.NewItem(i)
	}
	return items
}

func indexesOf(items []*core.Item) []int {
	out := make([]int, len(items))
	for i, it := range items {
		out[i] = it.Index
	}
	return out
}

func TestFilterNode(t *testing.T) {
	cat := testCatalog()

	tests := []struct {
		name    string
		qctx    *core.QueryContext
		filters []Filter
		want    []int
	}{
		{
			name:    "language match is case-insensitive",
			qctx:    &core.QueryContext{Language: "en"},
			filters: []Filter{&LanguageFilter{}},
			want:    []int{0, 1, 3},
		},
		{
			name:    "recognized mood keeps genre intersection only",
			qctx:    &core.QueryContext{Mood: "scary"},
			filters: []Filter{&GenreFilter{}},
			want:    []int{0, 2},
		},
		{
			name:    "unrecognized mood filters nothing",
			qctx:    &core.QueryContext{Mood: "ecstatic"},
			filters: []Filter{&GenreFilter{}},
			want:    []int{0, 1, 2, 3},
		},
		{
			name:    "length exact match",
			qctx:    &core.QueryContext{Length: core.LengthMedium},
			filters: []Filter{&LengthFilter{}},
			want:    []int{0, 2},
		},
		{
			name:    "unknown length bucket eliminates all",
			qctx:    &core.QueryContext{Length: "epic"},
			filters: []Filter{&LengthFilter{}},
			want:    []int{},
		},
		{
			name:    "combined filters intersect",
			qctx:    &core.QueryContext{Language: "en", Mood: "scary", Length: core.LengthMedium},
			filters: []Filter{&LanguageFilter{}, &GenreFilter{}, &LengthFilter{}},
			want:    []int{0},
		},
		{
			name:    "no filters is identity",
			qctx:    &core.QueryContext{},
			filters: nil,
			want:    []int{0, 1, 2, 3},
		},
	}

	for _, tt := range tests {
		node := &FilterNode{Catalog: cat, Filters: tt.filters}
		got, err := node.Process(context.Background(), tt.qctx, seedItems(cat.Len()))
		if err != nil {
			t.Errorf("%s: Process: %v", tt.name, err)
			continue
		}
		idx := indexesOf(got)
		if len(idx) != len(tt.want) {
			t.Errorf("%s: kept %v, want %v", tt.name, idx, tt.want)
			continue
		}
		for i := range idx {
			if idx[i] != tt.want[i] {
				t.Errorf("%s: kept %v, want %v", tt.name, idx, tt.want)
				break
			}
		}
	}
}

// 过滤的单调性：叠加过滤器从不放大候选集。
func TestFilterMonotonic(t *testing.T) {
	cat := testCatalog()
	qctx := &core.QueryContext{Language: "en", Mood: "scary", Length: core.LengthMedium}

	chains := [][]Filter{
		{&LanguageFilter{}},
		{&LanguageFilter{}, &GenreFilter{}},
		{&LanguageFilter{}, &GenreFilter{}, &LengthFilter{}},
	}

	prev := cat.Len()
	for i, filters := range chains {
		node := &FilterNode{Catalog: cat, Filters: filters}
		got, err := node.Process(context.Background(), qctx, seedItems(cat.Len()))
		if err != nil {
			t.Fatalf("chain %d: %v", i, err)
		}
		if len(got) > prev {
			t.Errorf("chain %d grew candidate set: %d > %d", i, len(got), prev)
		}
		prev = len(got)
	}
}
