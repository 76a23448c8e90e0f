package filter

import (
	"context"
	"testing"

	"github.com/aniruddha-beep/movie-suggestion/core"
)

func TestNewRuleFilter(t *testing.T) {
	if rf, err := NewRuleFilter(nil); err != nil || rf != nil {
		t.Errorf("empty rules = (%v, %v), want (nil, nil)", rf, err)
	}
	if _, err := NewRuleFilter([]string{"movie.vote_average >="}); err == nil {
		t.Error("malformed rule should fail to compile")
	}
}

func TestRuleFilter_ShouldFilter(t *testing.T) {
	movie := &core.Movie{
		Title:       "Alpha",
		VoteAverage: 6.5,
		VoteCount:   120,
		Runtime:     100,
		GenreList:   []string{"Horror", "Thriller"},
	}

	tests := []struct {
		name  string
		rules []string
		want  bool // true = 过滤掉
	}{
		{"passing numeric rule", []string{"movie.vote_average >= 5.0"}, false},
		{"failing numeric rule", []string{"movie.vote_count > 1000"}, true},
		{"genre membership", []string{`"Horror" in movie.genres`}, false},
		{"all rules must pass", []string{"movie.vote_average >= 5.0", "movie.runtime < 90.0"}, true},
	}

	for _, tt := range tests {
		rf, err := NewRuleFilter(tt.rules)
		if err != nil {
			t.Errorf("%s: compile: %v", tt.name, err)
			continue
		}
		got, err := rf.ShouldFilter(context.Background(), &core.QueryContext{}, movie)
		if err != nil {
			t.Errorf("%s: eval: %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%s: ShouldFilter = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestRuleFilter_QueryVars(t *testing.T) {
	rf, err := NewRuleFilter([]string{`query.language == "en"`})
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	movie := &core.Movie{Title: "Alpha"}
	got, err := rf.ShouldFilter(context.Background(), &core.QueryContext{Language: "en"}, movie)
	if err != nil {
		t.Fatalf("eval: %v", err)
	}
	if got {
		t.Error("matching query rule should keep the movie")
	}
}
