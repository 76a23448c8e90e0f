package textsim

import (
	"math"
	"testing"
)

var overviews = []string{
	"A haunted house terrifies a young family during a long winter.",
	"A young family moves into a haunted house in the countryside.",
	"Space marines fight an alien invasion on a distant colony.",
	"", // 空简介 -> 零向量
}

func TestBuild_DiagonalAndSymmetry(t *testing.T) {
	m := Build(overviews)
	if m.Dim() != len(overviews) {
		t.Fatalf("Dim = %d, want %d", m.Dim(), len(overviews))
	}

	for i := 0; i < 3; i++ {
		if got := m.At(i, i); got != 1.0 {
			t.Errorf("similarity[%d][%d] = %v, want 1.0", i, i, got)
		}
	}
	for i := 0; i < m.Dim(); i++ {
		for j := 0; j < m.Dim(); j++ {
			if m.At(i, j) != m.At(j, i) {
				t.Errorf("matrix not symmetric at (%d,%d)", i, j)
			}
			if math.IsNaN(m.At(i, j)) {
				t.Errorf("similarity[%d][%d] is NaN", i, j)
			}
		}
	}
}

func TestBuild_ZeroVector(t *testing.T) {
	m := Build(overviews)

	// 空简介与任何向量（含自身）的相似度定义为 0
	for j := 0; j < m.Dim(); j++ {
		if got := m.At(3, j); got != 0 {
			t.Errorf("similarity[3][%d] = %v, want 0", j, got)
		}
	}
}

func TestBuild_RelatedTextScoresHigher(t *testing.T) {
	m := Build(overviews)

	// 两段闹鬼题材的简介应比闹鬼 vs 太空更相似
	if m.At(0, 1) <= m.At(0, 2) {
		t.Errorf("related sim %v should exceed unrelated sim %v", m.At(0, 1), m.At(0, 2))
	}
	if m.At(0, 1) <= 0 {
		t.Errorf("related overviews should have positive similarity, got %v", m.At(0, 1))
	}
}

func TestBuild_Deterministic(t *testing.T) {
	a := Build(overviews)
	b := Build(overviews)

	for i := 0; i < a.Dim(); i++ {
		for j := 0; j < a.Dim(); j++ {
			if a.At(i, j) != b.At(i, j) {
				t.Fatalf("matrix not deterministic at (%d,%d): %v vs %v", i, j, a.At(i, j), b.At(i, j))
			}
		}
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"The wind in the willows", 2},    // the/in 是停用词，短词丢弃
		{"a an the of", 0},                // 全部停用词
		{"", 0},                           // 空文本
		{"Robot ROBOT robot", 3},          // 小写归一后同词计三次
	}
	for _, tt := range tests {
		if got := tokenize(tt.text); len(got) != tt.want {
			t.Errorf("tokenize(%q) = %v, want %d tokens", tt.text, got, tt.want)
		}
	}
}
