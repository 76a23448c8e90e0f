package mood

import "testing"

func TestGenres(t *testing.T) {
	tests := []struct {
		mood   string
		wantOK bool
		want   []string
	}{
		{"scary", true, []string{"Horror", "Thriller"}},
		{"missing loved ones", true, []string{"Romance", "Drama", "Family"}},
		{"SCARY", false, nil}, // 键区分大小写
		{"ecstatic", false, nil},
		{"", false, nil},
	}

	for _, tt := range tests {
		got, ok := Genres(tt.mood)
		if ok != tt.wantOK {
			t.Errorf("Genres(%q) ok = %v, want %v", tt.mood, ok, tt.wantOK)
			continue
		}
		if !ok {
			continue
		}
		if len(got) != len(tt.want) {
			t.Errorf("Genres(%q) = %v, want %v", tt.mood, got, tt.want)
		}
	}
}

func TestMoods(t *testing.T) {
	moods := Moods()
	if len(moods) != 14 {
		t.Fatalf("Moods() has %d entries, want 14", len(moods))
	}
	for _, m := range moods {
		if _, ok := Genres(m); !ok {
			t.Errorf("Moods() entry %q does not resolve", m)
		}
	}
}
