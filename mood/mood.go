// Package mood 维护情绪标签到影片类型集合的静态映射。
// 映射是闭集：未识别的情绪不报错，由调用方决定跳过类型过滤。
package mood

// moodToGenres 的匹配语义是集合交集：影片 GenreList 与情绪对应
// 类型集合有非空交集即命中。顺序无意义，只看成员。
var moodToGenres = map[string][]string{
	"happy":              {"Comedy", "Family", "Animation"},
	"sad":                {"Drama", "Romance"},
	"thrilling":          {"Action", "Thriller", "Adventure", "Crime"},
	"romantic":           {"Romance", "Drama"},
	"scary":              {"Horror", "Thriller"},
	"lonely":             {"Drama", "Romance"},
	"depressed":          {"Drama", "Documentary"},
	"missing loved ones": {"Romance", "Drama", "Family"},
	"nostalgic":          {"Adventure", "Animation", "Family"},
	"motivated":          {"Action", "Sport"},
	"curious":            {"Mystery", "Sci-Fi", "Fantasy"},
	"calm":               {"Drama", "Family"},
	"angry":              {"Action", "Crime", "Thriller"},
	"hopeful":            {"Adventure", "Drama", "Fantasy"},
}

// Genres 返回情绪对应的类型集合。
// 第二个返回值为 false 表示情绪未识别，调用方应跳过类型过滤
// 而不是返回空结果。
func Genres(mood string) ([]string, bool) {
	g, ok := moodToGenres[mood]
	return g, ok
}

// Moods 返回所有已识别的情绪标签（无序）。
func Moods() []string {
	out := make([]string, 0, len(moodToGenres))
	for m := range moodToGenres {
		out = append(out, m)
	}
	return out
}
