package textsim

// Matrix 是 N×N 的稠密相似度矩阵，行号与 Catalog 的行号一一对应。
// 构建后不可变，可被并发查询无锁读取。
type Matrix struct {
	n    int
	data []float64 // 行优先展开
}

// Build 对全量简介构建两两余弦相似度矩阵。
// 对角线上非空向量固定为 1.0；零向量（空简介）与任何向量的
// 相似度定义为 0，不产生 NaN。矩阵对称。
func Build(overviews []string) *Matrix {
	vecs := vectorize(overviews)
	n := len(vecs)
	m := &Matrix{n: n, data: make([]float64, n*n)}

	for i := 0; i < n; i++ {
		if len(vecs[i]) > 0 {
			m.data[i*n+i] = 1.0
		}
		for j := i + 1; j < n; j++ {
			// 向量已 L2 归一化，点积即余弦；零向量点积为 0
			s := dot(vecs[i], vecs[j])
			m.data[i*n+j] = s
			m.data[j*n+i] = s
		}
	}
	return m
}

// Dim 返回矩阵维度（= 目录行数）。
func (m *Matrix) Dim() int { return m.n }

// At 返回 similarity[i][j]；越界返回 0。
func (m *Matrix) At(i, j int) float64 {
	if i < 0 || j < 0 || i >= m.n || j >= m.n {
		return 0
	}
	return m.data[i*m.n+j]
}
