package gamemath

// ColumnCount is how many cells of size plus gutter fit across width. The
// divisor is clamped so a zero sized cell never divides by zero.
func ColumnCount(width, size, gutter float64) int {
	cell := size + gutter
	if cell < 1 {
		cell = 1
	}
	if width <= 0 {
		return 0
	}
	return int(width / cell)
}

// ColumnX converts a column index into a centered x coordinate. The row of
// columns is centered in width, leaving an equal margin on both sides.
func ColumnX(column int, width, size, gutter float64) float64 {
	count := ColumnCount(width, size, gutter)
	gutters := count - 1
	if gutters < 0 {
		gutters = 0
	}
	content := float64(count)*size + float64(gutters)*gutter
	margin := (width - content) / 2
	return float64(column)*(size+gutter) + size/2 + margin - width/2
}
