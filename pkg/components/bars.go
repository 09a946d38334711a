package components

import "strings"

// Eighth-height block characters, lowest to full.
var barBlocks = [8]string{
	"▁", "▂", "▃", "▄",
	"▅", "▆", "▇", "█",
}

// Bars renders vertical bars growing from the bottom of a rows-tall area.
// Each value is a fraction of the full height in [0,1]; each bar is one
// cell wide and bars are separated by gap blank cells. The result has
// exactly rows lines.
func Bars(values []float64, rows, gap int) []string {
	if rows <= 0 {
		return nil
	}
	if gap < 0 {
		gap = 0
	}
	levels := make([]int, len(values))
	for i, v := range values {
		if v < 0 {
			v = 0
		} else if v > 1 {
			v = 1
		}
		levels[i] = int(v*float64(rows*8) + 0.5)
	}

	sep := strings.Repeat(" ", gap)
	out := make([]string, rows)
	for r := 0; r < rows; r++ {
		// Row 0 is the top; the floor of row r sits this many eighths up.
		floor := (rows - 1 - r) * 8
		var b strings.Builder
		for i, lv := range levels {
			if i > 0 {
				b.WriteString(sep)
			}
			fill := lv - floor
			switch {
			case fill >= 8:
				b.WriteString(barBlocks[7])
			case fill > 0:
				b.WriteString(barBlocks[fill-1])
			default:
				b.WriteString(" ")
			}
		}
		out[r] = b.String()
	}
	return out
}
