package strengthen

import (
	"fmt"
	"math"
)

var (
	sizeList = []string{"B", "KiB", "MiB", "GiB", "TiB", "PiB", "EiB"}
)

func formatBytes(s uint64, base float64) string {
	if s < 10 {
		return fmt.Sprintf("%d B", s)
	}
	e := math.Floor(math.Log(float64(s)) / math.Log(base))
	suffix := sizeList[int(e)]
	val := math.Floor(float64(s)/math.Pow(base, e)*10+0.5) / 10
	f := "%.0f %s"
	if val < 10 {
		f = "%.1f %s"
	}
	return fmt.Sprintf(f, val, suffix)
}

// FormatSize renders s in binary units, e.g. "1.5 KiB".
func FormatSize(s int64) string {
	return formatBytes(uint64(s), 1024)
}
