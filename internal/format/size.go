// Package format turns raw metadata values into the short labels shown in the file browser.
package format

import (
	"math"
	"strconv"
)

const (
	KB = 1024
	MB = KB * 1024
	GB = MB * 1024
	TB = GB * 1024
)

// HumanReadableFileSize formats a byte count as an integer with a unit suffix
// ("", "kb", "mb", "gb" or "tb"). A unit is only used when size is strictly
// greater than it, so 1024 stays "1024" and 1025 becomes "1kb".
// Quotients are rounded half away from zero.
func HumanReadableFileSize(size int64) string {
	switch {
	case size > TB:
		return scaled(size, TB) + "tb"
	case size > GB:
		return scaled(size, GB) + "gb"
	case size > MB:
		return scaled(size, MB) + "mb"
	case size > KB:
		return scaled(size, KB) + "kb"
	default:
		return strconv.FormatInt(size, 10)
	}
}

func scaled(size, unit int64) string {
	return strconv.FormatInt(int64(math.Round(float64(size)/float64(unit))), 10)
}
