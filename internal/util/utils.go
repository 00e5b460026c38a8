package util

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"
)

// Clamp restricts a value to be between min and max
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// DegToRad converts degrees to radians
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// Average returns the arithmetic mean, or 0 for no data
func Average(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range data {
		sum += v
	}
	return sum / float64(len(data))
}

// FileExists checks if a file exists and is not a directory
func FileExists(filename string) bool {
	info, err := os.Stat(filename)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// SnapshotPath builds a timestamped PNG path inside dir
func SnapshotPath(dir string, at time.Time) string {
	return filepath.Join(dir, fmt.Sprintf("frame_%s.png", at.Format("20060102_150405.000")))
}

// TimeTrack reports how long something took through logf.
// Usage: defer TimeTrack(time.Now(), "render", log.Infof)
func TimeTrack(start time.Time, name string, logf func(format string, v ...interface{})) {
	logf("%s took %s", name, time.Since(start))
}

// ScaleSize scales a pixel size by factor, never going below 1x1
func ScaleSize(width, height int, factor float64) (int, int) {
	w := int(float64(width) * factor)
	h := int(float64(height) * factor)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}
