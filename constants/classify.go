package constants

import (
	"path"
	"strings"
)

// SkipMarkers are filename substrings that identify non-result documents.
// 出发顺序 = start order, 秩序册 = order book. Neither carries final results,
// so matching files never enter the extraction pipeline.
var SkipMarkers = []string{"出发顺序", "秩序册"}

// Classification of a source file, decided from its name alone.
type Classification string

const (
	ClassResults    Classification = "results"
	ClassStartOrder Classification = "start-order"
	ClassOrderBook  Classification = "order-book"
)

// Classify inspects the base name of a storage key and returns its
// classification. Only ClassResults files are eligible for extraction.
func Classify(key string) Classification {
	base := path.Base(key)
	if strings.Contains(base, "出发顺序") {
		return ClassStartOrder
	}
	if strings.Contains(base, "秩序册") {
		return ClassOrderBook
	}
	return ClassResults
}

// InferSeason looks for a season path segment (e.g. "25-26雪季") in a storage
// key. Returns "" when no segment matches.
func InferSeason(key string) string {
	for _, part := range strings.Split(key, "/") {
		if strings.Contains(part, "雪季") {
			return part
		}
	}
	return ""
}
