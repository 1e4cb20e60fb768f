package repository

import (
	"strings"

	"github.com/mozillazg/go-pinyin"
)

// NamePinyin renders a Chinese name as a searchable romanization: the full
// pinyin followed by the first-letter initials ("姚志涵" -> "yaozhihan yzh").
// Names with no Chinese characters yield "".
func NamePinyin(name string) string {
	sylls := pinyin.LazyPinyin(name, pinyin.NewArgs())
	if len(sylls) == 0 {
		return ""
	}
	var full, initials strings.Builder
	for _, s := range sylls {
		if s == "" {
			continue
		}
		full.WriteString(s)
		initials.WriteByte(s[0])
	}
	if full.Len() == 0 {
		return ""
	}
	return full.String() + " " + initials.String()
}

// looksLikePinyin reports whether a search query is plain ASCII, which routes
// athlete lookups to the romanized column instead of the raw name column.
func looksLikePinyin(q string) bool {
	for _, r := range q {
		if r > 127 {
			return false
		}
	}
	return true
}
