package pipeline

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	reHMS = regexp.MustCompile(`^(\d+):(\d{2}):(\d{2})\.(\d+)$`)
	reMS  = regexp.MustCompile(`^(\d{1,2}):(\d{2})\.(\d+)$`)
	reSec = regexp.MustCompile(`^(\d+)\.(\d+)$`)
)

// nonTimeMarkers map to an explicit absence, never to zero or an error.
var nonTimeMarkers = map[string]struct{}{
	"":    {},
	"-":   {},
	"DNF": {},
	"DNS": {},
	"DQ":  {},
}

// ToSeconds parses a race-time string into total seconds.
//
//	"32.40"      -> 32.40
//	"0:00:24.07" -> 24.07
//	"01:03.32"   -> 63.32
//	"1:39.58"    -> 99.58
//
// The second return is false when the value is a recognized non-time marker
// or an unparseable string; callers distinguish the two with IsTimeMarker.
func ToSeconds(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if _, ok := nonTimeMarkers[s]; ok {
		return 0, false
	}

	if m := reHMS.FindStringSubmatch(s); m != nil {
		h, _ := strconv.Atoi(m[1])
		mi, _ := strconv.Atoi(m[2])
		sec, _ := strconv.Atoi(m[3])
		frac, _ := strconv.ParseFloat("0."+m[4], 64)
		return float64(h*3600+mi*60+sec) + frac, true
	}
	if m := reMS.FindStringSubmatch(s); m != nil {
		mi, _ := strconv.Atoi(m[1])
		sec, _ := strconv.Atoi(m[2])
		frac, _ := strconv.ParseFloat("0."+m[3], 64)
		return float64(mi*60+sec) + frac, true
	}
	if reSec.MatchString(s) {
		v, err := strconv.ParseFloat(s, 64)
		if err == nil {
			return v, true
		}
	}
	return 0, false
}

// IsTimeMarker reports whether s is one of the recognized non-time markers.
// Unrecognized strings that are neither times nor markers should be reported
// so rows can be flagged for manual correction.
func IsTimeMarker(s string) bool {
	_, ok := nonTimeMarkers[strings.TrimSpace(s)]
	return ok
}
