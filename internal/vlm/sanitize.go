package vlm

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/fsun/ski-results/internal/common"
)

var (
	reThink = regexp.MustCompile(`(?s)<think>.*?</think>`)
	reFence = regexp.MustCompile("(?s)```(?:json)?\\s*\\n?(.*?)```")
)

// Sanitize recovers a structured event payload from a model's raw text
// response. The response may be bare JSON, JSON wrapped in code fences, JSON
// preceded by reasoning text, or JSON embedded among prose. Total: it either
// returns a payload or a MalformedResponseError carrying the raw text.
func Sanitize(raw string, logger *slog.Logger) (Payload, error) {
	if logger == nil {
		logger = slog.Default()
	}

	text := strings.TrimSpace(raw)

	// Reasoning models sometimes wrap deliberation in think tags.
	text = strings.TrimSpace(reThink.ReplaceAllString(text, ""))

	// Prefer JSON inside a fenced code block.
	if m := reFence.FindStringSubmatch(text); m != nil {
		text = strings.TrimSpace(m[1])
	}

	// Isolate the first balanced object. Prose can precede the payload,
	// follow it, or both; the scan handles every position including the
	// degenerate case where the text is the payload alone.
	obj, ok := firstBalancedObject(text)
	if !ok {
		return Payload{}, &common.MalformedResponseError{Raw: raw, Cause: fmt.Errorf("no JSON object found")}
	}
	text = obj

	var m map[string]any
	if err := json.Unmarshal([]byte(text), &m); err != nil {
		return Payload{}, &common.MalformedResponseError{Raw: raw, Cause: fmt.Errorf("decode: %w", err)}
	}

	cleaned, dropped := normalizePayloadMap(m)
	if len(dropped) > 0 {
		logger.Warn("vlm.sanitize.normalized", "dropped", dropped)
	}

	out, err := json.Marshal(cleaned)
	if err != nil {
		return Payload{}, &common.MalformedResponseError{Raw: raw, Cause: fmt.Errorf("encode: %w", err)}
	}
	if err := ValidateJSONAgainstSchema(BuildEventJSONSchema(), out); err != nil {
		return Payload{}, &common.MalformedResponseError{Raw: raw, Cause: err}
	}

	var p Payload
	if err := json.Unmarshal(out, &p); err != nil {
		return Payload{}, &common.MalformedResponseError{Raw: raw, Cause: err}
	}
	return p, nil
}

// firstBalancedObject scans for the first {...} whose braces balance,
// honoring JSON string literals and escapes.
func firstBalancedObject(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", false
	}
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}

// metaKeys are the top-level string fields of the event payload.
var metaKeys = []string{"competition", "date", "venue", "discipline", "gender", "age_group", "round_type"}

// entryStringKeys are the per-result fields coerced to strings.
var entryStringKeys = []string{"bib", "name", "team", "run1_time", "run2_time", "total_time", "time_diff"}

// normalizePayloadMap coerces loosely-typed model output into the schema
// shape: nulls dropped, numeric time fields stringified, rank forced to an
// integer, unknown keys removed, status normalized to the OK/DNF/DNS/DQ set.
func normalizePayloadMap(m map[string]any) (map[string]any, []string) {
	var dropped []string
	out := make(map[string]any, len(m))

	for _, k := range metaKeys {
		if s, ok := coerceString(m[k]); ok && s != "" {
			out[k] = s
		} else if _, present := m[k]; present {
			dropped = append(dropped, k)
		}
	}

	rawResults, _ := m["results"].([]any)
	results := make([]any, 0, len(rawResults))
	for _, rr := range rawResults {
		em, ok := rr.(map[string]any)
		if !ok {
			dropped = append(dropped, "results(non-object)")
			continue
		}
		entry := make(map[string]any, len(em))
		for _, k := range entryStringKeys {
			if s, ok := coerceString(em[k]); ok {
				entry[k] = s
			}
		}
		switch v := em["rank"].(type) {
		case float64:
			entry["rank"] = int(v)
		case nil:
			// rank stays absent for DNF/DNS/DQ rows
		default:
			if _, present := em["rank"]; present {
				dropped = append(dropped, "rank(type)")
			}
		}
		status, _ := coerceString(em["status"])
		entry["status"] = normalizeStatus(status)
		results = append(results, entry)
	}
	out["results"] = results

	for k := range m {
		if !isKnownKey(k) {
			dropped = append(dropped, k+"(unknown)")
		}
	}
	return out, dropped
}

func isKnownKey(k string) bool {
	if k == "results" {
		return true
	}
	for _, mk := range metaKeys {
		if k == mk {
			return true
		}
	}
	return false
}

// coerceString renders strings, numbers, and booleans as trimmed strings.
// nil and missing values report !ok so callers can drop the key.
func coerceString(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t), true
	case float64:
		if t == float64(int64(t)) {
			return fmt.Sprintf("%d", int64(t)), true
		}
		return fmt.Sprintf("%g", t), true
	case bool:
		return fmt.Sprintf("%t", t), true
	default:
		return "", false
	}
}

func normalizeStatus(s string) string {
	switch s {
	case "DNF", "DNS", "DQ":
		return s
	default:
		return "OK"
	}
}
