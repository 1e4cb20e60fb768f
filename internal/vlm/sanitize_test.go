package vlm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fsun/ski-results/internal/common"
)

const cleanBody = `{
  "competition": "2024全国青少年滑雪巡回赛",
  "date": "2024-12-21",
  "venue": "万龙滑雪场",
  "discipline": "回转",
  "gender": "女子",
  "age_group": "U12",
  "round_type": "决赛",
  "results": [
    {"rank": 1, "bib": "12", "name": "张三", "team": "北京队", "run1_time": "29.10", "run2_time": "29.21", "total_time": "58.31", "time_diff": "", "status": "OK"},
    {"rank": null, "bib": "7", "name": "李四", "team": "上海队", "run1_time": "DNF", "run2_time": "", "total_time": "DNF", "time_diff": "", "status": "DNF"}
  ]
}`

func assertCleanPayload(t *testing.T, p Payload) {
	t.Helper()
	assert.Equal(t, "回转", p.Discipline)
	assert.Equal(t, "女子", p.Gender)
	require.Len(t, p.Results, 2)
	require.NotNil(t, p.Results[0].Rank)
	assert.Equal(t, 1, *p.Results[0].Rank)
	assert.Equal(t, "张三", p.Results[0].Name)
	assert.Nil(t, p.Results[1].Rank)
	assert.Equal(t, "DNF", p.Results[1].Status)
}

func TestSanitizeResponseShapes(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"bare json", cleanBody},
		{"fenced json", "```json\n" + cleanBody + "\n```"},
		{"fenced without language", "```\n" + cleanBody + "\n```"},
		{"leading prose", "Here is the extracted data:\n\n" + cleanBody},
		{"trailing prose", cleanBody + "\n\nLet me know if you need anything else."},
		{"prose on both sides", "Sure, here it is:\n" + cleanBody + "\nHope that helps."},
		{"think tags", "<think>\nThe sheet lists two athletes.\n</think>\n" + cleanBody},
		{"think then fence", "<think>reasoning {not json}</think>\n```json\n" + cleanBody + "\n```"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Sanitize(tt.raw, nil)
			require.NoError(t, err)
			assertCleanPayload(t, p)
		})
	}
}

func TestSanitizeCoercion(t *testing.T) {
	raw := `{
	  "discipline": "大回转",
	  "confidence": 0.93,
	  "results": [
	    {"rank": 2.0, "bib": 15, "name": "王五", "total_time": 61.44, "status": "finished", "notes": "approx"}
	  ]
	}`

	p, err := Sanitize(raw, nil)
	require.NoError(t, err)

	require.Len(t, p.Results, 1)
	require.NotNil(t, p.Results[0].Rank)
	assert.Equal(t, 2, *p.Results[0].Rank, "float rank coerced to int")
	assert.Equal(t, "15", p.Results[0].Bib, "numeric bib stringified")
	assert.Equal(t, "61.44", p.Results[0].TotalTime, "numeric time stringified")
	assert.Equal(t, "OK", p.Results[0].Status, "unknown status defaults to OK")
}

func TestSanitizeMalformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"prose only", "I could not find any results in this image."},
		{"unbalanced braces", `{"discipline": "回转", "results": [`},
		{"array not object", `[1, 2, 3]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Sanitize(tt.raw, nil)
			require.Error(t, err)

			var mre *common.MalformedResponseError
			require.True(t, errors.As(err, &mre))
			assert.Equal(t, tt.raw, mre.Raw, "raw response preserved for diagnostics")
		})
	}
}

func TestSanitizeMissingResultsYieldsEmptyPayload(t *testing.T) {
	// Absent results become an empty list; deciding what to do with a
	// result-free sheet is the validator's call, not the sanitizer's.
	p, err := Sanitize(`{"discipline": "回转"}`, nil)
	require.NoError(t, err)
	assert.Equal(t, "回转", p.Discipline)
	assert.Empty(t, p.Results)
}

func TestFirstBalancedObject(t *testing.T) {
	obj, ok := firstBalancedObject(`noise {"a": "b {not a brace}"} tail`)
	require.True(t, ok)
	assert.Equal(t, `{"a": "b {not a brace}"}`, obj)

	obj, ok = firstBalancedObject(`{"a": {"b": 1}}`)
	require.True(t, ok)
	assert.Equal(t, `{"a": {"b": 1}}`, obj)

	_, ok = firstBalancedObject("no braces here")
	assert.False(t, ok)
}
