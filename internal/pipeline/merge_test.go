package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fsun/ski-results/constants"
	"github.com/fsun/ski-results/internal/entity"
	"github.com/fsun/ski-results/internal/vlm"
)

func intPtr(v int) *int { return &v }

func TestMergeDeduplicatesByBib(t *testing.T) {
	page1 := vlm.Payload{
		Discipline: "回转",
		Results: []vlm.Entry{
			{Rank: intPtr(1), Bib: "12", Name: "张三", TotalTime: "58.31"},
			{Rank: intPtr(2), Bib: "7", Name: "李四", TotalTime: "59.02"},
			{Rank: intPtr(3), Bib: "21", Name: "王五", TotalTime: "61.44"},
		},
	}
	// Trailing summary page repeats bib 7 and adds one new athlete.
	page2 := vlm.Payload{
		Discipline: "回转",
		Results: []vlm.Entry{
			{Rank: intPtr(2), Bib: "7", Name: "李四", TotalTime: "59.02"},
			{Rank: intPtr(4), Bib: "33", Name: "赵六", TotalTime: "63.10"},
		},
	}

	ev, rows, notes := Merge([]vlm.Payload{page1, page2})

	assert.Equal(t, "回转", ev.Discipline)
	require.Len(t, rows, 4)
	assert.Empty(t, notes)
	assert.False(t, ev.NeedsReview)

	bibs := make([]string, len(rows))
	for i, r := range rows {
		bibs[i] = r.Bib
	}
	assert.Equal(t, []string{"12", "7", "21", "33"}, bibs)
}

func TestMergeFlagsConflictingDuplicate(t *testing.T) {
	page1 := vlm.Payload{
		Discipline: "大回转",
		Results:    []vlm.Entry{{Rank: intPtr(1), Bib: "5", Name: "张三", TotalTime: "58.31"}},
	}
	page2 := vlm.Payload{
		Discipline: "大回转",
		Results:    []vlm.Entry{{Rank: intPtr(1), Bib: "5", Name: "张三丰", TotalTime: "58.31"}},
	}

	ev, rows, notes := Merge([]vlm.Payload{page1, page2})

	require.Len(t, rows, 1)
	assert.Equal(t, "张三", rows[0].Name, "first occurrence wins")
	require.Len(t, notes, 1)
	assert.Contains(t, notes[0], "bib 5")
	assert.True(t, ev.NeedsReview)
}

func TestMergeMetadataDisagreementPrefersRichestPage(t *testing.T) {
	sparse := vlm.Payload{
		Discipline: "回转",
		Venue:      "崇礼",
		Results:    []vlm.Entry{{Rank: intPtr(1), Bib: "1", Name: "张三", TotalTime: "58.31"}},
	}
	rich := vlm.Payload{
		Discipline: "回转",
		Venue:      "万龙滑雪场",
		Results: []vlm.Entry{
			{Rank: intPtr(2), Bib: "2", Name: "李四", TotalTime: "59.00"},
			{Rank: intPtr(3), Bib: "3", Name: "王五", TotalTime: "60.00"},
		},
	}

	ev, _, notes := Merge([]vlm.Payload{sparse, rich})

	assert.Equal(t, "万龙滑雪场", ev.Venue)
	assert.True(t, ev.NeedsReview)
	require.NotEmpty(t, notes)
	assert.Contains(t, notes[0], "venue")
}

func TestMergeOrdersRankedBeforeUnranked(t *testing.T) {
	page := vlm.Payload{
		Discipline: "回转",
		Results: []vlm.Entry{
			{Bib: "9", Name: "钱七", Status: "DNF", TotalTime: "DNF"},
			{Rank: intPtr(2), Bib: "4", Name: "李四", TotalTime: "59.02"},
			{Bib: "8", Name: "孙八", Status: "DNS", TotalTime: ""},
			{Rank: intPtr(1), Bib: "3", Name: "张三", TotalTime: "58.31"},
		},
	}

	_, rows, notes := Merge([]vlm.Payload{page})

	require.Len(t, rows, 4)
	assert.Empty(t, notes)
	assert.Equal(t, "3", rows[0].Bib)
	assert.Equal(t, "4", rows[1].Bib)
	// rank-absent rows keep their original relative order at the tail
	assert.Equal(t, "9", rows[2].Bib)
	assert.Equal(t, "8", rows[3].Bib)

	assert.Equal(t, constants.StatusDNF, rows[2].Status)
	assert.Nil(t, rows[2].TotalSeconds)
	require.NotNil(t, rows[0].TotalSeconds)
	assert.InDelta(t, 58.31, *rows[0].TotalSeconds, 0.0001)
}

func TestMergeDiscardsRankOnNonOKRows(t *testing.T) {
	// Some sheets print a start-order number in the rank column even for
	// athletes who did not finish.
	page := vlm.Payload{
		Discipline: "回转",
		Results: []vlm.Entry{
			{Rank: intPtr(5), Bib: "9", Name: "钱七", Status: "DNF", TotalTime: "DNF"},
			{Rank: intPtr(1), Bib: "3", Name: "张三", TotalTime: "58.31"},
		},
	}

	_, rows, _ := Merge([]vlm.Payload{page})

	require.Len(t, rows, 2)
	assert.Equal(t, "3", rows[0].Bib)
	require.NotNil(t, rows[0].Rank)
	assert.Equal(t, 1, *rows[0].Rank)
	assert.Equal(t, "9", rows[1].Bib, "non-OK row sorts after ranked rows")
	assert.Equal(t, constants.StatusDNF, rows[1].Status)
	assert.Nil(t, rows[1].Rank)
}

func TestMergeNotesUnrecognizedTime(t *testing.T) {
	page := vlm.Payload{
		Discipline: "回转",
		Results:    []vlm.Entry{{Rank: intPtr(1), Bib: "2", Name: "张三", TotalTime: "fifty-eight"}},
	}

	ev, rows, notes := Merge([]vlm.Payload{page})

	require.Len(t, rows, 1)
	assert.Nil(t, rows[0].TotalSeconds)
	assert.Equal(t, "fifty-eight", rows[0].TotalTime, "raw string preserved")
	require.Len(t, notes, 1)
	assert.Contains(t, notes[0], "total_time")
	assert.True(t, ev.NeedsReview)
}

func TestValidateEvent(t *testing.T) {
	t.Run("missing discipline fails", func(t *testing.T) {
		ev := entity.EventRecord{}
		_, _, err := validateEvent(&ev, []entity.ResultRow{{Name: "张三"}})
		assert.Error(t, err)
	})

	t.Run("empty names dropped and counted", func(t *testing.T) {
		ev := entity.EventRecord{Discipline: "回转"}
		rows := []entity.ResultRow{{Name: "张三"}, {Name: ""}, {Name: "李四"}}
		valid, dropped, err := validateEvent(&ev, rows)
		require.NoError(t, err)
		assert.Len(t, valid, 2)
		assert.Equal(t, 1, dropped)
	})

	t.Run("empty sheet is not an error", func(t *testing.T) {
		ev := entity.EventRecord{Discipline: "回转"}
		_, dropped, err := validateEvent(&ev, nil)
		assert.ErrorIs(t, err, errNoResults)
		assert.Equal(t, 0, dropped)
	})

	t.Run("all rows dropped fails", func(t *testing.T) {
		ev := entity.EventRecord{Discipline: "回转"}
		rows := []entity.ResultRow{{Name: ""}, {Name: "  "}}
		_, dropped, err := validateEvent(&ev, rows)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, errNoResults)
		assert.Equal(t, 2, dropped)
	})
}
