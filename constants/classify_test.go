package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want Classification
	}{
		{"result sheet", "ski/比赛成绩汇总/24-25雪季/回转成绩.pdf", ClassResults},
		{"start order", "ski/比赛成绩汇总/24-25雪季/出发顺序表.pdf", ClassStartOrder},
		{"order book", "ski/比赛成绩汇总/24-25雪季/秩序册.pdf", ClassOrderBook},
		{"marker in directory only", "ski/出发顺序/final.pdf", ClassResults},
		{"image result", "photos/大回转女子组.jpg", ClassResults},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.key))
		})
	}
}

func TestInferSeason(t *testing.T) {
	assert.Equal(t, "24-25雪季", InferSeason("ski/比赛成绩汇总/24-25雪季/回转成绩.pdf"))
	assert.Equal(t, "25-26雪季", InferSeason("25-26雪季/x.pdf"))
	assert.Equal(t, "", InferSeason("ski/results/final.pdf"))
}

func TestMapExtToKind(t *testing.T) {
	assert.Equal(t, PDF, MapExtToKind("pdf"))
	assert.Equal(t, IMAGE, MapExtToKind("jpg"))
	assert.Equal(t, IMAGE, MapExtToKind("heic"))
	assert.Equal(t, FileKind(""), MapExtToKind("docx"))
}

func TestNormalizeResultStatus(t *testing.T) {
	assert.Equal(t, StatusDNF, NormalizeResultStatus("DNF"))
	assert.Equal(t, StatusOK, NormalizeResultStatus("OK"))
	assert.Equal(t, StatusOK, NormalizeResultStatus("finished"))
	assert.Equal(t, StatusOK, NormalizeResultStatus(""))
}
