package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNamePinyin(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"two characters", "张三", "zhangsan zs"},
		{"three characters", "姚志涵", "yaozhihan yzh"},
		{"latin name untouched", "John", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NamePinyin(tt.input))
		})
	}
}

func TestLooksLikePinyin(t *testing.T) {
	assert.True(t, looksLikePinyin("zhangsan"))
	assert.True(t, looksLikePinyin("zs"))
	assert.False(t, looksLikePinyin("张三"))
	assert.False(t, looksLikePinyin("zhang张"))
}
