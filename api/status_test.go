package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyStatus(t *testing.T) {
	tests := []struct {
		status string
		want   string
	}{
		{"completed", StatusClassSuccess},
		{"Delivered", StatusClassSuccess},
		{"pending", StatusClassPending},
		{"PROCESSING", StatusClassPending},
		{"failed", StatusClassFailed},
		{"cancelled", StatusClassFailed},
		{"canceled", StatusClassFailed},
		{"on-hold", StatusClassOther},
		{"", StatusClassOther},
	}
	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyStatus(tt.status))
		})
	}
}

func TestRankGlow(t *testing.T) {
	tests := []struct {
		color string
		want  string
	}{
		{"#22c55e", GlowGreen},
		{"#3B82F6", GlowBlue},
		{"#a855f7", GlowPurple},
		{"#f59e0b", GlowGold},
		{"#eab308", GlowGold},
		{"not-a-color", GlowGreen},
		{"", GlowGreen},
	}
	for _, tt := range tests {
		t.Run(tt.color, func(t *testing.T) {
			assert.Equal(t, tt.want, RankGlow(tt.color))
		})
	}
}
