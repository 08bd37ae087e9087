package settlement_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/turboexpress/backend/internal/core/settlement"
)

func TestWeekID(t *testing.T) {
	tests := []struct {
		name string
		ts   time.Time
		week string
	}{
		{
			name: "mid year",
			ts:   time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC),
			week: "2026-W36",
		},
		{
			name: "single digit week padded",
			ts:   time.Date(2026, 1, 19, 0, 0, 0, 0, time.UTC),
			week: "2026-W04",
		},
		{
			name: "january belongs to previous iso year",
			ts:   time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC),
			week: "2020-W53",
		},
		{
			name: "december belongs to next iso year",
			ts:   time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
			week: "2025-W01",
		},
		{
			name: "normalized to utc",
			ts:   time.Date(2024, 12, 30, 1, 0, 0, 0, time.FixedZone("UTC+3", 3*60*60)),
			week: "2024-W52",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.week, settlement.WeekID(tt.ts))
		})
	}
}
