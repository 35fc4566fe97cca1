package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateReservationTime(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.Local)

	tests := []struct {
		name    string
		input   time.Time
		wantErr string
	}{
		{
			name:  "valid next day afternoon",
			input: time.Date(2025, 3, 11, 14, 0, 0, 0, time.Local),
		},
		{
			name:  "valid at opening hour",
			input: time.Date(2025, 3, 11, 8, 0, 0, 0, time.Local),
		},
		{
			name:  "valid at closing hour",
			input: time.Date(2025, 3, 11, 22, 0, 0, 0, time.Local),
		},
		{
			name:  "valid same instant as now",
			input: now,
		},
		{
			name:    "non-zero minutes",
			input:   time.Date(2025, 3, 11, 14, 30, 0, 0, time.Local),
			wantErr: "on the hour",
		},
		{
			name:    "non-zero seconds",
			input:   time.Date(2025, 3, 11, 14, 0, 30, 0, time.Local),
			wantErr: "on the hour",
		},
		{
			name:    "before opening",
			input:   time.Date(2025, 3, 11, 7, 0, 0, 0, time.Local),
			wantErr: "between 8 AM and 10 PM",
		},
		{
			name:    "after closing",
			input:   time.Date(2025, 3, 11, 23, 0, 0, 0, time.Local),
			wantErr: "between 8 AM and 10 PM",
		},
		{
			name:    "in the past",
			input:   time.Date(2025, 3, 9, 14, 0, 0, 0, time.Local),
			wantErr: "past",
		},
		{
			name:    "off-hour beats business-hours rule",
			input:   time.Date(2025, 3, 11, 23, 30, 0, 0, time.Local),
			wantErr: "on the hour",
		},
		{
			name:    "off-hour in the past still reports on the hour",
			input:   time.Date(2025, 3, 9, 14, 15, 0, 0, time.Local),
			wantErr: "on the hour",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateReservationTime(tt.input, now)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
