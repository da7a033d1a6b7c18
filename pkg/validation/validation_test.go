package validation

import (
	"errors"
	"strings"
	"testing"

	"habit-reminder/pkg/localtime"

	"github.com/stretchr/testify/assert"
)

func TestValidateHabit(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		hour    int
		minute  int
		mask    int
		wantErr string
	}{
		{name: "valid", title: "Drink water", hour: 9, minute: 30, mask: 0b1111111},
		{name: "edge of day", title: "Sleep", hour: 23, minute: 59, mask: 1},
		{name: "blank title", title: "   ", hour: 9, minute: 0, mask: 1, wantErr: "title is required"},
		{name: "long title", title: strings.Repeat("ы", 201), hour: 9, minute: 0, mask: 1, wantErr: "title is too long"},
		{name: "hour too big", title: "Run", hour: 24, minute: 0, mask: 1, wantErr: "hour must be between 0 and 23"},
		{name: "negative minute", title: "Run", hour: 7, minute: -1, mask: 1, wantErr: "minute must be between 0 and 59"},
		{name: "no days", title: "Run", hour: 7, minute: 0, mask: 0, wantErr: "at least one weekday"},
		{name: "mask overflow", title: "Run", hour: 7, minute: 0, mask: 128, wantErr: "days mask must be between 1 and 127"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateHabit(tt.title, tt.hour, tt.minute, tt.mask)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			if assert.Error(t, err) {
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestValidateUser(t *testing.T) {
	assert.NoError(t, ValidateUser("123456789", "Europe/Warsaw"))
	assert.NoError(t, ValidateUser("123456789", "UTC+3"))

	err := ValidateUser("", "UTC")
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "external id is required")
	}

	err = ValidateUser("42", "Atlantis/Capital")
	assert.True(t, errors.Is(err, localtime.ErrInvalidTimezone))
}
