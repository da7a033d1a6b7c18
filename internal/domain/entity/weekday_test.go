package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekdayMask_Has(t *testing.T) {
	mask := Monday | Friday

	assert.True(t, mask.Has(0))
	assert.True(t, mask.Has(4))
	assert.False(t, mask.Has(1))
	assert.False(t, mask.Has(6))
	assert.False(t, mask.Has(7))
	assert.False(t, mask.Has(-1))
	assert.Equal(t, WeekdayMask(0b0010001), mask)
}

func TestWeekdayMask_Valid(t *testing.T) {
	assert.True(t, EveryDay.Valid())
	assert.True(t, Sunday.Valid())
	assert.False(t, WeekdayMask(0).Valid())
	assert.False(t, WeekdayMask(0x80).Valid())
}

func TestParseWeekdayMask(t *testing.T) {
	tests := []struct {
		in   string
		want WeekdayMask
	}{
		{"daily", EveryDay},
		{"weekdays", Weekdays},
		{"Weekend", Weekend},
		{"mon", Monday},
		{"mon, wed,FRI", Monday | Wednesday | Friday},
		{"monday,sunday", Monday | Sunday},
		{"Tuesday,thu,SATURDAY", Tuesday | Thursday | Saturday},
		{"0,6", Monday | Sunday},
	}

	for _, tt := range tests {
		got, err := ParseWeekdayMask(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	for _, bad := range []string{"", "7", "mo", "funday", "sunshine", "monkey", "tues", "mon,wedding"} {
		_, err := ParseWeekdayMask(bad)
		assert.Error(t, err, bad)
	}
}

func TestWeekdayMask_String(t *testing.T) {
	assert.Equal(t, "daily", EveryDay.String())
	assert.Equal(t, "mon,wed,fri", (Monday | Wednesday | Friday).String())
	assert.Equal(t, "sat,sun", Weekend.String())
}
