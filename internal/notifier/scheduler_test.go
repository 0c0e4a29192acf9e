package notifier

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseTime(t *testing.T) {
	hour, minute, err := parseTime("07:30")
	assert.NoError(t, err)
	assert.Equal(t, 7, hour)
	assert.Equal(t, 30, minute)

	hour, minute, err = parseTime("23:59")
	assert.NoError(t, err)
	assert.Equal(t, 23, hour)
	assert.Equal(t, 59, minute)
}

func TestParseTimeErrors(t *testing.T) {
	cases := []string{"", "0730", "7", "24:00", "12:60", "aa:bb"}
	for _, c := range cases {
		_, _, err := parseTime(c)
		assert.Error(t, err, c)
	}
}

func TestDailyRejectsBadTime(t *testing.T) {
	s := NewScheduler(time.UTC)
	err := s.Daily("25:00", func() {})
	assert.Error(t, err)
}

func TestDailyAcceptsValidTime(t *testing.T) {
	s := NewScheduler(time.UTC)
	err := s.Daily("20:00", func() {})
	assert.NoError(t, err)
}
