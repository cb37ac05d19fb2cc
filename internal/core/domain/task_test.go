package domain_test

import (
	"testing"
	"time"

	"github.com/fincaops/fincaops/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestIsRecurring(t *testing.T) {
	task := domain.Task{}
	assert.False(t, task.IsRecurring(), "no recurrence")

	task.Recurrence = &domain.Recurrence{Interval: 2, Frequency: domain.FrequencyWeeks, Enabled: false}
	assert.False(t, task.IsRecurring(), "disabled recurrence")

	task.Recurrence.Enabled = true
	assert.True(t, task.IsRecurring())

	task.Recurrence.Interval = 0
	assert.False(t, task.IsRecurring(), "zero interval")
}

func TestClosingDate(t *testing.T) {
	start := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 25, 0, 0, 0, 0, time.UTC)

	task := domain.Task{StartDate: start}
	assert.True(t, task.ClosingDate().Equal(start), "falls back to start date")

	task.EndDate = &end
	assert.True(t, task.ClosingDate().Equal(end))
}

func TestNextStartDate(t *testing.T) {
	end := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name      string
		interval  int
		frequency domain.RecurrenceFrequency
		expected  time.Time
	}{
		{"days", 10, domain.FrequencyDays, time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)},
		{"weeks", 2, domain.FrequencyWeeks, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
		{"months", 1, domain.FrequencyMonths, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			task := domain.Task{
				StartDate:  time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
				EndDate:    &end,
				Recurrence: &domain.Recurrence{Interval: tc.interval, Frequency: tc.frequency, Enabled: true},
			}
			assert.True(t, task.NextStartDate().Equal(tc.expected))
		})
	}
}

func TestIsLocalID(t *testing.T) {
	assert.True(t, domain.IsLocalID("local_8e6f"))
	assert.False(t, domain.IsLocalID("8e6f"))
}
