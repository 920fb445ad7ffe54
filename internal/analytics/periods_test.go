package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewPeriods(t *testing.T) {
	tests := []struct {
		name     string
		now      time.Time
		validate func(t *testing.T, p Periods)
	}{
		{
			name: "Quarta-feira no meio do mês",
			now:  time.Date(2024, 1, 17, 12, 0, 0, 0, time.UTC),
			validate: func(t *testing.T, p Periods) {
				assert.Equal(t, time.Date(2024, 1, 17, 0, 0, 0, 0, time.UTC), p.Today.Start)
				assert.Equal(t, time.Date(2024, 1, 17, 23, 59, 59, 999999999, time.UTC), p.Today.End)
				assert.Equal(t, time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC), p.Yesterday.Start)
				assert.Equal(t, time.Date(2024, 1, 16, 23, 59, 59, 999999999, time.UTC), p.Yesterday.End)
				assert.Equal(t, time.Date(2024, 1, 14, 0, 0, 0, 0, time.UTC), p.WeekStart)
				assert.Equal(t, time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC), p.LastWeek.Start)
				assert.Equal(t, time.Date(2024, 1, 13, 23, 59, 59, 999999999, time.UTC), p.LastWeek.End)
				assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), p.MonthStart)
				assert.Equal(t, time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC), p.LastMonth.Start)
				assert.Equal(t, time.Date(2023, 12, 31, 23, 59, 59, 999999999, time.UTC), p.LastMonth.End)
			},
		},
		{
			name: "Domingo é o primeiro dia da semana",
			now:  time.Date(2024, 1, 14, 8, 30, 0, 0, time.UTC),
			validate: func(t *testing.T, p Periods) {
				assert.Equal(t, time.Date(2024, 1, 14, 0, 0, 0, 0, time.UTC), p.WeekStart)
				assert.Equal(t, time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC), p.LastWeek.Start)
			},
		},
		{
			name: "Sábado ainda pertence à semana iniciada no domingo anterior",
			now:  time.Date(2024, 1, 20, 23, 0, 0, 0, time.UTC),
			validate: func(t *testing.T, p Periods) {
				assert.Equal(t, time.Date(2024, 1, 14, 0, 0, 0, 0, time.UTC), p.WeekStart)
			},
		},
		{
			name: "Primeiro dia do mês em ano bissexto",
			now:  time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			validate: func(t *testing.T, p Periods) {
				assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), p.Yesterday.Start)
				assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), p.LastMonth.Start)
				assert.Equal(t, time.Date(2024, 2, 29, 23, 59, 59, 999999999, time.UTC), p.LastMonth.End)
				// 1 de março de 2024 é uma sexta-feira
				assert.Equal(t, time.Date(2024, 2, 25, 0, 0, 0, 0, time.UTC), p.WeekStart)
			},
		},
		{
			name: "Janeiro volta para dezembro do ano anterior",
			now:  time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC),
			validate: func(t *testing.T, p Periods) {
				assert.Equal(t, time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), p.Yesterday.Start)
				assert.Equal(t, time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC), p.LastMonth.Start)
				assert.Equal(t, time.Date(2024, 12, 29, 0, 0, 0, 0, time.UTC), p.WeekStart)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, NewPeriods(tt.now))
		})
	}
}

func TestNewPeriods_UsesLocationOfNow(t *testing.T) {
	loc := time.FixedZone("WAT", 3600)
	now := time.Date(2024, 1, 17, 0, 30, 0, 0, loc)

	p := NewPeriods(now)

	assert.Equal(t, time.Date(2024, 1, 17, 0, 0, 0, 0, loc), p.Today.Start)
	assert.True(t, p.Today.Contains(time.Date(2024, 1, 16, 23, 30, 0, 0, time.UTC)))
	assert.False(t, p.Today.Contains(time.Date(2024, 1, 16, 22, 59, 0, 0, time.UTC)))
}

func TestWindow_Contains(t *testing.T) {
	w := Window{
		Start: time.Date(2024, 1, 17, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 1, 17, 23, 59, 59, 999999999, time.UTC),
	}

	assert.True(t, w.Contains(w.Start))
	assert.True(t, w.Contains(w.End))
	assert.False(t, w.Contains(w.Start.Add(-time.Nanosecond)))
	assert.False(t, w.Contains(w.End.Add(time.Millisecond)))
}
