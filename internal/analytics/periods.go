// Package analytics contém os cálculos do painel do vendedor: faturamento por período,
// crescimento e classificação de estoque. Todas as funções são puras; o instante de
// referência é sempre recebido como parâmetro.
package analytics

import "time"

// Window é um intervalo fechado [Start, End]
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains informa se t está dentro da janela, incluindo as extremidades
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// Periods reúne as fronteiras calculadas a partir do instante de referência.
// WeekStart e MonthStart não têm limite superior ("até agora").
type Periods struct {
	Today      Window
	Yesterday  Window
	WeekStart  time.Time
	LastWeek   Window
	MonthStart time.Time
	LastMonth  Window
}

// NewPeriods calcula as janelas no fuso de now. A semana começa no domingo.
func NewPeriods(now time.Time) Periods {
	y, m, d := now.Date()
	loc := now.Location()

	todayStart := time.Date(y, m, d, 0, 0, 0, 0, loc)
	yesterdayStart := time.Date(y, m, d-1, 0, 0, 0, 0, loc)

	offset := int(now.Weekday())
	weekStart := time.Date(y, m, d-offset, 0, 0, 0, 0, loc)
	lastWeekStart := time.Date(y, m, d-offset-7, 0, 0, 0, 0, loc)

	monthStart := time.Date(y, m, 1, 0, 0, 0, 0, loc)
	lastMonthStart := time.Date(y, m-1, 1, 0, 0, 0, 0, loc)

	return Periods{
		Today:      Window{Start: todayStart, End: endOfDay(todayStart)},
		Yesterday:  Window{Start: yesterdayStart, End: endOfDay(yesterdayStart)},
		WeekStart:  weekStart,
		LastWeek:   Window{Start: lastWeekStart, End: weekStart.Add(-time.Nanosecond)},
		MonthStart: monthStart,
		LastMonth:  Window{Start: lastMonthStart, End: monthStart.Add(-time.Nanosecond)},
	}
}

// endOfDay retorna o último instante representável do dia que começa em start
func endOfDay(start time.Time) time.Time {
	y, m, d := start.Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, start.Location()).Add(-time.Nanosecond)
}
