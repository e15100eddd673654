package domain

import "time"

type ReportFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// Dates formata o período no padrão YYYY-MM-DD esperado pelo tracker
func (f *ReportFilters) Dates() (string, string) {
	if f == nil || f.StartDate == nil || f.EndDate == nil {
		return "", ""
	}
	return f.StartDate.Format(time.DateOnly), f.EndDate.Format(time.DateOnly)
}
