package utils

import (
	"fmt"
	"time"
)

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse(time.DateOnly, dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// ParseDateRange valida um intervalo YYYY-MM-DD obrigatório com início <= fim
func ParseDateRange(startStr, endStr string) (*time.Time, *time.Time, error) {
	if startStr == "" || endStr == "" {
		return nil, nil, fmt.Errorf("start_date e end_date são obrigatórios")
	}

	start, err := ParseDate(startStr)
	if err != nil {
		return nil, nil, fmt.Errorf("start_date inválida: %w", err)
	}

	end, err := ParseDate(endStr)
	if err != nil {
		return nil, nil, fmt.Errorf("end_date inválida: %w", err)
	}

	if start.After(*end) {
		return nil, nil, fmt.Errorf("start_date deve ser anterior ou igual a end_date")
	}

	return start, end, nil
}

// Today retorna a data corrente no fuso informado, caindo para UTC se inválido
func Today(timezone string) time.Time {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		loc = time.UTC
	}
	now := time.Now().In(loc)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
}
