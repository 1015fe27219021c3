// Package conflictcheck реализует проверку двойных бронирований площадок:
// нормализация сессий, детект пересечений, классификация конфликтов по
// статусу конкурирующей записи и форматирование отчета.
//
// Пакет полностью чистый: без I/O, без состояния между вызовами. Набор
// записей others передается явно — данные могли измениться между любыми
// двумя вызовами, поэтому результат никогда не кешируется.
package conflictcheck

import (
	"time"

	"github.com/m04kA/SMC-VenueService/internal/domain"
	"github.com/m04kA/SMC-VenueService/pkg/types"
)

// NormalizedSession is the canonical comparable form of a session:
// calendar day plus minute-granularity start/end.
type NormalizedSession struct {
	Venue        string
	DateKey      string // YYYY-MM-DD
	StartMinutes int
	EndMinutes   int

	// Source хранит исходную сессию для отчета
	Source domain.Session
}

// dateLayouts форматы дат, которые присылает фронтенд CRM.
// Календарный день берется как есть, без конвертации таймзон.
var dateLayouts = []string{
	domain.DateFormat,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// Normalize converts a session into its canonical comparable form.
// It returns nil for incomplete or unparseable sessions; the caller
// silently skips those (partial data during editing is expected).
// Normalize never fails in any other way.
func Normalize(s domain.Session) *NormalizedSession {
	if !s.IsComplete() {
		return nil
	}

	dateKey, ok := normalizeDate(s.SessionDate)
	if !ok {
		return nil
	}

	start, err := types.TimeString(s.StartTime).Minutes()
	if err != nil {
		return nil
	}

	end, err := types.TimeString(s.EndTime).Minutes()
	if err != nil {
		return nil
	}

	return &NormalizedSession{
		Venue:        s.Venue,
		DateKey:      dateKey,
		StartMinutes: start,
		EndMinutes:   end,
		Source:       s,
	}
}

// NormalizeAll normalizes a list of sessions, dropping the incomplete ones.
func NormalizeAll(sessions []domain.Session) []*NormalizedSession {
	result := make([]*NormalizedSession, 0, len(sessions))
	for _, s := range sessions {
		if n := Normalize(s); n != nil {
			result = append(result, n)
		}
	}
	return result
}

// normalizeDate приводит дату к ключу календарного дня YYYY-MM-DD.
// Принимает как чистую дату, так и полный ISO timestamp — компонент
// времени отбрасывается, день берется как указан.
func normalizeDate(raw string) (string, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(domain.DateFormat), true
		}
	}
	return "", false
}
