package conflictcheck

import "github.com/m04kA/SMC-VenueService/internal/domain"

// Candidate is the record under evaluation: its identity (to exclude
// self-comparison) and the sessions it wants to occupy.
type Candidate struct {
	ID       string
	Sessions []domain.Session
}

// Classification is the aggregated result of a conflict check.
// Blocking is true iff at least one conflict has blocking severity.
// Conflicts carries every emitted conflict (both severities) for display,
// in deterministic order: others order, then candidate session order,
// then other session order.
type Classification struct {
	Blocking  bool
	Conflicts []domain.Conflict
}

// HasConflicts reports whether any conflict (of either severity) was found.
func (c Classification) HasConflicts() bool {
	return len(c.Conflicts) > 0
}

// Warnings returns only the warning-severity conflicts.
func (c Classification) Warnings() []domain.Conflict {
	warnings := make([]domain.Conflict, 0, len(c.Conflicts))
	for _, conflict := range c.Conflicts {
		if conflict.Severity == domain.SeverityWarning {
			warnings = append(warnings, conflict)
		}
	}
	return warnings
}

// BlockingConflicts returns only the blocking-severity conflicts.
func (c Classification) BlockingConflicts() []domain.Conflict {
	blocking := make([]domain.Conflict, 0, len(c.Conflicts))
	for _, conflict := range c.Conflicts {
		if conflict.Severity == domain.SeverityBlocking {
			blocking = append(blocking, conflict)
		}
	}
	return blocking
}

// Classify walks all other records, finds every session pair that overlaps
// a candidate session and labels it by the other record's lifecycle status.
//
// Правила (единственный источник истины для блокировок):
//   - сама запись кандидата исключается по ID;
//   - lost / closed / cancelled записи не конкурируют вообще —
//     ни блокировок, ни предупреждений;
//   - converted / booked → blocking (площадка уже занята);
//   - new / ongoing / quotation_sent → warning (конкурент без коммита);
//   - неполные сессии с обеих сторон молча пропускаются.
//
// Classify — чистая функция: одинаковые входы всегда дают одинаковый
// результат, записи не мутируются.
func Classify(candidate Candidate, others []*domain.Record) Classification {
	candidateSessions := NormalizeAll(candidate.Sessions)
	if len(candidateSessions) == 0 {
		// Нечего проверять
		return Classification{Blocking: false, Conflicts: []domain.Conflict{}}
	}

	result := Classification{Conflicts: []domain.Conflict{}}

	for _, other := range others {
		if other == nil || other.ID == candidate.ID {
			continue
		}
		if !other.Status.Competes() {
			continue
		}

		severity := domain.SeverityWarning
		if other.Status.Blocks() {
			severity = domain.SeverityBlocking
		}

		otherSessions := NormalizeAll(other.Sessions)

		for _, cs := range candidateSessions {
			for _, os := range otherSessions {
				if !Overlaps(cs, os) {
					continue
				}

				result.Conflicts = append(result.Conflicts, domain.Conflict{
					Severity:         severity,
					Venue:            cs.Venue,
					Date:             cs.DateKey,
					CandidateSession: cs.Source,
					OtherSession:     os.Source,
					OtherID:          other.ID,
					OtherKind:        other.Kind,
					OtherStatus:      other.Status,
					OtherClientName:  other.ClientName,
				})

				if severity == domain.SeverityBlocking {
					result.Blocking = true
				}
			}
		}
	}

	return result
}
