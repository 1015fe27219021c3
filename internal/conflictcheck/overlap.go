package conflictcheck

// Overlaps reports whether two normalized sessions occupy the same venue
// on the same calendar day with overlapping time ranges.
//
// Временные интервалы полуоткрытые: пересечение есть, только если
// начало одного СТРОГО раньше конца другого И наоборот. Граничные
// случаи не считаются пересечением:
//
//   - 10:00-12:00 и 11:00-13:00 → ЕСТЬ пересечение (11:00-12:00)
//   - 10:00-11:00 и 11:00-12:00 → НЕТ пересечения (граничат)
//
// Площадки сравниваются точным совпадением строки, без нормализации
// регистра и алиасов. Функция чистая и тотальная (при non-nil входах).
func Overlaps(a, b *NormalizedSession) bool {
	if a.Venue != b.Venue {
		return false
	}
	if a.DateKey != b.DateKey {
		return false
	}
	return a.StartMinutes < b.EndMinutes && a.EndMinutes > b.StartMinutes
}
