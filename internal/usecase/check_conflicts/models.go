package check_conflicts

import (
	"github.com/m04kA/SMC-VenueService/internal/conflictcheck"
	"github.com/m04kA/SMC-VenueService/internal/domain"
)

// Request модель запроса на проверку конфликтов (dry run)
type Request struct {
	RecordID string           // ID записи-кандидата (пустой для новой записи)
	Sessions []domain.Session // Проверяемые сессии
}

// Response модель ответа с результатом проверки
type Response struct {
	Blocking  bool                // Есть ли блокирующие конфликты
	Conflicts []domain.Conflict   // Все конфликты (blocking + warning)
	Report    conflictcheck.Report // Человекочитаемый отчет
}
