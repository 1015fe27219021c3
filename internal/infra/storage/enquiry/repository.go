package enquiry

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-VenueService/internal/domain"
	"github.com/m04kA/SMC-VenueService/pkg/dbmetrics"
	"github.com/m04kA/SMC-VenueService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с заявками
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория заявок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую заявку вместе с ее сессиями.
// Если в контексте передана активная транзакция, использует её.
func (r *Repository) Create(ctx context.Context, enq *domain.Enquiry) (*domain.Enquiry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if enq.ID == "" {
		enq.ID = uuid.NewString()
	}

	query, args, err := psqlbuilder.Insert("enquiries").
		Columns("id", "client_id", "client_name", "status", "notes").
		Values(enq.ID, enq.ClientID, enq.ClientName, enq.Status, enq.Notes).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	enq.CreatedAt = createdAt.Time
	enq.UpdatedAt = updatedAt.Time

	if err := insertSessions(ctx, executor, enq.ID, enq.Sessions); err != nil {
		return nil, err
	}

	return enq, nil
}

// GetByID получает заявку по ID вместе с сессиями
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Enquiry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id", "client_id", "client_name", "status", "notes", "created_at", "updated_at",
	).
		From("enquiries").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var enq domain.Enquiry
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&enq.ID,
		&enq.ClientID,
		&enq.ClientName,
		&enq.Status,
		&enq.Notes,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrEnquiryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan enquiry: %v", ErrScanRow, err)
	}

	enq.CreatedAt = createdAt.Time
	enq.UpdatedAt = updatedAt.Time

	sessions, err := loadSessions(ctx, executor, []string{enq.ID})
	if err != nil {
		return nil, err
	}
	enq.Sessions = sessions[enq.ID]

	return &enq, nil
}

// ListWithSessions получает все заявки вместе с сессиями.
// Фильтрация по статусам не делается здесь: единственный источник истины
// для исключения неконкурирующих записей — классификатор конфликтов.
//
// При активной транзакции добавляется FOR UPDATE для блокировки
// (usecase создания бронирования / смены статуса).
func (r *Repository) ListWithSessions(ctx context.Context) ([]*domain.Enquiry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id", "client_id", "client_name", "status", "notes", "created_at", "updated_at",
	).
		From("enquiries").
		OrderBy("created_at ASC, id ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithSessions - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithSessions - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	enquiries := make([]*domain.Enquiry, 0)
	ids := make([]string, 0)

	for rows.Next() {
		var enq domain.Enquiry
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&enq.ID,
			&enq.ClientID,
			&enq.ClientName,
			&enq.Status,
			&enq.Notes,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListWithSessions - scan row: %v", ErrScanRow, err)
		}

		enq.CreatedAt = createdAt.Time
		enq.UpdatedAt = updatedAt.Time

		enquiries = append(enquiries, &enq)
		ids = append(ids, enq.ID)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListWithSessions - rows error: %v", ErrScanRow, err)
	}

	sessions, err := loadSessions(ctx, executor, ids)
	if err != nil {
		return nil, err
	}
	for _, enq := range enquiries {
		enq.Sessions = sessions[enq.ID]
	}

	return enquiries, nil
}

// UpdateStatus обновляет статус заявки
func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.RecordStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if !domain.IsValidEnquiryStatus(status) {
		return fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}

	query, args, err := psqlbuilder.Update("enquiries").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrEnquiryNotFound
	}

	return nil
}

// ReplaceSessions полностью заменяет сессии заявки
func (r *Repository) ReplaceSessions(ctx context.Context, id string, sessions []domain.Session) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("enquiry_sessions").
		Where(squirrel.Eq{"enquiry_id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceSessions - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ReplaceSessions - execute delete: %v", ErrExecQuery, err)
	}

	return insertSessions(ctx, executor, id, sessions)
}

// insertSessions вставляет сессии заявки с сохранением порядка
func insertSessions(ctx context.Context, executor DBExecutor, enquiryID string, sessions []domain.Session) error {
	if len(sessions) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("enquiry_sessions").
		Columns("enquiry_id", "position", "venue", "session_date", "start_time", "end_time")

	for i, s := range sessions {
		insertBuilder = insertBuilder.Values(enquiryID, i, s.Venue, s.SessionDate, s.StartTime, s.EndTime)
	}

	query, args, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: insertSessions - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: insertSessions - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// loadSessions загружает сессии для набора заявок одним запросом
func loadSessions(ctx context.Context, executor DBExecutor, enquiryIDs []string) (map[string][]domain.Session, error) {
	result := make(map[string][]domain.Session, len(enquiryIDs))
	if len(enquiryIDs) == 0 {
		return result, nil
	}

	query, args, err := psqlbuilder.Select(
		"enquiry_id", "venue", "session_date", "start_time", "end_time",
	).
		From("enquiry_sessions").
		Where(squirrel.Eq{"enquiry_id": enquiryIDs}).
		OrderBy("enquiry_id ASC, position ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: loadSessions - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: loadSessions - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var enquiryID string
		var s domain.Session

		if err := rows.Scan(&enquiryID, &s.Venue, &s.SessionDate, &s.StartTime, &s.EndTime); err != nil {
			return nil, fmt.Errorf("%w: loadSessions - scan row: %v", ErrScanRow, err)
		}

		result[enquiryID] = append(result[enquiryID], s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: loadSessions - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}
