package booking

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

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование вместе с сессиями.
// Вызывается только внутри сериализуемой транзакции: проверка конфликтов
// и вставка должны быть атомарными, иначе возможна гонка двух
// одновременных бронирований одной площадки.
func (r *Repository) Create(ctx context.Context, bk *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if bk.ID == "" {
		bk.ID = uuid.NewString()
	}

	query, args, err := psqlbuilder.Insert("bookings").
		Columns("id", "user_id", "client_id", "client_name", "status", "notes").
		Values(bk.ID, bk.UserID, bk.ClientID, bk.ClientName, bk.Status, bk.Notes).
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

	bk.CreatedAt = createdAt.Time
	bk.UpdatedAt = updatedAt.Time

	if err := insertSessions(ctx, executor, bk.ID, bk.Sessions); err != nil {
		return nil, err
	}

	return bk, nil
}

// GetByID получает бронирование по ID вместе с сессиями
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id", "user_id", "client_id", "client_name", "status", "notes",
		"cancellation_reason", "cancelled_at", "created_at", "updated_at",
	).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var bk domain.Booking
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&bk.ID,
		&bk.UserID,
		&bk.ClientID,
		&bk.ClientName,
		&bk.Status,
		&bk.Notes,
		&bk.CancellationReason,
		&bk.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	bk.CreatedAt = createdAt.Time
	bk.UpdatedAt = updatedAt.Time

	sessions, err := loadSessions(ctx, executor, []string{bk.ID})
	if err != nil {
		return nil, err
	}
	bk.Sessions = sessions[bk.ID]

	return &bk, nil
}

// ListWithSessions получает все бронирования вместе с сессиями.
// Статусы не фильтруются: отмененные бронирования исключает классификатор.
//
// При активной транзакции добавляется FOR UPDATE для блокировки.
func (r *Repository) ListWithSessions(ctx context.Context) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id", "user_id", "client_id", "client_name", "status", "notes",
		"cancellation_reason", "cancelled_at", "created_at", "updated_at",
	).
		From("bookings").
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

	bookings := make([]*domain.Booking, 0)
	ids := make([]string, 0)

	for rows.Next() {
		var bk domain.Booking
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&bk.ID,
			&bk.UserID,
			&bk.ClientID,
			&bk.ClientName,
			&bk.Status,
			&bk.Notes,
			&bk.CancellationReason,
			&bk.CancelledAt,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListWithSessions - scan row: %v", ErrScanRow, err)
		}

		bk.CreatedAt = createdAt.Time
		bk.UpdatedAt = updatedAt.Time

		bookings = append(bookings, &bk)
		ids = append(ids, bk.ID)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListWithSessions - rows error: %v", ErrScanRow, err)
	}

	sessions, err := loadSessions(ctx, executor, ids)
	if err != nil {
		return nil, err
	}
	for _, bk := range bookings {
		bk.Sessions = sessions[bk.ID]
	}

	return bookings, nil
}

// Cancel отменяет бронирование с указанием причины
func (r *Repository) Cancel(ctx context.Context, id string, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusCancelled).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": domain.StatusBooked}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		// Либо бронирование не существует, либо уже не в статусе booked
		return ErrCannotCancel
	}

	return nil
}

// ReplaceSessions полностью заменяет сессии бронирования
func (r *Repository) ReplaceSessions(ctx context.Context, id string, sessions []domain.Session) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("booking_sessions").
		Where(squirrel.Eq{"booking_id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceSessions - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ReplaceSessions - execute delete: %v", ErrExecQuery, err)
	}

	return insertSessions(ctx, executor, id, sessions)
}

// insertSessions вставляет сессии бронирования с сохранением порядка
func insertSessions(ctx context.Context, executor DBExecutor, bookingID string, sessions []domain.Session) error {
	if len(sessions) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("booking_sessions").
		Columns("booking_id", "position", "venue", "session_date", "start_time", "end_time")

	for i, s := range sessions {
		insertBuilder = insertBuilder.Values(bookingID, i, s.Venue, s.SessionDate, s.StartTime, s.EndTime)
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

// loadSessions загружает сессии для набора бронирований одним запросом
func loadSessions(ctx context.Context, executor DBExecutor, bookingIDs []string) (map[string][]domain.Session, error) {
	result := make(map[string][]domain.Session, len(bookingIDs))
	if len(bookingIDs) == 0 {
		return result, nil
	}

	query, args, err := psqlbuilder.Select(
		"booking_id", "venue", "session_date", "start_time", "end_time",
	).
		From("booking_sessions").
		Where(squirrel.Eq{"booking_id": bookingIDs}).
		OrderBy("booking_id ASC, position ASC").
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
		var bookingID string
		var s domain.Session

		if err := rows.Scan(&bookingID, &s.Venue, &s.SessionDate, &s.StartTime, &s.EndTime); err != nil {
			return nil, fmt.Errorf("%w: loadSessions - scan row: %v", ErrScanRow, err)
		}

		result[bookingID] = append(result[bookingID], s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: loadSessions - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}
