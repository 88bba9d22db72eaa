package booking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RentalService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция (через context.Value),
// использует её. Создание бронирования с проверкой доступности должно
// выполняться внутри сериализуемой транзакции (см. usecase/create_booking).
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"user_id",
			"car_id",
			"start_date",
			"end_date",
			"total_days",
			"total_amount",
			"status",
		).
		Values(
			booking.UserID,
			booking.CarID,
			booking.StartDate,
			booking.EndDate,
			booking.TotalDays,
			booking.TotalAmount,
			booking.Status,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"user_id",
		"car_id",
		"start_date",
		"end_date",
		"total_days",
		"total_amount",
		"status",
		"created_at",
	).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var booking domain.Booking
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&booking.UserID,
		&booking.CarID,
		&booking.StartDate,
		&booking.EndDate,
		&booking.TotalDays,
		&booking.TotalAmount,
		&booking.Status,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %w", ErrScanRow, err)
	}

	booking.CreatedAt = createdAt.Time

	return &booking, nil
}

// GetByUserID получает историю бронирований пользователя, новые первыми
// Каждая запись дополнена данными автомобиля для отображения
func (r *Repository) GetByUserID(ctx context.Context, userID int64) ([]*domain.UserBooking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"b.id",
		"b.user_id",
		"b.car_id",
		"b.start_date",
		"b.end_date",
		"b.total_days",
		"b.total_amount",
		"b.status",
		"b.created_at",
		"c.name",
		"c.brand",
		"c.image_url",
	).
		From("bookings b").
		Join("cars c ON c.id = b.car_id").
		Where(squirrel.Eq{"b.user_id": userID}).
		OrderBy("b.created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings := make([]*domain.UserBooking, 0)

	for rows.Next() {
		var ub domain.UserBooking
		var createdAt sql.NullTime

		err := rows.Scan(
			&ub.ID,
			&ub.UserID,
			&ub.CarID,
			&ub.StartDate,
			&ub.EndDate,
			&ub.TotalDays,
			&ub.TotalAmount,
			&ub.Status,
			&createdAt,
			&ub.CarName,
			&ub.CarBrand,
			&ub.CarImageURL,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: GetByUserID - scan row: %w", ErrScanRow, err)
		}

		ub.CreatedAt = createdAt.Time
		bookings = append(bookings, &ub)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - rows error: %w", ErrScanRow, err)
	}

	return bookings, nil
}

// GetActiveOverlapping получает активные (не отмененные) бронирования
// автомобиля, пересекающиеся с диапазоном [start, end] (оба конца включительно)
//
// Внутри транзакции добавляет FOR UPDATE для блокировки найденных строк -
// используется usecase'ом создания бронирования
func (r *Repository) GetActiveOverlapping(ctx context.Context, carID int64, start, end time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	inactiveStatusStrings := make([]string, len(domain.InactiveStatuses))
	for i, s := range domain.InactiveStatuses {
		inactiveStatusStrings[i] = string(s)
	}

	selectBuilder := psqlbuilder.Select(
		"id",
		"user_id",
		"car_id",
		"start_date",
		"end_date",
		"total_days",
		"total_amount",
		"status",
		"created_at",
	).
		From("bookings").
		Where(squirrel.Eq{"car_id": carID}).
		Where(squirrel.NotEq{"status": inactiveStatusStrings}).
		Where(squirrel.LtOrEq{"start_date": end}).
		Where(squirrel.GtOrEq{"end_date": start}).
		OrderBy("start_date ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveOverlapping - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var booking domain.Booking
		var createdAt sql.NullTime

		err := rows.Scan(
			&booking.ID,
			&booking.UserID,
			&booking.CarID,
			&booking.StartDate,
			&booking.EndDate,
			&booking.TotalDays,
			&booking.TotalAmount,
			&booking.Status,
			&createdAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: GetActiveOverlapping - scan row: %w", ErrScanRow, err)
		}

		booking.CreatedAt = createdAt.Time
		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetActiveOverlapping - rows error: %w", ErrScanRow, err)
	}

	return bookings, nil
}

// HasActiveByCarID проверяет, есть ли у автомобиля активные бронирования
// Используется при удалении автомобиля из каталога
func (r *Repository) HasActiveByCarID(ctx context.Context, carID int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	inactiveStatusStrings := make([]string, len(domain.InactiveStatuses))
	for i, s := range domain.InactiveStatuses {
		inactiveStatusStrings[i] = string(s)
	}

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("bookings").
		Where(squirrel.Eq{"car_id": carID}).
		Where(squirrel.NotEq{"status": inactiveStatusStrings}).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: HasActiveByCarID - build select query: %v", ErrBuildQuery, err)
	}

	var count int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("%w: HasActiveByCarID - scan count: %w", ErrScanRow, err)
	}

	return count > 0, nil
}

// UpdateStatus обновляет статус бронирования
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}
