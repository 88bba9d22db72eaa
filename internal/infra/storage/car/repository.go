package car

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RentalService/pkg/psqlbuilder"
)

// foreignKeyViolationCode код ошибки PostgreSQL при нарушении FK (23503)
const foreignKeyViolationCode = "23503"

// carColumns колонки таблицы cars в порядке сканирования
var carColumns = []string{
	"id",
	"name",
	"brand",
	"model",
	"year",
	"type",
	"seats",
	"transmission",
	"fuel",
	"price_per_day",
	"description",
	"image_url",
	"city",
	"district",
	"available",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с каталогом автомобилей
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория автомобилей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// List получает список автомобилей с фильтрацией и сортировкой
// Фильтр по категории ("All" и пустое значение - без фильтра), поиск
// по подстроке в name/brand/type, сортировка по цене/имени/updated_at
func (r *Repository) List(ctx context.Context, filter domain.CarFilter) ([]*domain.Car, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(carColumns...).From("cars")

	if filter.Type != "" && filter.Type != "All" {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"type": filter.Type})
	}

	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		selectBuilder = selectBuilder.Where(squirrel.Or{
			squirrel.ILike{"name": like},
			squirrel.ILike{"brand": like},
			squirrel.ILike{"type": like},
		})
	}

	switch filter.Sort {
	case domain.SortPriceAsc:
		selectBuilder = selectBuilder.OrderBy("price_per_day ASC")
	case domain.SortPriceDesc:
		selectBuilder = selectBuilder.OrderBy("price_per_day DESC")
	case domain.SortNameAsc:
		selectBuilder = selectBuilder.OrderBy("name ASC")
	default:
		selectBuilder = selectBuilder.OrderBy("updated_at DESC")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	cars := make([]*domain.Car, 0)
	for rows.Next() {
		car, err := scanCar(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %w", ErrScanRow, err)
		}
		cars = append(cars, car)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %w", ErrScanRow, err)
	}

	return cars, nil
}

// GetByID получает автомобиль по ID
// Внутри транзакции блокирует строку (FOR UPDATE) - usecase создания
// бронирования читает цену и флаг доступности под блокировкой
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Car, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(carColumns...).
		From("cars").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	car, err := scanCar(row)
	if err == sql.ErrNoRows {
		return nil, ErrCarNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan car: %w", ErrScanRow, err)
	}

	return car, nil
}

// Create создает новый автомобиль, по умолчанию доступный для аренды
func (r *Repository) Create(ctx context.Context, car *domain.Car) (*domain.Car, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("cars").
		Columns(
			"name",
			"brand",
			"model",
			"year",
			"type",
			"seats",
			"transmission",
			"fuel",
			"price_per_day",
			"description",
			"image_url",
			"city",
			"district",
			"available",
		).
		Values(
			car.Name,
			car.Brand,
			car.Model,
			car.Year,
			car.Type,
			car.Seats,
			car.Transmission,
			car.Fuel,
			car.PricePerDay,
			car.Description,
			car.ImageURL,
			car.City,
			car.District,
			car.Available,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&car.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	car.CreatedAt = createdAt.Time
	car.UpdatedAt = updatedAt.Time

	return car, nil
}

// Update частично обновляет автомобиль: меняются только переданные поля,
// пустая строка в текстовом поле записывается как NULL
func (r *Repository) Update(ctx context.Context, id int64, update domain.CarUpdate) error {
	if update.IsEmpty() {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("cars").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if update.Name != nil {
		updateBuilder = updateBuilder.Set("name", *update.Name)
	}
	if update.Brand != nil {
		updateBuilder = updateBuilder.Set("brand", *update.Brand)
	}
	if update.Model != nil {
		updateBuilder = updateBuilder.Set("model", *update.Model)
	}
	if update.Year != nil {
		updateBuilder = updateBuilder.Set("year", *update.Year)
	}
	if update.Type != nil {
		updateBuilder = updateBuilder.Set("type", *update.Type)
	}
	if update.Seats != nil {
		updateBuilder = updateBuilder.Set("seats", *update.Seats)
	}
	if update.Transmission != nil {
		updateBuilder = updateBuilder.Set("transmission", nullableString(*update.Transmission))
	}
	if update.Fuel != nil {
		updateBuilder = updateBuilder.Set("fuel", nullableString(*update.Fuel))
	}
	if update.PricePerDay != nil {
		updateBuilder = updateBuilder.Set("price_per_day", *update.PricePerDay)
	}
	if update.Description != nil {
		updateBuilder = updateBuilder.Set("description", nullableString(*update.Description))
	}
	if update.ImageURL != nil {
		updateBuilder = updateBuilder.Set("image_url", nullableString(*update.ImageURL))
	}
	if update.City != nil {
		updateBuilder = updateBuilder.Set("city", nullableString(*update.City))
	}
	if update.District != nil {
		updateBuilder = updateBuilder.Set("district", nullableString(*update.District))
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrCarNotFound
	}

	return nil
}

// SetAvailability устанавливает флаг доступности автомобиля
func (r *Repository) SetAvailability(ctx context.Context, id int64, available bool) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("cars").
		Set("available", available).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetAvailability - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetAvailability - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetAvailability - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrCarNotFound
	}

	return nil
}

// Delete удаляет автомобиль из каталога
// FK bookings.car_id объявлен как ON DELETE RESTRICT: пока на автомобиль
// ссылаются бронирования, удаление возвращает ErrCarHasBookings
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("cars").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == foreignKeyViolationCode {
			return ErrCarHasBookings
		}
		return fmt.Errorf("%w: Delete - execute delete: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrCarNotFound
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanCar сканирует строку результата в domain.Car
func scanCar(row rowScanner) (*domain.Car, error) {
	var car domain.Car
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&car.ID,
		&car.Name,
		&car.Brand,
		&car.Model,
		&car.Year,
		&car.Type,
		&car.Seats,
		&car.Transmission,
		&car.Fuel,
		&car.PricePerDay,
		&car.Description,
		&car.ImageURL,
		&car.City,
		&car.District,
		&car.Available,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, err
	}

	car.CreatedAt = createdAt.Time
	car.UpdatedAt = updatedAt.Time

	return &car, nil
}

// nullableString нормализует пустую строку в NULL
func nullableString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
