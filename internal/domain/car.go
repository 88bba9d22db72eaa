package domain

import "time"

// Car represents a rentable car in the directory
type Car struct {
	ID           int64
	Name         string // "<brand> <model>"
	Brand        string
	Model        string
	Year         *int
	Type         string // category: Sedan, SUV, ...
	Seats        *int
	Transmission *string
	Fuel         *string
	PricePerDay  float64
	Description  *string
	ImageURL     *string
	City         *string
	District     *string
	Available    bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CarFilter фильтр для получения списка автомобилей
type CarFilter struct {
	Type   string // фильтр по категории ("All" или пусто - все категории)
	Search string // подстрока в name/brand/type
	Sort   CarSort
}

// CarSort порядок сортировки списка автомобилей
type CarSort string

const (
	SortDefault   CarSort = ""           // updated_at DESC
	SortPriceAsc  CarSort = "price_asc"  // price_per_day ASC
	SortPriceDesc CarSort = "price_desc" // price_per_day DESC
	SortNameAsc   CarSort = "name_asc"   // name ASC
)

// CarUpdate частичное обновление автомобиля
// nil поле - значение не меняется; пустая строка нормализуется в NULL
// на уровне репозитория. Name пересчитывается сервисом из brand/model.
type CarUpdate struct {
	Name         *string
	Brand        *string
	Model        *string
	Year         *int
	Type         *string
	Seats        *int
	Transmission *string
	Fuel         *string
	PricePerDay  *float64
	Description  *string
	ImageURL     *string
	City         *string
	District     *string
}

// IsEmpty returns true if the update carries no fields
func (u *CarUpdate) IsEmpty() bool {
	return u.Name == nil && u.Brand == nil && u.Model == nil && u.Year == nil && u.Type == nil &&
		u.Seats == nil && u.Transmission == nil && u.Fuel == nil &&
		u.PricePerDay == nil && u.Description == nil && u.ImageURL == nil &&
		u.City == nil && u.District == nil
}
