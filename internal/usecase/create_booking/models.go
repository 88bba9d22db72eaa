package create_booking

import "time"

// Request модель запроса на создание бронирования
type Request struct {
	UserID    int64     // ID пользователя (из JWT)
	CarID     int64     // ID автомобиля
	StartDate time.Time // Дата начала аренды (без времени, включительно)
	EndDate   time.Time // Дата окончания аренды (без времени, включительно)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID          int64     // ID созданного бронирования
	UserID      int64     // ID пользователя
	CarID       int64     // ID автомобиля
	StartDate   time.Time // Дата начала аренды
	EndDate     time.Time // Дата окончания аренды
	TotalDays   int       // Количество оплачиваемых дней
	TotalAmount float64   // Итоговая стоимость
	Status      string    // Статус бронирования

	CreatedAt time.Time // Время создания
}
