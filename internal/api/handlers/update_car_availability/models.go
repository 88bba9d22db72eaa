package update_car_availability

// AvailabilityResponse ответ с установленным значением доступности
type AvailabilityResponse struct {
	ID        int64 `json:"id"`
	Available bool  `json:"available"`
}
