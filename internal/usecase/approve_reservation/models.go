package approve_reservation

import (
	"time"
)

// Request модель запроса на одобрение заявки
type Request struct {
	ActorID       int64 // ID администратора
	ReservationID int64 // ID заявки
}

// Response модель ответа с одобренной резервацией
type Response struct {
	ID         int64     // ID резервации
	UserID     int64     // ID владельца
	SpaceID    int64     // ID пространства
	Start      time.Time // Начало интервала
	End        time.Time // Конец интервала
	Status     string    // Статус (aprobada)
	ApprovedBy int64     // ID администратора
	ApprovedAt time.Time // Время одобрения
}
