package create_reservation

import (
	"time"
)

// Request модель запроса на создание резервации
type Request struct {
	UserID            int64     // ID пользователя-заявителя
	SpaceID           int64     // ID пространства
	Start             time.Time // Начало интервала
	End               time.Time // Конец интервала (не включается)
	Reason            *string   // Цель резервации (опционально)
	Recurring         bool      // Признак повторяющейся заявки
	RecurrencePattern *string   // Паттерн повторения (хранится, не разворачивается)
}

// Response модель ответа с созданной заявкой
type Response struct {
	ID          int64     // ID созданной резервации
	UserID      int64     // ID пользователя
	SpaceID     int64     // ID пространства
	Start       time.Time // Начало интервала
	End         time.Time // Конец интервала
	Status      string    // Статус (всегда pendiente при создании)
	Reason      *string   // Цель резервации
	Recurring   bool      // Признак повторяющейся заявки
	RequestedAt time.Time // Время подачи заявки
}
