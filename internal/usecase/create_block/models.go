package create_block

import (
	"time"
)

// Request модель запроса на создание блокировки
type Request struct {
	ActorID int64     // ID администратора
	SpaceID int64     // ID пространства
	Start   time.Time // Начало блокировки
	End     time.Time // Конец блокировки (не включается)
	Reason  *string   // Причина блокировки (опционально)
}

// Response модель ответа с созданной блокировкой
type Response struct {
	ID        int64     // ID блокировки
	SpaceID   int64     // ID пространства
	Start     time.Time // Начало
	End       time.Time // Конец
	Status    string    // Статус (bloqueo)
	Reason    *string   // Причина
	CreatedBy int64     // ID администратора
}
