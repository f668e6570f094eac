package get_available_spaces

import (
	"time"
)

// Request модель запроса свободных пространств на интервал
type Request struct {
	Start time.Time // Начало интервала
	End   time.Time // Конец интервала (не включается)
	Kind  *string   // Фильтр по типу пространства (sala, cancha)
}

// SpaceInfo информация о свободном пространстве
type SpaceInfo struct {
	ID       int64  // ID пространства
	Name     string // Название
	Kind     string // Тип (sala, cancha)
	Capacity int    // Вместимость
	Location string // Расположение
}

// Response модель ответа со списком свободных пространств
type Response struct {
	Start  time.Time    // Начало интервала
	End    time.Time    // Конец интервала
	Spaces []*SpaceInfo // Свободные пространства
}
