package apply_incident_block

import (
	"time"
)

// Request модель запроса на блокировку пространства по инциденту
type Request struct {
	ActorID    int64     // ID администратора
	IncidentID int64     // ID инцидента
	Start      time.Time // Начало блокировки
	End        time.Time // Конец блокировки (не включается)
}

// Response модель ответа с созданной блокировкой
type Response struct {
	BlockID               int64     // ID созданной блокировки
	IncidentID            int64     // ID инцидента
	SpaceID               int64     // ID заблокированного пространства
	Start                 time.Time // Начало блокировки
	End                   time.Time // Конец блокировки
	IncidentStatus        string    // Новый статус инцидента (en_progreso)
	CancelledReservations []int64   // ID отмененных резерваций
}
