package get_available_slots

import "github.com/m04kA/SMC-ReservationEngine/internal/domain"

// Request модель запроса на получение доступных слотов
// Пустые поля не фильтруют выдачу
type Request struct {
	ClientID   string // ID клиента (для логирования, не влияет на результат)
	ProviderID string // опционально: только слоты провайдера
	Date       string // опционально: "MM/dd/yyyy"
}

// Response модель ответа со слотами, сгруппированными по дате
type Response struct {
	Groups []domain.DateGroup
	Total  int // Общее количество слотов во всех группах
}
