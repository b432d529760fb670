package port

// Whitelist интерфейс белого списка нормализованных номеров
type Whitelist interface {
	// Contains проверяет наличие номера в списке
	Contains(plate string) bool

	// Reload перечитывает список из источника
	Reload() error
}
