// Package models содержит доменные структуры сервиса: пользователя,
// подписку с тарифами, звонок и производные значения доступа.
package models

// User представляет пользователя, идентифицируемого номером телефона.
// Флаг IsDesigner выставляется один раз при создании и больше не меняется.
type User struct {
	ID         int64  `json:"id"`
	Phone      string `json:"phone"`
	IsDesigner bool   `json:"isDesigner"`
}

// Access описывает текущий доступ пользователя, вычисленный по последней подписке.
type Access struct {
	IsDesigner bool  `json:"isDesigner"`
	ActivePaid bool  `json:"activePaid"`
	ExpiresAt  int64 `json:"expiresAt"` // unix ms, 0 если подписок нет
}
