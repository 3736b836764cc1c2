package models

import "time"

// Plan — тариф подписки.
type Plan string

const (
	PlanDaily   Plan = "daily"
	PlanWeekly  Plan = "weekly"
	PlanMonthly Plan = "monthly"
)

// DayMillis — длительность суток в миллисекундах.
const DayMillis int64 = 24 * 60 * 60 * 1000

var planDays = map[Plan]int64{
	PlanDaily:   1,
	PlanWeekly:  7,
	PlanMonthly: 30,
}

// Days возвращает количество дней тарифа и false для неизвестного тарифа.
func (p Plan) Days() (int64, bool) {
	days, ok := planDays[p]
	return days, ok
}

// Valid сообщает, является ли тариф одним из известных.
func (p Plan) Valid() bool {
	_, ok := planDays[p]
	return ok
}

// ExpiresAt вычисляет момент окончания подписки, купленной в момент now, в unix ms.
func (p Plan) ExpiresAt(now time.Time) int64 {
	days, _ := p.Days()
	return now.UnixMilli() + days*DayMillis
}

// Subscription — запись о подписке. Записи только добавляются,
// текущий доступ определяется по последней из них.
type Subscription struct {
	ID        int64 `json:"id"`
	UserID    int64 `json:"user_id"`
	Plan      Plan  `json:"plan"`
	ExpiresAt int64 `json:"expires_at"`
	CreatedAt int64 `json:"created_at"`
}

// ActiveAt сообщает, действует ли подписка в момент now.
func (s *Subscription) ActiveAt(now time.Time) bool {
	return s != nil && s.ExpiresAt > now.UnixMilli()
}
