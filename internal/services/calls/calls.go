// Package calls содержит симуляцию исходящих звонков и чтение их истории.
// Никакие внешние телефонные системы не вызываются: звонок сразу
// записывается завершённым.
package calls

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/magabrotheeeer/sakaclient-backend/internal/lib/callid"
	"github.com/magabrotheeeer/sakaclient-backend/internal/lib/sl"
	"github.com/magabrotheeeer/sakaclient-backend/internal/models"
	"github.com/magabrotheeeer/sakaclient-backend/internal/rabbitmq"
)

// HistoryLimit — максимальное число звонков в истории.
const HistoryLimit = 200

// UserFinder находит существующего пользователя по номеру.
type UserFinder interface {
	UserByPhone(ctx context.Context, phone string) (*models.User, error)
}

// CallRepository сохраняет и читает звонки.
type CallRepository interface {
	CreateCall(ctx context.Context, call models.Call) (int64, error)
	ListCalls(ctx context.Context, userID int64, limit int) ([]models.Call, error)
}

// Publisher публикует доменные события.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, message any) error
}

// Service реализует инициацию звонков и историю.
type Service struct {
	users      UserFinder
	repo       CallRepository
	pub        Publisher
	originated *prometheus.CounterVec
	log        *slog.Logger
	now        func() time.Time
	newID      func() string
}

// New создает новый экземпляр Service. originated может быть nil.
func New(users UserFinder, repo CallRepository, pub Publisher, originated *prometheus.CounterVec, log *slog.Logger) *Service {
	return &Service{
		users:      users,
		repo:       repo,
		pub:        pub,
		originated: originated,
		log:        log,
		now:        time.Now,
		newID:      callid.New,
	}
}

// Originate записывает симулированный звонок и возвращает сохранённую запись.
func (s *Service) Originate(ctx context.Context, req models.OriginateRequest) (*models.Call, error) {
	const op = "services.calls.Originate"

	user, err := s.users.UserByPhone(ctx, req.Phone)
	if err != nil {
		return nil, err
	}

	mode := req.Mode
	if mode == "" {
		mode = models.DefaultCallMode
	}
	note, err := json.Marshal(models.CallNote{
		Provider: models.CallProviderSimulated,
		Mode:     mode,
		Message:  req.Message,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	call := models.Call{
		UserID:       user.ID,
		ClientNumber: req.ClientNumber,
		Status:       models.CallStatusCompleted,
		Note:         string(note),
		CallRef:      s.newID(),
		CreatedAt:    s.now().UnixMilli(),
	}
	call.ID, err = s.repo.CreateCall(ctx, call)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("call originated",
		slog.Int64("id", call.ID),
		slog.String("call_ref", call.CallRef),
		slog.String("mode", mode),
	)

	if s.originated != nil {
		s.originated.WithLabelValues(mode).Inc()
	}

	event := rabbitmq.CallOriginated{
		UserID:       user.ID,
		Phone:        user.Phone,
		CallRef:      call.CallRef,
		ClientNumber: call.ClientNumber,
		Mode:         mode,
		Status:       call.Status,
	}
	if err := s.pub.Publish(ctx, rabbitmq.RoutingCallOriginated, event); err != nil {
		s.log.Warn("failed to publish call event", sl.Err(err))
	}

	return &call, nil
}

// History возвращает до HistoryLimit последних звонков пользователя, новые первыми.
func (s *Service) History(ctx context.Context, phone string) ([]models.Call, error) {
	const op = "services.calls.History"

	user, err := s.users.UserByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}

	calls, err := s.repo.ListCalls(ctx, user.ID, HistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return calls, nil
}
