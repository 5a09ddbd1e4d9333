package shoots

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"studio-backoffice/internal/identifier"
	"studio-backoffice/internal/logger"
	"studio-backoffice/internal/models"
)

type ShootDBLayer interface {
	CreateShoot(ctx context.Context, shoot models.Shoot) error
	GetShootByCode(ctx context.Context, code string) (*models.Shoot, error)
	ShootCodeExists(ctx context.Context, code string) (bool, error)
	ListShoots(ctx context.Context) ([]models.Shoot, error)
	UpdateShootStatus(ctx context.Context, code, status string) error
}

type KafkaPublisher interface {
	PublishShootCreated(shoot models.Shoot) error
}

type ShootService struct {
	DB     ShootDBLayer
	Kafka  KafkaPublisher
	IDs    *identifier.Generator
	Logger *logger.Logger
	now    func() time.Time
}

func NewShootService(db ShootDBLayer, kafka KafkaPublisher, ids *identifier.Generator, log *logger.Logger) *ShootService {
	return &ShootService{DB: db, Kafka: kafka, IDs: ids, Logger: log, now: time.Now}
}

// NewShootServiceWithClock pins the record-creation time source for tests.
func NewShootServiceWithClock(db ShootDBLayer, kafka KafkaPublisher, ids *identifier.Generator, log *logger.Logger, now func() time.Time) *ShootService {
	return &ShootService{DB: db, Kafka: kafka, IDs: ids, Logger: log, now: now}
}

// CreateShoot assigns a code (manual when the request carries one, generated
// from the shoot-type prefix otherwise), inserts the record, and announces it
// on Kafka. The code is assigned exactly once here and never regenerated.
func (s *ShootService) CreateShoot(ctx context.Context, req models.ShootRequest) (*models.Shoot, error) {
	prefix := strings.ToUpper(strings.TrimSpace(req.ShootType))
	if prefix == "" {
		return nil, errors.New("shoot_type is required")
	}

	var code string
	var err error
	if strings.TrimSpace(req.Code) != "" {
		code, err = identifier.CheckManual(ctx, req.Code, s.DB.ShootCodeExists)
	} else {
		code, err = s.IDs.Resolve(ctx, prefix, s.DB.ShootCodeExists, identifier.DefaultMaxAttempts)
	}
	if err != nil {
		s.Logger.LogShoot("CREATE", prefix, fmt.Sprintf("Code assignment failed: %v", err))
		return nil, err
	}

	shoot := models.Shoot{
		ID:              uuid.New().String(),
		Code:            code,
		ShootType:       prefix,
		ClientName:      req.ClientName,
		City:            req.City,
		Status:          models.ShootStatusScheduled,
		ScheduledAt:     req.ScheduledAt,
		PhotographyCost: req.PhotographyCost,
		TravelCost:      req.TravelCost,
		EditingCost:     req.EditingCost,
		CreatedAt:       s.now(),
	}

	if err := s.DB.CreateShoot(ctx, shoot); err != nil {
		if errors.Is(err, identifier.ErrDuplicateCode) {
			// The race between the availability check and this insert: a
			// concurrent creation claimed the code first. The caller may
			// retry the whole creation with a fresh candidate.
			s.Logger.LogShoot("CREATE", code, "Code claimed concurrently before insert")
			return nil, err
		}
		s.Logger.Error("SHOOT", fmt.Sprintf("Failed to create shoot %s: %v", code, err))
		return nil, fmt.Errorf("failed to create shoot: %w", err)
	}

	s.Logger.LogShoot("CREATE", code, fmt.Sprintf("Shoot created for %s in %s", shoot.ClientName, shoot.City))

	if s.Kafka != nil {
		if err := s.Kafka.PublishShootCreated(shoot); err != nil {
			s.Logger.Error("KAFKA", fmt.Sprintf("Publish error (shoot created): %v", err))
		}
	}

	return &shoot, nil
}

func (s *ShootService) GetShoot(ctx context.Context, code string) (*models.Shoot, error) {
	shoot, err := s.DB.GetShootByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("shoot %s not found: %w", code, err)
	}
	return shoot, nil
}

func (s *ShootService) ListShoots(ctx context.Context) ([]models.Shoot, error) {
	return s.DB.ListShoots(ctx)
}

// CheckAvailability validates a manually typed code without claiming it.
func (s *ShootService) CheckAvailability(ctx context.Context, raw string) (string, error) {
	return identifier.CheckManual(ctx, raw, s.DB.ShootCodeExists)
}

func (s *ShootService) UpdateStatus(ctx context.Context, code, status string) error {
	switch status {
	case models.ShootStatusScheduled, models.ShootStatusCompleted, models.ShootStatusCancelled:
	default:
		return fmt.Errorf("invalid shoot status %q", status)
	}

	if _, err := s.DB.GetShootByCode(ctx, code); err != nil {
		return fmt.Errorf("shoot %s not found: %w", code, err)
	}
	if err := s.DB.UpdateShootStatus(ctx, code, status); err != nil {
		return fmt.Errorf("failed to update shoot %s: %w", code, err)
	}
	s.Logger.LogShoot("STATUS", code, fmt.Sprintf("Status set to %s", status))
	return nil
}
