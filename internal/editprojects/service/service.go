package editprojects

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

type EditDBLayer interface {
	CreateEditProject(ctx context.Context, project models.EditProject) error
	GetEditProjectByCode(ctx context.Context, code string) (*models.EditProject, error)
	EditCodeExists(ctx context.Context, code string) (bool, error)
	ListEditProjects(ctx context.Context) ([]models.EditProject, error)
	UpdateEditProjectStatus(ctx context.Context, code, status string) error
}

// ShootLookup checks that the referenced shoot exists before an edit project
// is attached to it.
type ShootLookup interface {
	ShootCodeExists(ctx context.Context, code string) (bool, error)
}

type KafkaPublisher interface {
	PublishEditProjectCreated(project models.EditProject) error
}

type EditService struct {
	DB     EditDBLayer
	Shoots ShootLookup
	Kafka  KafkaPublisher
	IDs    *identifier.Generator
	Logger *logger.Logger
	now    func() time.Time
}

func NewEditService(db EditDBLayer, shootLookup ShootLookup, kafka KafkaPublisher, ids *identifier.Generator, log *logger.Logger) *EditService {
	return &EditService{DB: db, Shoots: shootLookup, Kafka: kafka, IDs: ids, Logger: log, now: time.Now}
}

func NewEditServiceWithClock(db EditDBLayer, shootLookup ShootLookup, kafka KafkaPublisher, ids *identifier.Generator, log *logger.Logger, now func() time.Time) *EditService {
	return &EditService{DB: db, Shoots: shootLookup, Kafka: kafka, IDs: ids, Logger: log, now: now}
}

// CreateEditProject assigns a code under the fixed EDIT prefix and inserts
// the project. Codes share a uniqueness namespace with other edit projects
// only, never with shoots.
func (s *EditService) CreateEditProject(ctx context.Context, req models.EditProjectRequest) (*models.EditProject, error) {
	shootCode := strings.TrimSpace(req.ShootCode)
	if shootCode == "" {
		return nil, errors.New("shoot_code is required")
	}
	if s.Shoots != nil {
		exists, err := s.Shoots.ShootCodeExists(ctx, shootCode)
		if err != nil {
			return nil, fmt.Errorf("failed to check shoot %s: %w", shootCode, err)
		}
		if !exists {
			return nil, fmt.Errorf("shoot %s does not exist", shootCode)
		}
	}

	var code string
	var err error
	if strings.TrimSpace(req.Code) != "" {
		code, err = identifier.CheckManual(ctx, req.Code, s.DB.EditCodeExists)
	} else {
		code, err = s.IDs.Resolve(ctx, models.EditCodePrefix, s.DB.EditCodeExists, identifier.DefaultMaxAttempts)
	}
	if err != nil {
		s.Logger.LogEdit("CREATE", models.EditCodePrefix, fmt.Sprintf("Code assignment failed: %v", err))
		return nil, err
	}

	project := models.EditProject{
		ID:               uuid.New().String(),
		Code:             code,
		ShootCode:        shootCode,
		EditorName:       req.EditorName,
		Status:           models.EditStatusPending,
		DeliverableCount: req.DeliverableCount,
		EditingCost:      req.EditingCost,
		RetouchingCost:   req.RetouchingCost,
		CreatedAt:        s.now(),
	}

	if err := s.DB.CreateEditProject(ctx, project); err != nil {
		if errors.Is(err, identifier.ErrDuplicateCode) {
			s.Logger.LogEdit("CREATE", code, "Code claimed concurrently before insert")
			return nil, err
		}
		s.Logger.Error("EDIT", fmt.Sprintf("Failed to create edit project %s: %v", code, err))
		return nil, fmt.Errorf("failed to create edit project: %w", err)
	}

	s.Logger.LogEdit("CREATE", code, fmt.Sprintf("Edit project created for shoot %s", shootCode))

	if s.Kafka != nil {
		if err := s.Kafka.PublishEditProjectCreated(project); err != nil {
			s.Logger.Error("KAFKA", fmt.Sprintf("Publish error (edit project created): %v", err))
		}
	}

	return &project, nil
}

func (s *EditService) GetEditProject(ctx context.Context, code string) (*models.EditProject, error) {
	project, err := s.DB.GetEditProjectByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("edit project %s not found: %w", code, err)
	}
	return project, nil
}

func (s *EditService) ListEditProjects(ctx context.Context) ([]models.EditProject, error) {
	return s.DB.ListEditProjects(ctx)
}

func (s *EditService) UpdateStatus(ctx context.Context, code, status string) error {
	switch status {
	case models.EditStatusPending, models.EditStatusInProgress, models.EditStatusDelivered:
	default:
		return fmt.Errorf("invalid edit project status %q", status)
	}

	if _, err := s.DB.GetEditProjectByCode(ctx, code); err != nil {
		return fmt.Errorf("edit project %s not found: %w", code, err)
	}
	if err := s.DB.UpdateEditProjectStatus(ctx, code, status); err != nil {
		return fmt.Errorf("failed to update edit project %s: %w", code, err)
	}
	s.Logger.LogEdit("STATUS", code, fmt.Sprintf("Status set to %s", status))
	return nil
}
