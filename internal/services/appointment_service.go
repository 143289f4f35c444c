package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/turbogestor/backend/internal/dto"
	"github.com/turbogestor/backend/internal/models"
	"github.com/turbogestor/backend/internal/tenant"
	"gorm.io/gorm"
)

var ErrInvalidStatus = errors.New("invalid status")

type AppointmentService struct {
	db *gorm.DB
}

func NewAppointmentService(db *gorm.DB) *AppointmentService {
	return &AppointmentService{db: db}
}

func (s *AppointmentService) List(oficinaID uuid.UUID, page, limit int, status string, day *time.Time) (*dto.ListResponse[models.Appointment], error) {
	page, limit = normalizePagination(page, limit)

	query := s.db.Model(&models.Appointment{}).Scopes(tenant.ForWorkshop(oficinaID))
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if day != nil {
		start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
		query = query.Where("data_agendamento >= ? AND data_agendamento < ?", start, start.AddDate(0, 0, 1))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count appointments: %w", err)
	}

	var appointments []models.Appointment
	if err := query.Order("data_agendamento ASC").Offset((page - 1) * limit).Limit(limit).Find(&appointments).Error; err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}

	return &dto.ListResponse[models.Appointment]{Items: appointments, Total: total, Page: page, Limit: limit}, nil
}

func (s *AppointmentService) Get(oficinaID, id uuid.UUID) (*models.Appointment, error) {
	var appointment models.Appointment
	err := s.db.Scopes(tenant.ForWorkshop(oficinaID)).First(&appointment, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		return nil, err
	}
	return &appointment, nil
}

func (s *AppointmentService) Create(oficinaID uuid.UUID, req *dto.AppointmentRequest) (*models.Appointment, error) {
	if req.DataAgendamento.IsZero() {
		return nil, invalidf("data_agendamento is required")
	}

	status := req.Status
	if status == "" {
		status = "agendado"
	}
	if !validAppointmentStatus(status) {
		return nil, ErrInvalidStatus
	}

	// Referenced rows must belong to the same workshop.
	for model, id := range map[interface{}]uuid.UUID{
		&models.Client{}:      req.ClienteID,
		&models.Vehicle{}:     req.VeiculoID,
		&models.ServiceItem{}: req.ServicoID,
	} {
		var count int64
		if err := s.db.Model(model).Scopes(tenant.ForWorkshop(oficinaID)).Where("id = ?", id).Count(&count).Error; err != nil {
			return nil, err
		}
		if count == 0 {
			return nil, ErrRecordNotFound
		}
	}

	appointment := models.Appointment{
		OficinaID:       oficinaID,
		ClienteID:       req.ClienteID,
		VeiculoID:       req.VeiculoID,
		ServicoID:       req.ServicoID,
		DataAgendamento: req.DataAgendamento,
		Status:          status,
		Observacoes:     req.Observacoes,
	}
	if err := s.db.Create(&appointment).Error; err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}
	return &appointment, nil
}

func (s *AppointmentService) Update(oficinaID, id uuid.UUID, req *dto.AppointmentRequest) (*models.Appointment, error) {
	appointment, err := s.Get(oficinaID, id)
	if err != nil {
		return nil, err
	}

	if req.Status != "" {
		if !validAppointmentStatus(req.Status) {
			return nil, ErrInvalidStatus
		}
		appointment.Status = req.Status
	}
	if !req.DataAgendamento.IsZero() {
		appointment.DataAgendamento = req.DataAgendamento
	}
	appointment.Observacoes = req.Observacoes

	if err := s.db.Save(appointment).Error; err != nil {
		return nil, fmt.Errorf("failed to update appointment: %w", err)
	}
	return appointment, nil
}

func (s *AppointmentService) Delete(oficinaID, id uuid.UUID) error {
	result := s.db.Scopes(tenant.ForWorkshop(oficinaID)).Delete(&models.Appointment{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete appointment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func validAppointmentStatus(status string) bool {
	for _, s := range models.AppointmentStatuses {
		if s == status {
			return true
		}
	}
	return false
}
