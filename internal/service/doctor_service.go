package service

import (
	"context"
	"strings"

	"github.com/clinicbook/api/internal/domain"
	"github.com/clinicbook/api/internal/domain/doctor"
	"go.uber.org/zap"
)

// DoctorService manages the admin-only doctor roster.
type DoctorService struct {
	doctors  doctor.Repository
	auditSvc *AuditService
	log      *zap.Logger
}

func NewDoctorService(doctors doctor.Repository, auditSvc *AuditService, log *zap.Logger) *DoctorService {
	return &DoctorService{doctors: doctors, auditSvc: auditSvc, log: log}
}

func (s *DoctorService) AddDoctor(ctx context.Context, cmd *doctor.AddDoctorCommand, callerEmail, ip string) (*doctor.Doctor, error) {
	var missing []string
	if strings.TrimSpace(cmd.Name) == "" {
		missing = append(missing, "name is required")
	}
	if strings.TrimSpace(cmd.Email) == "" || !strings.Contains(cmd.Email, "@") {
		missing = append(missing, "email must be a valid address")
	}
	if len(missing) > 0 {
		return nil, &ValidationError{Fields: missing}
	}

	d := &doctor.Doctor{
		Name:      strings.TrimSpace(cmd.Name),
		Email:     strings.ToLower(strings.TrimSpace(cmd.Email)),
		Specialty: strings.TrimSpace(cmd.Specialty),
		ImageURL:  cmd.ImageURL,
	}

	if err := s.doctors.Create(ctx, d); err != nil {
		return nil, err
	}

	s.auditSvc.LogAsync(ctx, AuditEntry{
		ActorEmail:   callerEmail,
		ActorRole:    string(domain.RoleAdmin),
		Action:       "create",
		ResourceType: "doctor",
		ResourceID:   d.Email,
		IPAddress:    ip,
	})

	return d, nil
}

func (s *DoctorService) ListDoctors(ctx context.Context) ([]*doctor.Doctor, error) {
	return s.doctors.List(ctx)
}

func (s *DoctorService) RemoveDoctor(ctx context.Context, email, callerEmail, ip string) error {
	if err := s.doctors.DeleteByEmail(ctx, strings.ToLower(email)); err != nil {
		return err
	}

	s.auditSvc.LogAsync(ctx, AuditEntry{
		ActorEmail:   callerEmail,
		ActorRole:    string(domain.RoleAdmin),
		Action:       "delete",
		ResourceType: "doctor",
		ResourceID:   strings.ToLower(email),
		IPAddress:    ip,
	})

	return nil
}
