package appointment

import (
	"context"
	"log/slog"
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/redcrest/donorflow/pkg/application"
	"github.com/redcrest/donorflow/pkg/clinic"
	"github.com/redcrest/donorflow/pkg/gate"
	"github.com/redcrest/donorflow/pkg/profile"
)

var timePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// ApplicationLookup reads applications; satisfied by
// application.ApplicationRepository.
type ApplicationLookup interface {
	GetApplication(ctx context.Context, id uuid.UUID) (application.DonationApplication, error)
}

// Notifier sends the booking confirmation email. Implemented by
// notification.Service.
type Notifier interface {
	SendAppointmentConfirmed(ctx context.Context, to, firstName, clinicName, clinicAddress string, date time.Time) error
}

// BookParams contains parameters for booking an appointment.
type BookParams struct {
	ApplicationID uuid.UUID
	ClinicID      uuid.UUID
	Date          time.Time
	Time          string
	Notes         *string
}

// AppointmentService runs the appointment booking workflow for approved
// applications.
type AppointmentService struct {
	repo         AppointmentRepository
	applications ApplicationLookup
	clinics      clinic.ClinicRepository
	profiles     profile.ProfileRepository
	gate         *gate.Gate
	notifier     Notifier
}

// NewAppointmentService creates a new appointment service.
func NewAppointmentService(repo AppointmentRepository, applications ApplicationLookup,
	clinics clinic.ClinicRepository, profiles profile.ProfileRepository,
	g *gate.Gate, notifier Notifier) *AppointmentService {
	return &AppointmentService{
		repo:         repo,
		applications: applications,
		clinics:      clinics,
		profiles:     profiles,
		gate:         g,
		notifier:     notifier,
	}
}

// Book creates a scheduled appointment for the actor's own approved
// application. The slot must fall within the clinic's opening hours and
// must not already be taken. Once the row is created, the confirmation
// email is attempted on a detached context; its outcome never affects the
// returned result.
func (s *AppointmentService) Book(ctx context.Context, actor *gate.AuthUser, params BookParams) (Appointment, error) {
	if err := s.gate.Require(ctx, actor); err != nil {
		return Appointment{}, err
	}
	if !timePattern.MatchString(params.Time) {
		return Appointment{}, ErrClinicClosed
	}

	app, err := s.applications.GetApplication(ctx, params.ApplicationID)
	if err != nil {
		return Appointment{}, err
	}
	if app.CitizenID != actor.ProfileID {
		return Appointment{}, gate.ErrForbidden
	}
	if app.Status != application.StatusApproved {
		return Appointment{}, ErrApplicationNotApproved
	}

	cl, err := s.clinics.GetClinic(ctx, params.ClinicID)
	if err != nil {
		return Appointment{}, err
	}
	if !cl.IsOpenAt(params.Date, params.Time) {
		return Appointment{}, ErrClinicClosed
	}

	appt, err := s.repo.CreateAppointment(ctx, CreateAppointmentParams{
		ApplicationID: params.ApplicationID,
		CitizenID:     actor.ProfileID,
		ClinicID:      params.ClinicID,
		Date:          params.Date,
		Time:          params.Time,
		Notes:         params.Notes,
	})
	if err != nil {
		return Appointment{}, err
	}

	slog.Info("Appointment booked", "appointment_id", appt.ID, "clinic_id", cl.ID,
		"date", appt.Date.Format("2006-01-02"), "time", appt.Time)

	go s.notifyConfirmation(context.WithoutCancel(ctx), appt, cl)

	return appt, nil
}

// FindAppointments lists appointments: all of them for reviewers, the
// actor's own otherwise.
func (s *AppointmentService) FindAppointments(ctx context.Context, actor *gate.AuthUser) ([]Appointment, error) {
	if err := s.gate.Require(ctx, actor); err != nil {
		return nil, err
	}
	if err := s.gate.Require(ctx, actor, profile.RoleSecretary, profile.RoleAdmin); err == nil {
		return s.repo.FindAppointments(ctx)
	}
	return s.repo.FindAppointmentsByCitizen(ctx, actor.ProfileID)
}

// UpdateStatus advances an appointment out of scheduled. Citizens may
// cancel their own appointment; completed and no-show are reserved for
// secretaries and admins.
func (s *AppointmentService) UpdateStatus(ctx context.Context, actor *gate.AuthUser, id uuid.UUID, status Status) (Appointment, error) {
	if err := s.gate.Require(ctx, actor); err != nil {
		return Appointment{}, err
	}
	if !status.Terminal() {
		return Appointment{}, ErrInvalidStatusChange
	}

	appt, err := s.repo.GetAppointment(ctx, id)
	if err != nil {
		return Appointment{}, err
	}

	ownCancellation := status == StatusCancelled && appt.CitizenID == actor.ProfileID
	if !ownCancellation {
		if err := s.gate.Require(ctx, actor, profile.RoleSecretary, profile.RoleAdmin); err != nil {
			return Appointment{}, err
		}
	}

	return s.repo.UpdateStatus(ctx, id, status)
}

func (s *AppointmentService) notifyConfirmation(ctx context.Context, appt Appointment, cl clinic.Clinic) {
	citizen, err := s.profiles.GetProfile(ctx, appt.CitizenID)
	if err != nil {
		slog.Error("Failed to load citizen profile for confirmation notification",
			"appointment_id", appt.ID, "citizen_id", appt.CitizenID, "err", err)
		return
	}

	err = s.notifier.SendAppointmentConfirmed(ctx, citizen.Email, citizen.FirstName,
		cl.Name, cl.Address, appt.Date)
	if err != nil {
		slog.Error("Failed to send appointment confirmation",
			"appointment_id", appt.ID, "to", citizen.Email, "err", err)
	}
}
