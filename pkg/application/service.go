package application

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/redcrest/donorflow/pkg/gate"
	"github.com/redcrest/donorflow/pkg/profile"
)

// ErrInvalidDecision means a decide call carried a decision other than
// approved or rejected.
var ErrInvalidDecision = errors.New("decision must be approved or rejected")

// Notifier sends the decision emails. Implemented by
// notification.Service.
type Notifier interface {
	SendApplicationApproved(ctx context.Context, to, firstName string) error
	SendApplicationRejected(ctx context.Context, to, firstName, reason string) error
}

// ApplicationService runs the application review workflow: submission,
// the role-gated review decision, and the decision notifications.
type ApplicationService struct {
	repo     ApplicationRepository
	profiles profile.ProfileRepository
	gate     *gate.Gate
	notifier Notifier
}

// NewApplicationService creates a new application workflow service.
func NewApplicationService(repo ApplicationRepository, profiles profile.ProfileRepository, g *gate.Gate, notifier Notifier) *ApplicationService {
	return &ApplicationService{
		repo:     repo,
		profiles: profiles,
		gate:     g,
		notifier: notifier,
	}
}

// Submit creates a new pending application for the authenticated actor.
func (s *ApplicationService) Submit(ctx context.Context, actor *gate.AuthUser, answers EligibilityAnswers) (DonationApplication, error) {
	if err := s.gate.Require(ctx, actor); err != nil {
		return DonationApplication{}, err
	}
	return s.repo.CreateApplication(ctx, CreateApplicationParams{
		CitizenID: actor.ProfileID,
		Answers:   answers,
	})
}

// GetApplication returns one application. Citizens may only read their own.
func (s *ApplicationService) GetApplication(ctx context.Context, actor *gate.AuthUser, id uuid.UUID) (DonationApplication, error) {
	if err := s.gate.Require(ctx, actor); err != nil {
		return DonationApplication{}, err
	}
	app, err := s.repo.GetApplication(ctx, id)
	if err != nil {
		return DonationApplication{}, err
	}
	if app.CitizenID != actor.ProfileID {
		if err := s.gate.Require(ctx, actor, profile.RoleSecretary, profile.RoleAdmin); err != nil {
			return DonationApplication{}, err
		}
	}
	return app, nil
}

// FindApplications lists applications: all of them for reviewers, the
// actor's own otherwise.
func (s *ApplicationService) FindApplications(ctx context.Context, actor *gate.AuthUser) ([]DonationApplication, error) {
	if err := s.gate.Require(ctx, actor); err != nil {
		return nil, err
	}
	if err := s.gate.Require(ctx, actor, profile.RoleSecretary, profile.RoleAdmin); err == nil {
		return s.repo.FindApplications(ctx)
	}
	return s.repo.FindApplicationsByCitizen(ctx, actor.ProfileID)
}

// Decide applies a review decision to a pending application. The status
// transition commits before the notification is attempted; the notification
// runs detached and its outcome never affects the returned result.
func (s *ApplicationService) Decide(ctx context.Context, actor *gate.AuthUser, id uuid.UUID, decision Status, reason string) (DonationApplication, error) {
	if err := s.gate.Require(ctx, actor, profile.RoleSecretary, profile.RoleAdmin); err != nil {
		return DonationApplication{}, err
	}
	if decision != StatusApproved && decision != StatusRejected {
		return DonationApplication{}, ErrInvalidDecision
	}

	params := DecideApplicationParams{
		ID:         id,
		Status:     decision,
		ReviewedBy: actor.ProfileID,
	}
	if decision == StatusRejected && reason != "" {
		params.RejectionReason = &reason
	}

	app, err := s.repo.DecideApplication(ctx, params)
	if err != nil {
		return DonationApplication{}, err
	}

	slog.Info("Application decided", "application_id", app.ID, "status", app.Status, "reviewed_by", actor.ProfileID)

	// The caller may go away before the email is out; the status change is
	// already committed, so the attempt continues on a detached context.
	go s.notifyDecision(context.WithoutCancel(ctx), app)

	return app, nil
}

func (s *ApplicationService) notifyDecision(ctx context.Context, app DonationApplication) {
	citizen, err := s.profiles.GetProfile(ctx, app.CitizenID)
	if err != nil {
		slog.Error("Failed to load citizen profile for decision notification",
			"application_id", app.ID, "citizen_id", app.CitizenID, "err", err)
		return
	}

	switch app.Status {
	case StatusApproved:
		err = s.notifier.SendApplicationApproved(ctx, citizen.Email, citizen.FirstName)
	case StatusRejected:
		reason := ""
		if app.RejectionReason != nil {
			reason = *app.RejectionReason
		}
		err = s.notifier.SendApplicationRejected(ctx, citizen.Email, citizen.FirstName, reason)
	}
	if err != nil {
		slog.Error("Failed to send decision notification",
			"application_id", app.ID, "status", app.Status, "to", citizen.Email, "err", err)
	}
}
