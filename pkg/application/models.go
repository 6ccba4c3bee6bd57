package application

import (
	"time"

	"github.com/google/uuid"
)

// Status is the review status of a donation application.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// EligibilityAnswers are the self-reported screening answers a citizen
// submits with an application.
type EligibilityAnswers struct {
	IsFreeOfInfections    bool `json:"is_free_of_infections"`
	HasTattoosOrPiercings bool `json:"has_tattoos_or_piercings"`
	HasRecentProcedures   bool `json:"has_recent_procedures"`
	HasTravelToRiskAreas  bool `json:"has_travel_to_risk_areas"`
	HasRiskBehavior       bool `json:"has_risk_behavior"`
	IsRecentlyPregnant    bool `json:"is_recently_pregnant"`
	IsBreastfeeding       bool `json:"is_breastfeeding"`
	HasDrugUse            bool `json:"has_drug_use"`
	HasAids               bool `json:"has_aids"`
}

// DonationApplication is a citizen's blood-donation eligibility application.
//
// Invariants: ReviewedBy and ReviewedAt are both nil exactly while Status is
// pending, and RejectionReason is non-nil only when Status is rejected.
// Approved and rejected are terminal.
type DonationApplication struct {
	ID        uuid.UUID `json:"id"`
	CitizenID uuid.UUID `json:"citizen_id"`
	Status    Status    `json:"status"`
	EligibilityAnswers
	RejectionReason *string    `json:"rejection_reason,omitempty"`
	ReviewedBy      *uuid.UUID `json:"reviewed_by,omitempty"`
	ReviewedAt      *time.Time `json:"reviewed_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

// CreateApplicationParams contains parameters for submitting an application.
type CreateApplicationParams struct {
	CitizenID uuid.UUID
	Answers   EligibilityAnswers
}

// DecideApplicationParams contains parameters for the atomic review
// decision. RejectionReason is set only for a rejection.
type DecideApplicationParams struct {
	ID              uuid.UUID
	Status          Status
	RejectionReason *string
	ReviewedBy      uuid.UUID
}
