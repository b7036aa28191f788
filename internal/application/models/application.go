package models

import (
	"time"

	"github.com/google/uuid"

	"ujjwala/internal/officer"
	"ujjwala/internal/subsidy"
	dErrors "ujjwala/pkg/domain-errors"
)

// Application is the aggregate for one scheme application.
//
// Invariants:
//   - At most one application exists per identity number (store-enforced)
//   - Status transitions only pending→approved or pending→rejected
//   - Approved implies SubsidyAmount, SubsidyPercentage, ExpectedServiceDate,
//     AssignedOfficer and ReviewedDate are all set
//   - Rejected implies RejectionReason and ReviewedDate are set
//   - Applicant fields are snapshots of the identity record at submission
//     time and never change afterwards
//
// The review fields are pointers so an unreviewed application serializes
// without them. ApplyApproval and ApplyRejection are the only mutation paths
// the service uses, which keeps the presence rules in one place.
type Application struct {
	ID             uuid.UUID `json:"id"`
	IdentityNumber string    `json:"identity_number"`
	ApplicantName  string    `json:"applicant_name"`
	Income         int       `json:"income"`
	Address        string    `json:"address"`
	PhoneNumber    string    `json:"phone_number"`
	Status         Status    `json:"status"`
	AppliedDate    time.Time `json:"applied_date"`

	ReviewedDate        *time.Time       `json:"reviewed_date,omitempty"`
	RejectionReason     string           `json:"rejection_reason,omitempty"`
	ExpectedServiceDate *time.Time       `json:"expected_service_date,omitempty"`
	AssignedOfficer     *officer.Officer `json:"assigned_officer,omitempty"`
	SubsidyAmount       *int             `json:"subsidy_amount,omitempty"`
	SubsidyPercentage   *int             `json:"subsidy_percentage,omitempty"`
}

// ServiceLeadTime is how far past the review date the connection is promised.
const ServiceLeadTime = 15 * 24 * time.Hour

// NewApplication snapshots an applicant into a fresh pending application.
func NewApplication(id uuid.UUID, identityNumber, name string, income int, address, phone string, now time.Time) *Application {
	return &Application{
		ID:             id,
		IdentityNumber: identityNumber,
		ApplicantName:  name,
		Income:         income,
		Address:        address,
		PhoneNumber:    phone,
		Status:         StatusPending,
		AppliedDate:    now,
	}
}

// CanReview checks that the application is still awaiting a decision.
// Returns an error when the application has already been approved or
// rejected, so a second review cannot silently overwrite the first.
func (a *Application) CanReview() error {
	if a.Status != StatusPending {
		return dErrors.New(dErrors.CodeInvalidState,
			"Application has already been "+string(a.Status)+".")
	}
	return nil
}

// ApplyApproval transitions the application to approved and fills every
// approval-only field. Call CanReview first to validate the transition.
func (a *Application) ApplyApproval(reviewer officer.Officer, grant subsidy.Result, now time.Time) {
	serviceDate := now.Add(ServiceLeadTime)

	a.Status = StatusApproved
	a.ReviewedDate = &now
	a.ExpectedServiceDate = &serviceDate
	a.AssignedOfficer = &reviewer
	a.SubsidyAmount = &grant.Amount
	a.SubsidyPercentage = &grant.Percentage
}

// ApplyRejection transitions the application to rejected, recording the
// reason exactly as given. Call CanReview first to validate the transition.
func (a *Application) ApplyRejection(reason string, now time.Time) {
	a.Status = StatusRejected
	a.ReviewedDate = &now
	a.RejectionReason = reason
}
