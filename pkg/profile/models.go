package profile

import (
	"time"

	"github.com/google/uuid"
)

// Role is the access role assigned to a profile.
type Role string

const (
	RoleCitizen   Role = "citizen"
	RoleSecretary Role = "secretary"
	RoleAdmin     Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleCitizen, RoleSecretary, RoleAdmin:
		return true
	}
	return false
}

// Profile represents a registered person in the system.
// Identity authentication is handled by the external provider; this record
// carries the role and the contact details notifications are sent to.
type Profile struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	PhoneNumber *string   `json:"phone_number,omitempty"`
	Area        *string   `json:"area,omitempty"`
	BloodType   *string   `json:"blood_type,omitempty"`
	Age         *int32    `json:"age,omitempty"`
	Role        Role      `json:"role"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateProfileParams contains parameters for creating a new profile.
type CreateProfileParams struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	PhoneNumber *string   `json:"phone_number,omitempty"`
	Area        *string   `json:"area,omitempty"`
	BloodType   *string   `json:"blood_type,omitempty"`
	Age         *int32    `json:"age,omitempty"`
	Role        Role      `json:"role"`
}
