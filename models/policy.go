package models

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Capability of a caller. Derived from token claims, never from ambient state:
// every policy check takes the caller explicitly.
type Capability string

const (
	CapAnonymous     Capability = "anonymous"
	CapVerifiedUser  Capability = "verified-user"
	CapAdministrator Capability = "administrator"
)

// Caller identifies who is invoking an operation.
type Caller struct {
	UserID        primitive.ObjectID
	EmailVerified bool
	Admin         bool
}

// Capability resolves the caller's capability level.
func (c Caller) Capability() Capability {
	switch {
	case c.Admin:
		return CapAdministrator
	case !c.UserID.IsZero() && c.EmailVerified:
		return CapVerifiedUser
	default:
		return CapAnonymous
	}
}

// IsAdmin reports administrator capability.
func (c Caller) IsAdmin() bool {
	return c.Admin
}

// Policy checks below run before any repository call and have no side effects.

// CanCreateReport requires a verified user (or an administrator).
func CanCreateReport(c Caller) error {
	if c.Capability() == CapAnonymous {
		return fmt.Errorf("%w: verify your email before creating reports", ErrForbidden)
	}
	return nil
}

// CanListOwn requires the caller to be the owner whose reports are listed.
func CanListOwn(c Caller, reporterID primitive.ObjectID) error {
	if c.Capability() == CapAnonymous {
		return fmt.Errorf("%w: authentication required", ErrForbidden)
	}
	if c.UserID != reporterID {
		return fmt.Errorf("%w: reports belong to another user", ErrForbidden)
	}
	return nil
}

// CanListAll requires an administrator: the full listing carries reporter
// identity.
func CanListAll(c Caller) error {
	if !c.IsAdmin() {
		return fmt.Errorf("%w: administrator access required", ErrForbidden)
	}
	return nil
}

// CanListPublic requires at least a verified user. The "public" map sits
// behind authentication; only the reporter identity is withheld.
func CanListPublic(c Caller) error {
	if c.Capability() == CapAnonymous {
		return fmt.Errorf("%w: authentication required", ErrForbidden)
	}
	return nil
}

// CanUpdateStatus requires an administrator.
func CanUpdateStatus(c Caller) error {
	if !c.IsAdmin() {
		return fmt.Errorf("%w: administrator access required", ErrForbidden)
	}
	return nil
}
