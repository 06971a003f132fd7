// Package access decides whether an actor may enter a gated route.
package access

import "afyajirani-backend/internal/models"

// Actor is who is making a request. The zero value is anonymous.
type Actor struct {
	UserID     uint64
	Role       string
	HospitalID *uint64
	Email      string
}

// Anonymous is an actor with no session.
var Anonymous = Actor{}

// Authenticated builds a signed-in actor.
func Authenticated(userID uint64, role string, hospitalID *uint64) Actor {
	return Actor{UserID: userID, Role: role, HospitalID: hospitalID}
}

func (a Actor) IsAnonymous() bool { return a.Role == "" }

func (a Actor) IsAdmin() bool { return a.Role == models.RoleAdmin }

// HasHospital reports whether the actor is linked to a hospital.
func (a Actor) HasHospital() bool { return a.HospitalID != nil }

// Requirement describes a route guard. Empty Role means any signed-in user.
type Requirement struct {
	Role            string
	RequireHospital bool
}

type Decision int

const (
	Allow Decision = iota
	DenyRole
	DenyNoHospital
	RedirectLogin
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case DenyRole:
		return "deny_role"
	case DenyNoHospital:
		return "deny_no_hospital"
	case RedirectLogin:
		return "redirect_login"
	}
	return "unknown"
}

// Decide applies a guard to an actor. Rules are checked in order:
//  1. no session redirects to login
//  2. a doctor+hospital guard denies any actor without a hospital,
//     whatever the role check would say
//  3. admin passes every role check; anyone else must match exactly
func Decide(req Requirement, actor Actor) Decision {
	if actor.IsAnonymous() {
		return RedirectLogin
	}
	if req.RequireHospital && req.Role == models.RoleDoctor && !actor.HasHospital() {
		return DenyNoHospital
	}
	if req.Role != "" && !actor.IsAdmin() && actor.Role != req.Role {
		return DenyRole
	}
	return Allow
}

// Common guards.
var (
	SignedIn           = Requirement{}
	AdminOnly          = Requirement{Role: models.RoleAdmin}
	DoctorOnly         = Requirement{Role: models.RoleDoctor}
	DoctorWithHospital = Requirement{Role: models.RoleDoctor, RequireHospital: true}
)
