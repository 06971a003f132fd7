package access

import (
	"testing"

	"afyajirani-backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func hospital(id uint64) *uint64 { return &id }

func TestDecide(t *testing.T) {
	admin := Authenticated(1, models.RoleAdmin, nil)
	hospitalAdmin := Authenticated(5, models.RoleAdmin, hospital(7))
	doctor := Authenticated(2, models.RoleDoctor, hospital(7))
	orphanDoctor := Authenticated(3, models.RoleDoctor, nil)
	community := Authenticated(4, models.RoleCommunity, nil)

	tests := []struct {
		name  string
		req   Requirement
		actor Actor
		want  Decision
	}{
		{"anonymous is sent to login", DoctorOnly, Anonymous, RedirectLogin},
		{"anonymous on open guard", SignedIn, Anonymous, RedirectLogin},
		{"admin passes doctor guard", DoctorOnly, admin, Allow},
		{"admin with hospital passes doctor+hospital guard", DoctorWithHospital, hospitalAdmin, Allow},
		{"admin without hospital denied by doctor+hospital guard", DoctorWithHospital, admin, DenyNoHospital},
		{"admin passes admin guard", AdminOnly, admin, Allow},
		{"doctor with hospital passes", DoctorWithHospital, doctor, Allow},
		{"doctor without hospital denied", DoctorWithHospital, orphanDoctor, DenyNoHospital},
		{"doctor without hospital passes plain doctor guard", DoctorOnly, orphanDoctor, Allow},
		{"community denied by doctor guard", DoctorOnly, community, DenyRole},
		{"community without hospital denied by doctor+hospital guard", DoctorWithHospital, community, DenyNoHospital},
		{"community with hospital denied by doctor+hospital guard", DoctorWithHospital, Authenticated(6, models.RoleCommunity, hospital(7)), DenyRole},
		{"doctor denied by admin guard", AdminOnly, doctor, DenyRole},
		{"community passes signed-in guard", SignedIn, community, Allow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decide(tt.req, tt.actor), tt.want.String())
		})
	}
}

func TestHospitalCheckOnlyAppliesToDoctorGuards(t *testing.T) {
	// The hospital rule wins over the role rule on a doctor guard...
	assert.Equal(t, DenyNoHospital, Decide(DoctorWithHospital, Authenticated(4, models.RoleCommunity, nil)))

	// ...and is ignored when the guard requires another role.
	req := Requirement{Role: models.RoleAdmin, RequireHospital: true}
	assert.Equal(t, DenyRole, Decide(req, Authenticated(9, models.RoleDoctor, nil)))
	assert.Equal(t, Allow, Decide(req, Authenticated(1, models.RoleAdmin, nil)))
}
