package models

// Role determines which operations a user may perform.
type Role string

const (
	RoleSuperAdmin    Role = "SUPERADMIN"
	RoleAdmin         Role = "ADMIN"
	RoleUser          Role = "USER"
	RoleSupervisor    Role = "SUPERVISOR"
	RoleHumanResource Role = "HUMAN_RESOURCE"
)

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleUser, RoleSupervisor, RoleHumanResource:
		return true
	}
	return false
}

type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
	GenderOther  Gender = "OTHER"
)

func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// Status is shared by projects and tasks.
type Status string

const (
	StatusDraft     Status = "Draft"
	StatusOngoing   Status = "Ongoing"
	StatusCompleted Status = "Completed"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusOngoing, StatusCompleted:
		return true
	}
	return false
}
