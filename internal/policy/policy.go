// Package policy maps every operation to the roles allowed to perform it and
// evaluates that mapping for a request's principal.
package policy

import (
	"fmt"

	apierrors "github.com/yukikurage/task-assigner/internal/errors"
	"github.com/yukikurage/task-assigner/internal/models"
)

// Operation identifies one API operation.
type Operation int

const (
	OpRegister Operation = iota
	OpLogin
	OpRefreshToken
	OpLogout
	OpViewProfile
	OpCreateProject
	OpEditProject
	OpListProjects
	OpCreateTask
	OpEditTask
	OpListTasks
	OpGenerateTasks
	OpCreateSubmission
	OpEditSubmission
	OpListSubmissions
)

func (op Operation) String() string {
	switch op {
	case OpRegister:
		return "register"
	case OpLogin:
		return "login"
	case OpRefreshToken:
		return "refresh_token"
	case OpLogout:
		return "logout"
	case OpViewProfile:
		return "view_profile"
	case OpCreateProject:
		return "create_project"
	case OpEditProject:
		return "edit_project"
	case OpListProjects:
		return "list_projects"
	case OpCreateTask:
		return "create_task"
	case OpEditTask:
		return "edit_task"
	case OpListTasks:
		return "list_tasks"
	case OpGenerateTasks:
		return "generate_tasks"
	case OpCreateSubmission:
		return "create_submission"
	case OpEditSubmission:
		return "edit_submission"
	case OpListSubmissions:
		return "list_submissions"
	default:
		return fmt.Sprintf("operation(%d)", int(op))
	}
}

// RoleSet is a set of roles.
type RoleSet uint8

const (
	roleSuperAdmin RoleSet = 1 << iota
	roleAdmin
	roleUser
	roleSupervisor
	roleHumanResource
)

// AnyRole admits every known role.
const AnyRole = roleSuperAdmin | roleAdmin | roleUser | roleSupervisor | roleHumanResource

func roleBit(r models.Role) RoleSet {
	switch r {
	case models.RoleSuperAdmin:
		return roleSuperAdmin
	case models.RoleAdmin:
		return roleAdmin
	case models.RoleUser:
		return roleUser
	case models.RoleSupervisor:
		return roleSupervisor
	case models.RoleHumanResource:
		return roleHumanResource
	}
	return 0
}

// Roles builds a set from roles.
func Roles(roles ...models.Role) RoleSet {
	var set RoleSet
	for _, r := range roles {
		set |= roleBit(r)
	}
	return set
}

// Has reports whether r is in the set. Unknown roles are never members.
func (s RoleSet) Has(r models.Role) bool {
	bit := roleBit(r)
	return bit != 0 && s&bit != 0
}

// Requirement is what an operation demands of its caller.
type Requirement struct {
	Public bool
	Roles  RoleSet
	// Audience names the role group in the wrong-role message.
	Audience string
}

var (
	public        = Requirement{Public: true}
	authenticated = Requirement{Roles: AnyRole, Audience: "authenticated"}
	humanResource = Requirement{
		Roles:    Roles(models.RoleHumanResource),
		Audience: "human resource",
	}
	hrOrSupervisor = Requirement{
		Roles:    Roles(models.RoleHumanResource, models.RoleSupervisor),
		Audience: "human resource or supervisor",
	}
)

var matrix = map[Operation]Requirement{
	OpRegister:         public,
	OpLogin:            public,
	OpRefreshToken:     public,
	OpLogout:           public,
	OpViewProfile:      authenticated,
	OpCreateProject:    humanResource,
	OpEditProject:      humanResource,
	OpListProjects:     authenticated,
	OpCreateTask:       hrOrSupervisor,
	OpEditTask:         hrOrSupervisor,
	OpListTasks:        authenticated,
	OpGenerateTasks:    hrOrSupervisor,
	OpCreateSubmission: authenticated,
	OpEditSubmission:   hrOrSupervisor,
	OpListSubmissions:  authenticated,
}

// Authorize checks user against the requirement of op. A nil user is anonymous.
// Account state is checked before role, so a blocked user is reported as blocked
// even when the role would not have been allowed either.
func Authorize(op Operation, user *models.User) error {
	req, ok := matrix[op]
	if !ok {
		return apierrors.NewAPIError(apierrors.KindForbidden, "Unauthenticated",
			fmt.Sprintf("Operation %s is not permitted", op))
	}
	if req.Public {
		return nil
	}

	if user == nil {
		return apierrors.ErrUnauthenticated
	}
	if user.IsBlocked {
		return apierrors.ErrAccountBlocked
	}
	if !user.IsActive {
		return apierrors.ErrAccountInactive
	}

	if !req.Roles.Has(user.Role) {
		return apierrors.NewAPIError(apierrors.KindForbidden, "Unauthenticated",
			fmt.Sprintf("Not authenticated for %s request", req.Audience))
	}

	return nil
}
