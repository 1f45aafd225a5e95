// Package policy is the single source of truth for role-based
// authorization. Every rule that used to live on an individual page is
// consolidated here as a pure decision; callers enforce the result
// (reject, redirect) themselves.
//
// dev is a strict superset of admin: wherever admin is allowed, dev is
// allowed too, and dev may additionally act on admin-roled targets.
package policy

import (
	"alwafi_go/models"
	"alwafi_go/program"
)

// Decision is an allow/deny outcome with a structured deny reason.
type Decision struct {
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason,omitempty"`
}

func allow() Decision        { return Decision{Allowed: true} }
func deny(r string) Decision { return Decision{Reason: r} }

// Deny reasons surfaced to callers.
const (
	ReasonNotElevated       = "admin or dev role required"
	ReasonSelfAction        = "cannot act on your own account"
	ReasonProtectedTarget   = "target outranks your role"
	ReasonNotIssuer         = "teacher, graduate or admin role required"
	ReasonTargetNotStudent  = "target is not a student"
	ReasonNotTeacher        = "teacher or admin role required"
	ReasonWrongDepartment   = "level belongs to another department"
	ReasonTeacherNoDept     = "no department assigned"
	ReasonUnknownDepartment = "unknown department"
)

func isElevated(role string) bool {
	return role == models.RoleAdmin || role == models.RoleDev
}

// CanViewAdminPages gates the role listing, level editor and fines
// manager views.
func CanViewAdminPages(viewerRole string) Decision {
	if isElevated(viewerRole) {
		return allow()
	}
	return deny(ReasonNotElevated)
}

// CanAssignRole decides whether the viewer may change the target's role.
// Self-assignment is always denied, so a dev cannot strip their own dev
// role through this control either.
func CanAssignRole(viewerRole string, viewerID uint, targetRole string, targetID uint) Decision {
	if viewerID == targetID {
		return deny(ReasonSelfAction)
	}
	switch viewerRole {
	case models.RoleDev:
		return allow()
	case models.RoleAdmin:
		if targetRole == models.RoleAdmin || targetRole == models.RoleDev {
			return deny(ReasonProtectedTarget)
		}
		return allow()
	}
	return deny(ReasonNotElevated)
}

// AssignableRoles lists the roles the viewer may hand out. Plain admins
// cannot grant admin or dev.
func AssignableRoles(viewerRole string) []string {
	all := []string{models.RoleStudent, models.RoleTeacher, models.RoleGraduate, models.RoleAdmin, models.RoleDev}
	if viewerRole == models.RoleDev {
		return all
	}
	return all[:3]
}

// CanDeleteUser decides whether the viewer may delete the target account.
func CanDeleteUser(viewerRole string, viewerID uint, targetRole string, targetID uint) Decision {
	if viewerID == targetID {
		return deny(ReasonSelfAction)
	}
	switch viewerRole {
	case models.RoleDev:
		if targetRole == models.RoleDev {
			return deny(ReasonProtectedTarget)
		}
		return allow()
	case models.RoleAdmin:
		if targetRole == models.RoleAdmin || targetRole == models.RoleDev {
			return deny(ReasonProtectedTarget)
		}
		return allow()
	}
	return deny(ReasonNotElevated)
}

// CanIssueFine decides whether the viewer may issue a fine against the
// target.
func CanIssueFine(viewerRole, targetRole string) Decision {
	switch viewerRole {
	case models.RoleTeacher, models.RoleGraduate, models.RoleAdmin, models.RoleDev:
	default:
		return deny(ReasonNotIssuer)
	}
	if targetRole != models.RoleStudent {
		return deny(ReasonTargetNotStudent)
	}
	return allow()
}

// CanManageFines gates fine removal and paid-toggle.
func CanManageFines(viewerRole string) Decision {
	if isElevated(viewerRole) {
		return allow()
	}
	return deny(ReasonNotElevated)
}

// CanEditLevelConfig gates saving and resetting level overrides.
func CanEditLevelConfig(viewerRole string) Decision {
	if isElevated(viewerRole) {
		return allow()
	}
	return deny(ReasonNotElevated)
}

// CanPostAnnouncement gates posting and deleting subject announcements.
func CanPostAnnouncement(viewerRole string) Decision {
	switch viewerRole {
	case models.RoleTeacher, models.RoleAdmin, models.RoleDev:
		return allow()
	}
	return deny(ReasonNotTeacher)
}

// LevelDepartmentFor maps a teacher department onto the level catalog
// department it teaches in.
func LevelDepartmentFor(teacherDepartment string) (string, bool) {
	switch teacherDepartment {
	case models.DepartmentLanguage:
		return program.DepartmentArabic, true
	case models.DepartmentSharia:
		return program.DepartmentIslamic, true
	}
	return "", false
}

// CanViewRoster decides whether the viewer may open a level's class
// roster. Teachers only see levels of their own department; admins and
// devs bypass the restriction.
func CanViewRoster(viewerRole, viewerDepartment, levelDepartment string) Decision {
	if isElevated(viewerRole) {
		return allow()
	}
	if viewerRole != models.RoleTeacher {
		return deny(ReasonNotTeacher)
	}
	if viewerDepartment == "" {
		return deny(ReasonTeacherNoDept)
	}
	dept, ok := LevelDepartmentFor(viewerDepartment)
	if !ok {
		return deny(ReasonUnknownDepartment)
	}
	if dept != levelDepartment {
		return deny(ReasonWrongDepartment)
	}
	return allow()
}
