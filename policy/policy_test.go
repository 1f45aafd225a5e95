package policy

import (
	"testing"

	"alwafi_go/models"
	"alwafi_go/program"
)

func TestCanViewAdminPages(t *testing.T) {
	tests := []struct {
		name    string
		role    string
		allowed bool
	}{
		{name: "admin allowed", role: models.RoleAdmin, allowed: true},
		{name: "dev allowed", role: models.RoleDev, allowed: true},
		{name: "teacher denied", role: models.RoleTeacher, allowed: false},
		{name: "student denied", role: models.RoleStudent, allowed: false},
		{name: "empty role denied", role: "", allowed: false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			d := CanViewAdminPages(tc.role)
			if d.Allowed != tc.allowed {
				t.Fatalf("expected allowed=%v, got %v (reason %q)", tc.allowed, d.Allowed, d.Reason)
			}
			if !d.Allowed && d.Reason == "" {
				t.Fatalf("denial must carry a reason")
			}
		})
	}
}

func TestCanAssignRole(t *testing.T) {
	tests := []struct {
		name       string
		viewerRole string
		viewerID   uint
		targetRole string
		targetID   uint
		allowed    bool
		reason     string
	}{
		{name: "admin changes student", viewerRole: models.RoleAdmin, viewerID: 1, targetRole: models.RoleStudent, targetID: 2, allowed: true},
		{name: "admin changes teacher", viewerRole: models.RoleAdmin, viewerID: 1, targetRole: models.RoleTeacher, targetID: 2, allowed: true},
		{name: "admin cannot touch admin", viewerRole: models.RoleAdmin, viewerID: 1, targetRole: models.RoleAdmin, targetID: 2, allowed: false, reason: ReasonProtectedTarget},
		{name: "admin cannot touch dev", viewerRole: models.RoleAdmin, viewerID: 1, targetRole: models.RoleDev, targetID: 2, allowed: false, reason: ReasonProtectedTarget},
		{name: "dev changes admin", viewerRole: models.RoleDev, viewerID: 1, targetRole: models.RoleAdmin, targetID: 2, allowed: true},
		{name: "dev changes dev", viewerRole: models.RoleDev, viewerID: 1, targetRole: models.RoleDev, targetID: 2, allowed: true},
		{name: "dev cannot change own role", viewerRole: models.RoleDev, viewerID: 7, targetRole: models.RoleDev, targetID: 7, allowed: false, reason: ReasonSelfAction},
		{name: "admin cannot change own role", viewerRole: models.RoleAdmin, viewerID: 3, targetRole: models.RoleAdmin, targetID: 3, allowed: false, reason: ReasonSelfAction},
		{name: "teacher denied", viewerRole: models.RoleTeacher, viewerID: 1, targetRole: models.RoleStudent, targetID: 2, allowed: false, reason: ReasonNotElevated},
		{name: "student denied", viewerRole: models.RoleStudent, viewerID: 1, targetRole: models.RoleStudent, targetID: 2, allowed: false, reason: ReasonNotElevated},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			d := CanAssignRole(tc.viewerRole, tc.viewerID, tc.targetRole, tc.targetID)
			if d.Allowed != tc.allowed {
				t.Fatalf("expected allowed=%v, got %v (reason %q)", tc.allowed, d.Allowed, d.Reason)
			}
			if tc.reason != "" && d.Reason != tc.reason {
				t.Fatalf("expected reason %q, got %q", tc.reason, d.Reason)
			}
		})
	}
}

func TestAssignableRoles(t *testing.T) {
	devRoles := AssignableRoles(models.RoleDev)
	if len(devRoles) != 5 {
		t.Fatalf("dev should see all 5 roles, got %d", len(devRoles))
	}

	adminRoles := AssignableRoles(models.RoleAdmin)
	if len(adminRoles) != 3 {
		t.Fatalf("admin should see 3 roles, got %d", len(adminRoles))
	}
	for _, r := range adminRoles {
		if r == models.RoleAdmin || r == models.RoleDev {
			t.Fatalf("admin must not be able to grant %q", r)
		}
	}
}

func TestCanDeleteUser(t *testing.T) {
	tests := []struct {
		name       string
		viewerRole string
		viewerID   uint
		targetRole string
		targetID   uint
		allowed    bool
		reason     string
	}{
		{name: "admin deletes student", viewerRole: models.RoleAdmin, viewerID: 1, targetRole: models.RoleStudent, targetID: 2, allowed: true},
		{name: "admin cannot delete admin", viewerRole: models.RoleAdmin, viewerID: 1, targetRole: models.RoleAdmin, targetID: 2, allowed: false, reason: ReasonProtectedTarget},
		{name: "dev deletes admin", viewerRole: models.RoleDev, viewerID: 1, targetRole: models.RoleAdmin, targetID: 2, allowed: true},
		{name: "dev cannot delete dev", viewerRole: models.RoleDev, viewerID: 1, targetRole: models.RoleDev, targetID: 2, allowed: false, reason: ReasonProtectedTarget},
		{name: "no self delete", viewerRole: models.RoleDev, viewerID: 4, targetRole: models.RoleDev, targetID: 4, allowed: false, reason: ReasonSelfAction},
		{name: "teacher denied", viewerRole: models.RoleTeacher, viewerID: 1, targetRole: models.RoleStudent, targetID: 2, allowed: false, reason: ReasonNotElevated},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			d := CanDeleteUser(tc.viewerRole, tc.viewerID, tc.targetRole, tc.targetID)
			if d.Allowed != tc.allowed {
				t.Fatalf("expected allowed=%v, got %v (reason %q)", tc.allowed, d.Allowed, d.Reason)
			}
			if tc.reason != "" && d.Reason != tc.reason {
				t.Fatalf("expected reason %q, got %q", tc.reason, d.Reason)
			}
		})
	}
}

func TestCanIssueFine(t *testing.T) {
	tests := []struct {
		name       string
		viewerRole string
		targetRole string
		allowed    bool
		reason     string
	}{
		{name: "teacher fines student", viewerRole: models.RoleTeacher, targetRole: models.RoleStudent, allowed: true},
		{name: "graduate fines student", viewerRole: models.RoleGraduate, targetRole: models.RoleStudent, allowed: true},
		{name: "admin fines student", viewerRole: models.RoleAdmin, targetRole: models.RoleStudent, allowed: true},
		{name: "dev fines student", viewerRole: models.RoleDev, targetRole: models.RoleStudent, allowed: true},
		{name: "student cannot fine", viewerRole: models.RoleStudent, targetRole: models.RoleStudent, allowed: false, reason: ReasonNotIssuer},
		{name: "cannot fine a teacher", viewerRole: models.RoleAdmin, targetRole: models.RoleTeacher, allowed: false, reason: ReasonTargetNotStudent},
		{name: "cannot fine an admin", viewerRole: models.RoleDev, targetRole: models.RoleAdmin, allowed: false, reason: ReasonTargetNotStudent},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			d := CanIssueFine(tc.viewerRole, tc.targetRole)
			if d.Allowed != tc.allowed {
				t.Fatalf("expected allowed=%v, got %v (reason %q)", tc.allowed, d.Allowed, d.Reason)
			}
			if tc.reason != "" && d.Reason != tc.reason {
				t.Fatalf("expected reason %q, got %q", tc.reason, d.Reason)
			}
		})
	}
}

func TestCanManageFines(t *testing.T) {
	if d := CanManageFines(models.RoleTeacher); d.Allowed {
		t.Fatalf("teachers may issue but not remove or toggle fines")
	}
	if d := CanManageFines(models.RoleAdmin); !d.Allowed {
		t.Fatalf("admin should manage fines, got denied: %q", d.Reason)
	}
	if d := CanManageFines(models.RoleDev); !d.Allowed {
		t.Fatalf("dev should manage fines, got denied: %q", d.Reason)
	}
}

func TestCanPostAnnouncement(t *testing.T) {
	tests := []struct {
		role    string
		allowed bool
	}{
		{role: models.RoleTeacher, allowed: true},
		{role: models.RoleAdmin, allowed: true},
		{role: models.RoleDev, allowed: true},
		{role: models.RoleGraduate, allowed: false},
		{role: models.RoleStudent, allowed: false},
	}

	for _, tc := range tests {
		if d := CanPostAnnouncement(tc.role); d.Allowed != tc.allowed {
			t.Fatalf("role %q: expected allowed=%v, got %v", tc.role, tc.allowed, d.Allowed)
		}
	}
}

func TestLevelDepartmentFor(t *testing.T) {
	if dept, ok := LevelDepartmentFor(models.DepartmentLanguage); !ok || dept != program.DepartmentArabic {
		t.Fatalf("language should map to arabic, got %q ok=%v", dept, ok)
	}
	if dept, ok := LevelDepartmentFor(models.DepartmentSharia); !ok || dept != program.DepartmentIslamic {
		t.Fatalf("sharia should map to islamic, got %q ok=%v", dept, ok)
	}
	if _, ok := LevelDepartmentFor("math"); ok {
		t.Fatalf("unknown department must not map")
	}
	if _, ok := LevelDepartmentFor(""); ok {
		t.Fatalf("empty department must not map")
	}
}

func TestCanViewRoster(t *testing.T) {
	tests := []struct {
		name       string
		viewerRole string
		viewerDept string
		levelDept  string
		allowed    bool
		reason     string
	}{
		{name: "admin any level", viewerRole: models.RoleAdmin, levelDept: program.DepartmentIslamic, allowed: true},
		{name: "dev any level", viewerRole: models.RoleDev, levelDept: program.DepartmentArabic, allowed: true},
		{name: "language teacher on arabic level", viewerRole: models.RoleTeacher, viewerDept: models.DepartmentLanguage, levelDept: program.DepartmentArabic, allowed: true},
		{name: "sharia teacher on islamic level", viewerRole: models.RoleTeacher, viewerDept: models.DepartmentSharia, levelDept: program.DepartmentIslamic, allowed: true},
		{name: "language teacher on islamic level", viewerRole: models.RoleTeacher, viewerDept: models.DepartmentLanguage, levelDept: program.DepartmentIslamic, allowed: false, reason: ReasonWrongDepartment},
		{name: "teacher without department", viewerRole: models.RoleTeacher, viewerDept: "", levelDept: program.DepartmentArabic, allowed: false, reason: ReasonTeacherNoDept},
		{name: "teacher with bogus department", viewerRole: models.RoleTeacher, viewerDept: "math", levelDept: program.DepartmentArabic, allowed: false, reason: ReasonUnknownDepartment},
		{name: "student denied", viewerRole: models.RoleStudent, viewerDept: "", levelDept: program.DepartmentArabic, allowed: false, reason: ReasonNotTeacher},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			d := CanViewRoster(tc.viewerRole, tc.viewerDept, tc.levelDept)
			if d.Allowed != tc.allowed {
				t.Fatalf("expected allowed=%v, got %v (reason %q)", tc.allowed, d.Allowed, d.Reason)
			}
			if tc.reason != "" && d.Reason != tc.reason {
				t.Fatalf("expected reason %q, got %q", tc.reason, d.Reason)
			}
		})
	}
}
