package controllers

import (
	"testing"

	"alwafi_go/models"
	"alwafi_go/policy"
	"alwafi_go/program"
)

func teacherWithDepartment(t *testing.T, dept string) *models.User {
	t.Helper()
	u := &models.User{Username: "t1"}
	if err := u.SetBag(models.AttributeBag{Role: models.RoleTeacher, Department: dept}); err != nil {
		t.Fatalf("SetBag failed: %v", err)
	}
	return u
}

// Exercises the roster gate exactly as GetRoster composes it: bag
// department in, level department from the catalog.
func TestRosterGateForTeachers(t *testing.T) {
	arabicLevel, _ := program.LevelByID("level_2a")
	islamicLevel, _ := program.LevelByID("level_6a")

	tests := []struct {
		name    string
		dept    string
		level   program.Level
		allowed bool
	}{
		{name: "language teacher sees arabic level", dept: models.DepartmentLanguage, level: arabicLevel, allowed: true},
		{name: "sharia teacher sees islamic level", dept: models.DepartmentSharia, level: islamicLevel, allowed: true},
		{name: "language teacher denied islamic level", dept: models.DepartmentLanguage, level: islamicLevel, allowed: false},
		{name: "sharia teacher denied arabic level", dept: models.DepartmentSharia, level: arabicLevel, allowed: false},
		{name: "teacher without department denied", dept: "", level: arabicLevel, allowed: false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			viewer := teacherWithDepartment(t, tc.dept)
			d := policy.CanViewRoster(viewer.Role(), viewerDepartment(viewer), tc.level.Department)
			if d.Allowed != tc.allowed {
				t.Fatalf("expected allowed=%v, got %v (reason %q)", tc.allowed, d.Allowed, d.Reason)
			}
		})
	}
}

func TestViewerDepartment(t *testing.T) {
	viewer := teacherWithDepartment(t, models.DepartmentLanguage)
	if got := viewerDepartment(viewer); got != models.DepartmentLanguage {
		t.Fatalf("department must come through unmapped, got %q", got)
	}

	corrupt := &models.User{Attributes: models.JSON(`{not json`)}
	if got := viewerDepartment(corrupt); got != "" {
		t.Fatalf("unreadable bag must yield empty department, got %q", got)
	}
}
