package controllers

import (
	"fmt"
	"strconv"

	"alwafi_go/middleware"
	"alwafi_go/models"
	"alwafi_go/policy"
	"alwafi_go/program"
	"alwafi_go/services/audit"
	"alwafi_go/services/directory"
	"alwafi_go/services/notifications"
	"alwafi_go/utils"

	"github.com/gofiber/fiber/v2"
)

type UserController struct {
	directory     *directory.Service
	audit         *audit.Recorder
	notifications *notifications.Service
}

func NewUserController() *UserController {
	return &UserController{
		directory:     directory.NewService(),
		audit:         audit.NewRecorder(),
		notifications: notifications.NewService(),
	}
}

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Invalid user ID")
	}
	return uint(id), nil
}

// GetUsers lists all persons with their bag-derived fields. Admin pages
// only; supports an optional ?role= filter.
func (uc *UserController) GetUsers(c *fiber.Ctx) error {
	viewer, err := middleware.GetCurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "User not found"})
	}
	if d := policy.CanViewAdminPages(viewer.Role()); !d.Allowed {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": d.Reason})
	}

	limit := c.QueryInt("limit", 100)
	users, err := uc.directory.ListPersons(limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch users"})
	}

	dtos := utils.ToUserDTOs(users)
	if roleFilter := c.Query("role"); roleFilter != "" {
		filtered := dtos[:0]
		for _, dto := range dtos {
			if dto.Role == roleFilter {
				filtered = append(filtered, dto)
			}
		}
		dtos = filtered
	}

	return c.JSON(fiber.Map{
		"users":            dtos,
		"total":            len(dtos),
		"assignable_roles": policy.AssignableRoles(viewer.Role()),
	})
}

// GetUser returns one person with bag fields
func (uc *UserController) GetUser(c *fiber.Ctx) error {
	viewer, err := middleware.GetCurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "User not found"})
	}
	if d := policy.CanViewAdminPages(viewer.Role()); !d.Allowed {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": d.Reason})
	}

	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user ID"})
	}

	user, err := uc.directory.GetPerson(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	return c.JSON(fiber.Map{"user": utils.ToUserDTO(user)})
}

// UpdateUserRole changes the target's bag role, subject to the role
// matrix: devs may assign anyone, admins may not touch admins or devs,
// and nobody changes their own role.
func (uc *UserController) UpdateUserRole(c *fiber.Ctx) error {
	viewer, err := middleware.GetCurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "User not found"})
	}

	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user ID"})
	}

	var req struct {
		Role string `json:"role" validate:"required"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if !utils.IsValidRole(req.Role) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid role"})
	}

	target, err := uc.directory.GetPerson(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	if d := policy.CanAssignRole(viewer.Role(), viewer.ID, target.Role(), target.ID); !d.Allowed {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": d.Reason})
	}

	allowed := false
	for _, role := range policy.AssignableRoles(viewer.Role()) {
		if role == req.Role {
			allowed = true
			break
		}
	}
	if !allowed {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You cannot assign this role"})
	}

	previousRole := target.Role()
	updated, err := uc.directory.UpdateBag(id, func(bag *models.AttributeBag) error {
		bag.Role = req.Role
		if req.Role != models.RoleStudent {
			bag.Level = ""
		}
		if req.Role != models.RoleTeacher {
			bag.Department = ""
			bag.TeacherSubjects = nil
			bag.TeacherLevels = nil
		}
		return nil
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update role"})
	}

	uc.audit.Record(viewer, audit.ActionRoleChanged,
		fmt.Sprintf("%s: %s -> %s", updated.DisplayName(), previousRole, req.Role))
	middleware.LogActivity(c, "UPDATE", "users", id, fiber.Map{
		"action":   "role_change",
		"old_role": previousRole,
		"new_role": req.Role,
	})

	n := notifications.Queued(
		"Your role has changed",
		"تم تغيير دورك",
		fmt.Sprintf("Your account role is now %s.", req.Role),
		fmt.Sprintf("أصبح دور حسابك الآن %s.", req.Role),
		"info",
	)
	if err := uc.notifications.EnqueueOrCreate([]uint{id}, n); err != nil {
		middleware.LogActivity(c, "CREATE", "notifications", id, fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"message": "Role updated successfully",
		"user":    utils.ToUserDTO(updated),
	})
}

// UpdateUserLevel assigns a student's level
func (uc *UserController) UpdateUserLevel(c *fiber.Ctx) error {
	viewer, err := middleware.GetCurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "User not found"})
	}
	if d := policy.CanViewAdminPages(viewer.Role()); !d.Allowed {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": d.Reason})
	}

	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user ID"})
	}

	var req struct {
		Level string `json:"level" validate:"required"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if _, ok := program.LevelByID(req.Level); !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown level"})
	}

	updated, err := uc.directory.UpdateBag(id, func(bag *models.AttributeBag) error {
		if bag.Role != models.RoleStudent {
			return fiber.NewError(fiber.StatusBadRequest, "Levels can only be assigned to students")
		}
		bag.Level = req.Level
		return nil
	})
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return c.Status(fe.Code).JSON(fiber.Map{"error": fe.Message})
		}
		if err == directory.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update level"})
	}

	uc.audit.Record(viewer, audit.ActionLevelAssigned,
		fmt.Sprintf("%s -> %s", updated.DisplayName(), req.Level))
	middleware.LogActivity(c, "UPDATE", "users", id, fiber.Map{
		"action": "level_assign",
		"level":  req.Level,
	})

	return c.JSON(fiber.Map{
		"message": "Level updated successfully",
		"user":    utils.ToUserDTO(updated),
	})
}

// UpdateUserDepartment assigns a teacher's department
func (uc *UserController) UpdateUserDepartment(c *fiber.Ctx) error {
	viewer, err := middleware.GetCurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "User not found"})
	}
	if d := policy.CanViewAdminPages(viewer.Role()); !d.Allowed {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": d.Reason})
	}

	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user ID"})
	}

	var req struct {
		Department string `json:"department" validate:"required,oneof=language sharia"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := utils.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	updated, err := uc.directory.UpdateBag(id, func(bag *models.AttributeBag) error {
		if bag.Role != models.RoleTeacher {
			return fiber.NewError(fiber.StatusBadRequest, "Departments can only be assigned to teachers")
		}
		bag.Department = req.Department
		return nil
	})
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return c.Status(fe.Code).JSON(fiber.Map{"error": fe.Message})
		}
		if err == directory.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update department"})
	}

	uc.audit.Record(viewer, audit.ActionDeptAssigned,
		fmt.Sprintf("%s -> %s", updated.DisplayName(), req.Department))
	middleware.LogActivity(c, "UPDATE", "users", id, fiber.Map{
		"action":     "department_assign",
		"department": req.Department,
	})

	return c.JSON(fiber.Map{
		"message": "Department updated successfully",
		"user":    utils.ToUserDTO(updated),
	})
}

// DeleteUser removes a person, subject to the protection matrix
func (uc *UserController) DeleteUser(c *fiber.Ctx) error {
	viewer, err := middleware.GetCurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "User not found"})
	}

	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user ID"})
	}

	target, err := uc.directory.GetPerson(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	if d := policy.CanDeleteUser(viewer.Role(), viewer.ID, target.Role(), target.ID); !d.Allowed {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": d.Reason})
	}

	displayName := target.DisplayName()
	if err := uc.directory.DeletePerson(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete user"})
	}

	uc.audit.Record(viewer, audit.ActionUserDeleted, displayName)
	middleware.LogActivity(c, "DELETE", "users", id, fiber.Map{
		"deleted_user": target.Username,
	})

	return c.JSON(fiber.Map{"message": "User deleted successfully"})
}

// SelectLevel lets a student pick their level once during onboarding.
// After that the level is locked and only an admin can change it.
func (uc *UserController) SelectLevel(c *fiber.Ctx) error {
	user, err := middleware.GetCurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "User not found"})
	}

	var req struct {
		Level string `json:"level" validate:"required"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if _, ok := program.LevelByID(req.Level); !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown level"})
	}

	updated, err := uc.directory.UpdateBag(user.ID, func(bag *models.AttributeBag) error {
		if bag.Role != models.RoleStudent {
			return fiber.NewError(fiber.StatusBadRequest, "Only students choose a level")
		}
		if bag.Level != "" {
			return fiber.NewError(fiber.StatusConflict, "Level is already set; ask an administrator to change it")
		}
		bag.Level = req.Level
		return nil
	})
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return c.Status(fe.Code).JSON(fiber.Map{"error": fe.Message})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to set level"})
	}

	middleware.LogActivity(c, "UPDATE", "users", user.ID, fiber.Map{
		"action": "onboarding_level_select",
		"level":  req.Level,
	})

	return c.JSON(fiber.Map{
		"message": "Level selected successfully",
		"user":    utils.ToUserDTO(updated),
	})
}

// UpdateTeacherFilters stores a teacher's own roster display filters.
// Empty lists mean "show everything".
func (uc *UserController) UpdateTeacherFilters(c *fiber.Ctx) error {
	user, err := middleware.GetCurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "User not found"})
	}

	var req struct {
		TeacherLevels   []string            `json:"teacher_levels"`
		TeacherSubjects map[string][]string `json:"teacher_subjects"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	for _, levelID := range req.TeacherLevels {
		if _, ok := program.LevelByID(levelID); !ok {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown level: " + levelID})
		}
	}
	for levelID := range req.TeacherSubjects {
		if _, ok := program.LevelByID(levelID); !ok {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown level: " + levelID})
		}
	}

	updated, err := uc.directory.UpdateBag(user.ID, func(bag *models.AttributeBag) error {
		if bag.Role != models.RoleTeacher {
			return fiber.NewError(fiber.StatusForbidden, "Only teachers have roster filters")
		}
		bag.TeacherLevels = req.TeacherLevels
		bag.TeacherSubjects = req.TeacherSubjects
		return nil
	})
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return c.Status(fe.Code).JSON(fiber.Map{"error": fe.Message})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update filters"})
	}

	return c.JSON(fiber.Map{
		"message": "Filters updated successfully",
		"user":    utils.ToUserDTO(updated),
	})
}
