package controllers

import (
	"alwafi_go/middleware"
	"alwafi_go/models"
	"alwafi_go/policy"
	"alwafi_go/program"
	"alwafi_go/services/directory"
	"alwafi_go/services/levelconfig"
	"alwafi_go/storage"
	"alwafi_go/utils"

	"github.com/gofiber/fiber/v2"
)

type ClassController struct {
	directory *directory.Service
	levels    *levelconfig.Service
}

func NewClassController(st *storage.StorageService) *ClassController {
	return &ClassController{
		directory: directory.NewService(),
		levels:    levelconfig.NewService(st),
	}
}

// viewerDepartment reads the viewer's own bag department
// (language/sharia). CanViewRoster maps it onto the level departments
// itself, so it must stay unmapped here.
func viewerDepartment(viewer *models.User) string {
	bag, err := viewer.Bag()
	if err != nil {
		return ""
	}
	return bag.Department
}

// GetMyClasses lists the effective levels the calling teacher works
// with: their department's levels, narrowed by their own level filter.
func (cc *ClassController) GetMyClasses(c *fiber.Ctx) error {
	viewer, err := middleware.GetCurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "User not found"})
	}

	bag, err := viewer.Bag()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to read attributes"})
	}

	role := bag.Role
	levels := cc.levels.MergedLevels()

	switch role {
	case models.RoleAdmin, models.RoleDev:
		// everything
	case models.RoleTeacher:
		dept, ok := policy.LevelDepartmentFor(bag.Department)
		if !ok {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No department assigned"})
		}
		filtered := levels[:0]
		for _, lvl := range levels {
			if lvl.Department != dept {
				continue
			}
			if len(bag.TeacherLevels) > 0 && !contains(bag.TeacherLevels, lvl.ID) {
				continue
			}
			filtered = append(filtered, lvl)
		}
		levels = filtered
	default:
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Teachers only"})
	}

	// Apply per-level subject filters for teachers
	if role == models.RoleTeacher && len(bag.TeacherSubjects) > 0 {
		for i := range levels {
			wanted := bag.TeacherSubjects[levels[i].ID]
			if len(wanted) == 0 {
				continue
			}
			kept := make([]program.Subject, 0, len(levels[i].Subjects))
			for _, subj := range levels[i].Subjects {
				if contains(wanted, subj.Name) {
					kept = append(kept, subj)
				}
			}
			levels[i].Subjects = kept
		}
	}

	return c.JSON(fiber.Map{
		"levels": levels,
		"total":  len(levels),
	})
}

// GetRoster lists the students of one level. Teachers only see levels in
// their own department; admins and devs see everything.
func (cc *ClassController) GetRoster(c *fiber.Ctx) error {
	viewer, err := middleware.GetCurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "User not found"})
	}

	levelID := c.Params("levelId")
	level, err := cc.levels.MergedLevel(levelID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Unknown level"})
	}

	if d := policy.CanViewRoster(viewer.Role(), viewerDepartment(viewer), level.Department); !d.Allowed {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": d.Reason})
	}

	users, err := cc.directory.ListAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch roster"})
	}

	students := make([]utils.UserDTO, 0)
	for i := range users {
		bag, err := users[i].Bag()
		if err != nil {
			continue
		}
		if bag.Role == models.RoleStudent && bag.Level == levelID {
			students = append(students, utils.ToUserDTO(&users[i]))
		}
	}

	return c.JSON(fiber.Map{
		"level":    level,
		"students": students,
		"total":    len(students),
	})
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
