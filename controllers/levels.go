package controllers

import (
	"alwafi_go/middleware"
	"alwafi_go/policy"
	"alwafi_go/program"
	"alwafi_go/services/levelconfig"
	"alwafi_go/storage"

	"github.com/gofiber/fiber/v2"
)

type LevelController struct {
	levels *levelconfig.Service
}

func NewLevelController(st *storage.StorageService) *LevelController {
	return &LevelController{levels: levelconfig.NewService(st)}
}

// GetLevels returns the effective catalog: defaults with admin overrides
// applied. Available to every authenticated user.
func (lc *LevelController) GetLevels(c *fiber.Ctx) error {
	levels := lc.levels.MergedLevels()

	if dept := c.Query("department"); dept != "" {
		filtered := levels[:0]
		for _, lvl := range levels {
			if lvl.Department == dept {
				filtered = append(filtered, lvl)
			}
		}
		levels = filtered
	}

	return c.JSON(fiber.Map{
		"levels": levels,
		"total":  len(levels),
	})
}

// GetLevel returns one effective level
func (lc *LevelController) GetLevel(c *fiber.Ctx) error {
	levelID := c.Params("levelId")
	level, err := lc.levels.MergedLevel(levelID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Unknown level"})
	}
	return c.JSON(fiber.Map{"level": level})
}

// SaveLevelOverride stores an admin's partial replacement of a level's
// defaults. A rejected override leaves the stored config untouched.
func (lc *LevelController) SaveLevelOverride(c *fiber.Ctx) error {
	viewer, err := middleware.GetCurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "User not found"})
	}
	if d := policy.CanEditLevelConfig(viewer.Role()); !d.Allowed {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": d.Reason})
	}

	levelID := c.Params("levelId")

	var req levelconfig.Override
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := lc.levels.SaveOverride(levelID, req); err != nil {
		switch err {
		case levelconfig.ErrUnknownLevel:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Unknown level"})
		case levelconfig.ErrNameRequired, levelconfig.ErrShortNameRequired, levelconfig.ErrNoSubjects:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save level configuration"})
		}
	}

	middleware.LogActivity(c, "UPDATE", "levels", 0, fiber.Map{
		"level": levelID,
	})

	level, _ := lc.levels.MergedLevel(levelID)
	return c.JSON(fiber.Map{
		"message": "Level configuration saved",
		"level":   level,
	})
}

// ResetLevelOverride drops a level's override so the defaults apply
// again. Resetting an untouched level is a no-op.
func (lc *LevelController) ResetLevelOverride(c *fiber.Ctx) error {
	viewer, err := middleware.GetCurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "User not found"})
	}
	if d := policy.CanEditLevelConfig(viewer.Role()); !d.Allowed {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": d.Reason})
	}

	levelID := c.Params("levelId")
	if _, ok := program.LevelByID(levelID); !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Unknown level"})
	}

	if err := lc.levels.Reset(levelID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to reset level configuration"})
	}

	middleware.LogActivity(c, "DELETE", "levels", 0, fiber.Map{
		"level": levelID,
	})

	level, _ := lc.levels.MergedLevel(levelID)
	return c.JSON(fiber.Map{
		"message": "Level configuration reset",
		"level":   level,
	})
}
