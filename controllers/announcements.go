package controllers

import (
	"alwafi_go/middleware"
	"alwafi_go/models"
	"alwafi_go/policy"
	"alwafi_go/services/announcements"
	"alwafi_go/services/levelconfig"
	"alwafi_go/storage"

	"github.com/gofiber/fiber/v2"
)

type AnnouncementController struct {
	announcements *announcements.Service
	levels        *levelconfig.Service
}

func NewAnnouncementController(st *storage.StorageService) *AnnouncementController {
	return &AnnouncementController{
		announcements: announcements.NewService(st),
		levels:        levelconfig.NewService(st),
	}
}

// GetAnnouncements returns a level's announcements. Students only read
// their own level; staff may read any level.
func (ac *AnnouncementController) GetAnnouncements(c *fiber.Ctx) error {
	viewer, err := middleware.GetCurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "User not found"})
	}

	levelID := c.Params("levelId")
	if _, err := ac.levels.MergedLevel(levelID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Unknown level"})
	}

	bag, err := viewer.Bag()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to read attributes"})
	}
	if bag.Role == models.RoleStudent && bag.Level != levelID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You can only view announcements for your own level"})
	}

	data := ac.announcements.Load(levelID)
	if subject := c.Query("subject"); subject != "" {
		return c.JSON(fiber.Map{
			"announcements": data[subject],
			"subject":       subject,
		})
	}
	return c.JSON(fiber.Map{"announcements": data})
}

// PostAnnouncement appends an announcement to one subject of a level
func (ac *AnnouncementController) PostAnnouncement(c *fiber.Ctx) error {
	viewer, err := middleware.GetCurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "User not found"})
	}
	if d := policy.CanPostAnnouncement(viewer.Role()); !d.Allowed {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": d.Reason})
	}

	levelID := c.Params("levelId")

	var req struct {
		Subject string `json:"subject" validate:"required"`
		Text    string `json:"text" validate:"required"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	level, err := ac.levels.MergedLevel(levelID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Unknown level"})
	}

	known := false
	for _, subj := range level.Subjects {
		if subj.Name == req.Subject {
			known = true
			break
		}
	}
	if !known {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Subject does not belong to this level"})
	}

	announcement, err := ac.announcements.Post(levelID, req.Subject, req.Text, viewer.DisplayName())
	if err != nil {
		switch err {
		case announcements.ErrTextRequired:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Announcement text is required"})
		case announcements.ErrUnknownLevel:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Unknown level"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to post announcement"})
		}
	}

	middleware.LogActivity(c, "CREATE", "announcements", 0, fiber.Map{
		"level":   levelID,
		"subject": req.Subject,
	})

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":      "Announcement posted successfully",
		"announcement": announcement,
	})
}

// DeleteAnnouncement removes one announcement; deleting one that is
// already gone still succeeds
func (ac *AnnouncementController) DeleteAnnouncement(c *fiber.Ctx) error {
	viewer, err := middleware.GetCurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "User not found"})
	}
	if d := policy.CanPostAnnouncement(viewer.Role()); !d.Allowed {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": d.Reason})
	}

	levelID := c.Params("levelId")
	announcementID := c.Params("announcementId")
	subject := c.Query("subject")
	if subject == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Subject is required"})
	}

	if err := ac.announcements.Delete(levelID, subject, announcementID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete announcement"})
	}

	middleware.LogActivity(c, "DELETE", "announcements", 0, fiber.Map{
		"level":   levelID,
		"subject": subject,
	})

	return c.JSON(fiber.Map{"message": "Announcement deleted successfully"})
}
