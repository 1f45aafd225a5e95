package controllers

import (
	"alwafi_go/middleware"
	"alwafi_go/models"
	"alwafi_go/services/homework"
	"alwafi_go/storage"

	"github.com/gofiber/fiber/v2"
)

type HomeworkController struct {
	homework *homework.Service
}

func NewHomeworkController(st *storage.StorageService) *HomeworkController {
	return &HomeworkController{homework: homework.NewService(st)}
}

// SubmitHomework uploads an artifact for one subject of the student's
// level and records it on their bag
func (hc *HomeworkController) SubmitHomework(c *fiber.Ctx) error {
	user, err := middleware.GetCurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "User not found"})
	}
	if user.Role() != models.RoleStudent {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Students only"})
	}

	subject := c.FormValue("subject")
	if subject == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Subject is required"})
	}

	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No file uploaded"})
	}

	submission, err := hc.homework.Submit(user, subject, file)
	if err != nil {
		switch err {
		case homework.ErrNoFile:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No file selected"})
		case homework.ErrNoLevel:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Choose your level before submitting homework"})
		case homework.ErrInvalidSubject:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Subject does not belong to your level"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to submit homework"})
		}
	}

	middleware.LogActivity(c, "CREATE", "homework", user.ID, fiber.Map{
		"subject":       subject,
		"submission_id": submission.ID,
		"type":          submission.Type,
	})

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":    "Homework submitted successfully",
		"submission": submission,
	})
}

// GetMyHomework returns the student's submissions, grouped by subject
func (hc *HomeworkController) GetMyHomework(c *fiber.Ctx) error {
	user, err := middleware.GetCurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "User not found"})
	}

	bag, err := user.Bag()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to read attributes"})
	}

	subs := bag.Homework
	if subs == nil {
		subs = map[string][]models.Submission{}
	}

	return c.JSON(fiber.Map{
		"homework": subs,
		"level":    bag.Level,
	})
}

// DeleteHomework removes one of the student's own submissions
func (hc *HomeworkController) DeleteHomework(c *fiber.Ctx) error {
	user, err := middleware.GetCurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "User not found"})
	}

	subject := c.Query("subject")
	submissionID := c.Params("submissionId")
	if subject == "" || submissionID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Subject and submission ID are required"})
	}

	if err := hc.homework.Delete(user.ID, subject, submissionID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete submission"})
	}

	middleware.LogActivity(c, "DELETE", "homework", user.ID, fiber.Map{
		"subject":       subject,
		"submission_id": submissionID,
	})

	return c.JSON(fiber.Map{"message": "Submission deleted successfully"})
}
