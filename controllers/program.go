package controllers

import (
	"alwafi_go/program"

	"github.com/gofiber/fiber/v2"
)

type ProgramController struct{}

// GetProgramInfo returns the static school information block
func (pc *ProgramController) GetProgramInfo(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"program": program.ProgramInfo})
}

// GetSchedules returns the weekly class schedules
func (pc *ProgramController) GetSchedules(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"friday":   program.FridaySchedule,
		"saturday": program.SaturdaySchedule,
	})
}

// GetCalendar returns the academic calendar and the special activities
func (pc *ProgramController) GetCalendar(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"calendar":           program.AcademicCalendar,
		"special_activities": program.SpecialActivities,
	})
}
