package controllers

import (
	"fmt"
	"time"

	"alwafi_go/middleware"
	"alwafi_go/policy"
	"alwafi_go/services/audit"
	"alwafi_go/services/directory"
	"alwafi_go/services/fines"
	"alwafi_go/services/notifications"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

type FineController struct {
	fines         *fines.Service
	directory     *directory.Service
	audit         *audit.Recorder
	notifications *notifications.Service
}

func NewFineController() *FineController {
	return &FineController{
		fines:         fines.NewService(),
		directory:     directory.NewService(),
		audit:         audit.NewRecorder(),
		notifications: notifications.NewService(),
	}
}

// IssueFine records a fine against a student. Teachers, graduates and the
// elevated roles may issue; the target must be a student.
func (fc *FineController) IssueFine(c *fiber.Ctx) error {
	issuer, err := middleware.GetCurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "User not found"})
	}

	studentID, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user ID"})
	}

	var req struct {
		Reason string `json:"reason" validate:"required,oneof=phone language other"`
		Note   string `json:"note"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	target, err := fc.directory.GetPerson(studentID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Student not found"})
	}

	if d := policy.CanIssueFine(issuer.Role(), target.Role()); !d.Allowed {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": d.Reason})
	}

	fine, err := fc.fines.Issue(studentID, req.Reason, req.Note, issuer)
	if err != nil {
		switch err {
		case fines.ErrInvalidReason:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid fine reason"})
		case fines.ErrNotStudent:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Fines can only be issued against students"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to issue fine"})
		}
	}

	fc.audit.Record(issuer, audit.ActionFineIssued,
		fmt.Sprintf("%s: %s", target.DisplayName(), fine.Reason))
	middleware.LogActivity(c, "CREATE", "fines", studentID, fiber.Map{
		"reason":  fine.Reason,
		"fine_id": fine.ID,
	})

	n := notifications.Queued(
		"A fine was recorded",
		"تم تسجيل غرامة",
		"A fine has been recorded on your account. Check your fines page for details.",
		"تم تسجيل غرامة على حسابك، راجع صفحة الغرامات للتفاصيل.",
		"warning",
	)
	if err := fc.notifications.EnqueueOrCreate([]uint{studentID}, n); err != nil {
		middleware.LogActivity(c, "CREATE", "notifications", studentID, fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Fine issued successfully",
		"fine":    fine,
	})
}

// RemoveFine deletes a fine from a student's ledger. Admin pages only.
func (fc *FineController) RemoveFine(c *fiber.Ctx) error {
	viewer, err := middleware.GetCurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "User not found"})
	}
	if d := policy.CanManageFines(viewer.Role()); !d.Allowed {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": d.Reason})
	}

	studentID, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user ID"})
	}
	fineID := c.Params("fineId")

	removed, found, err := fc.fines.Remove(studentID, fineID)
	if err != nil {
		if err == directory.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Student not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to remove fine"})
	}
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Fine not found"})
	}

	target, _ := fc.directory.GetPerson(studentID)
	targetName := ""
	if target != nil {
		targetName = target.DisplayName()
	}
	fc.audit.Record(viewer, audit.ActionFineRemoved,
		fmt.Sprintf("%s: %s", targetName, removed.Reason))
	middleware.LogActivity(c, "DELETE", "fines", studentID, fiber.Map{
		"fine_id": fineID,
	})

	return c.JSON(fiber.Map{"message": "Fine removed successfully"})
}

// ToggleFinePaid flips the paid flag on one fine
func (fc *FineController) ToggleFinePaid(c *fiber.Ctx) error {
	viewer, err := middleware.GetCurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "User not found"})
	}
	if d := policy.CanManageFines(viewer.Role()); !d.Allowed {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": d.Reason})
	}

	studentID, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user ID"})
	}
	fineID := c.Params("fineId")

	fine, found, err := fc.fines.TogglePaid(studentID, fineID)
	if err != nil {
		if err == directory.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Student not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update fine"})
	}
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Fine not found"})
	}

	middleware.LogActivity(c, "UPDATE", "fines", studentID, fiber.Map{
		"fine_id": fineID,
		"paid":    fine.Paid,
	})

	return c.JSON(fiber.Map{
		"message": "Fine updated successfully",
		"fine":    fine,
	})
}

// GetMyFines returns the calling student's own ledger
func (fc *FineController) GetMyFines(c *fiber.Ctx) error {
	user, err := middleware.GetCurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "User not found"})
	}

	list, err := fc.fines.ListForStudent(user.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch fines"})
	}

	unpaid := 0
	for _, f := range list {
		if !f.Paid {
			unpaid++
		}
	}

	return c.JSON(fiber.Map{
		"fines":  list,
		"total":  len(list),
		"unpaid": unpaid,
	})
}

// GetStudentFines returns one student's ledger for the admin pages
func (fc *FineController) GetStudentFines(c *fiber.Ctx) error {
	viewer, err := middleware.GetCurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "User not found"})
	}
	if d := policy.CanManageFines(viewer.Role()); !d.Allowed {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": d.Reason})
	}

	studentID, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user ID"})
	}

	list, err := fc.fines.ListForStudent(studentID)
	if err != nil {
		if err == directory.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Student not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch fines"})
	}

	return c.JSON(fiber.Map{
		"fines": list,
		"total": len(list),
	})
}

// GetFinesOverview returns every student's ledger plus the aggregates,
// newest fines first
func (fc *FineController) GetFinesOverview(c *fiber.Ctx) error {
	viewer, err := middleware.GetCurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "User not found"})
	}
	if d := policy.CanManageFines(viewer.Role()); !d.Allowed {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": d.Reason})
	}

	limit := c.QueryInt("limit", 500)
	entries, summary, err := fc.fines.Overview(limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch fines overview"})
	}

	return c.JSON(fiber.Map{
		"students": entries,
		"fines":    fines.FlattenSorted(entries),
		"summary":  summary,
	})
}

// ExportFines streams the full ledger as an xlsx workbook
func (fc *FineController) ExportFines(c *fiber.Ctx) error {
	viewer, err := middleware.GetCurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "User not found"})
	}
	if d := policy.CanManageFines(viewer.Role()); !d.Allowed {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": d.Reason})
	}

	entries, summary, err := fc.fines.Overview(0)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch fines"})
	}
	listed := fines.FlattenSorted(entries)

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Fines"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Student", "Level", "Reason", "Note", "Issued By", "Issued At", "Paid"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for row, item := range listed {
		values := []interface{}{
			item.StudentName,
			item.LevelID,
			item.Reason,
			item.OtherNote,
			item.IssuedByName,
			item.IssuedAt.Format("2006-01-02 15:04"),
			item.Paid,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	summarySheet := "Summary"
	if _, err := f.NewSheet(summarySheet); err == nil {
		f.SetCellValue(summarySheet, "A1", "Total fines")
		f.SetCellValue(summarySheet, "B1", summary.Total)
		f.SetCellValue(summarySheet, "A2", "Unpaid fines")
		f.SetCellValue(summarySheet, "B2", summary.Unpaid)
		row := 4
		f.SetCellValue(summarySheet, "A3", "Per level")
		for levelID, count := range summary.PerLevel {
			cellA, _ := excelize.CoordinatesToCellName(1, row)
			cellB, _ := excelize.CoordinatesToCellName(2, row)
			f.SetCellValue(summarySheet, cellA, levelID)
			f.SetCellValue(summarySheet, cellB, count)
			row++
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to build export"})
	}

	middleware.LogActivity(c, "CREATE", "fines_export", 0, fiber.Map{
		"records": len(listed),
	})

	filename := fmt.Sprintf("fines_%s.xlsx", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(buf.Bytes())
}
