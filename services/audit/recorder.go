// Package audit keeps the per-admin action log: a bounded, newest-first
// list stored on the acting admin's own record.
package audit

import (
	"time"

	"alwafi_go/models"
	"alwafi_go/services/directory"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// MaxEntries bounds the log per performer; the oldest entries are evicted.
const MaxEntries = 50

// Fixed action vocabulary.
const (
	ActionRoleChanged   = "Role Changed"
	ActionLevelAssigned = "Level Assigned"
	ActionDeptAssigned  = "Dept Assigned"
	ActionUserDeleted   = "User Deleted"
	ActionFineIssued    = "Fine Issued"
	ActionFineRemoved   = "Fine Removed"
)

var knownActions = map[string]bool{
	ActionRoleChanged:   true,
	ActionLevelAssigned: true,
	ActionDeptAssigned:  true,
	ActionUserDeleted:   true,
	ActionFineIssued:    true,
	ActionFineRemoved:   true,
}

// Prepend inserts entry at the head of the log and truncates to
// MaxEntries. The newest entry is always at index 0.
func Prepend(log []models.AuditEntry, entry models.AuditEntry) []models.AuditEntry {
	out := make([]models.AuditEntry, 0, len(log)+1)
	out = append(out, entry)
	out = append(out, log...)
	if len(out) > MaxEntries {
		out = out[:MaxEntries]
	}
	return out
}

type Recorder struct {
	directory *directory.Service
}

func NewRecorder() *Recorder {
	return &Recorder{directory: directory.NewService()}
}

// Record writes an audit entry onto the performer's own action log. The
// triggering mutation has already been committed when this runs, so a
// failed audit write is logged and swallowed; it never fails the
// user-visible operation.
func (r *Recorder) Record(performer *models.User, action, details string) {
	if !knownActions[action] {
		logrus.WithField("action", action).Error("unknown audit action, entry dropped")
		return
	}

	entry := models.AuditEntry{
		ID:            uuid.New().String(),
		Action:        action,
		Details:       details,
		PerformedBy:   performer.DisplayName(),
		PerformedByID: performer.ID,
		Timestamp:     time.Now().UTC(),
	}

	_, err := r.directory.UpdateBag(performer.ID, func(bag *models.AttributeBag) error {
		bag.ActionLog = Prepend(bag.ActionLog, entry)
		return nil
	})
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"performer_id": performer.ID,
			"action":       action,
		}).Warn("failed to write audit entry")
	}
}
