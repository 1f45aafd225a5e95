// Package fines implements the fine ledger: pure list operations over a
// student's fines plus the service that applies them to the directory.
package fines

import (
	"errors"
	"sort"
	"time"

	"alwafi_go/models"

	"github.com/google/uuid"
)

var ErrInvalidReason = errors.New("invalid fine reason")

// Append constructs a new unpaid fine and appends it to the list,
// preserving insertion order. The free-text note is only kept for
// reason=other.
func Append(list []models.Fine, reason, note string, issuerID uint, issuerName string, now time.Time) ([]models.Fine, models.Fine, error) {
	switch reason {
	case models.FineReasonPhone, models.FineReasonLanguage, models.FineReasonOther:
	default:
		return list, models.Fine{}, ErrInvalidReason
	}

	fine := models.Fine{
		ID:           uuid.New().String(),
		Reason:       reason,
		IssuedByID:   issuerID,
		IssuedByName: issuerName,
		IssuedAt:     now,
	}
	if reason == models.FineReasonOther {
		fine.OtherNote = note
	}

	return append(list, fine), fine, nil
}

// RemoveByID removes exactly one fine by id. A missing id is a no-op;
// deletions may race with page revalidation.
func RemoveByID(list []models.Fine, fineID string) ([]models.Fine, bool) {
	for i, f := range list {
		if f.ID == fineID {
			out := make([]models.Fine, 0, len(list)-1)
			out = append(out, list[:i]...)
			return append(out, list[i+1:]...), true
		}
	}
	return list, false
}

// TogglePaid flips the paid flag on the matching fine, leaving every
// other field untouched. A missing id is a no-op.
func TogglePaid(list []models.Fine, fineID string) ([]models.Fine, bool) {
	out := make([]models.Fine, len(list))
	copy(out, list)
	for i := range out {
		if out[i].ID == fineID {
			out[i].Paid = !out[i].Paid
			return out, true
		}
	}
	return list, false
}

// StudentFines is one student's ledger with the identity needed for
// cross-student listings.
type StudentFines struct {
	StudentID   uint          `json:"student_id"`
	StudentName string        `json:"student_name"`
	LevelID     string        `json:"level_id"`
	Fines       []models.Fine `json:"fines"`
}

// ListedFine is a fine joined with its student for aggregate views.
type ListedFine struct {
	models.Fine
	StudentID   uint   `json:"student_id"`
	StudentName string `json:"student_name"`
	LevelID     string `json:"level_id"`
}

// Summary holds the derived aggregates. Nothing here is persisted; it is
// recomputed from the full student set on every read.
type Summary struct {
	Total    int            `json:"total"`
	Unpaid   int            `json:"unpaid"`
	PerLevel map[string]int `json:"per_level"`
}

// Summarize computes total/unpaid/per-level counts over all students.
func Summarize(entries []StudentFines) Summary {
	summary := Summary{PerLevel: make(map[string]int)}
	for _, e := range entries {
		for _, f := range e.Fines {
			summary.Total++
			if !f.Paid {
				summary.Unpaid++
			}
			if e.LevelID != "" {
				summary.PerLevel[e.LevelID]++
			}
		}
	}
	return summary
}

// FlattenSorted joins all students' fines into one list, most recent
// issued first. Within a single student's own record the insertion order
// is untouched; only this aggregated view is reordered.
func FlattenSorted(entries []StudentFines) []ListedFine {
	var out []ListedFine
	for _, e := range entries {
		for _, f := range e.Fines {
			out = append(out, ListedFine{
				Fine:        f,
				StudentID:   e.StudentID,
				StudentName: e.StudentName,
				LevelID:     e.LevelID,
			})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].IssuedAt.After(out[j].IssuedAt)
	})
	return out
}
