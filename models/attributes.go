package models

import (
	"encoding/json"
	"time"
)

// Roles stored in the attribute bag. A fresh account has no role until an
// admin (or the sign-up flow) assigns one.
const (
	RoleStudent  = "student"
	RoleTeacher  = "teacher"
	RoleGraduate = "graduate"
	RoleAdmin    = "admin"
	RoleDev      = "dev"
)

// Teacher departments. These map onto the level departments in program/
// (language -> arabic, sharia -> islamic).
const (
	DepartmentLanguage = "language"
	DepartmentSharia   = "sharia"
)

// Fine reasons
const (
	FineReasonPhone    = "phone"
	FineReasonLanguage = "language"
	FineReasonOther    = "other"
)

// Fine is a disciplinary record issued against a student.
type Fine struct {
	ID           string    `json:"id"`
	Reason       string    `json:"reason"` // phone, language, other
	OtherNote    string    `json:"other_note,omitempty"`
	IssuedByID   uint      `json:"issued_by_id"`
	IssuedByName string    `json:"issued_by_name"`
	IssuedAt     time.Time `json:"issued_at"`
	Paid         bool      `json:"paid"`
}

// Submission is an uploaded homework artifact for one subject.
type Submission struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"` // file, image, audio
	URL         string    `json:"url"`
	Filename    string    `json:"filename"`
	Size        int64     `json:"size"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// AuditEntry is one logged administrative action, stored on the acting
// admin's own bag, newest first.
type AuditEntry struct {
	ID            string    `json:"id"`
	Action        string    `json:"action"`
	Details       string    `json:"details"`
	PerformedBy   string    `json:"performed_by"`
	PerformedByID uint      `json:"performed_by_id"`
	Timestamp     time.Time `json:"timestamp"`
}

// AttributeBag is the typed view of a person's attribute document.
//
// The bag is one JSON value in the directory; mutations must always decode
// the full bag, change the field they own and write the whole bag back
// (see services/directory.UpdateBag), otherwise unrelated fields written
// by other actions get erased.
type AttributeBag struct {
	Role       string `json:"role,omitempty"`
	Level      string `json:"level,omitempty"`      // students only, level id
	Department string `json:"department,omitempty"` // teachers only

	Fines    []Fine                  `json:"fines,omitempty"`
	Homework map[string][]Submission `json:"homework,omitempty"` // subject name -> submissions

	// Per-teacher visibility filters. Empty means "show all".
	TeacherSubjects map[string][]string `json:"teacher_subjects,omitempty"` // level id -> subject names
	TeacherLevels   []string            `json:"teacher_levels,omitempty"`

	ActionLog []AuditEntry `json:"action_log,omitempty"`
}

// Bag decodes the user's attribute document. A missing or null document
// yields an empty bag.
func (u *User) Bag() (AttributeBag, error) {
	var bag AttributeBag
	if u.Attributes.IsNull() {
		return bag, nil
	}
	if err := json.Unmarshal(u.Attributes, &bag); err != nil {
		return AttributeBag{}, err
	}
	return bag, nil
}

// SetBag encodes the full bag back onto the user record.
func (u *User) SetBag(bag AttributeBag) error {
	data, err := json.Marshal(bag)
	if err != nil {
		return err
	}
	u.Attributes = data
	return nil
}

// Role returns the bag role, tolerating an unreadable document.
func (u *User) Role() string {
	bag, err := u.Bag()
	if err != nil {
		return ""
	}
	return bag.Role
}
