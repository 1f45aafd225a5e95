// Package announcements stores per-level announcement boards as JSON
// blobs in the object store, keyed by subject name inside the blob.
package announcements

import (
	"errors"
	"strings"
	"time"

	"alwafi_go/program"
	"alwafi_go/storage"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrUnknownLevel = errors.New("unknown level")
	ErrTextRequired = errors.New("announcement text is required")
)

// Announcement is one posted notice for a (level, subject) board.
type Announcement struct {
	ID          string    `json:"id"`
	Text        string    `json:"text"`
	PostedAt    time.Time `json:"posted_at"`
	TeacherName string    `json:"teacher_name"`
}

// Data maps subject name to its announcements, oldest first.
type Data map[string][]Announcement

// AppendTo adds a to the subject's board.
func AppendTo(data Data, subject string, a Announcement) Data {
	if data == nil {
		data = Data{}
	}
	data[subject] = append(data[subject], a)
	return data
}

// RemoveFrom deletes one announcement by id. A missing subject or id is a
// no-op.
func RemoveFrom(data Data, subject, announcementID string) (Data, bool) {
	list, ok := data[subject]
	if !ok {
		return data, false
	}
	kept := make([]Announcement, 0, len(list))
	removed := false
	for _, a := range list {
		if a.ID == announcementID {
			removed = true
			continue
		}
		kept = append(kept, a)
	}
	if removed {
		data[subject] = kept
	}
	return data, removed
}

func blobKey(levelID string) string {
	return "announcements/" + levelID + ".json"
}

type Service struct {
	storage *storage.StorageService
}

func NewService(st *storage.StorageService) *Service {
	return &Service{storage: st}
}

// Load fetches a level's announcement board. Missing or unreadable blobs
// degrade to an empty board.
func (s *Service) Load(levelID string) Data {
	data := Data{}
	found, err := s.storage.GetJSON(blobKey(levelID), &data)
	if err != nil {
		logrus.WithError(err).WithField("level", levelID).Warn("failed to load announcements")
		return Data{}
	}
	if !found {
		return Data{}
	}
	return data
}

// ForSubject returns one subject's announcements.
func (s *Service) ForSubject(levelID, subject string) []Announcement {
	return s.Load(levelID)[subject]
}

// Post appends a new announcement to the (level, subject) board.
func (s *Service) Post(levelID, subject, text, teacherName string) (Announcement, error) {
	if _, ok := program.LevelByID(levelID); !ok {
		return Announcement{}, ErrUnknownLevel
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return Announcement{}, ErrTextRequired
	}

	a := Announcement{
		ID:          uuid.New().String(),
		Text:        text,
		PostedAt:    time.Now().UTC(),
		TeacherName: teacherName,
	}

	data := AppendTo(s.Load(levelID), subject, a)
	if err := s.storage.PutJSON(blobKey(levelID), data); err != nil {
		return Announcement{}, err
	}
	return a, nil
}

// Delete removes one announcement. Deleting something already gone is a
// no-op, not an error.
func (s *Service) Delete(levelID, subject, announcementID string) error {
	if _, ok := program.LevelByID(levelID); !ok {
		return ErrUnknownLevel
	}

	data, removed := RemoveFrom(s.Load(levelID), subject, announcementID)
	if !removed {
		return nil
	}
	return s.storage.PutJSON(blobKey(levelID), data)
}
