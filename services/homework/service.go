// Package homework handles student submissions: the uploaded artifact
// goes to the object store, the submission record onto the student's bag.
package homework

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"alwafi_go/models"
	"alwafi_go/services/directory"
	"alwafi_go/services/levelconfig"
	"alwafi_go/storage"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrNoFile         = errors.New("no file selected")
	ErrNoLevel        = errors.New("student has no level assigned")
	ErrInvalidSubject = errors.New("subject does not belong to the student's level")
)

// SubmissionTypeFor derives the submission type from the MIME type.
func SubmissionTypeFor(contentType string) string {
	switch {
	case strings.HasPrefix(contentType, "audio/"):
		return "audio"
	case strings.HasPrefix(contentType, "image/"):
		return "image"
	default:
		return "file"
	}
}

type Service struct {
	directory *directory.Service
	storage   *storage.StorageService
	levels    *levelconfig.Service
}

func NewService(st *storage.StorageService) *Service {
	return &Service{
		directory: directory.NewService(),
		storage:   st,
		levels:    levelconfig.NewService(st),
	}
}

// Submit uploads the file and appends a submission record under the
// subject in the student's bag. The subject must belong to the student's
// effective (merged) level.
func (s *Service) Submit(student *models.User, subject string, file *multipart.FileHeader) (models.Submission, error) {
	if file == nil || file.Size == 0 {
		return models.Submission{}, ErrNoFile
	}

	bag, err := student.Bag()
	if err != nil {
		return models.Submission{}, err
	}
	if bag.Level == "" {
		return models.Submission{}, ErrNoLevel
	}

	level, err := s.levels.MergedLevel(bag.Level)
	if err != nil {
		return models.Submission{}, err
	}
	known := false
	for _, subj := range level.Subjects {
		if subj.Name == subject {
			known = true
			break
		}
	}
	if !known {
		return models.Submission{}, ErrInvalidSubject
	}

	ext := filepath.Ext(file.Filename)
	if ext == "" {
		ext = ".bin"
	}
	key := fmt.Sprintf("homework/%d/%s/%s/%d%s",
		student.ID, bag.Level, url.PathEscape(subject), time.Now().UnixMilli(), ext)

	fileURL, err := s.storage.UploadFile(file, key)
	if err != nil {
		return models.Submission{}, err
	}

	submission := models.Submission{
		ID:          uuid.New().String(),
		Type:        SubmissionTypeFor(file.Header.Get("Content-Type")),
		URL:         fileURL,
		Filename:    file.Filename,
		Size:        file.Size,
		SubmittedAt: time.Now().UTC(),
	}

	_, err = s.directory.UpdateBag(student.ID, func(bag *models.AttributeBag) error {
		if bag.Homework == nil {
			bag.Homework = map[string][]models.Submission{}
		}
		bag.Homework[subject] = append(bag.Homework[subject], submission)
		return nil
	})
	if err != nil {
		// The record never made it onto the bag; don't leave the blob behind.
		if delErr := s.storage.DeleteFile(fileURL); delErr != nil {
			logrus.WithError(delErr).Warn("failed to clean up orphaned submission file")
		}
		return models.Submission{}, err
	}
	return submission, nil
}

// Delete removes a submission record and best-effort deletes the backing
// object; an already-missing blob counts as success.
func (s *Service) Delete(studentID uint, subject, submissionID string) error {
	var fileURL string
	_, err := s.directory.UpdateBag(studentID, func(bag *models.AttributeBag) error {
		list := bag.Homework[subject]
		kept := make([]models.Submission, 0, len(list))
		for _, sub := range list {
			if sub.ID == submissionID {
				fileURL = sub.URL
				continue
			}
			kept = append(kept, sub)
		}
		if bag.Homework != nil {
			bag.Homework[subject] = kept
		}
		return nil
	})
	if err != nil {
		return err
	}

	if fileURL != "" {
		if delErr := s.storage.DeleteFile(fileURL); delErr != nil {
			logrus.WithError(delErr).WithField("url", fileURL).Warn("failed to delete submission file")
		}
	}
	return nil
}
