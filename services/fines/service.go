package fines

import (
	"errors"
	"time"

	"alwafi_go/models"
	"alwafi_go/services/directory"
)

var ErrNotStudent = errors.New("fines can only be issued against students")

type Service struct {
	directory *directory.Service
}

func NewService() *Service {
	return &Service{directory: directory.NewService()}
}

// Issue appends a fresh unpaid fine to the student's ledger.
func (s *Service) Issue(studentID uint, reason, note string, issuer *models.User) (models.Fine, error) {
	var issued models.Fine
	_, err := s.directory.UpdateBag(studentID, func(bag *models.AttributeBag) error {
		if bag.Role != models.RoleStudent {
			return ErrNotStudent
		}
		list, fine, err := Append(bag.Fines, reason, note, issuer.ID, issuer.DisplayName(), time.Now().UTC())
		if err != nil {
			return err
		}
		bag.Fines = list
		issued = fine
		return nil
	})
	return issued, err
}

// Remove deletes one fine by id. Reports whether a fine was actually
// removed; a missing id is not an error.
func (s *Service) Remove(studentID uint, fineID string) (models.Fine, bool, error) {
	var removed models.Fine
	var found bool
	_, err := s.directory.UpdateBag(studentID, func(bag *models.AttributeBag) error {
		for _, f := range bag.Fines {
			if f.ID == fineID {
				removed = f
				break
			}
		}
		bag.Fines, found = RemoveByID(bag.Fines, fineID)
		return nil
	})
	return removed, found, err
}

// TogglePaid flips the paid flag on one fine. A missing id is a no-op.
func (s *Service) TogglePaid(studentID uint, fineID string) (models.Fine, bool, error) {
	var toggled models.Fine
	var found bool
	_, err := s.directory.UpdateBag(studentID, func(bag *models.AttributeBag) error {
		bag.Fines, found = TogglePaid(bag.Fines, fineID)
		if found {
			for _, f := range bag.Fines {
				if f.ID == fineID {
					toggled = f
					break
				}
			}
		}
		return nil
	})
	return toggled, found, err
}

// ListForStudent returns one student's ledger in insertion order.
func (s *Service) ListForStudent(studentID uint) ([]models.Fine, error) {
	user, err := s.directory.GetPerson(studentID)
	if err != nil {
		return nil, err
	}
	bag, err := user.Bag()
	if err != nil {
		return nil, err
	}
	return bag.Fines, nil
}

// Overview scans the full student set and returns every ledger plus the
// derived aggregates. There is no persisted aggregate; cost grows
// linearly with the student count, which is fine at this scale.
func (s *Service) Overview(limit int) ([]StudentFines, Summary, error) {
	var (
		users []models.User
		err   error
	)
	if limit > 0 {
		users, err = s.directory.ListPersons(limit)
	} else {
		users, err = s.directory.ListAll()
	}
	if err != nil {
		return nil, Summary{}, err
	}

	var entries []StudentFines
	for i := range users {
		bag, err := users[i].Bag()
		if err != nil || bag.Role != models.RoleStudent {
			continue
		}
		entries = append(entries, StudentFines{
			StudentID:   users[i].ID,
			StudentName: users[i].DisplayName(),
			LevelID:     bag.Level,
			Fines:       bag.Fines,
		})
	}
	return entries, Summarize(entries), nil
}
