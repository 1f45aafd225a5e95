// Package directory is the narrow client for the person directory:
// read a full record, rewrite the full attribute bag, list with a limit,
// delete. Every attribute mutation in the portal goes through UpdateBag.
package directory

import (
	"errors"

	"alwafi_go/database"
	"alwafi_go/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("person not found")

type Service struct{}

func NewService() *Service {
	return &Service{}
}

// GetPerson loads one person record with its attribute bag.
func (s *Service) GetPerson(id uint) (*models.User, error) {
	var user models.User
	if err := database.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetByUsername loads an active person by username.
func (s *Service) GetByUsername(username string) (*models.User, error) {
	var user models.User
	if err := database.DB.Where("username = ? AND status = ?", username, "active").First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// ListPersons returns up to limit person records, oldest first.
func (s *Service) ListPersons(limit int) ([]models.User, error) {
	if limit <= 0 {
		limit = 100
	}
	var users []models.User
	if err := database.DB.Order("id ASC").Limit(limit).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// ListAll returns every person record, oldest first. Used by full-roster
// scans; directory listings should prefer ListPersons.
func (s *Service) ListAll() ([]models.User, error) {
	var users []models.User
	if err := database.DB.Order("id ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// DeletePerson removes a person record.
func (s *Service) DeletePerson(id uint) error {
	result := database.DB.Delete(&models.User{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateBag applies mutate to the person's full attribute bag and writes
// the whole document back in one update. Reading the full bag before
// writing is what keeps one action (say, a level assignment) from erasing
// fields owned by another (say, fines) on the same record.
//
// There is no version check: two actors that interleave a read and a
// write on the same record still lose the earlier write. That is the
// accepted last-write-wins model of the directory.
func (s *Service) UpdateBag(id uint, mutate func(*models.AttributeBag) error) (*models.User, error) {
	user, err := s.GetPerson(id)
	if err != nil {
		return nil, err
	}

	bag, err := user.Bag()
	if err != nil {
		// Corrupted document: start from an empty bag rather than
		// blocking every subsequent mutation on this record.
		logrus.WithError(err).WithField("user_id", id).Warn("unreadable attribute bag, resetting")
		bag = models.AttributeBag{}
	}

	if err := mutate(&bag); err != nil {
		return nil, err
	}

	if err := user.SetBag(bag); err != nil {
		return nil, err
	}
	if err := database.DB.Model(user).Update("attributes", user.Attributes).Error; err != nil {
		return nil, err
	}
	return user, nil
}
