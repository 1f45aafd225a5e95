package utils

import (
	"time"

	"alwafi_go/models"
)

// UserDTO is the API representation of a person: profile columns plus the
// commonly-needed fields lifted out of the attribute bag.
type UserDTO struct {
	ID          uint      `json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	Username    string    `json:"username"`
	Email       string    `json:"email,omitempty"`
	FirstName   string    `json:"first_name,omitempty"`
	LastName    string    `json:"last_name,omitempty"`
	FirstNameAr string    `json:"first_name_ar,omitempty"`
	LastNameAr  string    `json:"last_name_ar,omitempty"`
	DisplayName string    `json:"display_name"`
	Avatar      string    `json:"avatar,omitempty"`
	Status      string    `json:"status"`

	Role       string `json:"role,omitempty"`
	Level      string `json:"level,omitempty"`
	Department string `json:"department,omitempty"`

	UnpaidFines int `json:"unpaid_fines"`
	TotalFines  int `json:"total_fines"`
}

// ToUserDTO flattens a user and their bag into the API shape. An
// unreadable bag yields the profile fields only.
func ToUserDTO(u *models.User) UserDTO {
	dto := UserDTO{
		ID:          u.ID,
		CreatedAt:   u.CreatedAt,
		Username:    u.Username,
		Email:       u.Email,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		FirstNameAr: u.FirstNameAr,
		LastNameAr:  u.LastNameAr,
		DisplayName: u.DisplayName(),
		Avatar:      u.Avatar,
		Status:      u.Status,
	}

	bag, err := u.Bag()
	if err != nil {
		return dto
	}

	dto.Role = bag.Role
	dto.Level = bag.Level
	dto.Department = bag.Department
	dto.TotalFines = len(bag.Fines)
	for _, fine := range bag.Fines {
		if !fine.Paid {
			dto.UnpaidFines++
		}
	}
	return dto
}

// ToUserDTOs maps a slice of users
func ToUserDTOs(users []models.User) []UserDTO {
	out := make([]UserDTO, 0, len(users))
	for i := range users {
		out = append(out, ToUserDTO(&users[i]))
	}
	return out
}

type NotificationDTO struct {
	ID        uint       `json:"id"`
	CreatedAt time.Time  `json:"created_at"`
	UserID    uint       `json:"user_id"`
	Title     string     `json:"title"`
	TitleAr   string     `json:"title_ar,omitempty"`
	Message   string     `json:"message"`
	MessageAr string     `json:"message_ar,omitempty"`
	Type      string     `json:"type"`
	Read      bool       `json:"read"`
	ReadAt    *time.Time `json:"read_at,omitempty"`
}

// ToNotificationDTO maps a models.Notification to the compact DTO.
func ToNotificationDTO(n models.Notification) NotificationDTO {
	return NotificationDTO{
		ID:        n.ID,
		CreatedAt: n.CreatedAt,
		UserID:    n.UserID,
		Title:     n.Title,
		TitleAr:   n.TitleAr,
		Message:   n.Message,
		MessageAr: n.MessageAr,
		Type:      n.Type,
		Read:      n.Read,
		ReadAt:    n.ReadAt,
	}
}

// ToNotificationDTOs maps a slice of notifications
func ToNotificationDTOs(items []models.Notification) []NotificationDTO {
	out := make([]NotificationDTO, 0, len(items))
	for _, n := range items {
		out = append(out, ToNotificationDTO(n))
	}
	return out
}
