package models

import (
	"testing"
	"time"
)

func TestBagEmptyDocument(t *testing.T) {
	u := User{}
	bag, err := u.Bag()
	if err != nil {
		t.Fatalf("null document must yield an empty bag, got error: %v", err)
	}
	if bag.Role != "" || bag.Level != "" || len(bag.Fines) != 0 {
		t.Fatalf("expected zero-value bag, got %+v", bag)
	}
}

func TestBagRoundTrip(t *testing.T) {
	u := User{}
	in := AttributeBag{
		Role:       RoleStudent,
		Level:      "level_2a",
		Department: "",
		Fines: []Fine{
			{ID: "f1", Reason: FineReasonPhone, IssuedByID: 3, IssuedByName: "أ. أحمد", IssuedAt: time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)},
		},
		Homework: map[string][]Submission{
			"قرآن": {{ID: "s1", Type: "audio", URL: "https://example.com/a.mp3", Filename: "a.mp3", Size: 1024}},
		},
	}

	if err := u.SetBag(in); err != nil {
		t.Fatalf("SetBag failed: %v", err)
	}
	out, err := u.Bag()
	if err != nil {
		t.Fatalf("Bag failed: %v", err)
	}

	if out.Role != in.Role || out.Level != in.Level {
		t.Fatalf("role/level lost in round trip: %+v", out)
	}
	if len(out.Fines) != 1 || out.Fines[0].ID != "f1" || out.Fines[0].Reason != FineReasonPhone {
		t.Fatalf("fines lost in round trip: %+v", out.Fines)
	}
	if len(out.Homework["قرآن"]) != 1 || out.Homework["قرآن"][0].Type != "audio" {
		t.Fatalf("homework lost in round trip: %+v", out.Homework)
	}
}

// Sequential writes to separate fields must both survive, because every
// write re-encodes the whole document.
func TestBagSequentialFieldWrites(t *testing.T) {
	u := User{}

	bag, _ := u.Bag()
	bag.Role = RoleStudent
	if err := u.SetBag(bag); err != nil {
		t.Fatalf("SetBag failed: %v", err)
	}

	bag, _ = u.Bag()
	bag.Level = "level_6b"
	if err := u.SetBag(bag); err != nil {
		t.Fatalf("SetBag failed: %v", err)
	}

	out, err := u.Bag()
	if err != nil {
		t.Fatalf("Bag failed: %v", err)
	}
	if out.Role != RoleStudent {
		t.Fatalf("role erased by the second write")
	}
	if out.Level != "level_6b" {
		t.Fatalf("level missing after the second write")
	}
}

func TestBagCorruptDocument(t *testing.T) {
	u := User{Attributes: JSON(`{not json`)}
	if _, err := u.Bag(); err == nil {
		t.Fatalf("corrupt document must return an error")
	}
	if role := u.Role(); role != "" {
		t.Fatalf("Role must tolerate an unreadable document, got %q", role)
	}
}

func TestUserRole(t *testing.T) {
	u := User{}
	if err := u.SetBag(AttributeBag{Role: RoleTeacher}); err != nil {
		t.Fatalf("SetBag failed: %v", err)
	}
	if u.Role() != RoleTeacher {
		t.Fatalf("expected teacher role, got %q", u.Role())
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name string
		user User
		want string
	}{
		{name: "arabic preferred", user: User{Username: "u1", FirstName: "Ahmed", FirstNameAr: "أحمد", LastNameAr: "عطية"}, want: "أحمد عطية"},
		{name: "latin fallback", user: User{Username: "u1", FirstName: "Ahmed", LastName: "Attia"}, want: "Ahmed Attia"},
		{name: "username fallback", user: User{Username: "u1"}, want: "u1"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.user.DisplayName(); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}
