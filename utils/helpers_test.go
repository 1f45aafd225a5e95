package utils

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hash == "s3cret-pass" {
		t.Fatalf("password must not be stored in clear")
	}
	if err := CheckPassword("s3cret-pass", hash); err != nil {
		t.Fatalf("correct password rejected: %v", err)
	}
	if err := CheckPassword("wrong", hash); err == nil {
		t.Fatalf("wrong password accepted")
	}
}

func TestIsValidRole(t *testing.T) {
	for _, role := range []string{"student", "teacher", "graduate", "admin", "dev"} {
		if !IsValidRole(role) {
			t.Fatalf("role %q should be valid", role)
		}
	}
	for _, role := range []string{"", "Student", "superadmin"} {
		if IsValidRole(role) {
			t.Fatalf("role %q should be invalid", role)
		}
	}
}

func TestIsValidFileExtension(t *testing.T) {
	allowed := []string{"pdf", "PNG", "mp3"}

	tests := []struct {
		filename string
		want     bool
	}{
		{filename: "homework.pdf", want: true},
		{filename: "photo.png", want: true},
		{filename: "recording.MP3", want: true},
		{filename: "script.exe", want: false},
		{filename: "noextension", want: false},
		{filename: "", want: false},
	}

	for _, tc := range tests {
		if got := IsValidFileExtension(tc.filename, allowed); got != tc.want {
			t.Fatalf("file %q: expected %v, got %v", tc.filename, tc.want, got)
		}
	}
}

func TestSanitizeString(t *testing.T) {
	if got := SanitizeString("  hello\x00world  "); got != "helloworld" {
		t.Fatalf("expected %q, got %q", "helloworld", got)
	}
}

func TestValidateStruct(t *testing.T) {
	type form struct {
		Email string `validate:"required,email"`
		Role  string `validate:"required,oneof=student teacher"`
	}

	if err := ValidateStruct(form{Email: "a@b.com", Role: "student"}); err != nil {
		t.Fatalf("valid struct rejected: %v", err)
	}
	if err := ValidateStruct(form{Email: "not-an-email", Role: "student"}); err == nil {
		t.Fatalf("invalid email accepted")
	}
	if err := ValidateStruct(form{Email: "a@b.com", Role: "pilot"}); err == nil {
		t.Fatalf("out-of-vocabulary role accepted")
	}
}
