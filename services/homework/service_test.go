package homework

import "testing"

func TestSubmissionTypeFor(t *testing.T) {
	tests := []struct {
		contentType string
		want        string
	}{
		{contentType: "audio/mpeg", want: "audio"},
		{contentType: "audio/webm;codecs=opus", want: "audio"},
		{contentType: "image/png", want: "image"},
		{contentType: "image/jpeg", want: "image"},
		{contentType: "application/pdf", want: "file"},
		{contentType: "text/plain", want: "file"},
		{contentType: "", want: "file"},
	}

	for _, tc := range tests {
		if got := SubmissionTypeFor(tc.contentType); got != tc.want {
			t.Fatalf("content type %q: expected %q, got %q", tc.contentType, tc.want, got)
		}
	}
}
