package inkpress

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateDraft(t *testing.T) {
	tests := []struct {
		name  string
		draft Draft
		want  FieldErrors
	}{
		{
			name:  "valid draft",
			draft: Draft{Title: "Hello world", Description: "something on my mind"},
			want:  FieldErrors{},
		},
		{
			name:  "both blank",
			draft: Draft{},
			want:  FieldErrors{"title": CodeRequired, "description": CodeRequired},
		},
		{
			name:  "whitespace only is blank",
			draft: Draft{Title: "   ", Description: "\t\n"},
			want:  FieldErrors{"title": CodeRequired, "description": CodeRequired},
		},
		{
			name:  "too short after trimming",
			draft: Draft{Title: "  Hey  ", Description: "  ok   "},
			want:  FieldErrors{"title": CodeTooShort, "description": CodeTooShort},
		},
		{
			name:  "exactly six characters passes",
			draft: Draft{Title: "sixchr", Description: "sixchr"},
			want:  FieldErrors{},
		},
		{
			name:  "fields evaluated independently",
			draft: Draft{Title: "long enough title", Description: "nope"},
			want:  FieldErrors{"description": CodeTooShort},
		},
		{
			name:  "author and image carry no rules",
			draft: Draft{Title: "Hello world", Description: "something on my mind", Author: "", ImageURL: ""},
			want:  FieldErrors{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateDraft(tt.draft)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, len(tt.want) == 0, got.Valid())
		})
	}
}

func TestValidateRegistration(t *testing.T) {
	tests := []struct {
		name string
		form Registration
		want FieldErrors
	}{
		{
			name: "valid registration",
			form: Registration{Name: "Ada", Email: "ada@example.com", Password: "secret1", Confirm: "secret1"},
			want: FieldErrors{},
		},
		{
			name: "everything missing",
			form: Registration{},
			want: FieldErrors{"name": CodeRequired, "email": CodeRequired, "password": CodeRequired, "confirm": CodeRequired},
		},
		{
			name: "malformed email",
			form: Registration{Name: "Ada", Email: "not-an-email", Password: "secret1", Confirm: "secret1"},
			want: FieldErrors{"email": CodeInvalid},
		},
		{
			name: "short password",
			form: Registration{Name: "Ada", Email: "ada@example.com", Password: "abc", Confirm: "abc"},
			want: FieldErrors{"password": CodeTooShort},
		},
		{
			name: "confirmation mismatch",
			form: Registration{Name: "Ada", Email: "ada@example.com", Password: "secret1", Confirm: "secret2"},
			want: FieldErrors{"confirm": CodeMismatch},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateRegistration(tt.form))
		})
	}
}

func TestValidateCredentials(t *testing.T) {
	assert.True(t, ValidateCredentials(Credentials{Email: "ada@example.com", Password: "secret1"}).Valid())
	assert.Equal(t,
		FieldErrors{"email": CodeRequired, "password": CodeRequired},
		ValidateCredentials(Credentials{}))
	assert.Equal(t,
		FieldErrors{"email": CodeInvalid, "password": CodeTooShort},
		ValidateCredentials(Credentials{Email: "nope", Password: "abc"}))
}
