package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidPhone(t *testing.T) {
	assert.True(t, ValidPhone("+1 (555) 123-4567"))
	assert.True(t, ValidPhone("5551234567"))
	assert.False(t, ValidPhone("555-1234"), "too few digits")
	assert.False(t, ValidPhone("555 123 4567 ext"), "letters")
}

func TestProfile_Normalize(t *testing.T) {
	p := &Profile{
		DisplayName: "  Ada  ",
		Interests:   []string{"Go", " go ", "", "Kotlin"},
		Intents:     nil,
	}
	p.Normalize()
	assert.Equal(t, "Ada", p.DisplayName)
	assert.Equal(t, []string{"go", "kotlin"}, p.Interests)
	assert.Equal(t, []string{}, p.Intents)
}

func TestProfile_Validate(t *testing.T) {
	tests := []struct {
		name    string
		profile Profile
		wantErr string
	}{
		{"valid", Profile{DisplayName: "Ada", Phone: "+34 600 123 456"}, ""},
		{"no phone", Profile{DisplayName: "Ada"}, ""},
		{"missing name", Profile{}, "display_name is required"},
		{"long name", Profile{DisplayName: strings.Repeat("a", MaxDisplayNameLength+1)}, "display_name exceeds"},
		{"bad phone", Profile{DisplayName: "Ada", Phone: "12345"}, "phone"},
		{"long bio", Profile{DisplayName: "Ada", Bio: strings.Repeat("b", MaxBioLength+1)}, "bio exceeds"},
		{"too many tags", Profile{DisplayName: "Ada", Interests: make([]string, MaxProfileTags+1)}, "at most"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.profile.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalidInput)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConnection_Other(t *testing.T) {
	c := &Connection{SenderID: "alice", ReceiverID: "bob"}
	assert.Equal(t, "bob", c.Other("alice"))
	assert.Equal(t, "alice", c.Other("bob"))
}
