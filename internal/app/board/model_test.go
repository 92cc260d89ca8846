package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestCanModify(t *testing.T) {
	tests := []struct {
		name   string
		owner  *string
		caller *string
		want   bool
	}{
		{"unowned, anonymous", nil, nil, true},
		{"unowned, logged in", nil, strPtr("bob"), true},
		{"owner", strPtr("alice"), strPtr("alice"), true},
		{"other user", strPtr("alice"), strPtr("bob"), false},
		{"anonymous on owned", strPtr("alice"), nil, false},
		{"empty caller on owned", strPtr("alice"), strPtr(""), false},
		{"case differs", strPtr("alice"), strPtr("Alice"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanModify(tt.owner, tt.caller))
			assert.Equal(t, tt.want, (&Board{OwnerID: tt.owner}).ModifiableBy(tt.caller))
		})
	}
}
