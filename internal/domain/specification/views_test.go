package specification

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViewKey_Index_IsStable(t *testing.T) {
	expected := []ViewKey{
		ViewLateral, ViewMedial, ViewToe, ViewHeel,
		ViewTop, ViewSole, ViewInsole, ViewTongue,
	}

	assert.Equal(t, expected, Views())
	for i, v := range expected {
		assert.Equal(t, i, v.Index())
		assert.True(t, v.IsValid())
	}

	assert.Equal(t, -1, ViewKey("profile").Index())
	assert.False(t, ViewKey("profile").IsValid())
}

func TestActiveView_Precedence(t *testing.T) {
	tests := []struct {
		name      string
		requested ViewKey
		previous  ViewKey
		persisted []ViewKey
		expected  ViewKey
	}{
		{
			name:      "explicit request wins over everything",
			requested: ViewSole,
			previous:  ViewHeel,
			persisted: []ViewKey{ViewLateral},
			expected:  ViewSole,
		},
		{
			name:      "invalid request falls through to previous",
			requested: ViewKey("bogus"),
			previous:  ViewHeel,
			persisted: []ViewKey{ViewLateral},
			expected:  ViewHeel,
		},
		{
			name:      "first persisted view in catalog order",
			persisted: []ViewKey{ViewTongue, ViewToe},
			expected:  ViewToe,
		},
		{
			name:     "catalog head when nothing else applies",
			expected: ViewLateral,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ActiveView(tt.requested, tt.previous, tt.persisted))
		})
	}
}
