package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScope_Levels(t *testing.T) {
	p3 := uint(3)
	lateral := "lateral"

	tests := []struct {
		name       string
		orderID    uint
		positionID *uint
		viewKey    *string
		level      ScopeLevel
		wantErr    string
	}{
		{"order level", 10, nil, nil, ScopeOrder, ""},
		{"position level", 10, &p3, nil, ScopePosition, ""},
		{"view level", 10, &p3, &lateral, ScopeView, ""},
		{"view without position", 10, nil, &lateral, "", "requires a position"},
		{"missing order", 0, nil, nil, "", "order ID is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scope, err := NewScope(tt.orderID, tt.positionID, tt.viewKey)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.level, scope.Level())
			assert.Equal(t, tt.orderID, scope.OrderID())
		})
	}
}

func TestScope_AccessorsCopy(t *testing.T) {
	scope, err := NewViewScope(10, 3, "sole")
	require.NoError(t, err)

	pos := scope.PositionID()
	require.NotNil(t, pos)
	*pos = 99
	assert.Equal(t, uint(3), *scope.PositionID())

	view := scope.ViewKey()
	require.NotNil(t, view)
	*view = "heel"
	assert.Equal(t, "sole", *scope.ViewKey())
}

func TestTicketStatus_Transitions(t *testing.T) {
	assert.True(t, StatusOpen.CanTransitionTo(StatusClosed))
	assert.True(t, StatusClosed.CanTransitionTo(StatusOpen))
	assert.False(t, StatusOpen.CanTransitionTo(StatusOpen))
	assert.False(t, StatusOpen.CanTransitionTo(TicketStatus("resolved")))

	_, err := NewTicketStatus("pending")
	assert.ErrorContains(t, err, "invalid ticket status")
}
