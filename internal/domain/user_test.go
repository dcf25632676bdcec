package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserCanView(t *testing.T) {
	order := &Order{ID: "1", ClientID: "c-1"}

	tests := []struct {
		name string
		user *User
		want bool
	}{
		{name: "owner", user: &User{ClientID: "c-1", Role: RoleCustomer}, want: true},
		{name: "admin", user: &User{Role: RoleAdmin}, want: true},
		{name: "other client", user: &User{ClientID: "c-2", Role: RoleCustomer}},
		{name: "empty client", user: &User{Role: RoleCustomer}},
		{name: "nil user", user: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.user.CanView(order))
		})
	}

	assert.False(t, (&User{Role: RoleAdmin}).CanView(nil))
}

func TestOrderStagesIncludeShipment(t *testing.T) {
	assert.Len(t, OrderStages, len(ProductionStages)+1)
	assert.Equal(t, StageExpedicao, OrderStages[len(OrderStages)-1])
}
