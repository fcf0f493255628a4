package auth

import (
	"testing"

	"go-kanban/internal/user"
)

func TestAuthorize_Matrix(t *testing.T) {
	cases := []struct {
		role user.Role
		op   Operation
		want bool
	}{
		{user.RoleAdmin, OpListUsers, true},
		{user.RoleSupervisor, OpListUsers, true},
		{user.RoleUser, OpListUsers, false},
		{user.RoleAdmin, OpCreateUser, true},
		{user.RoleSupervisor, OpCreateUser, false},
		{user.RoleUser, OpCreateUser, false},
		{user.RoleAdmin, OpUpdateUser, true},
		{user.RoleSupervisor, OpUpdateUser, false},
		{user.RoleUser, OpUpdateUser, false},
		{user.RoleAdmin, OpSetUserActive, true},
		{user.RoleSupervisor, OpSetUserActive, true},
		{user.RoleUser, OpSetUserActive, false},
		{user.RoleAdmin, OpListCards, true},
		{user.RoleSupervisor, OpListCards, true},
		{user.RoleUser, OpListCards, true},
		{user.RoleAdmin, OpCreateCard, true},
		{user.RoleSupervisor, OpCreateCard, true},
		{user.RoleUser, OpCreateCard, true},
		{user.RoleAdmin, OpUpdateCard, true},
		{user.RoleSupervisor, OpUpdateCard, true},
		{user.RoleUser, OpUpdateCard, true},
	}
	for _, tc := range cases {
		if got := Authorize(tc.role, tc.op); got != tc.want {
			t.Errorf("Authorize(%s, %s) = %v, want %v", tc.role, tc.op, got, tc.want)
		}
	}
}

func TestAuthorize_DefaultDeny(t *testing.T) {
	if Authorize(user.Role("root"), OpListUsers) {
		t.Errorf("unknown role should be denied")
	}
	if Authorize(user.RoleAdmin, Operation("users.delete")) {
		t.Errorf("unknown operation should be denied")
	}
	if Authorize(user.Role(""), OpListCards) {
		t.Errorf("empty role should be denied")
	}
}
