package auth

import (
	"net/http"

	"go-kanban/internal/user"

	"github.com/gin-gonic/gin"
)

type Operation string

const (
	OpListUsers     Operation = "users.list"
	OpCreateUser    Operation = "users.create"
	OpUpdateUser    Operation = "users.update"
	OpSetUserActive Operation = "users.setActive"
	OpListCards     Operation = "cards.list"
	OpCreateCard    Operation = "cards.create"
	OpUpdateCard    Operation = "cards.update"
)

// permissions is the single source of truth for role checks. Roles not
// listed for an operation are denied.
var permissions = map[Operation][]user.Role{
	OpListUsers:     {user.RoleAdmin, user.RoleSupervisor},
	OpCreateUser:    {user.RoleAdmin},
	OpUpdateUser:    {user.RoleAdmin},
	OpSetUserActive: {user.RoleAdmin, user.RoleSupervisor},
	OpListCards:     {user.RoleAdmin, user.RoleSupervisor, user.RoleUser},
	OpCreateCard:    {user.RoleAdmin, user.RoleSupervisor, user.RoleUser},
	OpUpdateCard:    {user.RoleAdmin, user.RoleSupervisor, user.RoleUser},
}

func Authorize(role user.Role, op Operation) bool {
	for _, allowed := range permissions[op] {
		if role == allowed {
			return true
		}
	}
	return false
}

// RequirePermission consults the policy table for the resolved principal.
// Must run after AuthMiddleware.
func RequirePermission(op Operation) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := CurrentPrincipal(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}
		if !Authorize(p.Role, op) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}
		c.Next()
	}
}
