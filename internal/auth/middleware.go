package auth

import (
	"net/http"
	"strings"

	"go-kanban/internal/config"
	"go-kanban/internal/db"
	"go-kanban/internal/user"

	"github.com/gin-gonic/gin"
)

const principalKey = "principal"

// Principal is the authenticated identity for one request, projected from
// the current user row. Role comes from storage, not from the token, so a
// role edit takes effect on the next request without token rotation.
type Principal struct {
	ID       string
	Username string
	Name     string
	Role     user.Role
	Active   bool
}

// CurrentPrincipal returns the principal resolved by AuthMiddleware.
func CurrentPrincipal(c *gin.Context) (Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return Principal{}, false
	}
	p, ok := v.(Principal)
	return p, ok
}

func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No token"})
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := ParseJWT(cfg.Server.JWTSecret, tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}
		var u user.User
		if err := db.DB.First(&u, "id = ?", claims.UserID).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid user"})
			return
		}
		if !u.Active {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User disabled"})
			return
		}
		c.Set(principalKey, Principal{
			ID:       u.ID,
			Username: u.Username,
			Name:     u.Name,
			Role:     u.Role,
			Active:   u.Active,
		})
		c.Next()
	}
}
