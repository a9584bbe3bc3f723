package middlewares

import (
	"net/http"
	"strings"

	"github.com/Malav2364/calorify/models"
	"github.com/Malav2364/calorify/services"
	"github.com/Malav2364/calorify/utils"

	"github.com/gin-gonic/gin"
)

const sessionCookieName = "session_token"

// credentialResolver turns one kind of request credential into a user.
// A nil result means "this credential is absent or unusable, try the next".
type credentialResolver interface {
	resolve(c *gin.Context, users *services.UserService) *models.User
}

// sessionResolver reads the session cookie and resolves the token's
// email claim to a user.
type sessionResolver struct{}

func (sessionResolver) resolve(c *gin.Context, users *services.UserService) *models.User {
	cookie, err := c.Cookie(sessionCookieName)
	if err != nil || cookie == "" {
		return nil
	}

	claims, err := utils.ParseJWT(cookie)
	if err != nil {
		return nil
	}

	email, _ := claims["email"].(string)
	if email == "" {
		return nil
	}

	user, err := users.FindByEmail(email)
	if err != nil {
		return nil
	}
	return user
}

// bearerResolver reads the Authorization header and resolves the token's
// numeric userId claim to a user.
type bearerResolver struct{}

func (bearerResolver) resolve(c *gin.Context, users *services.UserService) *models.User {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return nil
	}

	claims, err := utils.ParseJWT(strings.TrimPrefix(authHeader, "Bearer "))
	if err != nil {
		return nil
	}

	id, ok := claims["userId"].(float64) // JSON numbers decode as float64
	if !ok || id <= 0 {
		return nil
	}

	user, err := users.FindByID(uint(id))
	if err != nil {
		return nil
	}
	return user
}

// Auth resolves the acting user before any business logic runs. Resolvers
// are tried in fixed order, first match wins; if none resolves the request
// is rejected with 401.
func Auth(users *services.UserService) gin.HandlerFunc {
	resolvers := []credentialResolver{sessionResolver{}, bearerResolver{}}

	return func(c *gin.Context) {
		for _, r := range resolvers {
			if user := r.resolve(c, users); user != nil {
				c.Set("user", user)
				c.Set("userID", user.ID)
				c.Set("email", user.Email)
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "Unauthorized",
		})
	}
}
