package handler

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/aijournal/internal/db"
)

const (
	sessionUserIDKey   = "user_id"
	currentUserContext = "__current_user"
	tokenTTL           = 24 * time.Hour
)

type authClaims struct {
	UserID uint   `json:"uid"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Login 处理凭据登录：校验通过后写入会话并签发 API 令牌。
func (a *API) Login(c *gin.Context) {
	var creds struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if !bindJSON(c, &creds, "invalid login payload") {
		return
	}

	var user db.User
	if err := a.db.Where("username = ?", creds.Username).First(&user).Error; err != nil {
		respondError(c, http.StatusUnauthorized, "invalid username or password")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(creds.Password)); err != nil {
		respondError(c, http.StatusUnauthorized, "invalid username or password")
		return
	}

	session := sessions.Default(c)
	session.Set(sessionUserIDKey, user.ID)
	if err := session.Save(); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to save session")
		return
	}

	token, err := a.issueToken(&user)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to issue token")
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

// Logout 清除当前会话
func (a *API) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to clear session")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (a *API) issueToken(user *db.User) (string, error) {
	now := time.Now()
	claims := authClaims{
		UserID: user.ID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Username,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(a.cfg.JWTSecret))
}

// identity resolves the request's user from the session cookie or a bearer
// token. Cached on the context so middleware and the data-boundary check
// hit the store once per request.
func (a *API) identity(c *gin.Context) *db.User {
	if cached, exists := c.Get(currentUserContext); exists {
		if user, ok := cached.(*db.User); ok {
			return user
		}
	}

	if user := a.sessionUser(c); user != nil {
		c.Set(currentUserContext, user)
		return user
	}

	if user := a.bearerUser(c); user != nil {
		c.Set(currentUserContext, user)
		return user
	}

	return nil
}

func (a *API) sessionUser(c *gin.Context) *db.User {
	session := sessions.Default(c)
	raw := session.Get(sessionUserIDKey)
	if raw == nil {
		return nil
	}

	id, ok := raw.(uint)
	if !ok {
		return nil
	}

	var user db.User
	if err := a.db.First(&user, id).Error; err != nil {
		return nil
	}
	return &user
}

func (a *API) bearerUser(c *gin.Context) *db.User {
	header := c.GetHeader("Authorization")
	raw, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return nil
	}

	claims := &authClaims{}
	parsed, err := jwt.ParseWithClaims(strings.TrimSpace(raw), claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(a.cfg.JWTSecret), nil
	})
	if err != nil || !parsed.Valid {
		return nil
	}

	var user db.User
	if err := a.db.First(&user, claims.UserID).Error; err != nil {
		return nil
	}
	return &user
}

// RequireAuth rejects requests that carry no authenticated identity.
func (a *API) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if a.identity(c) == nil {
			respondError(c, http.StatusUnauthorized, "unauthorized")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin rejects requests whose identity lacks the admin role. The
// response carries no detail about the requested resource.
func (a *API) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := a.identity(c)
		if !user.IsAdmin() {
			respondError(c, http.StatusUnauthorized, "unauthorized")
			c.Abort()
			return
		}
		c.Next()
	}
}

// requireAdmin re-checks the admin role at the data-operation boundary,
// independent of the route middleware.
func (a *API) requireAdmin(c *gin.Context) (*db.User, bool) {
	user := a.identity(c)
	if !user.IsAdmin() {
		respondError(c, http.StatusUnauthorized, "unauthorized")
		return nil, false
	}
	return user, true
}
