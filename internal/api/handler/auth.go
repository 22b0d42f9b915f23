package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	jwt "github.com/golang-jwt/jwt/v5"
)

const tokenTTL = 72 * time.Hour

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login checks credentials against the users table and issues a bearer
// token tied to a revocable session.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.Stores.FindUserByEmail(c.Request.Context(), req.Email)
	if err != nil || !user.CheckPassword(req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	sid, err := h.Sessions.Create(c.Request.Context(), user.ID)
	if err != nil {
		h.log.Errorw("session create failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create session"})
		return
	}

	token, err := h.generateToken(user.ID, sid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

// Logout revokes the session behind the presented token.
func (h *Handler) Logout(c *gin.Context) {
	sid := c.GetString("sessionID")
	if err := h.Sessions.Delete(c.Request.Context(), sid); err != nil {
		h.log.Errorw("session delete failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to log out"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// Profile returns the logged-in user's own record, resolved from the
// session the token carries.
func (h *Handler) Profile(c *gin.Context) {
	user, err := h.Stores.Users.FindOne(c.Request.Context(), c.GetUint("userID"))
	if err != nil {
		h.writeError(c, "user", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": user})
}

// RequireAuth guards the dashboard routes: bearer token present, JWT
// valid, session still alive in Redis.
func (h *Handler) RequireAuth(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if len(authHeader) < 8 || authHeader[:7] != "Bearer " {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization token missing"})
		return
	}

	userID, sid, err := h.parseToken(authHeader[7:])
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token or expired"})
		return
	}

	sessionUser, err := h.Sessions.UserID(c.Request.Context(), sid)
	if err != nil || sessionUser != userID {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "session expired"})
		return
	}

	c.Set("userID", userID)
	c.Set("sessionID", sid)
	c.Next()
}

func (h *Handler) generateToken(userID uint, sid string) (string, error) {
	claims := jwt.MapClaims{
		"sub": float64(userID),
		"sid": sid,
		"exp": time.Now().Add(tokenTTL).Unix(),
		"iss": "complaintdesk-api",
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(h.jwtSecret)
}

func (h *Handler) parseToken(tokenString string) (uint, string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return h.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return 0, "", fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, "", fmt.Errorf("unexpected claims type")
	}
	sub, ok := claims["sub"].(float64)
	if !ok {
		return 0, "", fmt.Errorf("missing sub claim")
	}
	sid, ok := claims["sid"].(string)
	if !ok {
		return 0, "", fmt.Errorf("missing sid claim")
	}
	return uint(sub), sid, nil
}
