package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireAdmin verifica el secreto de administrador antes de tocar el store.
// Es el único mecanismo de autorización: sin sesiones ni tokens.
func RequireAdmin(password string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Query("password") != password {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid password"})
			return
		}
		c.Next()
	}
}

type AdminHandler struct {
	password string
}

func NewAdminHandler(password string) *AdminHandler {
	return &AdminHandler{password: password}
}

type adminAuth struct {
	Password string `json:"password"`
}

// Verify comprueba la contraseña enviada en el body (para el login del panel)
func (h *AdminHandler) Verify(c *gin.Context) {
	var auth adminAuth
	if err := c.ShouldBindJSON(&auth); err != nil || auth.Password != h.password {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid password"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
