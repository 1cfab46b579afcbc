package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/ayatori/clientdesk/internal/constants"
	"github.com/ayatori/clientdesk/internal/services"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// AuthHandler coordinates the login, registration, and logout flows.
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// LoginPage renders the login form.
func (h *AuthHandler) LoginPage(c *gin.Context) {
	render(c, http.StatusOK, "login.html", nil)
}

// Login authenticates a user and initializes the session. Managers land on
// their dashboard, workers on the index.
func (h *AuthHandler) Login(c *gin.Context) {
	type LoginForm struct {
		Email    string `form:"email" binding:"required,email"`
		Password string `form:"password" binding:"required"`
	}

	var form LoginForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, http.StatusBadRequest, "login.html", gin.H{
			"Error": "Email and password are required",
			"Email": form.Email,
		})
		return
	}

	user, err := h.authService.Login(services.LoginInput{
		Email:    form.Email,
		Password: form.Password,
	})
	if err != nil {
		// One generic message regardless of which field was wrong.
		render(c, http.StatusUnauthorized, "login.html", gin.H{
			"Error": "Login unsuccessful. Please check email and password",
			"Email": form.Email,
		})
		return
	}

	session := sessions.Default(c)
	session.Set(constants.ContextKeyUserID, user.ID)
	if err := session.Save(); err != nil {
		render(c, http.StatusInternalServerError, "login.html", gin.H{"Error": "Failed to save session"})
		return
	}

	if user.IsManager {
		c.Redirect(http.StatusFound, "/manager_dashboard")
		return
	}
	c.Redirect(http.StatusFound, "/")
}

// RegisterPage renders the registration form.
func (h *AuthHandler) RegisterPage(c *gin.Context) {
	render(c, http.StatusOK, "register.html", nil)
}

// Register creates a user and logs them in. The optional manager password
// grants the manager role when it matches the configured access code.
func (h *AuthHandler) Register(c *gin.Context) {
	type RegisterForm struct {
		Email           string `form:"email" binding:"required,email"`
		Password        string `form:"password" binding:"required,min=8"`
		Name            string `form:"name" binding:"required,max=150"`
		ManagerPassword string `form:"manager_password"`
	}

	var form RegisterForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, http.StatusBadRequest, "register.html", gin.H{
			"Error": "All fields are required; passwords need at least 8 characters",
			"Email": form.Email,
			"Name":  form.Name,
		})
		return
	}

	user, err := h.authService.Register(services.RegisterInput{
		Email:           form.Email,
		Password:        form.Password,
		Name:            form.Name,
		ManagerPassword: form.ManagerPassword,
	})
	if err != nil {
		message := "Registration failed"
		switch {
		case errors.Is(err, services.ErrEmailTaken):
			message = "That email is already registered"
		case errors.Is(err, services.ErrPasswordTooShort):
			message = fmt.Sprintf("Password must be at least %d characters", constants.MinPasswordLength)
		}
		render(c, http.StatusBadRequest, "register.html", gin.H{
			"Error": message,
			"Email": form.Email,
			"Name":  form.Name,
		})
		return
	}

	session := sessions.Default(c)
	session.Set(constants.ContextKeyUserID, user.ID)
	if err := session.Save(); err != nil {
		render(c, http.StatusInternalServerError, "register.html", gin.H{"Error": "Failed to save session"})
		return
	}

	c.Redirect(http.StatusFound, "/")
}

// Logout destroys the session.
func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	_ = session.Save()
	c.Redirect(http.StatusFound, "/login")
}
