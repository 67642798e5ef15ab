package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"droscher.com/CafeGargoyle/pkg/auth"
	"droscher.com/CafeGargoyle/pkg/repository"
)

type UserServer struct {
	auth   *auth.Manager
	logger *zap.Logger
}

func NewUserServer(authManager *auth.Manager, logger *zap.Logger) *UserServer {
	return &UserServer{auth: authManager, logger: logger}
}

func (u *UserServer) ShowRegister(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", nil)
}

func (u *UserServer) Register(c *gin.Context) {
	var fieldErr error

	username := requireField(c, "username", &fieldErr)
	password := requireField(c, "password", &fieldErr)

	if fieldErr != nil {
		renderError(c, http.StatusBadRequest, fieldErr.Error())

		return
	}

	if _, err := u.auth.Register(c.Request.Context(), username, password); err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			c.HTML(http.StatusConflict, "register.html", gin.H{"error": "That username is already taken."})

			return
		}

		renderError(c, http.StatusInternalServerError, "Could not create the account.")

		return
	}

	c.Redirect(http.StatusFound, "/login")
}

func (u *UserServer) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", nil)
}

func (u *UserServer) Login(c *gin.Context) {
	var fieldErr error

	username := requireField(c, "username", &fieldErr)
	password := requireField(c, "password", &fieldErr)

	if fieldErr != nil {
		renderError(c, http.StatusBadRequest, fieldErr.Error())

		return
	}

	user, err := u.auth.Authenticate(c.Request.Context(), username, password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			c.HTML(http.StatusUnauthorized, "login.html", gin.H{"error": "Invalid username or password."})

			return
		}

		renderError(c, http.StatusInternalServerError, "Could not sign in.")

		return
	}

	if err := u.auth.StartSession(c, user); err != nil {
		u.logger.Error("error saving session", zap.String("username", username), zap.Error(err))
		renderError(c, http.StatusInternalServerError, "Could not sign in.")

		return
	}

	c.Redirect(http.StatusFound, "/")
}

func (u *UserServer) Logout(c *gin.Context) {
	if err := u.auth.EndSession(c); err != nil {
		u.logger.Error("error clearing session", zap.Error(err))
	}

	c.Redirect(http.StatusFound, "/")
}
