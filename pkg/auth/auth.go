package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"droscher.com/CafeGargoyle/configs"
	"droscher.com/CafeGargoyle/pkg/model"
	"droscher.com/CafeGargoyle/pkg/repository"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// sessionUserKey is the session entry binding the authenticated user id.
const sessionUserKey = "user_id"

type Manager struct {
	conf   *configs.Config
	repo   *repository.Repository
	logger *zap.Logger
}

func NewAuthManager(conf *configs.Config, repo *repository.Repository, logger *zap.Logger) *Manager {
	return &Manager{conf: conf, repo: repo, logger: logger}
}

// Register hashes the password with bcrypt and stores the account. The only
// policy is the store-level username uniqueness; any non-empty password is
// accepted.
func (a *Manager) Register(ctx context.Context, username string, password string) (*model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user, err := a.repo.AddUser(ctx, username, string(hash))
	if err != nil {
		if !errors.Is(err, repository.ErrDuplicateUsername) {
			a.logger.Error("error registering user", zap.String("username", username), zap.Error(err))
		}

		return nil, err
	}

	return user, nil
}

// Authenticate resolves the user and checks the password hash. Unknown
// usernames and wrong passwords are indistinguishable to the caller.
func (a *Manager) Authenticate(ctx context.Context, username string, password string) (*model.User, error) {
	user, err := a.repo.GetUserByName(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}

		a.logger.Error("error looking up user", zap.String("username", username), zap.Error(err))

		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// StartSession binds the user id to the cookie session.
func (a *Manager) StartSession(c *gin.Context, user *model.User) error {
	session := sessions.Default(c)
	session.Set(sessionUserKey, user.ID)

	return session.Save()
}

// EndSession clears the session. Calling it without an active session is a
// no-op.
func (a *Manager) EndSession(c *gin.Context) error {
	session := sessions.Default(c)
	session.Delete(sessionUserKey)

	return session.Save()
}

// CurrentUserID returns the authenticated user id bound to the session, if
// any.
func CurrentUserID(c *gin.Context) (uint, bool) {
	userID, ok := sessions.Default(c).Get(sessionUserKey).(uint)

	return userID, ok
}

// RequireLogin guards a route group: unauthenticated callers are redirected
// to the login page rather than handed a bare error.
func (a *Manager) RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentUserID(c); !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()

			return
		}

		c.Next()
	}
}
