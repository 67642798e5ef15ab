package server_test

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"moul.io/zapgorm2"

	"droscher.com/CafeGargoyle/configs"
	"droscher.com/CafeGargoyle/mocks"
	"droscher.com/CafeGargoyle/pkg/auth"
	"droscher.com/CafeGargoyle/pkg/mail"
	"droscher.com/CafeGargoyle/pkg/repository"
	"droscher.com/CafeGargoyle/pkg/server"
)

var errDelivery = mail.ErrDelivery

// stubSender records suggestions instead of talking to an SMTP server.
type stubSender struct {
	err  error
	sent []mail.Suggestion
}

func (s *stubSender) SendSuggestion(_ context.Context, suggestion mail.Suggestion) error {
	if s.err != nil {
		return s.err
	}

	s.sent = append(s.sent, suggestion)

	return nil
}

type ServerSuite struct {
	suite.Suite
	cafes  *mocks.CafeRepository
	sender *stubSender
	mock   sqlmock.Sqlmock
	router *gin.Engine
}

func (suite *ServerSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	var (
		db  *sql.DB
		err error
	)

	logger := zap.NewNop()

	db, suite.mock, err = sqlmock.New()
	suite.Require().NoError(err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{Logger: zapgorm2.New(logger)})
	suite.Require().NoError(err)

	conf := &configs.Config{Server: configs.Server{SessionKey: "test-key"}}
	repo := &repository.Repository{DB: gormDB, Logger: logger}
	authManager := auth.NewAuthManager(conf, repo, logger)

	suite.cafes = mocks.NewCafeRepository(suite.T())
	suite.sender = &stubSender{}
	suite.router = server.NewRouter(conf, suite.cafes, suite.sender, authManager, logger)
}

func (suite *ServerSuite) get(path string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, path, nil)

	for _, c := range cookies {
		request.AddCookie(c)
	}

	suite.router.ServeHTTP(recorder, request)

	return recorder
}

func (suite *ServerSuite) postForm(path string, form url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	for _, c := range cookies {
		request.AddCookie(c)
	}

	suite.router.ServeHTTP(recorder, request)

	return recorder
}

// login registers the expected user lookup and runs the login flow,
// returning the session cookies for subsequent requests.
func (suite *ServerSuite) login() []*http.Cookie {
	hash, err := bcrypt.GenerateFromPassword([]byte("pw"), bcrypt.MinCost)
	suite.Require().NoError(err)

	suite.mock.ExpectQuery(`^SELECT (.+) FROM "users" WHERE username = (.+)`).
		WithArgs("alice", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password"}).
			AddRow(uint(7), "alice", string(hash)))

	recorder := suite.postForm("/login", url.Values{"username": {"alice"}, "password": {"pw"}}, nil)
	suite.Require().Equal(http.StatusFound, recorder.Code)
	suite.Require().Equal("/", recorder.Header().Get("Location"))

	return recorder.Result().Cookies()
}

func cafeForm() url.Values {
	return url.Values{
		"name":         {"Blue Bottle"},
		"location":     {"Berkeley"},
		"img_url":      {"https://img.test/bb.jpg"},
		"coffee_price": {"$4.50"},
		"detail":       {"Pour over specialists"},
	}
}
