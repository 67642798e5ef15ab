package repository_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"droscher.com/CafeGargoyle/pkg/repository"
)

type UserTestSuite struct {
	RepositorySuite
}

func TestUserTestSuite(t *testing.T) {
	suite.Run(t, new(UserTestSuite))
}

func (suite *UserTestSuite) TestGetUserByName_FindsUser() {
	suite.mock.ExpectQuery(`^SELECT (.+) FROM "users" WHERE username = (.+)`).
		WithArgs("alice", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password"}).
			AddRow(uint(1), "alice", "$2a$10$hash"))

	user, err := suite.repository.GetUserByName(context.Background(), "alice")
	suite.Require().NoError(err)
	suite.Equal(uint(1), user.ID)
	suite.Equal("alice", user.Username)
}

func (suite *UserTestSuite) TestAddUser_AddsUser() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(`^SELECT (.+) FROM "users" WHERE username = (.+)`).
		WithArgs("alice", 1).
		WillReturnError(gorm.ErrRecordNotFound)
	suite.mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "users" ("created_at","updated_at","deleted_at","username","password") VALUES ($1,$2,$3,$4,$5) RETURNING "id"`)).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), nil, "alice", "$2a$10$hash").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uint(1)))
	suite.mock.ExpectCommit()

	user, err := suite.repository.AddUser(context.Background(), "alice", "$2a$10$hash")
	suite.Require().NoError(err)
	suite.Equal(uint(1), user.ID)
	suite.Equal("alice", user.Username)
}

func (suite *UserTestSuite) TestAddUser_RejectsDuplicateUsername() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(`^SELECT (.+) FROM "users" WHERE username = (.+)`).
		WithArgs("alice", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password"}).
			AddRow(uint(1), "alice", "$2a$10$hash"))
	suite.mock.ExpectRollback()

	user, err := suite.repository.AddUser(context.Background(), "alice", "$2a$10$other")
	suite.Require().ErrorIs(err, repository.ErrDuplicateUsername)
	suite.Nil(user)
	suite.NoError(suite.mock.ExpectationsWereMet())
}
