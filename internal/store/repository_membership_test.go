package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/velikanov/groupsync/internal/logger"
	"github.com/velikanov/groupsync/models"
)

func newTestMembershipRepo(t *testing.T) (*membershipRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &membershipRepository{
		db:     &DB{DB: db, logger: l, errorClassificator: NewPostgresErrorClassifier()},
		logger: l,
	}
	return repo, mock, db
}

func TestFindRole_ExistingMembership(t *testing.T) {
	repo, mock, db := newTestMembershipRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT role").
		WithArgs("u1", "g1").
		WillReturnRows(sqlmock.NewRows([]string{"role"}).AddRow("moderator"))

	role, err := repo.FindRole(context.Background(), "u1", "g1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if role != models.RoleModerator {
		t.Fatalf("expected moderator, got %q", role)
	}
}

func TestFindRole_NoMembershipRow(t *testing.T) {
	repo, mock, db := newTestMembershipRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT role").
		WithArgs("stranger", "g1").
		WillReturnError(sql.ErrNoRows)

	role, err := repo.FindRole(context.Background(), "stranger", "g1")
	if err != nil {
		t.Fatalf("absence of a membership row is not an error, got %v", err)
	}
	if role != models.RoleNone {
		t.Fatalf("expected RoleNone, got %q", role)
	}
}

func TestFindRole_QueryError(t *testing.T) {
	repo, mock, db := newTestMembershipRepo(t)
	defer db.Close()

	boom := errors.New("connection reset")
	mock.ExpectQuery("SELECT role").WillReturnError(boom)

	_, err := repo.FindRole(context.Background(), "u1", "g1")
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped query error, got %v", err)
	}
}

func TestSetRole_Upsert(t *testing.T) {
	repo, mock, db := newTestMembershipRepo(t)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO group_members")).
		WithArgs("g1", "u1", models.RoleBanned).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SetRole(context.Background(), models.Membership{
		GroupID: "g1",
		UserID:  "u1",
		Role:    models.RoleBanned,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
