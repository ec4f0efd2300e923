package repository_test

import (
	"context"
	"testing"

	"github.com/campusclubs/epsilon/internal/domain"
	"github.com/campusclubs/epsilon/internal/model"
	"github.com/campusclubs/epsilon/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestOrganizationCreateURLCollision(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewOrganizationRepository(db)

	mock.ExpectQuery(`INSERT INTO "organizations"`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "idx_organizations_url"})

	err := repo.Create(context.Background(), &model.Organization{
		Name:        "Chess Club",
		URL:         "chess-club",
		CreatedByID: uuid.New(),
	})
	assert.ErrorIs(t, err, domain.ErrOrganizationURLTaken)
}
