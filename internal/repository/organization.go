// internal/repository/organization.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/campusclubs/epsilon/internal/domain"
	"github.com/campusclubs/epsilon/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrganizationRepositoryIface interface {
	Create(ctx context.Context, org *model.Organization) error
	Update(ctx context.Context, org *model.Organization) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Organization, error)
	FindAdmins(ctx context.Context, orgID uuid.UUID) ([]*model.User, error)
	CreateMembership(ctx context.Context, membership *model.Membership) error
	UpdateMembership(ctx context.Context, membership *model.Membership) error
	FindMembership(ctx context.Context, orgID, userID uuid.UUID) (*model.Membership, error)
	CreateStrike(ctx context.Context, strike *model.Strike) error
	CountStrikes(ctx context.Context, orgID uuid.UUID) (int64, error)
}

type OrganizationRepository struct {
	db *gorm.DB
}

func NewOrganizationRepository(db *gorm.DB) *OrganizationRepository {
	return &OrganizationRepository{db: db}
}

func (r *OrganizationRepository) Create(ctx context.Context, org *model.Organization) error {
	if err := r.db.WithContext(ctx).Create(org).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.ErrOrganizationURLTaken
		}
		return fmt.Errorf("creating organization: %w", err)
	}
	return nil
}

func (r *OrganizationRepository) Update(ctx context.Context, org *model.Organization) error {
	if err := r.db.WithContext(ctx).Save(org).Error; err != nil {
		return fmt.Errorf("updating organization: %w", err)
	}
	return nil
}

func (r *OrganizationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("organization_id = ?", id).Delete(&model.Membership{}).Error; err != nil {
			return fmt.Errorf("deleting memberships: %w", err)
		}

		if err := tx.Delete(&model.Organization{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("deleting organization: %w", err)
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

func (r *OrganizationRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Organization, error) {
	var org model.Organization
	if err := r.db.WithContext(ctx).First(&org, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("finding organization: %w", err)
	}
	return &org, nil
}

// FindAdmins returns the users holding CREATOR or ADMIN memberships in the
// organization. These are the recipients of organization notifications.
func (r *OrganizationRepository) FindAdmins(ctx context.Context, orgID uuid.UUID) ([]*model.User, error) {
	var users []*model.User
	if err := r.db.WithContext(ctx).
		Joins("JOIN memberships ON memberships.user_id = users.id").
		Where("memberships.organization_id = ? AND memberships.approved AND memberships.role IN ?",
			orgID, []model.MembershipRole{model.MembershipCreator, model.MembershipAdmin}).
		Find(&users).Error; err != nil {
		return nil, fmt.Errorf("finding organization admins: %w", err)
	}
	return users, nil
}

func (r *OrganizationRepository) CreateMembership(ctx context.Context, membership *model.Membership) error {
	if err := r.db.WithContext(ctx).Create(membership).Error; err != nil {
		return fmt.Errorf("creating membership: %w", err)
	}
	return nil
}

func (r *OrganizationRepository) UpdateMembership(ctx context.Context, membership *model.Membership) error {
	if err := r.db.WithContext(ctx).Save(membership).Error; err != nil {
		return fmt.Errorf("updating membership: %w", err)
	}
	return nil
}

func (r *OrganizationRepository) FindMembership(ctx context.Context, orgID, userID uuid.UUID) (*model.Membership, error) {
	var membership model.Membership
	if err := r.db.WithContext(ctx).
		First(&membership, "organization_id = ? AND user_id = ?", orgID, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMembershipNotFound
		}
		return nil, fmt.Errorf("finding membership: %w", err)
	}
	return &membership, nil
}

func (r *OrganizationRepository) CreateStrike(ctx context.Context, strike *model.Strike) error {
	if err := r.db.WithContext(ctx).Create(strike).Error; err != nil {
		return fmt.Errorf("creating strike: %w", err)
	}
	return nil
}

func (r *OrganizationRepository) CountStrikes(ctx context.Context, orgID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Strike{}).
		Where("organization_id = ?", orgID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("counting strikes: %w", err)
	}
	return count, nil
}
