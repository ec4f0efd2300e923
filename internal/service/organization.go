// internal/service/organization.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/campusclubs/epsilon/internal/domain"
	"github.com/campusclubs/epsilon/internal/model"
	"github.com/campusclubs/epsilon/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type OrganizationService struct {
	orgs          repository.OrganizationRepositoryIface
	users         repository.UserRepositoryIface
	notifier      Notifier
	lockThreshold int
	validate      *validator.Validate
}

func NewOrganizationService(
	orgs repository.OrganizationRepositoryIface,
	users repository.UserRepositoryIface,
	notifier Notifier,
	lockThreshold int,
) *OrganizationService {
	return &OrganizationService{
		orgs:          orgs,
		users:         users,
		notifier:      notifier,
		lockThreshold: lockThreshold,
		validate:      validator.New(),
	}
}

// reservedOrgURLs are site paths a club URL may not shadow.
var reservedOrgURLs = map[string]struct{}{
	"catalog":       {},
	"create":        {},
	"about":         {},
	"meetings":      {},
	"rules":         {},
	"archive":       {},
	"modules":       {},
	"admin":         {},
	"attendance":    {},
	"opportunities": {},
	"today":         {},
	"announcements": {},
}

type OrganizationInput struct {
	Name    string `json:"name" validate:"required"`
	URL     string `json:"url" validate:"required"`
	Mission string `json:"mission"`
}

// Create registers a new organization in the PENDING state and gives the
// creator a CREATOR membership. The organization stays pending until a site
// admin approves or rejects it.
func (s *OrganizationService) Create(ctx context.Context, creatorID uuid.UUID, input OrganizationInput) (*model.Organization, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	if _, reserved := reservedOrgURLs[input.URL]; reserved {
		return nil, fmt.Errorf("%w: organization url %q is reserved", domain.ErrInvalidInput, input.URL)
	}

	org := &model.Organization{
		Name:        input.Name,
		URL:         strings.ReplaceAll(input.URL, " ", "-"),
		Mission:     input.Mission,
		State:       model.OrgStatePending,
		CreatedByID: creatorID,
	}

	if err := s.orgs.Create(ctx, org); err != nil {
		return nil, err
	}

	membership := &model.Membership{
		OrganizationID: org.ID,
		UserID:         creatorID,
		Role:           model.MembershipCreator,
		Approved:       true,
	}

	if err := s.orgs.CreateMembership(ctx, membership); err != nil {
		return nil, err
	}

	return org, nil
}

// Approve moves a pending organization to UNLOCKED and notifies its admins.
func (s *OrganizationService) Approve(ctx context.Context, orgID uuid.UUID) (*model.Organization, error) {
	org, err := s.orgs.FindByID(ctx, orgID)
	if err != nil {
		return nil, err
	}

	if org.State != model.OrgStatePending {
		return nil, domain.ErrOrganizationNotPending
	}

	org.State = model.OrgStateUnlocked
	if err := s.orgs.Update(ctx, org); err != nil {
		return nil, err
	}

	dispatchNotification(s.notifier, org.ID, model.NotificationEvent{
		Kind: model.NotifyOrganizationApproved,
	})

	return org, nil
}

// Reject deletes a pending organization. The admin list is captured before
// the delete wipes the membership rows, so the rejection notice can still go
// out afterwards.
func (s *OrganizationService) Reject(ctx context.Context, orgID uuid.UUID, reason string) error {
	org, err := s.orgs.FindByID(ctx, orgID)
	if err != nil {
		return err
	}

	if org.State != model.OrgStatePending {
		return domain.ErrOrganizationNotPending
	}

	admins, err := s.orgs.FindAdmins(ctx, orgID)
	if err != nil {
		return err
	}

	if err := s.orgs.Delete(ctx, orgID); err != nil {
		return err
	}

	dispatchUserNotification(s.notifier, org, admins, model.NotificationEvent{
		Kind:   model.NotifyOrganizationRejected,
		Reason: reason,
	})

	return nil
}

// Join records a membership request for the user. Requests against locked
// organizations are refused.
func (s *OrganizationService) Join(ctx context.Context, orgID, userID uuid.UUID) (*model.Membership, error) {
	org, err := s.orgs.FindByID(ctx, orgID)
	if err != nil {
		return nil, err
	}

	if org.State == model.OrgStateLocked {
		return nil, fmt.Errorf("%w: organization is locked", domain.ErrInvalidInput)
	}

	if _, err := s.orgs.FindMembership(ctx, orgID, userID); err == nil {
		return nil, domain.ErrAlreadyMember
	} else if !errors.Is(err, domain.ErrMembershipNotFound) {
		return nil, err
	}

	membership := &model.Membership{
		OrganizationID: orgID,
		UserID:         userID,
		Role:           model.MembershipMember,
	}

	if err := s.orgs.CreateMembership(ctx, membership); err != nil {
		return nil, err
	}

	return membership, nil
}

// ApproveMember accepts a pending membership request and tells the member.
func (s *OrganizationService) ApproveMember(ctx context.Context, orgID, userID uuid.UUID) (*model.Membership, error) {
	org, err := s.orgs.FindByID(ctx, orgID)
	if err != nil {
		return nil, err
	}

	membership, err := s.orgs.FindMembership(ctx, orgID, userID)
	if err != nil {
		return nil, err
	}

	membership.Approved = true
	if err := s.orgs.UpdateMembership(ctx, membership); err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	dispatchUserNotification(s.notifier, org, []*model.User{user}, model.NotificationEvent{
		Kind: model.NotifyMemberApproved,
	})

	return membership, nil
}

type IssueStrikeInput struct {
	OrganizationID uuid.UUID `json:"organization_id" validate:"required"`
	Reason         string    `json:"reason" validate:"required"`
}

// IssueStrike records a disciplinary strike and notifies the organization.
// Once the strike count reaches the lock threshold, the organization is
// moved to LOCKED and stops accepting new memberships.
func (s *OrganizationService) IssueStrike(ctx context.Context, issuerID uuid.UUID, input IssueStrikeInput) (*model.Strike, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	org, err := s.orgs.FindByID(ctx, input.OrganizationID)
	if err != nil {
		return nil, err
	}

	strike := &model.Strike{
		OrganizationID: input.OrganizationID,
		IssuedByID:     issuerID,
		Reason:         input.Reason,
	}

	if err := s.orgs.CreateStrike(ctx, strike); err != nil {
		return nil, err
	}

	count, err := s.orgs.CountStrikes(ctx, input.OrganizationID)
	if err != nil {
		return nil, err
	}
	if count >= int64(s.lockThreshold) && org.State != model.OrgStateLocked {
		org.State = model.OrgStateLocked
		if err := s.orgs.Update(ctx, org); err != nil {
			return nil, err
		}
	}

	dispatchNotification(s.notifier, input.OrganizationID, model.NotificationEvent{
		Kind:   model.NotifyStrikeIssued,
		Reason: input.Reason,
	})

	return strike, nil
}
