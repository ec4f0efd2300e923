package service_test

import (
	"context"
	"testing"

	"github.com/campusclubs/epsilon/internal/domain"
	"github.com/campusclubs/epsilon/internal/mocks"
	"github.com/campusclubs/epsilon/internal/model"
	"github.com/campusclubs/epsilon/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newOrgService(t *testing.T) (*service.OrganizationService, *mocks.MockOrganizationRepositoryIface, *mocks.MockUserRepositoryIface, *mocks.MockNotifier) {
	t.Helper()
	ctrl := gomock.NewController(t)
	orgs := mocks.NewMockOrganizationRepositoryIface(ctrl)
	users := mocks.NewMockUserRepositoryIface(ctrl)
	notifier := mocks.NewMockNotifier(ctrl)
	return service.NewOrganizationService(orgs, users, notifier, 3), orgs, users, notifier
}

func TestOrganizationApprove(t *testing.T) {
	t.Run("pending organization is unlocked", func(t *testing.T) {
		svc, orgs, _, notifier := newOrgService(t)
		orgID := uuid.New()

		orgs.EXPECT().
			FindByID(gomock.Any(), orgID).
			Return(&model.Organization{ID: orgID, Name: "Chess Club", State: model.OrgStatePending}, nil)
		orgs.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, org *model.Organization) error {
				assert.Equal(t, model.OrgStateUnlocked, org.State)
				return nil
			})

		notified := make(chan struct{}, 1)
		notifier.EXPECT().
			Notify(gomock.Any(), orgID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, event model.NotificationEvent) error {
				assert.Equal(t, model.NotifyOrganizationApproved, event.Kind)
				notified <- struct{}{}
				return nil
			})

		org, err := svc.Approve(context.Background(), orgID)
		require.NoError(t, err)
		assert.Equal(t, model.OrgStateUnlocked, org.State)

		waitForNotifications(t, notified, 1)
	})

	t.Run("already unlocked organization is refused", func(t *testing.T) {
		svc, orgs, _, _ := newOrgService(t)
		orgID := uuid.New()

		orgs.EXPECT().
			FindByID(gomock.Any(), orgID).
			Return(&model.Organization{ID: orgID, State: model.OrgStateUnlocked}, nil)

		_, err := svc.Approve(context.Background(), orgID)
		assert.ErrorIs(t, err, domain.ErrOrganizationNotPending)
	})
}

func TestOrganizationRejectNotifiesAdminsAfterDelete(t *testing.T) {
	svc, orgs, _, notifier := newOrgService(t)
	orgID := uuid.New()

	org := &model.Organization{ID: orgID, Name: "Chess Club", State: model.OrgStatePending}
	admins := []*model.User{
		{ID: uuid.New(), Email: "creator@school.edu", FirstName: "Sam"},
		{ID: uuid.New(), Email: "admin@school.edu", FirstName: "Riley"},
	}

	// The admin list must be resolved before the delete removes the
	// membership rows it is derived from.
	gomock.InOrder(
		orgs.EXPECT().FindByID(gomock.Any(), orgID).Return(org, nil),
		orgs.EXPECT().FindAdmins(gomock.Any(), orgID).Return(admins, nil),
		orgs.EXPECT().Delete(gomock.Any(), orgID).Return(nil),
	)

	notified := make(chan struct{}, 1)
	notifier.EXPECT().
		NotifyUsers(gomock.Any(), org, admins, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *model.Organization, _ []*model.User, event model.NotificationEvent) error {
			assert.Equal(t, model.NotifyOrganizationRejected, event.Kind)
			assert.Equal(t, "Duplicate of an existing club", event.Reason)
			notified <- struct{}{}
			return nil
		})

	err := svc.Reject(context.Background(), orgID, "Duplicate of an existing club")
	require.NoError(t, err)

	waitForNotifications(t, notified, 1)
}

func TestOrganizationJoin(t *testing.T) {
	t.Run("creates a pending membership", func(t *testing.T) {
		svc, orgs, _, _ := newOrgService(t)
		orgID := uuid.New()
		userID := uuid.New()

		orgs.EXPECT().
			FindByID(gomock.Any(), orgID).
			Return(&model.Organization{ID: orgID, State: model.OrgStateUnlocked}, nil)
		orgs.EXPECT().
			FindMembership(gomock.Any(), orgID, userID).
			Return(nil, domain.ErrMembershipNotFound)
		orgs.EXPECT().
			CreateMembership(gomock.Any(), gomock.Any()).
			Return(nil)

		membership, err := svc.Join(context.Background(), orgID, userID)
		require.NoError(t, err)
		assert.Equal(t, model.MembershipMember, membership.Role)
		assert.False(t, membership.Approved)
	})

	t.Run("locked organization refuses joins", func(t *testing.T) {
		svc, orgs, _, _ := newOrgService(t)
		orgID := uuid.New()

		orgs.EXPECT().
			FindByID(gomock.Any(), orgID).
			Return(&model.Organization{ID: orgID, State: model.OrgStateLocked}, nil)

		_, err := svc.Join(context.Background(), orgID, uuid.New())
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("existing membership is rejected", func(t *testing.T) {
		svc, orgs, _, _ := newOrgService(t)
		orgID := uuid.New()
		userID := uuid.New()

		orgs.EXPECT().
			FindByID(gomock.Any(), orgID).
			Return(&model.Organization{ID: orgID, State: model.OrgStateUnlocked}, nil)
		orgs.EXPECT().
			FindMembership(gomock.Any(), orgID, userID).
			Return(&model.Membership{OrganizationID: orgID, UserID: userID}, nil)

		_, err := svc.Join(context.Background(), orgID, userID)
		assert.ErrorIs(t, err, domain.ErrAlreadyMember)
	})
}

func TestOrganizationApproveMember(t *testing.T) {
	svc, orgs, users, notifier := newOrgService(t)
	orgID := uuid.New()
	userID := uuid.New()

	org := &model.Organization{ID: orgID, Name: "Chess Club", State: model.OrgStateUnlocked}
	member := &model.User{ID: userID, Email: "member@school.edu", FirstName: "Alex"}

	orgs.EXPECT().FindByID(gomock.Any(), orgID).Return(org, nil)
	orgs.EXPECT().
		FindMembership(gomock.Any(), orgID, userID).
		Return(&model.Membership{OrganizationID: orgID, UserID: userID}, nil)
	orgs.EXPECT().
		UpdateMembership(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, m *model.Membership) error {
			assert.True(t, m.Approved)
			return nil
		})
	users.EXPECT().FindByID(gomock.Any(), userID).Return(member, nil)

	notified := make(chan struct{}, 1)
	notifier.EXPECT().
		NotifyUsers(gomock.Any(), org, []*model.User{member}, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *model.Organization, _ []*model.User, event model.NotificationEvent) error {
			assert.Equal(t, model.NotifyMemberApproved, event.Kind)
			notified <- struct{}{}
			return nil
		})

	membership, err := svc.ApproveMember(context.Background(), orgID, userID)
	require.NoError(t, err)
	assert.True(t, membership.Approved)

	waitForNotifications(t, notified, 1)
}

func TestOrganizationIssueStrike(t *testing.T) {
	t.Run("records the strike and notifies", func(t *testing.T) {
		svc, orgs, _, notifier := newOrgService(t)
		orgID := uuid.New()
		issuerID := uuid.New()

		orgs.EXPECT().
			FindByID(gomock.Any(), orgID).
			Return(&model.Organization{ID: orgID, State: model.OrgStateUnlocked}, nil)
		orgs.EXPECT().
			CreateStrike(gomock.Any(), gomock.Any()).
			Return(nil)
		orgs.EXPECT().
			CountStrikes(gomock.Any(), orgID).
			Return(int64(1), nil)

		notified := make(chan struct{}, 1)
		notifier.EXPECT().
			Notify(gomock.Any(), orgID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, event model.NotificationEvent) error {
				assert.Equal(t, model.NotifyStrikeIssued, event.Kind)
				assert.Equal(t, "Unsupervised meeting", event.Reason)
				notified <- struct{}{}
				return nil
			})

		strike, err := svc.IssueStrike(context.Background(), issuerID, service.IssueStrikeInput{
			OrganizationID: orgID,
			Reason:         "Unsupervised meeting",
		})
		require.NoError(t, err)
		assert.Equal(t, issuerID, strike.IssuedByID)

		waitForNotifications(t, notified, 1)
	})

	t.Run("requires a reason", func(t *testing.T) {
		svc, _, _, _ := newOrgService(t)

		_, err := svc.IssueStrike(context.Background(), uuid.New(), service.IssueStrikeInput{
			OrganizationID: uuid.New(),
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestOrganizationThirdStrikeLocks(t *testing.T) {
	svc, orgs, _, notifier := newOrgService(t)
	orgID := uuid.New()

	orgs.EXPECT().
		FindByID(gomock.Any(), orgID).
		Return(&model.Organization{ID: orgID, State: model.OrgStateUnlocked}, nil)
	orgs.EXPECT().
		CreateStrike(gomock.Any(), gomock.Any()).
		Return(nil)
	orgs.EXPECT().
		CountStrikes(gomock.Any(), orgID).
		Return(int64(3), nil)
	orgs.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, org *model.Organization) error {
			assert.Equal(t, model.OrgStateLocked, org.State)
			return nil
		})

	notified := make(chan struct{}, 1)
	notifier.EXPECT().
		Notify(gomock.Any(), orgID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, event model.NotificationEvent) error {
			assert.Equal(t, model.NotifyStrikeIssued, event.Kind)
			notified <- struct{}{}
			return nil
		})

	_, err := svc.IssueStrike(context.Background(), uuid.New(), service.IssueStrikeInput{
		OrganizationID: orgID,
		Reason:         "Third unsupervised meeting",
	})
	require.NoError(t, err)

	waitForNotifications(t, notified, 1)
}

func TestOrganizationCreate(t *testing.T) {
	t.Run("creates a pending organization with a creator membership", func(t *testing.T) {
		svc, orgs, _, _ := newOrgService(t)
		creatorID := uuid.New()
		orgID := uuid.New()

		orgs.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, org *model.Organization) error {
				assert.Equal(t, model.OrgStatePending, org.State)
				assert.Equal(t, "chess-club", org.URL)
				assert.Equal(t, creatorID, org.CreatedByID)
				org.ID = orgID
				return nil
			})
		orgs.EXPECT().
			CreateMembership(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, m *model.Membership) error {
				assert.Equal(t, orgID, m.OrganizationID)
				assert.Equal(t, creatorID, m.UserID)
				assert.Equal(t, model.MembershipCreator, m.Role)
				assert.True(t, m.Approved)
				return nil
			})

		org, err := svc.Create(context.Background(), creatorID, service.OrganizationInput{
			Name:    "Chess Club",
			URL:     "chess club",
			Mission: "Teach chess to everyone",
		})
		require.NoError(t, err)
		assert.Equal(t, model.OrgStatePending, org.State)
	})

	t.Run("refuses a reserved url", func(t *testing.T) {
		svc, _, _, _ := newOrgService(t)

		_, err := svc.Create(context.Background(), uuid.New(), service.OrganizationInput{
			Name: "Admin Club",
			URL:  "admin",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("requires a name and url", func(t *testing.T) {
		svc, _, _, _ := newOrgService(t)

		_, err := svc.Create(context.Background(), uuid.New(), service.OrganizationInput{})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("surfaces a url collision", func(t *testing.T) {
		svc, orgs, _, _ := newOrgService(t)

		orgs.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(domain.ErrOrganizationURLTaken)

		_, err := svc.Create(context.Background(), uuid.New(), service.OrganizationInput{
			Name: "Chess Club",
			URL:  "chess-club",
		})
		assert.ErrorIs(t, err, domain.ErrOrganizationURLTaken)
	})
}
