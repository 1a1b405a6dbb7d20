package sharing

import (
	"context"
	"sync"
	"testing"
	"time"

	apperrors "ledgerly/internal/errors"
	"ledgerly/internal/models"
	"ledgerly/internal/repositories"
	"ledgerly/internal/repositories/cache"
	"ledgerly/internal/services/access"
	"ledgerly/internal/services/ledger"
	"ledgerly/internal/testutil"

	"github.com/stretchr/testify/suite"
)

type SharingSuite struct {
	suite.Suite
	ctx    context.Context
	store  *repositories.Store
	cache  *cache.MemoryCache
	svc    Service
	owner  *models.User
	guest  *models.User
	wallet *models.Wallet
}

func TestSharingSuite(t *testing.T) {
	suite.Run(t, new(SharingSuite))
}

func (s *SharingSuite) SetupTest() {
	t := s.T()
	s.ctx = context.Background()
	s.store, _ = testutil.NewStore(t)
	s.cache = cache.NewMemoryCache(time.Minute)
	s.svc = NewService(s.store, s.cache)
	s.owner = testutil.CreateUser(t, s.store, "owner@example.com", "Owner")
	s.guest = testutil.CreateUser(t, s.store, "guest@example.com", "Guest")
	s.wallet = testutil.CreateWallet(t, s.store, s.owner.ID, "Trip")
}

func (s *SharingSuite) invite(role models.Role) *models.WalletInvitation {
	inv, err := s.svc.Invite(s.ctx, s.wallet.ID, s.owner.ID, InviteInput{Email: s.guest.Email, Role: role})
	s.Require().NoError(err)
	return inv
}

func (s *SharingSuite) role(userID string) models.Role {
	res, err := access.ForStore(s.store).Resolve(s.ctx, s.wallet.ID, userID)
	s.Require().NoError(err)
	return res.Role
}

func (s *SharingSuite) TestInvite_SnapshotsDisplayFields() {
	inv, err := s.svc.Invite(s.ctx, s.wallet.ID, s.owner.ID, InviteInput{Email: "  GUEST@example.com ", Role: models.RoleViewer})
	s.Require().NoError(err)

	s.Equal(models.InvitationPending, inv.Status)
	s.Equal("Trip", inv.WalletName)
	s.Equal(s.wallet.Icon, inv.WalletIcon)
	s.Equal(s.guest.ID, inv.InvitedUserID)
	s.Equal("Guest", inv.InvitedUserName)
	s.Equal("guest@example.com", inv.InvitedUserEmail)
	s.Equal("Owner", inv.InvitedByUserName)
	s.Equal("owner@example.com", inv.InvitedByUserEmail)
}

func (s *SharingSuite) TestInvite_Rejections() {
	tests := []struct {
		name    string
		inviter string
		in      InviteInput
		wantErr error
		kind    apperrors.Kind
	}{
		{"unknown invitee", s.owner.ID, InviteInput{Email: "nobody@example.com", Role: models.RoleViewer}, apperrors.ErrInviteeNotFound, apperrors.KindNotFound},
		{"self share", s.owner.ID, InviteInput{Email: "owner@example.com", Role: models.RolePartner}, apperrors.ErrSelfShare, apperrors.KindConflict},
		{"owner role is not grantable", s.owner.ID, InviteInput{Email: s.guest.Email, Role: models.RoleOwner}, nil, apperrors.KindValidation},
		{"invalid email", s.owner.ID, InviteInput{Email: "not-an-email", Role: models.RoleViewer}, nil, apperrors.KindValidation},
		{"stranger cannot share", s.guest.ID, InviteInput{Email: "owner@example.com", Role: models.RoleViewer}, apperrors.ErrWalletNotFound, apperrors.KindNotFound},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.svc.Invite(s.ctx, s.wallet.ID, tt.inviter, tt.in)
			s.Require().Error(err)
			if tt.wantErr != nil {
				s.ErrorIs(err, tt.wantErr)
			}
			s.Equal(tt.kind, apperrors.KindOf(err))
		})
	}
}

func (s *SharingSuite) TestScenarioB() {
	s.invite(models.RoleViewer)

	// a second invitation while the first is pending
	_, err := s.svc.Invite(s.ctx, s.wallet.ID, s.owner.ID, InviteInput{Email: s.guest.Email, Role: models.RolePartner})
	s.ErrorIs(err, apperrors.ErrInvitationPending)
	s.Equal(apperrors.KindConflict, apperrors.KindOf(err))

	pending, err := s.svc.ListInvitations(s.ctx, s.guest.ID, "")
	s.Require().NoError(err)
	s.Require().Len(pending, 1)

	_, err = s.svc.Respond(s.ctx, pending[0].ID, s.guest.ID, RespondInput{Action: models.ActionAccept})
	s.Require().NoError(err)
	s.Equal(models.RoleViewer, s.role(s.guest.ID))

	entries := ledger.NewService(s.store, s.cache)
	_, err = entries.CreateEntry(s.ctx, s.wallet.ID, s.guest.ID, ledger.EntryInput{Amount: 100, Type: models.EntryAdd})
	s.ErrorIs(err, apperrors.ErrInsufficientRole)

	_, err = s.svc.Invite(s.ctx, s.wallet.ID, s.owner.ID, InviteInput{Email: s.guest.Email, Role: models.RolePartner})
	s.ErrorIs(err, apperrors.ErrAlreadyHasAccess)
}

func (s *SharingSuite) TestScenarioC() {
	inv := s.invite(models.RolePartner)

	res, err := s.svc.Respond(s.ctx, inv.ID, s.guest.ID, RespondInput{Action: models.ActionDecline})
	s.Require().NoError(err)
	s.Equal(models.InvitationDeclined, res.Invitation.Status)
	s.NotNil(res.Invitation.RespondedAt)
	s.Nil(res.Access)

	_, err = s.store.Access.Get(s.ctx, s.wallet.ID, s.guest.ID)
	s.ErrorIs(err, repositories.ErrAccessNotFound)

	_, err = access.ForStore(s.store).Authorize(s.ctx, s.wallet.ID, s.guest.ID, models.OpViewWallet)
	s.ErrorIs(err, apperrors.ErrWalletNotFound)

	// declined invitations do not block a new one
	s.invite(models.RoleViewer)
}

func (s *SharingSuite) TestRespond_IsTerminal() {
	tests := []struct {
		name   string
		first  models.InvitationAction
		second models.InvitationAction
	}{
		{"accept then accept", models.ActionAccept, models.ActionAccept},
		{"accept then decline", models.ActionAccept, models.ActionDecline},
		{"decline then accept", models.ActionDecline, models.ActionAccept},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()
			inv := s.invite(models.RolePartner)

			_, err := s.svc.Respond(s.ctx, inv.ID, s.guest.ID, RespondInput{Action: tt.first})
			s.Require().NoError(err)
			_, err = s.svc.Respond(s.ctx, inv.ID, s.guest.ID, RespondInput{Action: tt.second})
			s.ErrorIs(err, apperrors.ErrInvitationNotFound)

			grants, err := s.store.Access.ListByWallet(s.ctx, s.wallet.ID)
			s.Require().NoError(err)
			if tt.first == models.ActionAccept {
				s.Len(grants, 1)
				s.Equal(models.RolePartner, s.role(s.guest.ID))
			} else {
				s.Empty(grants)
			}
		})
	}
}

func (s *SharingSuite) TestRespond_OnlyInviteeCanAnswer() {
	inv := s.invite(models.RoleViewer)

	_, err := s.svc.Respond(s.ctx, inv.ID, s.owner.ID, RespondInput{Action: models.ActionAccept})
	s.ErrorIs(err, apperrors.ErrInvitationNotFound)

	_, err = s.svc.Respond(s.ctx, inv.ID, s.guest.ID, RespondInput{Action: "maybe"})
	s.Equal(apperrors.KindValidation, apperrors.KindOf(err))
	s.Equal("action must be one of: accept, decline", err.Error())

	stored, err := s.store.Invitations.GetByID(s.ctx, inv.ID)
	s.Require().NoError(err)
	s.Equal(models.InvitationPending, stored.Status)
}

func (s *SharingSuite) TestRespond_AcceptGrantsRoleAndInvalidatesCache() {
	inv := s.invite(models.RolePartner)
	testutil.PrimeWalletLists(s.T(), s.cache, s.guest.ID)

	res, err := s.svc.Respond(s.ctx, inv.ID, s.guest.ID, RespondInput{Action: models.ActionAccept})
	s.Require().NoError(err)
	s.Require().NotNil(res.Access)
	s.Equal(s.owner.ID, res.Access.GrantedBy)
	s.Equal(models.RolePartner, res.Access.Role)

	_, found, err := s.cache.GetWalletList(s.ctx, s.guest.ID)
	s.Require().NoError(err)
	s.False(found)
}

func (s *SharingSuite) TestRespond_WalletGone() {
	inv := s.invite(models.RoleViewer)
	_, err := s.store.Wallets.Delete(s.ctx, s.wallet.ID)
	s.Require().NoError(err)

	_, err = s.svc.Respond(s.ctx, inv.ID, s.guest.ID, RespondInput{Action: models.ActionAccept})
	s.ErrorIs(err, apperrors.ErrWalletNotFound)

	// the transition was rolled back with the failed grant
	stored, err := s.store.Invitations.GetByID(s.ctx, inv.ID)
	s.Require().NoError(err)
	s.Equal(models.InvitationPending, stored.Status)
}

func (s *SharingSuite) TestRespond_ConcurrentAcceptsCreateOneGrant() {
	inv := s.invite(models.RoleViewer)

	const attempts = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.svc.Respond(s.ctx, inv.ID, s.guest.ID, RespondInput{Action: models.ActionAccept})
			if err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	s.Equal(1, succeeded)
	grants, err := s.store.Access.ListByWallet(s.ctx, s.wallet.ID)
	s.Require().NoError(err)
	s.Len(grants, 1)
}

func (s *SharingSuite) TestListInvitations_StatusFilter() {
	other := testutil.CreateWallet(s.T(), s.store, s.owner.ID, "Rent")
	declined := s.invite(models.RoleViewer)
	_, err := s.svc.Respond(s.ctx, declined.ID, s.guest.ID, RespondInput{Action: models.ActionDecline})
	s.Require().NoError(err)
	_, err = s.svc.Invite(s.ctx, other.ID, s.owner.ID, InviteInput{Email: s.guest.Email, Role: models.RolePartner})
	s.Require().NoError(err)

	pending, err := s.svc.ListInvitations(s.ctx, s.guest.ID, "pending")
	s.Require().NoError(err)
	s.Require().Len(pending, 1)
	s.Equal(other.ID, pending[0].WalletID)

	onlyDeclined, err := s.svc.ListInvitations(s.ctx, s.guest.ID, "declined")
	s.Require().NoError(err)
	s.Require().Len(onlyDeclined, 1)
	s.Equal(declined.ID, onlyDeclined[0].ID)

	all, err := s.svc.ListInvitations(s.ctx, s.guest.ID, StatusAll)
	s.Require().NoError(err)
	s.Len(all, 2)

	accepted, err := s.svc.ListInvitations(s.ctx, s.guest.ID, "accepted")
	s.Require().NoError(err)
	s.NotNil(accepted)
	s.Empty(accepted)

	_, err = s.svc.ListInvitations(s.ctx, s.guest.ID, "expired")
	s.Equal(apperrors.KindValidation, apperrors.KindOf(err))
}

func (s *SharingSuite) TestAccessListAndRevoke() {
	inv := s.invite(models.RolePartner)
	_, err := s.svc.Respond(s.ctx, inv.ID, s.guest.ID, RespondInput{Action: models.ActionAccept})
	s.Require().NoError(err)

	grants, err := s.svc.ListAccess(s.ctx, s.wallet.ID, s.owner.ID)
	s.Require().NoError(err)
	s.Require().Len(grants, 1)
	s.Equal("Guest", grants[0].UserName)
	s.Equal("guest@example.com", grants[0].UserEmail)

	// partners cannot see or change the grant list
	_, err = s.svc.ListAccess(s.ctx, s.wallet.ID, s.guest.ID)
	s.ErrorIs(err, apperrors.ErrInsufficientRole)
	s.ErrorIs(s.svc.Revoke(s.ctx, s.wallet.ID, s.guest.ID, s.guest.ID), apperrors.ErrInsufficientRole)

	err = s.svc.Revoke(s.ctx, s.wallet.ID, s.owner.ID, "")
	s.Equal(apperrors.KindValidation, apperrors.KindOf(err))

	s.Require().NoError(s.svc.Revoke(s.ctx, s.wallet.ID, s.owner.ID, s.guest.ID))
	s.Equal(models.RoleNone, s.role(s.guest.ID))

	s.ErrorIs(s.svc.Revoke(s.ctx, s.wallet.ID, s.owner.ID, s.guest.ID), apperrors.ErrAccessNotFound)
}
