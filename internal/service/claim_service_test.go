package service

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/launchperks/deals-service/internal/domain"
	"github.com/launchperks/deals-service/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var redemptionCodePattern = regexp.MustCompile(`^[A-Z0-9]{12}$`)

type claimServiceFixture struct {
	claims  *fakeClaimRepo
	deals   *fakeDealRepo
	service ClaimService
}

func newClaimServiceFixture() *claimServiceFixture {
	claims := newFakeClaimRepo()
	deals := newFakeDealRepo()
	return &claimServiceFixture{
		claims:  claims,
		deals:   deals,
		service: NewClaimService(claims, deals),
	}
}

func testUser() *domain.User {
	return &domain.User{
		ID:    primitive.NewObjectID(),
		Name:  "Ada Founder",
		Email: "ada@startup.com",
		Role:  domain.RoleFounder,
	}
}

func testDeal() *domain.Deal {
	return &domain.Deal{
		Title:       "CloudScale Pro - $5,000 in Credits",
		Description: "Cloud credits for startups scaling their infrastructure.",
		Category:    domain.CategoryCloudServices,
		Partner: domain.Partner{
			Name:    "CloudScale",
			Website: "https://cloudscale.example.com",
		},
		IsActive: true,
	}
}

func TestClaimSuccess(t *testing.T) {
	f := newClaimServiceFixture()
	user := testUser()
	deal := f.deals.add(testDeal())

	claim, err := f.service.Claim(context.Background(), user, deal.ID.Hex())
	require.NoError(t, err)

	assert.Equal(t, user.ID, claim.UserID)
	assert.Equal(t, deal.ID, claim.DealID)
	assert.Equal(t, domain.ClaimApproved, claim.Status)
	assert.Regexp(t, redemptionCodePattern, claim.RedemptionCode)
	assert.Equal(t,
		"Visit https://cloudscale.example.com and use your redemption code at checkout.",
		claim.RedemptionInstructions)
	require.NotNil(t, claim.ApprovedAt)
	require.NotNil(t, claim.Deal)
	assert.Equal(t, int64(1), claim.Deal.ClaimCount)

	stored, err := f.deals.GetByID(context.Background(), deal.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stored.ClaimCount)
}

func TestClaimInvalidDealID(t *testing.T) {
	f := newClaimServiceFixture()

	_, err := f.service.Claim(context.Background(), testUser(), "not-an-object-id")
	appErr, ok := domain.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, domain.KindValidation, appErr.Kind)
}

func TestClaimDealNotFound(t *testing.T) {
	f := newClaimServiceFixture()

	_, err := f.service.Claim(context.Background(), testUser(), primitive.NewObjectID().Hex())
	appErr, ok := domain.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, domain.KindNotFound, appErr.Kind)
	assert.Equal(t, "Deal not found", appErr.Message)
}

func TestClaimInactiveDealHidden(t *testing.T) {
	f := newClaimServiceFixture()
	deal := testDeal()
	deal.IsActive = false
	f.deals.add(deal)

	_, err := f.service.Claim(context.Background(), testUser(), deal.ID.Hex())
	appErr, ok := domain.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, domain.KindNotFound, appErr.Kind)
}

func TestClaimExpiredDeal(t *testing.T) {
	f := newClaimServiceFixture()
	deal := testDeal()
	past := time.Now().Add(-time.Hour)
	deal.ValidUntil = &past
	f.deals.add(deal)

	_, err := f.service.Claim(context.Background(), testUser(), deal.ID.Hex())
	appErr, ok := domain.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, domain.KindValidation, appErr.Kind)
	assert.Equal(t, domain.ReasonExpired, appErr.Message)
}

func TestClaimMaxClaimsReached(t *testing.T) {
	f := newClaimServiceFixture()
	deal := testDeal()
	max := int64(10)
	deal.MaxClaims = &max
	deal.ClaimCount = 10
	f.deals.add(deal)

	_, err := f.service.Claim(context.Background(), testUser(), deal.ID.Hex())
	appErr, ok := domain.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, domain.KindValidation, appErr.Kind)
	assert.Equal(t, domain.ReasonMaxReached, appErr.Message)
}

func TestClaimLockedDealUnverifiedUser(t *testing.T) {
	f := newClaimServiceFixture()
	deal := testDeal()
	deal.IsLocked = true
	f.deals.add(deal)

	user := testUser()
	user.IsVerified = false

	_, err := f.service.Claim(context.Background(), user, deal.ID.Hex())
	appErr, ok := domain.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, domain.KindAuthorization, appErr.Kind)
	assert.Equal(t,
		"This deal requires account verification. Please verify your account to claim this deal.",
		appErr.Message)
}

func TestClaimLockedDealVerifiedUser(t *testing.T) {
	f := newClaimServiceFixture()
	deal := testDeal()
	deal.IsLocked = true
	f.deals.add(deal)

	user := testUser()
	user.IsVerified = true

	claim, err := f.service.Claim(context.Background(), user, deal.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, domain.ClaimApproved, claim.Status)
}

func TestClaimDuplicateRejected(t *testing.T) {
	f := newClaimServiceFixture()
	user := testUser()
	deal := f.deals.add(testDeal())

	_, err := f.service.Claim(context.Background(), user, deal.ID.Hex())
	require.NoError(t, err)

	_, err = f.service.Claim(context.Background(), user, deal.ID.Hex())
	appErr, ok := domain.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, domain.KindConflict, appErr.Kind)
	assert.Equal(t, "You have already claimed this deal", appErr.Message)

	// The counter must not move on the rejected attempt.
	stored, err := f.deals.GetByID(context.Background(), deal.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stored.ClaimCount)
}

func TestClaimDifferentUsersSameDeal(t *testing.T) {
	f := newClaimServiceFixture()
	deal := f.deals.add(testDeal())

	_, err := f.service.Claim(context.Background(), testUser(), deal.ID.Hex())
	require.NoError(t, err)

	other := testUser()
	other.Email = "grace@startup.com"
	_, err = f.service.Claim(context.Background(), other, deal.ID.Hex())
	require.NoError(t, err)

	stored, err := f.deals.GetByID(context.Background(), deal.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stored.ClaimCount)
}

func TestClaimListAttachesDeals(t *testing.T) {
	f := newClaimServiceFixture()
	user := testUser()
	deal := f.deals.add(testDeal())

	_, err := f.service.Claim(context.Background(), user, deal.ID.Hex())
	require.NoError(t, err)

	data, err := f.service.List(context.Background(), user, &dto.ClaimListQuery{Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Len(t, data.Claims, 1)
	require.NotNil(t, data.Claims[0].Deal)
	assert.Equal(t, deal.Title, data.Claims[0].Deal.Title)
	assert.Equal(t, int64(1), data.Pagination.Total)
	assert.Equal(t, int64(1), data.Pagination.Pages)
}

func TestClaimListStatusFilter(t *testing.T) {
	f := newClaimServiceFixture()
	user := testUser()
	deal := f.deals.add(testDeal())

	_, err := f.service.Claim(context.Background(), user, deal.ID.Hex())
	require.NoError(t, err)

	data, err := f.service.List(context.Background(), user, &dto.ClaimListQuery{
		Status: "pending", Page: 1, Limit: 10,
	})
	require.NoError(t, err)
	assert.Empty(t, data.Claims)

	_, err = f.service.List(context.Background(), user, &dto.ClaimListQuery{
		Status: "bogus", Page: 1, Limit: 10,
	})
	appErr, ok := domain.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, domain.KindValidation, appErr.Kind)
}

func TestClaimGetOwnershipEnforced(t *testing.T) {
	f := newClaimServiceFixture()
	owner := testUser()
	deal := f.deals.add(testDeal())

	claim, err := f.service.Claim(context.Background(), owner, deal.ID.Hex())
	require.NoError(t, err)

	got, err := f.service.Get(context.Background(), owner, claim.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, claim.ID, got.ID)

	intruder := testUser()
	_, err = f.service.Get(context.Background(), intruder, claim.ID.Hex())
	appErr, ok := domain.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, domain.KindAuthorization, appErr.Kind)
	assert.Equal(t, "Access denied", appErr.Message)
}

func TestClaimStats(t *testing.T) {
	f := newClaimServiceFixture()
	user := testUser()

	for i := 0; i < 3; i++ {
		deal := f.deals.add(testDeal())
		_, err := f.service.Claim(context.Background(), user, deal.ID.Hex())
		require.NoError(t, err)
	}

	stats, err := f.service.Stats(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.Total)
	assert.Equal(t, int64(3), stats.Approved)
	assert.Equal(t, int64(0), stats.Pending)
}
