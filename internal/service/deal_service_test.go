package service

import (
	"context"
	"testing"

	"github.com/launchperks/deals-service/internal/domain"
	"github.com/launchperks/deals-service/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newDealServiceFixture() (*fakeDealRepo, DealService) {
	deals := newFakeDealRepo()
	return deals, NewDealService(deals)
}

func TestDealListFiltersByCategory(t *testing.T) {
	deals, svc := newDealServiceFixture()

	cloud := testDeal()
	deals.add(cloud)

	marketing := testDeal()
	marketing.Title = "GrowthMail - 6 Months Free"
	marketing.Category = domain.CategoryMarketing
	deals.add(marketing)

	data, err := svc.List(context.Background(), &dto.DealListQuery{
		Category: "marketing", Page: 1, Limit: 12,
	})
	require.NoError(t, err)
	require.Len(t, data.Deals, 1)
	assert.Equal(t, domain.CategoryMarketing, data.Deals[0].Category)
	assert.Equal(t, int64(1), data.Pagination.Total)
}

func TestDealListRejectsUnknownCategory(t *testing.T) {
	_, svc := newDealServiceFixture()

	_, err := svc.List(context.Background(), &dto.DealListQuery{
		Category: "gaming", Page: 1, Limit: 12,
	})
	appErr, ok := domain.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, domain.KindValidation, appErr.Kind)
	require.Len(t, appErr.Fields, 1)
	assert.Equal(t, "category", appErr.Fields[0].Field)
}

func TestDealListDefaultsPagination(t *testing.T) {
	deals, svc := newDealServiceFixture()
	for i := 0; i < 15; i++ {
		deal := testDeal()
		deal.ID = primitive.NewObjectID()
		deals.add(deal)
	}

	data, err := svc.List(context.Background(), &dto.DealListQuery{})
	require.NoError(t, err)
	assert.Len(t, data.Deals, 12)
	assert.Equal(t, int64(15), data.Pagination.Total)
	assert.Equal(t, int64(2), data.Pagination.Pages)
}

func TestDealListExcludesInactive(t *testing.T) {
	deals, svc := newDealServiceFixture()

	inactive := testDeal()
	inactive.IsActive = false
	deals.add(inactive)

	data, err := svc.List(context.Background(), &dto.DealListQuery{Page: 1, Limit: 12})
	require.NoError(t, err)
	assert.Empty(t, data.Deals)
}

func TestDealGet(t *testing.T) {
	deals, svc := newDealServiceFixture()
	deal := deals.add(testDeal())

	got, err := svc.Get(context.Background(), deal.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, deal.Title, got.Title)
}

func TestDealGetInvalidID(t *testing.T) {
	_, svc := newDealServiceFixture()

	_, err := svc.Get(context.Background(), "not-an-id")
	appErr, ok := domain.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, domain.KindValidation, appErr.Kind)
}

func TestDealGetHidesInactive(t *testing.T) {
	deals, svc := newDealServiceFixture()
	deal := testDeal()
	deal.IsActive = false
	deals.add(deal)

	_, err := svc.Get(context.Background(), deal.ID.Hex())
	appErr, ok := domain.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, domain.KindNotFound, appErr.Kind)
	assert.Equal(t, "Deal not found", appErr.Message)
}

func TestDealFeatured(t *testing.T) {
	deals, svc := newDealServiceFixture()

	featured := testDeal()
	featured.Featured = true
	deals.add(featured)
	deals.add(testDeal())

	got, err := svc.Featured(context.Background(), 6)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, got[0].Featured)
}

func TestDealPopularOrdersByClaimCount(t *testing.T) {
	deals, svc := newDealServiceFixture()

	quiet := testDeal()
	quiet.ClaimCount = 2
	deals.add(quiet)

	hot := testDeal()
	hot.Title = "GrowthMail - 6 Months Free"
	hot.ClaimCount = 50
	deals.add(hot)

	got, err := svc.Popular(context.Background(), 6)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(50), got[0].ClaimCount)
}

func TestDealCategories(t *testing.T) {
	deals, svc := newDealServiceFixture()

	deals.add(testDeal())
	second := testDeal()
	deals.add(second)

	marketing := testDeal()
	marketing.Category = domain.CategoryMarketing
	deals.add(marketing)

	counts, err := svc.Categories(context.Background())
	require.NoError(t, err)
	require.Len(t, counts, 2)

	byCategory := make(map[domain.Category]int64)
	for _, c := range counts {
		byCategory[c.Category] = c.Count
	}
	assert.Equal(t, int64(2), byCategory[domain.CategoryCloudServices])
	assert.Equal(t, int64(1), byCategory[domain.CategoryMarketing])
}
