package usecase

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mtaanimarket/internal/domain/entity"
	"mtaanimarket/pkg/errors"
)

func TestCreateReview(t *testing.T) {
	env := newTestEnv()
	env.seedUser("buyer-1", entity.RoleBuyer)
	env.seedUser("seller-1", entity.RoleSeller)
	product := env.seedProduct("seller-1", 1000, entity.ProductStatusSold)
	order := env.seedOrder("buyer-1", "seller-1", product.ID, entity.OrderStatusCompleted, 1000)

	review, err := env.reviews.CreateReview(context.Background(), "buyer-1", CreateReviewInput{
		OrderID: order.ID,
		Rating:  4,
		Comment: "Smooth handover, phone as described",
	})
	require.NoError(t, err)
	assert.True(t, review.IsVerifiedPurchase)
	assert.Equal(t, "seller-1", review.SellerID)

	seller, err := env.userRepo.GetByID(context.Background(), "seller-1")
	require.NoError(t, err)
	assert.Equal(t, 4.0, seller.Rating)
	assert.Equal(t, 1, seller.TotalRatings)

	notifications, _, err := env.notifications.List(context.Background(), "seller-1", "all", 1, 10)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, entity.NotificationNewReview, notifications[0].Type)
}

func TestCreateReviewRequiresCompletedOrder(t *testing.T) {
	env := newTestEnv()
	env.seedUser("buyer-1", entity.RoleBuyer)
	env.seedUser("seller-1", entity.RoleSeller)
	product := env.seedProduct("seller-1", 1000, entity.ProductStatusActive)
	order := env.seedOrder("buyer-1", "seller-1", product.ID, entity.OrderStatusConfirmed, 1000)

	_, err := env.reviews.CreateReview(context.Background(), "buyer-1", CreateReviewInput{
		OrderID: order.ID,
		Rating:  5,
		Comment: "great",
	})
	assert.True(t, errors.Is(err, "INVALID_STATE"))
}

func TestCreateReviewBuyerOnly(t *testing.T) {
	env := newTestEnv()
	env.seedUser("buyer-1", entity.RoleBuyer)
	env.seedUser("seller-1", entity.RoleSeller)
	env.seedUser("stranger", entity.RoleBuyer)
	product := env.seedProduct("seller-1", 1000, entity.ProductStatusSold)
	order := env.seedOrder("buyer-1", "seller-1", product.ID, entity.OrderStatusCompleted, 1000)

	_, err := env.reviews.CreateReview(context.Background(), "stranger", CreateReviewInput{
		OrderID: order.ID,
		Rating:  5,
		Comment: "great",
	})
	assert.True(t, errors.Is(err, "FORBIDDEN"))
}

func TestCreateReviewDuplicateLeavesAggregateUntouched(t *testing.T) {
	env := newTestEnv()
	env.seedUser("buyer-1", entity.RoleBuyer)
	env.seedUser("seller-1", entity.RoleSeller)
	product := env.seedProduct("seller-1", 1000, entity.ProductStatusSold)
	first := env.seedOrder("buyer-1", "seller-1", product.ID, entity.OrderStatusCompleted, 1000)
	second := env.seedOrder("buyer-1", "seller-1", product.ID, entity.OrderStatusCompleted, 1000)

	_, err := env.reviews.CreateReview(context.Background(), "buyer-1", CreateReviewInput{
		OrderID: first.ID,
		Rating:  5,
		Comment: "great",
	})
	require.NoError(t, err)

	// Same buyer, same seller, same product via a different order.
	_, err = env.reviews.CreateReview(context.Background(), "buyer-1", CreateReviewInput{
		OrderID: second.ID,
		Rating:  1,
		Comment: "changed my mind",
	})
	assert.True(t, errors.Is(err, "CONFLICT"))

	seller, err := env.userRepo.GetByID(context.Background(), "seller-1")
	require.NoError(t, err)
	assert.Equal(t, 5.0, seller.Rating)
	assert.Equal(t, 1, seller.TotalRatings)
}

func TestRatingRunningMean(t *testing.T) {
	env := newTestEnv()
	env.seedUser("seller-1", entity.RoleSeller)

	scores := []int{5, 3, 4, 4, 1}
	sum := 0
	for i, score := range scores {
		seller, err := env.reputation.RecordRating(context.Background(), "seller-1", score)
		require.NoError(t, err)
		sum += score
		assert.Equal(t, i+1, seller.TotalRatings)
		assert.InDelta(t, float64(sum)/float64(i+1), seller.Rating, 1e-9)
	}
}

func TestRecordRatingRejectsOutOfRange(t *testing.T) {
	env := newTestEnv()
	env.seedUser("seller-1", entity.RoleSeller)

	for _, score := range []int{0, 6, -1} {
		_, err := env.reputation.RecordRating(context.Background(), "seller-1", score)
		assert.True(t, errors.Is(err, "VALIDATION_ERROR"), "score %d should be rejected", score)
	}
}

func TestConcurrentRatingsLoseNothing(t *testing.T) {
	env := newTestEnv()
	env.seedUser("seller-1", entity.RoleSeller)

	const raters = 50
	var wg sync.WaitGroup
	wg.Add(raters)
	for i := 0; i < raters; i++ {
		go func() {
			defer wg.Done()
			_, err := env.reputation.RecordRating(context.Background(), "seller-1", 4)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	seller, err := env.userRepo.GetByID(context.Background(), "seller-1")
	require.NoError(t, err)
	assert.Equal(t, raters, seller.TotalRatings)
	assert.InDelta(t, 4.0, seller.Rating, 1e-9)
}

func TestListSellerReviews(t *testing.T) {
	env := newTestEnv()
	env.seedUser("buyer-1", entity.RoleBuyer)
	env.seedUser("buyer-2", entity.RoleBuyer)
	env.seedUser("seller-1", entity.RoleSeller)
	product := env.seedProduct("seller-1", 1000, entity.ProductStatusSold)

	for _, buyer := range []string{"buyer-1", "buyer-2"} {
		order := env.seedOrder(buyer, "seller-1", product.ID, entity.OrderStatusCompleted, 1000)
		_, err := env.reviews.CreateReview(context.Background(), buyer, CreateReviewInput{
			OrderID: order.ID,
			Rating:  4,
			Comment: "good",
		})
		require.NoError(t, err)
	}

	reviews, total, err := env.reviews.ListSellerReviews(context.Background(), "seller-1", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, reviews, 2)
}
