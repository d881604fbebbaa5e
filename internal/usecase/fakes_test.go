package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"mtaanimarket/internal/domain/entity"
	"mtaanimarket/pkg/errors"
)

// In-memory repository fakes. The mutexes matter: the rating and
// wishlist tests hammer these from many goroutines to prove the
// usecases rely on repository-level atomicity.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; ok {
		return errors.Conflict("Profile already exists", nil)
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.users[user.ID]
	if !ok {
		return errors.NotFound("User", nil)
	}
	rating, totalRatings := stored.Rating, stored.TotalRatings
	copied := *user
	copied.Rating = rating
	copied.TotalRatings = totalRatings
	copied.UpdatedAt = time.Now()
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) IncrementSellerRating(ctx context.Context, sellerID string, score int) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[sellerID]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	total := user.Rating * float64(user.TotalRatings)
	user.TotalRatings++
	user.Rating = (total + float64(score)) / float64(user.TotalRatings)
	copied := *user
	return &copied, nil
}

type fakeProductRepo struct {
	mu       sync.Mutex
	products map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[string]*entity.Product{}}
}

func (r *fakeProductRepo) Create(ctx context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	product.ID = uuid.New().String()
	product.CreatedAt = time.Now()
	product.UpdatedAt = product.CreatedAt
	copied := *product
	r.products[product.ID] = &copied
	return nil
}

func (r *fakeProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	product, ok := r.products[id]
	if !ok {
		return nil, errors.NotFound("Product", nil)
	}
	copied := *product
	return &copied, nil
}

func (r *fakeProductRepo) Update(ctx context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[product.ID]; !ok {
		return errors.NotFound("Product", nil)
	}
	product.UpdatedAt = time.Now()
	copied := *product
	r.products[product.ID] = &copied
	return nil
}

func (r *fakeProductRepo) UpdateStatus(ctx context.Context, id, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	product, ok := r.products[id]
	if !ok {
		return errors.NotFound("Product", nil)
	}
	product.Status = status
	product.UpdatedAt = time.Now()
	return nil
}

func (r *fakeProductRepo) IncrementViews(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	product, ok := r.products[id]
	if !ok {
		return errors.NotFound("Product", nil)
	}
	product.Views++
	return nil
}

func (r *fakeProductRepo) List(ctx context.Context, filter map[string]interface{}, limit, offset int) ([]*entity.Product, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []*entity.Product
	for _, product := range r.products {
		if status, ok := filter["status"]; ok && product.Status != status {
			continue
		}
		if condition, ok := filter["condition"]; ok && product.Condition != condition {
			continue
		}
		if sellerID, ok := filter["sellerId"]; ok && product.SellerID != sellerID {
			continue
		}
		copied := *product
		matched = append(matched, &copied)
	}
	return paginate(matched, limit, offset), int64(len(matched)), nil
}

func (r *fakeProductRepo) ListBySeller(ctx context.Context, sellerID, status string, limit, offset int) ([]*entity.Product, int64, error) {
	filter := map[string]interface{}{"sellerId": sellerID}
	if status != "" {
		filter["status"] = status
	}
	return r.List(ctx, filter, limit, offset)
}

func (r *fakeProductRepo) CountBySellerStatus(ctx context.Context, sellerID string) (map[string]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	counts := map[string]int64{}
	for _, product := range r.products {
		if product.SellerID == sellerID {
			counts[product.Status]++
		}
	}
	return counts, nil
}

func (r *fakeProductRepo) SellerViewTotal(ctx context.Context, sellerID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var total int64
	for _, product := range r.products {
		if product.SellerID == sellerID {
			total += int64(product.Views)
		}
	}
	return total, nil
}

type fakeOrderRepo struct {
	mu      sync.Mutex
	orders  map[string]*entity.Order
	numbers map[string]bool
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{
		orders:  map[string]*entity.Order{},
		numbers: map[string]bool{},
	}
}

func (r *fakeOrderRepo) Create(ctx context.Context, order *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for {
		id := uuid.New()
		number := fmt.Sprintf("ORD-%X", id[:5])
		if !r.numbers[number] {
			r.numbers[number] = true
			order.OrderNumber = number
			break
		}
	}
	order.ID = uuid.New().String()
	order.CreatedAt = time.Now()
	order.UpdatedAt = order.CreatedAt
	copied := *order
	r.orders[order.ID] = &copied
	return nil
}

func (r *fakeOrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[id]
	if !ok {
		return nil, errors.NotFound("Order", nil)
	}
	copied := *order
	return &copied, nil
}

func (r *fakeOrderRepo) Update(ctx context.Context, order *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orders[order.ID]; !ok {
		return errors.NotFound("Order", nil)
	}
	order.UpdatedAt = time.Now()
	copied := *order
	r.orders[order.ID] = &copied
	return nil
}

func (r *fakeOrderRepo) ListByUser(ctx context.Context, userID, role, status string, limit, offset int) ([]*entity.Order, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []*entity.Order
	for _, order := range r.orders {
		owner := order.BuyerID
		if role == entity.RoleSeller {
			owner = order.SellerID
		}
		if owner != userID {
			continue
		}
		if status != "" && order.Status != status {
			continue
		}
		copied := *order
		matched = append(matched, &copied)
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	return paginate(matched, limit, offset), int64(len(matched)), nil
}

func (r *fakeOrderRepo) CountByStatus(ctx context.Context, userID, role string) (map[string]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	counts := map[string]int64{}
	for _, order := range r.orders {
		owner := order.BuyerID
		if role == entity.RoleSeller {
			owner = order.SellerID
		}
		if owner == userID {
			counts[order.Status]++
		}
	}
	return counts, nil
}

func (r *fakeOrderRepo) SellerSales(ctx context.Context, sellerID string) (int64, float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	var revenue float64
	for _, order := range r.orders {
		if order.SellerID == sellerID && order.Status == entity.OrderStatusCompleted {
			count++
			revenue += order.TotalPrice()
		}
	}
	return count, revenue, nil
}

type fakeReviewRepo struct {
	mu      sync.Mutex
	reviews map[string]*entity.Review
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: map[string]*entity.Review{}}
}

func reviewKey(reviewerID, sellerID, productID string) string {
	return reviewerID + "_" + sellerID + "_" + productID
}

func (r *fakeReviewRepo) Create(ctx context.Context, review *entity.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := reviewKey(review.ReviewerID, review.SellerID, review.ProductID)
	if _, ok := r.reviews[key]; ok {
		return errors.Conflict("You have already reviewed this seller for this product", nil)
	}
	review.ID = uuid.New().String()
	review.CreatedAt = time.Now()
	review.UpdatedAt = review.CreatedAt
	copied := *review
	r.reviews[key] = &copied
	return nil
}

func (r *fakeReviewRepo) GetByID(ctx context.Context, id string) (*entity.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, review := range r.reviews {
		if review.ID == id {
			copied := *review
			return &copied, nil
		}
	}
	return nil, errors.NotFound("Review", nil)
}

func (r *fakeReviewRepo) ListBySeller(ctx context.Context, sellerID string, limit, offset int) ([]*entity.Review, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []*entity.Review
	for _, review := range r.reviews {
		if review.SellerID == sellerID {
			copied := *review
			matched = append(matched, &copied)
		}
	}
	return paginate(matched, limit, offset), int64(len(matched)), nil
}

func (r *fakeReviewRepo) ListByProduct(ctx context.Context, productID string, limit, offset int) ([]*entity.Review, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []*entity.Review
	for _, review := range r.reviews {
		if review.ProductID == productID {
			copied := *review
			matched = append(matched, &copied)
		}
	}
	return paginate(matched, limit, offset), int64(len(matched)), nil
}

type fakeNotificationRepo struct {
	mu            sync.Mutex
	notifications map[string]*entity.Notification
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{notifications: map[string]*entity.Notification{}}
}

func (r *fakeNotificationRepo) Create(ctx context.Context, notification *entity.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	notification.ID = uuid.New().String()
	notification.CreatedAt = time.Now()
	copied := *notification
	r.notifications[notification.ID] = &copied
	return nil
}

func (r *fakeNotificationRepo) GetByID(ctx context.Context, id string) (*entity.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	notification, ok := r.notifications[id]
	if !ok {
		return nil, errors.NotFound("Notification", nil)
	}
	copied := *notification
	return &copied, nil
}

func (r *fakeNotificationRepo) ListByUser(ctx context.Context, userID string, unreadOnly bool, typeFilter string, limit, offset int) ([]*entity.Notification, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []*entity.Notification
	for _, notification := range r.notifications {
		if notification.UserID != userID {
			continue
		}
		if unreadOnly && notification.IsRead {
			continue
		}
		if typeFilter != "" && notification.Type != typeFilter {
			continue
		}
		copied := *notification
		matched = append(matched, &copied)
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	return paginate(matched, limit, offset), int64(len(matched)), nil
}

func (r *fakeNotificationRepo) MarkRead(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	notification, ok := r.notifications[id]
	if !ok {
		return errors.NotFound("Notification", nil)
	}
	notification.IsRead = true
	return nil
}

func (r *fakeNotificationRepo) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var affected int64
	for _, notification := range r.notifications {
		if notification.UserID == userID && !notification.IsRead {
			notification.IsRead = true
			affected++
		}
	}
	return affected, nil
}

func (r *fakeNotificationRepo) CountUnread(ctx context.Context, userID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, notification := range r.notifications {
		if notification.UserID == userID && !notification.IsRead {
			count++
		}
	}
	return count, nil
}

func (r *fakeNotificationRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.notifications[id]; !ok {
		return errors.NotFound("Notification", nil)
	}
	delete(r.notifications, id)
	return nil
}

func (r *fakeNotificationRepo) DeleteAllByUser(ctx context.Context, userID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var affected int64
	for id, notification := range r.notifications {
		if notification.UserID == userID {
			delete(r.notifications, id)
			affected++
		}
	}
	return affected, nil
}

type fakeWishlistRepo struct {
	mu    sync.Mutex
	items map[string]*entity.WishlistItem
}

func newFakeWishlistRepo() *fakeWishlistRepo {
	return &fakeWishlistRepo{items: map[string]*entity.WishlistItem{}}
}

func wishlistKey(userID, productID string) string {
	return userID + "_" + productID
}

func (r *fakeWishlistRepo) Toggle(ctx context.Context, userID, productID string) (bool, *entity.WishlistItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := wishlistKey(userID, productID)
	if _, ok := r.items[key]; ok {
		delete(r.items, key)
		return false, nil, nil
	}
	item := &entity.WishlistItem{
		ID:        key,
		UserID:    userID,
		ProductID: productID,
		CreatedAt: time.Now(),
	}
	r.items[key] = item
	copied := *item
	return true, &copied, nil
}

func (r *fakeWishlistRepo) IsInWishlist(ctx context.Context, userID, productID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.items[wishlistKey(userID, productID)]
	return ok, nil
}

func (r *fakeWishlistRepo) GetUserWishlist(ctx context.Context, userID string, limit, offset int) ([]entity.WishlistItemWithProduct, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []entity.WishlistItemWithProduct
	for _, item := range r.items {
		if item.UserID == userID {
			matched = append(matched, entity.WishlistItemWithProduct{
				ID:        item.ID,
				UserID:    item.UserID,
				ProductID: item.ProductID,
				CreatedAt: item.CreatedAt,
			})
		}
	}
	total := int64(len(matched))
	if offset >= len(matched) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (r *fakeWishlistRepo) GetWishlistCount(ctx context.Context, userID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, item := range r.items {
		if item.UserID == userID {
			count++
		}
	}
	return count, nil
}

type fakeContactRepo struct {
	mu       sync.Mutex
	contacts map[string]*entity.WhatsAppContact
}

func newFakeContactRepo() *fakeContactRepo {
	return &fakeContactRepo{contacts: map[string]*entity.WhatsAppContact{}}
}

func (r *fakeContactRepo) Create(ctx context.Context, contact *entity.WhatsAppContact) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	contact.ID = uuid.New().String()
	copied := *contact
	r.contacts[contact.ID] = &copied
	return nil
}

func (r *fakeContactRepo) GetByID(ctx context.Context, id string) (*entity.WhatsAppContact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	contact, ok := r.contacts[id]
	if !ok {
		return nil, errors.NotFound("Contact", nil)
	}
	copied := *contact
	return &copied, nil
}

func (r *fakeContactRepo) Update(ctx context.Context, contact *entity.WhatsAppContact) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.contacts[contact.ID]; !ok {
		return errors.NotFound("Contact", nil)
	}
	copied := *contact
	r.contacts[contact.ID] = &copied
	return nil
}

func (r *fakeContactRepo) ListBySeller(ctx context.Context, sellerID string, limit, offset int) ([]*entity.WhatsAppContact, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []*entity.WhatsAppContact
	for _, contact := range r.contacts {
		if contact.SellerID == sellerID {
			copied := *contact
			matched = append(matched, &copied)
		}
	}
	return paginate(matched, limit, offset), int64(len(matched)), nil
}

func (r *fakeContactRepo) SellerResponseStats(ctx context.Context, sellerID string) (int64, int64, float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var total, responded, seconds int64
	for _, contact := range r.contacts {
		if contact.SellerID != sellerID {
			continue
		}
		total++
		if contact.IsResponded {
			responded++
			seconds += contact.ResponseTimeSeconds
		}
	}
	var avg float64
	if responded > 0 {
		avg = float64(seconds) / float64(responded)
	}
	return total, responded, avg, nil
}

type fakePusher struct {
	mu       sync.Mutex
	payloads map[string][][]byte
}

func newFakePusher() *fakePusher {
	return &fakePusher{payloads: map[string][][]byte{}}
}

func (p *fakePusher) Push(userID string, payload []byte) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.payloads[userID] = append(p.payloads[userID], payload)
}

func (p *fakePusher) count(userID string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.payloads[userID])
}

func (p *fakePusher) last(userID string) []byte {
	p.mu.Lock()
	defer p.mu.Unlock()
	sent := p.payloads[userID]
	if len(sent) == 0 {
		return nil
	}
	return sent[len(sent)-1]
}

func paginate[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}
