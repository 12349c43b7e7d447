// internal/domain/review/service.go
package review

import (
	"context"
	"fmt"
	"time"

	"github.com/your-org/storefront-api/internal/domain/account"
	"github.com/your-org/storefront-api/internal/remotestore"
)

const reviewsTable = "reviews"

// Review is one customer's rating of a product. ReviewerName is resolved
// from the reviewer's profile at read time, not stored with the review.
type Review struct {
	ID           string    `json:"id"`
	ProductID    string    `json:"product_id"`
	UserID       string    `json:"user_id"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment,omitempty"`
	ReviewerName string    `json:"reviewer_name,omitempty"`
	CreatedAt    time.Time `json:"created_at,omitempty"`
}

// Service handles product review reads and writes against the remote store
type Service struct {
	gateway remotestore.Gateway
	account *account.Service
}

// NewService creates a new review service
func NewService(gateway remotestore.Gateway, accountService *account.Service) *Service {
	return &Service{
		gateway: gateway,
		account: accountService,
	}
}

// Add stores a customer's review of a product
func (s *Service) Add(ctx context.Context, customerID, productID string, rating int, comment string) (*Review, error) {
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("rating must be between 1 and 5")
	}

	created, err := s.gateway.Create(ctx, reviewsTable, remotestore.Record{
		"user_id":    customerID,
		"product_id": productID,
		"rating":     rating,
		"comment":    comment,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to add review: %w", err)
	}

	review, err := remotestore.Decode[Review](created)
	if err != nil {
		return nil, err
	}
	s.attachReviewerName(ctx, &review)
	return &review, nil
}

// ListForProduct retrieves a product's reviews, newest first, with
// reviewer names attached. Reviews whose reviewer profile no longer
// resolves are returned without a name rather than dropped.
func (s *Service) ListForProduct(ctx context.Context, productID string) ([]Review, error) {
	records, err := s.gateway.Query(ctx, reviewsTable, remotestore.Filter{"product_id": productID}, remotestore.Page{
		OrderBy:    "created_at",
		Descending: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve reviews: %w", err)
	}

	reviews, err := remotestore.DecodeAll[Review](records)
	if err != nil {
		return nil, err
	}

	for i := range reviews {
		s.attachReviewerName(ctx, &reviews[i])
	}
	return reviews, nil
}

func (s *Service) attachReviewerName(ctx context.Context, review *Review) {
	profile, err := s.account.GetProfile(ctx, review.UserID)
	if err != nil {
		return
	}
	review.ReviewerName = profile.FullName
}
