// internal/domain/account/service.go
package account

import (
	"context"
	"fmt"
	"time"

	"github.com/your-org/storefront-api/internal/domain/pricing"
	"github.com/your-org/storefront-api/internal/remotestore"
)

const profilesTable = "profiles"

// Profile is the customer profile owned by the remote store
type Profile struct {
	ID          string    `json:"id"`
	FullName    string    `json:"full_name,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	IsWholesale bool      `json:"is_wholesale"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
}

// UpdateProfileRequest carries the fields a customer may change
type UpdateProfileRequest struct {
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
}

// Service handles customer profile reads and the tier lookup that
// pricing and checkout calls are threaded with
type Service struct {
	gateway remotestore.Gateway
}

// NewService creates a new account service
func NewService(gateway remotestore.Gateway) *Service {
	return &Service{gateway: gateway}
}

// GetProfile retrieves the customer's profile
func (s *Service) GetProfile(ctx context.Context, customerID string) (*Profile, error) {
	records, err := s.gateway.Query(ctx, profilesTable, remotestore.Filter{"id": customerID}, remotestore.Page{Limit: 1})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve profile: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("profile %s not found", customerID)
	}

	profile, err := remotestore.Decode[Profile](records[0])
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateProfile applies profile changes for the customer
func (s *Service) UpdateProfile(ctx context.Context, customerID string, req *UpdateProfileRequest) error {
	err := s.gateway.Update(ctx, profilesTable, remotestore.Filter{"id": customerID}, remotestore.Record{
		"full_name": req.FullName,
		"phone":     req.Phone,
	})
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	return nil
}

// TierFor resolves the customer's pricing tier from their profile.
// Customers without a readable profile price as retail.
func (s *Service) TierFor(ctx context.Context, customerID string) pricing.Tier {
	profile, err := s.GetProfile(ctx, customerID)
	if err != nil || !profile.IsWholesale {
		return pricing.TierRetail
	}
	return pricing.TierWholesale
}
