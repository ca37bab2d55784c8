package checkout

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"resume-roast/internal/shared/apperr"
	"resume-roast/internal/shared/metrics"
	"resume-roast/internal/shared/telemetry"
)

// SessionRequest is what a payment processor needs to open a hosted checkout.
type SessionRequest struct {
	Product    Product
	SuccessURL string
	CancelURL  string
	Metadata   map[string]string
}

// Processor opens hosted checkout sessions and returns the redirect URL.
type Processor interface {
	CreateSession(ctx context.Context, req SessionRequest) (string, error)
}

// Service turns a product key into a checkout redirect.
type Service struct {
	Processor     Processor
	PublicBaseURL string
}

// NewService constructs a Service. A nil processor means no payment key is configured.
func NewService(p Processor, publicBaseURL string) *Service {
	return &Service{Processor: p, PublicBaseURL: publicBaseURL}
}

// CreateSession validates the product key and asks the processor for a
// session. origin is the caller's site; PublicBaseURL is used when it is blank.
func (s *Service) CreateSession(ctx context.Context, productKey, origin string) (string, error) {
	product, ok := Lookup(productKey)
	if !ok {
		return "", fmt.Errorf("checkout: product %q: %w", productKey, apperr.ErrInvalidProduct)
	}
	if s.Processor == nil {
		return "", fmt.Errorf("checkout: payment processor: %w", apperr.ErrConfiguration)
	}

	base := strings.TrimRight(strings.TrimSpace(origin), "/")
	if base == "" {
		base = strings.TrimRight(s.PublicBaseURL, "/")
	}
	req := SessionRequest{
		Product:    product,
		SuccessURL: base + "/success?product=" + url.QueryEscape(product.Key),
		CancelURL:  base + "/?canceled=true",
		Metadata:   map[string]string{"productType": product.Key},
	}

	redirect, err := s.Processor.CreateSession(ctx, req)
	if err != nil {
		metrics.IncRequest("checkout", metrics.OutcomeFailed)
		return "", fmt.Errorf("checkout: create session for %s: %v: %w", product.Key, err, apperr.ErrPaymentService)
	}
	if redirect == "" {
		metrics.IncRequest("checkout", metrics.OutcomeEmpty)
		return "", fmt.Errorf("checkout: session for %s has no url: %w", product.Key, apperr.ErrPaymentService)
	}

	metrics.IncRequest("checkout", metrics.OutcomeOK)
	telemetry.Info("checkout.session_created", map[string]any{
		"request_id": telemetry.RequestID(ctx),
		"product":    product.Key,
		"amount":     product.PriceCents,
	})
	return redirect, nil
}
