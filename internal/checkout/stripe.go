package checkout

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

const currencyUSD = "usd"

// StripeProcessor creates Stripe Checkout Sessions.
type StripeProcessor struct {
	api *client.API
}

// NewStripeProcessor builds a processor for the secret key. apiURL overrides
// the Stripe endpoint when set.
func NewStripeProcessor(secretKey, apiURL string) (*StripeProcessor, error) {
	if secretKey == "" {
		return nil, errors.New("stripe secret key is required")
	}
	cfg := &stripe.BackendConfig{
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelNull},
	}
	if apiURL != "" {
		cfg.URL = stripe.String(apiURL)
	}
	backends := &stripe.Backends{
		API: stripe.GetBackendWithConfig(stripe.APIBackend, cfg),
	}
	return &StripeProcessor{api: client.New(secretKey, backends)}, nil
}

// CreateSession opens a one-item card payment session.
func (p *StripeProcessor) CreateSession(ctx context.Context, req SessionRequest) (string, error) {
	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String(currencyUSD),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name:        stripe.String(req.Product.Name),
					Description: stripe.String(req.Product.Description),
				},
				UnitAmount: stripe.Int64(req.Product.PriceCents),
			},
			Quantity: stripe.Int64(1),
		}},
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(req.SuccessURL),
		CancelURL:  stripe.String(req.CancelURL),
	}
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}
	params.Context = ctx
	params.SetIdempotencyKey(uuid.NewString())

	sess, err := p.api.CheckoutSessions.New(params)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) {
			return "", fmt.Errorf("stripe %d %s: %s", stripeErr.HTTPStatusCode, stripeErr.Code, stripeErr.Msg)
		}
		return "", err
	}
	return sess.URL, nil
}
