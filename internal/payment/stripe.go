// Package payment holds the payment-provider client.
package payment

import (
	"context"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// IntentCreator is what handlers see; tests substitute a fake.
type IntentCreator interface {
	CreateIntent(ctx context.Context, amountCents int64) (clientSecret string, err error)
}

type StripeClient struct {
	api *client.API
}

func NewStripeClient(secretKey string) *StripeClient {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeClient{api: api}
}

// CreateIntent opens a card payment intent in USD, amount in cents.
func (c *StripeClient) CreateIntent(ctx context.Context, amountCents int64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amountCents),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx
	pi, err := c.api.PaymentIntents.New(params)
	if err != nil {
		return "", err
	}
	return pi.ClientSecret, nil
}
