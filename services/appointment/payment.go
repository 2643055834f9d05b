package appointment

import (
	"context"
	"math"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"

	"tutorly/gateway"
	"tutorly/models"
)

// RemoteCheckout delegates checkout session creation to the remote API.
type RemoteCheckout struct {
	Gateway gateway.AppointmentGateway
}

func (c *RemoteCheckout) CreateSession(ctx context.Context, payload models.CheckoutPayload) (string, error) {
	return c.Gateway.CreateCheckoutSession(ctx, payload)
}

// StripeCheckout mints the checkout session directly with Stripe. Used when
// the service is configured with its own Stripe key. Payment completion is
// never polled; the webhook updates the appointment status remotely and the
// change is observed on the next list fetch.
type StripeCheckout struct {
	SuccessURL string
	CancelURL  string
}

func (c *StripeCheckout) CreateSession(ctx context.Context, payload models.CheckoutPayload) (string, error) {
	name := payload.Title
	if name == "" {
		name = "Tutoring session"
	}

	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(string(stripe.CurrencyUSD)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(name),
					},
					UnitAmount: stripe.Int64(int64(math.Round(payload.Amount * 100))),
				},
				Quantity: stripe.Int64(1),
			},
		},
		ClientReferenceID: stripe.String(payload.AppointmentID),
		SuccessURL:        stripe.String(c.SuccessURL),
		CancelURL:         stripe.String(c.CancelURL),
	}
	params.Context = ctx
	params.AddMetadata("appointmentId", payload.AppointmentID)

	sess, err := session.New(params)
	if err != nil {
		return "", err
	}
	return sess.URL, nil
}
