package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/paymentintent"

	"productpulse-backend-go/internal/db"
	"productpulse-backend-go/internal/models"
)

// Billing errors.
var (
	ErrInvalidAmount = errors.New("amount must be positive")
	ErrGateway       = errors.New("payment gateway operation failed")
)

type billingService struct {
	payments db.PaymentRepository
	users    db.UserRepository
	// createIntent is swapped out in tests.
	createIntent func(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
}

// NewBillingService creates a BillingService talking to Stripe with the
// given secret key. Completed payments flip the payer's subscription.
func NewBillingService(payments db.PaymentRepository, users db.UserRepository, stripeSecretKey string) BillingService {
	stripe.Key = stripeSecretKey
	return &billingService{
		payments:     payments,
		users:        users,
		createIntent: paymentintent.New,
	}
}

// CreatePaymentIntent asks the gateway for a payment intent over the
// given amount in cents and returns its client secret.
func (s *billingService) CreatePaymentIntent(ctx context.Context, amount int64) (string, error) {
	if amount <= 0 {
		return "", fmt.Errorf("%w: %d", ErrInvalidAmount, amount)
	}
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx
	pi, err := s.createIntent(params)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGateway, err)
	}
	return pi.ClientSecret, nil
}

// RecordPayment appends the completed transaction to the payment log and
// marks the user subscribed. The two writes are not atomic.
func (s *billingService) RecordPayment(ctx context.Context, userEmail string, req models.RecordPaymentRequest) error {
	if req.Amount <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidAmount, req.Amount)
	}
	if err := s.payments.Create(ctx, &models.Payment{
		UserEmail:     userEmail,
		Amount:        req.Amount,
		TransactionID: req.TransactionID,
		Date:          time.Now(),
	}); err != nil {
		return err
	}
	if err := s.users.SetSubscribed(ctx, userEmail); err != nil && !errors.Is(err, db.ErrNotFound) {
		return fmt.Errorf("payment recorded, subscription update failed: %w", err)
	}
	return nil
}
