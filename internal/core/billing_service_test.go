package core

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v79"

	"productpulse-backend-go/internal/db"
	"productpulse-backend-go/internal/models"
)

func newBillingServiceForTest(t *testing.T, payments *fakePaymentRepo, users *fakeUserRepo) *billingService {
	t.Helper()
	svc, ok := NewBillingService(payments, users, "sk_test_dummy").(*billingService)
	require.True(t, ok)
	return svc
}

func TestCreatePaymentIntentReturnsClientSecret(t *testing.T) {
	svc := newBillingServiceForTest(t, &fakePaymentRepo{}, &fakeUserRepo{})
	var gotParams *stripe.PaymentIntentParams
	svc.createIntent = func(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
		gotParams = params
		return &stripe.PaymentIntent{ClientSecret: "pi_secret_123"}, nil
	}

	secret, err := svc.CreatePaymentIntent(context.Background(), 4999)

	require.NoError(t, err)
	assert.Equal(t, "pi_secret_123", secret)
	require.NotNil(t, gotParams)
	assert.Equal(t, int64(4999), *gotParams.Amount)
	assert.Equal(t, string(stripe.CurrencyUSD), *gotParams.Currency)
}

func TestCreatePaymentIntentRejectsNonPositiveAmount(t *testing.T) {
	svc := newBillingServiceForTest(t, &fakePaymentRepo{}, &fakeUserRepo{})
	svc.createIntent = func(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
		t.Fatal("gateway should not be reached")
		return nil, nil
	}

	_, err := svc.CreatePaymentIntent(context.Background(), 0)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = svc.CreatePaymentIntent(context.Background(), -5)
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestCreatePaymentIntentWrapsGatewayError(t *testing.T) {
	svc := newBillingServiceForTest(t, &fakePaymentRepo{}, &fakeUserRepo{})
	svc.createIntent = func(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
		return nil, errors.New("card network down")
	}

	_, err := svc.CreatePaymentIntent(context.Background(), 100)

	assert.ErrorIs(t, err, ErrGateway)
}

func TestRecordPaymentLogsAndSubscribes(t *testing.T) {
	var logged *models.Payment
	var subscribedEmail string
	payments := &fakePaymentRepo{createFn: func(ctx context.Context, p *models.Payment) error {
		logged = p
		return nil
	}}
	users := &fakeUserRepo{setSubscribedFn: func(ctx context.Context, email string) error {
		subscribedEmail = email
		return nil
	}}
	svc := newBillingServiceForTest(t, payments, users)

	err := svc.RecordPayment(context.Background(), "payer@example.com", models.RecordPaymentRequest{
		Amount:        2500,
		TransactionID: "txn_1",
	})

	require.NoError(t, err)
	require.NotNil(t, logged)
	assert.Equal(t, "payer@example.com", logged.UserEmail)
	assert.Equal(t, int64(2500), logged.Amount)
	assert.Equal(t, "txn_1", logged.TransactionID)
	assert.Equal(t, "payer@example.com", subscribedEmail)
}

func TestRecordPaymentToleratesMissingUser(t *testing.T) {
	users := &fakeUserRepo{setSubscribedFn: func(ctx context.Context, email string) error {
		return db.ErrNotFound
	}}
	svc := newBillingServiceForTest(t, &fakePaymentRepo{}, users)

	err := svc.RecordPayment(context.Background(), "gone@example.com", models.RecordPaymentRequest{
		Amount:        100,
		TransactionID: "txn_2",
	})

	assert.NoError(t, err)
}
