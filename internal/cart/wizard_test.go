package cart

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validShipping() ShippingDetails {
	return ShippingDetails{
		FirstName: "Ana",
		LastName:  "Jones",
		Email:     "ana@example.com",
		Phone:     "+1 (555) 010-1234",
		Address:   "1 Fifth Ave",
		City:      "New York",
		ZipCode:   "10003",
		Country:   "US",
	}
}

func validPayment() PaymentDetails {
	return PaymentDetails{
		CardholderName: "Ana Jones",
		CardNumber:     "4242 4242 4242 4242",
		ExpiryDate:     "12/27",
		CVV:            "123",
	}
}

func newTestWizard(t *testing.T) (*Wizard, *Store, *MemoryStorage) {
	t.Helper()

	storage := NewMemoryStorage()
	store, err := NewStore(storage)
	require.NoError(t, err)
	require.NoError(t, store.Add(Line{Name: "Rolex Submariner", Price: "$12,500"}))

	return NewWizard(store, storage), store, storage
}

func TestWizard_HappyPath(t *testing.T) {
	t.Parallel()

	w, store, storage := newTestWizard(t)
	w.now = func() time.Time { return time.UnixMilli(1740000000000) }

	assert.Equal(t, StepShipping, w.Step())

	w.SetShipping(validShipping())
	require.NoError(t, w.Next())
	assert.Equal(t, StepPayment, w.Step())

	w.SetPayment(validPayment())
	require.NoError(t, w.Next())
	assert.Equal(t, StepReview, w.Step())

	summary, err := w.Review()
	require.NoError(t, err)
	assert.Equal(t, "Ana Jones", summary.Payment.CardholderName)
	require.Len(t, summary.Items, 1)
	assert.InDelta(t, 12500*1.08, summary.Totals.Total, 0.001)

	record, err := w.Complete()
	require.NoError(t, err)
	assert.Equal(t, "IW-1740000000000", record.OrderNumber)
	assert.Equal(t, StepConfirmation, w.Step())

	// Completion clears the cart and persists the snapshot.
	assert.Empty(t, store.Lines())
	saved, err := LastOrder(storage)
	require.NoError(t, err)
	assert.Equal(t, record.OrderNumber, saved.OrderNumber)
	require.Len(t, saved.Items, 1)
	assert.Equal(t, "Rolex Submariner", saved.Items[0].Name)
}

func TestWizard_Next_RejectsInvalidShipping(t *testing.T) {
	t.Parallel()

	w, _, _ := newTestWizard(t)

	shipping := validShipping()
	shipping.Email = "not-an-email"
	w.SetShipping(shipping)

	assert.Error(t, w.Next())
	assert.Equal(t, StepShipping, w.Step())

	shipping = validShipping()
	shipping.City = "  "
	w.SetShipping(shipping)

	assert.Error(t, w.Next())
	assert.Equal(t, StepShipping, w.Step())
}

func TestWizard_Next_RejectsInvalidPayment(t *testing.T) {
	t.Parallel()

	w, _, _ := newTestWizard(t)
	w.SetShipping(validShipping())
	require.NoError(t, w.Next())

	payment := validPayment()
	payment.CardNumber = "4242 4242" // too short after stripping spaces
	w.SetPayment(payment)
	assert.Error(t, w.Next())

	payment = validPayment()
	payment.CVV = "12"
	w.SetPayment(payment)
	assert.Error(t, w.Next())

	payment = validPayment()
	payment.CVV = "1234"
	w.SetPayment(payment)
	assert.NoError(t, w.Next())
	assert.Equal(t, StepReview, w.Step())
}

func TestWizard_PhoneValidation(t *testing.T) {
	t.Parallel()

	valid := []string{"+15550101234", "15550101234", "+1 (555) 010-1234"}
	for _, phone := range valid {
		shipping := validShipping()
		shipping.Phone = phone
		assert.NoError(t, shipping.Validate(), phone)
	}

	invalid := []string{"0123456", "phone", "+", ""}
	for _, phone := range invalid {
		shipping := validShipping()
		shipping.Phone = phone
		assert.Error(t, shipping.Validate(), phone)
	}
}

func TestWizard_Back(t *testing.T) {
	t.Parallel()

	w, _, _ := newTestWizard(t)

	// Cannot go back from the first step.
	assert.Error(t, w.Back())

	w.SetShipping(validShipping())
	require.NoError(t, w.Next())
	require.NoError(t, w.Back())
	assert.Equal(t, StepShipping, w.Step())
}

func TestWizard_ConfirmationIsTerminal(t *testing.T) {
	t.Parallel()

	w, _, _ := newTestWizard(t)
	w.SetShipping(validShipping())
	require.NoError(t, w.Next())
	w.SetPayment(validPayment())
	require.NoError(t, w.Next())

	_, err := w.Complete()
	require.NoError(t, err)

	assert.Error(t, w.Back())
	assert.Error(t, w.Next())
	_, err = w.Complete()
	assert.Error(t, err)
}

func TestWizard_CompleteOnlyFromReview(t *testing.T) {
	t.Parallel()

	w, _, _ := newTestWizard(t)

	_, err := w.Complete()
	assert.Error(t, err)

	_, err = w.Review()
	assert.Error(t, err)
}
