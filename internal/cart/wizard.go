package cart

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Step is one of the four ordinal checkout states.
type Step int

const (
	StepShipping Step = iota + 1
	StepPayment
	StepReview
	StepConfirmation
)

// String returns the display name of the step.
func (s Step) String() string {
	switch s {
	case StepShipping:
		return "shipping"
	case StepPayment:
		return "payment"
	case StepReview:
		return "review"
	case StepConfirmation:
		return "confirmation"
	default:
		return "unknown"
	}
}

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\+?[1-9]\d{0,15}$`)

	phoneCleaner = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")
)

// ShippingDetails are the required fields of the shipping step.
type ShippingDetails struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city"`
	ZipCode   string `json:"zipCode"`
	Country   string `json:"country"`
}

// Validate checks the shipping fields the way the form marks them required.
func (d *ShippingDetails) Validate() error {
	required := map[string]string{
		"firstName": d.FirstName,
		"lastName":  d.LastName,
		"email":     d.Email,
		"phone":     d.Phone,
		"address":   d.Address,
		"city":      d.City,
		"zipCode":   d.ZipCode,
		"country":   d.Country,
	}
	for field, value := range required {
		if strings.TrimSpace(value) == "" {
			return errors.Errorf("cart: field %s is required", field)
		}
	}

	if !emailPattern.MatchString(strings.TrimSpace(d.Email)) {
		return errors.New("cart: invalid email")
	}
	if !phonePattern.MatchString(phoneCleaner.Replace(strings.TrimSpace(d.Phone))) {
		return errors.New("cart: invalid phone")
	}

	return nil
}

// PaymentDetails are the required fields of the payment step.
type PaymentDetails struct {
	CardholderName string `json:"cardholderName"`
	CardNumber     string `json:"cardNumber"`
	ExpiryDate     string `json:"expiryDate"`
	CVV            string `json:"cvv"`
}

// Validate checks the card fields: 13-19 digits after space-stripping, 3-4
// digit CVV.
func (d *PaymentDetails) Validate() error {
	if strings.TrimSpace(d.CardholderName) == "" {
		return errors.New("cart: field cardholderName is required")
	}
	if strings.TrimSpace(d.ExpiryDate) == "" {
		return errors.New("cart: field expiryDate is required")
	}

	number := strings.ReplaceAll(strings.TrimSpace(d.CardNumber), " ", "")
	if len(number) < 13 || len(number) > 19 {
		return errors.New("cart: invalid card number")
	}
	if _, err := strconv.ParseUint(number, 10, 64); err != nil {
		return errors.New("cart: invalid card number")
	}

	cvv := strings.TrimSpace(d.CVV)
	if len(cvv) < 3 || len(cvv) > 4 {
		return errors.New("cart: invalid cvv")
	}

	return nil
}

// ReviewSummary is the read-only recap shown on the review step. It is built
// straight from the raw field values of the two earlier steps.
type ReviewSummary struct {
	Shipping ShippingDetails
	Payment  PaymentDetails
	Items    []Line
	Totals   Summary
}

// OrderRecord is the snapshot persisted under the lastOrder key on completion.
type OrderRecord struct {
	OrderNumber string          `json:"orderNumber"`
	Items       []Line          `json:"items"`
	Shipping    ShippingDetails `json:"shipping"`
	Payment     PaymentDetails  `json:"payment"`
	Timestamp   string          `json:"timestamp"`
}

// Wizard is the four-step checkout state machine.
type Wizard struct {
	store    *Store
	storage  Storage
	step     Step
	shipping ShippingDetails
	payment  PaymentDetails

	// now is swappable so tests get stable order numbers.
	now func() time.Time
}

// NewWizard starts a checkout at the shipping step over the given cart.
func NewWizard(store *Store, storage Storage) *Wizard {
	return &Wizard{
		store:   store,
		storage: storage,
		step:    StepShipping,
		now:     time.Now,
	}
}

// Step returns the current step.
func (w *Wizard) Step() Step {
	return w.step
}

// SetShipping records the shipping form values without validating them.
func (w *Wizard) SetShipping(details ShippingDetails) {
	w.shipping = details
}

// SetPayment records the payment form values without validating them.
func (w *Wizard) SetPayment(details PaymentDetails) {
	w.payment = details
}

// Next advances to the following step if the current step validates.
// The review step is left through Complete, not Next.
func (w *Wizard) Next() error {
	switch w.step {
	case StepShipping:
		if err := w.shipping.Validate(); err != nil {
			return err
		}
		w.step = StepPayment
	case StepPayment:
		if err := w.payment.Validate(); err != nil {
			return err
		}
		w.step = StepReview
	default:
		return errors.Errorf("cart: cannot advance from %s", w.step)
	}

	return nil
}

// Back returns to the previous step. Not allowed from the first step or from
// the terminal confirmation step.
func (w *Wizard) Back() error {
	switch w.step {
	case StepPayment:
		w.step = StepShipping
	case StepReview:
		w.step = StepPayment
	default:
		return errors.Errorf("cart: cannot go back from %s", w.step)
	}

	return nil
}

// Review builds the read-only order summary. Only valid on the review step.
func (w *Wizard) Review() (*ReviewSummary, error) {
	if w.step != StepReview {
		return nil, errors.Errorf("cart: review not available on %s", w.step)
	}

	return &ReviewSummary{
		Shipping: w.shipping,
		Payment:  w.payment,
		Items:    w.store.Lines(),
		Totals:   w.store.Summary(),
	}, nil
}

// Complete finishes checkout: it snapshots the order under the lastOrder key,
// clears the cart and enters the terminal confirmation step. The order number
// is "IW-" plus the completion timestamp in milliseconds.
func (w *Wizard) Complete() (*OrderRecord, error) {
	if w.step != StepReview {
		return nil, errors.Errorf("cart: cannot complete from %s", w.step)
	}

	completedAt := w.now()
	record := &OrderRecord{
		OrderNumber: "IW-" + strconv.FormatInt(completedAt.UnixMilli(), 10),
		Items:       w.store.Lines(),
		Shipping:    w.shipping,
		Payment:     w.payment,
		Timestamp:   completedAt.UTC().Format(time.RFC3339),
	}

	data, err := json.Marshal(record)
	if err != nil {
		return nil, errors.Wrap(err, "encode order record")
	}
	if err := w.storage.Save(keyLastOrder, data); err != nil {
		return nil, err
	}

	if err := w.store.Clear(); err != nil {
		return nil, err
	}

	w.step = StepConfirmation

	return record, nil
}

// LastOrder loads the most recently completed order snapshot from storage.
func LastOrder(storage Storage) (*OrderRecord, error) {
	data, err := storage.Load(keyLastOrder)
	if err != nil {
		return nil, err
	}

	var record OrderRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, errors.Wrap(err, "decode order record")
	}

	return &record, nil
}
