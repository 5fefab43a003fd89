package console

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/commercia/backoffice/internal/api"
	"github.com/commercia/backoffice/internal/domain/orderdetail"
	"github.com/commercia/backoffice/internal/domain/product"
	"github.com/commercia/backoffice/pkg/logger"
)

// WizardStep tracks where the operator is in the order composition flow.
type WizardStep int

const (
	StepClosed WizardStep = iota
	StepBuyer
	StepItems
)

// Buyer resolution failure reasons. Submission aborts on any of them,
// before anything has been created.
var (
	ErrBuyerLookup             = errors.New("buyer lookup failed")
	ErrBuyerCreate             = errors.New("buyer creation failed")
	ErrBuyerRelookup           = errors.New("buyer lookup after creation failed")
	ErrBuyerMissingAfterCreate = errors.New("buyer not found after creation")
)

// Line is one product line in the order under composition. Stock is the
// product's stock as recorded at selection time; the quantity clamp and
// the stock patch both work from this copy, not a fresh read.
type Line struct {
	ProductID   int64
	Description string
	UnitValue   float64
	Quantity    int
	Stock       int
	Subtotal    float64
}

// LineResult is the outcome of one line's submission. Detail creation
// and the stock patch are reported separately: a failed patch is logged
// but never blocks the line from counting toward completion.
type LineResult struct {
	Line          int
	DetailCreated bool
	StockPatched  bool
	Err           error
}

// OrderWizard composes an order in two steps: buyer identification, then
// line items plus order metadata. Submission resolves the buyer, creates
// the order header, and then fires every line's detail creation
// concurrently. Failures stay per line: a failed line never halts its
// siblings and nothing already created is rolled back.
type OrderWizard struct {
	client *api.Client
	notify Notifier
	log    *logger.Logger

	Step WizardStep
	// HideExtraFields hides the optional identity fields while the
	// document may still match an existing buyer.
	HideExtraFields bool
	Buyer           BuyerForm
	Meta            OrderForm

	lines   []*Line
	catalog []product.Product

	onSubmitted func(ctx context.Context)
}

// NewOrderWizard creates a closed wizard.
func NewOrderWizard(client *api.Client, notify Notifier, log *logger.Logger) *OrderWizard {
	if log == nil {
		log = logger.NewDefault("order-wizard")
	}
	return &OrderWizard{
		client: client,
		notify: notify,
		log:    log,
		Meta:   NewOrderForm(),
	}
}

// Start opens the wizard at the buyer step, loads the product catalog,
// and seeds one blank line.
func (w *OrderWizard) Start(ctx context.Context) {
	w.Step = StepBuyer
	w.HideExtraFields = true
	w.Buyer.Reset()
	w.Meta.Reset()
	w.lines = nil
	w.AddLine()

	resp, err := w.client.Products().List(ctx)
	if err != nil {
		w.notify.Error(err.Error())
		return
	}
	w.catalog = resp.Data
}

// Open reports whether the wizard is showing.
func (w *OrderWizard) Open() bool {
	return w.Step != StepClosed
}

// Back steps backward: from the items step to the buyer step, from the
// buyer step out of the wizard.
func (w *OrderWizard) Back() {
	switch w.Step {
	case StepItems:
		w.Step = StepBuyer
	case StepBuyer:
		w.Step = StepClosed
	}
}

// ResolveDocument runs the lookup when the operator leaves the document
// field. A match populates the remaining fields and keeps the extended
// fields hidden; a miss reveals them for manual entry.
func (w *OrderWizard) ResolveDocument(ctx context.Context) {
	if w.Buyer.Document == "" {
		return
	}
	resp, err := w.client.Buyers().GetByDocument(ctx, w.Buyer.Document)
	if err != nil {
		w.notify.Error("Could not look up the buyer.")
		return
	}
	if resp.Data != nil {
		w.Buyer.FillFrom(*resp.Data)
		w.HideExtraFields = true
		w.notify.Success("This document already has purchase history.")
		return
	}
	w.notify.Info(resp.Message)
	w.HideExtraFields = false
}

// NextStep advances to the items step. It requires a valid buyer form
// and repeats the lookup-or-create decision, adopting the server's
// identity for the buyer either way.
func (w *OrderWizard) NextStep(ctx context.Context) bool {
	if err := w.Buyer.Validate(); err != nil {
		return false
	}

	resp, err := w.client.Buyers().GetByDocument(ctx, w.Buyer.Document)
	if err != nil {
		w.notify.Error("Could not look up the buyer.")
		return false
	}
	if resp.Data != nil {
		w.Buyer.FillFrom(*resp.Data)
		w.HideExtraFields = true
		w.Step = StepItems
		return true
	}

	w.HideExtraFields = false
	created, err := w.client.Buyers().Create(ctx, w.Buyer.Payload())
	if err != nil {
		w.notify.Error("Could not create the buyer.")
		return false
	}
	if created.Data != nil {
		w.Buyer.FillFrom(*created.Data)
	}
	w.Step = StepItems
	return true
}

// Lines returns the order lines under composition.
func (w *OrderWizard) Lines() []*Line {
	return w.lines
}

// Catalog returns the loaded product list.
func (w *OrderWizard) Catalog() []product.Product {
	return w.catalog
}

// AddLine appends a fresh blank line with the default quantity of one.
func (w *OrderWizard) AddLine() {
	w.lines = append(w.lines, &Line{Quantity: 1})
}

// RemoveLine deletes a line and recomputes the order total.
func (w *OrderWizard) RemoveLine(index int) {
	if index < 0 || index >= len(w.lines) {
		return
	}
	w.lines = append(w.lines[:index], w.lines[index+1:]...)
	w.recalcTotal()
}

// SelectProduct binds a catalog product to a line, copying its price,
// description, and stock, and recomputes the line's subtotal.
func (w *OrderWizard) SelectProduct(index int, productID int64) {
	if index < 0 || index >= len(w.lines) {
		return
	}
	for _, p := range w.catalog {
		if p.ID == productID {
			l := w.lines[index]
			l.ProductID = p.ID
			l.UnitValue = p.Price
			l.Description = p.Description
			l.Stock = p.Stock
			w.recalcLine(l)
			return
		}
	}
}

// SetQuantity updates a line's quantity and recomputes its subtotal.
// A quantity above the line's recorded stock resets to one with a
// warning; a non-positive quantity resets to one silently.
func (w *OrderWizard) SetQuantity(index, quantity int) {
	if index < 0 || index >= len(w.lines) {
		return
	}
	l := w.lines[index]
	l.Quantity = quantity
	if l.Quantity > l.Stock {
		w.notify.Warning("The quantity cannot exceed the available stock.")
		l.Quantity = 1
	} else if l.Quantity < 1 {
		l.Quantity = 1
	}
	w.recalcLine(l)
}

// SetUnitValue updates a line's unit value and recomputes its subtotal.
func (w *OrderWizard) SetUnitValue(index int, value float64) {
	if index < 0 || index >= len(w.lines) {
		return
	}
	l := w.lines[index]
	l.UnitValue = value
	w.recalcLine(l)
}

// Total returns the order total: the sum of all line subtotals.
func (w *OrderWizard) Total() float64 {
	return w.Meta.Total
}

func (w *OrderWizard) recalcLine(l *Line) {
	l.Subtotal = float64(l.Quantity) * l.UnitValue
	w.recalcTotal()
}

func (w *OrderWizard) recalcTotal() {
	total := 0.0
	for _, l := range w.lines {
		total += l.Subtotal
	}
	w.Meta.Total = total
}

// Submit runs the full submission: resolve the buyer, create the order
// header, then fire every line concurrently. Overall success is declared
// only when every line's detail creation acknowledged; the per-line
// results expose any partial outcome, which is never rolled back.
func (w *OrderWizard) Submit(ctx context.Context) ([]LineResult, bool) {
	if !w.formsValid() {
		w.notify.Warning("Please complete all required fields.")
		return nil, false
	}

	buyerID, err := w.resolveBuyer(ctx)
	if err != nil {
		w.notify.Error(err.Error())
		return nil, false
	}

	stop := w.notify.Loading("Creating order...")
	defer stop()

	created, err := w.client.Orders().Create(ctx, w.Meta.Payload())
	if err != nil {
		w.notify.Error("Could not create the order.")
		return nil, false
	}
	if !created.Success || created.Data == nil {
		w.notify.Warning(created.Message)
		return nil, false
	}

	results := w.submitLines(ctx, created.Data.ID, buyerID)
	for _, r := range results {
		if !r.DetailCreated {
			return results, false
		}
	}

	w.notify.Success("Order details created successfully.")
	w.resetForms()
	if w.onSubmitted != nil {
		w.onSubmitted(ctx)
	}
	return results, true
}

func (w *OrderWizard) formsValid() bool {
	if err := w.Buyer.Validate(); err != nil {
		return false
	}
	if err := w.Meta.Validate(); err != nil {
		return false
	}
	if len(w.lines) == 0 {
		return false
	}
	for _, l := range w.lines {
		if l.ProductID == 0 {
			return false
		}
	}
	return true
}

// resolveBuyer looks the buyer up by document and, when absent, creates
// it and looks it up again to adopt the server-issued identity. Each
// failure maps to one enumerated reason; no state needs rolling back on
// any of them.
func (w *OrderWizard) resolveBuyer(ctx context.Context) (int64, error) {
	resp, err := w.client.Buyers().GetByDocument(ctx, w.Buyer.Document)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrBuyerLookup, err)
	}
	if resp.Data != nil {
		w.notify.Success("Buyer found.")
		return resp.Data.ID, nil
	}

	if _, err := w.client.Buyers().Create(ctx, w.Buyer.Payload()); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrBuyerCreate, err)
	}
	w.notify.Success("Buyer created successfully.")

	again, err := w.client.Buyers().GetByDocument(ctx, w.Buyer.Document)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrBuyerRelookup, err)
	}
	if again.Data == nil {
		return 0, ErrBuyerMissingAfterCreate
	}
	return again.Data.ID, nil
}

// submitLines fires one goroutine per line. Each creates the detail row
// and, only after that acknowledged, patches the product's stock down by
// the purchased quantity. A failed patch is logged, not surfaced, and
// the line still counts as created.
func (w *OrderWizard) submitLines(ctx context.Context, orderID, buyerID int64) []LineResult {
	results := make([]LineResult, len(w.lines))

	var wg sync.WaitGroup
	for i, l := range w.lines {
		wg.Add(1)
		go func(i int, l *Line) {
			defer wg.Done()
			results[i] = w.submitLine(ctx, orderID, buyerID, i, l)
		}(i, l)
	}
	wg.Wait()

	return results
}

func (w *OrderWizard) submitLine(ctx context.Context, orderID, buyerID int64, index int, l *Line) LineResult {
	result := LineResult{Line: index}

	payload := orderdetail.Payload{
		OrderID:   orderID,
		BuyerID:   buyerID,
		ProductID: l.ProductID,
		Quantity:  l.Quantity,
		UnitPrice: l.UnitValue,
		Subtotal:  l.Subtotal,
	}
	resp, err := w.client.OrderDetails().Create(ctx, payload)
	if err != nil {
		result.Err = err
		w.notify.Error("Could not create an order detail line.")
		return result
	}
	if !resp.Success {
		result.Err = fmt.Errorf("order detail rejected: %s", resp.Message)
		w.notify.Error("Could not create an order detail line.")
		return result
	}
	result.DetailCreated = true

	newStock := l.Stock - l.Quantity
	st, err := w.client.Products().UpdateStock(ctx, l.ProductID, newStock)
	if err != nil || !st.Success {
		w.log.WithError(err).
			WithField("product_id", l.ProductID).
			Warn("stock update failed")
		return result
	}
	result.StockPatched = true
	w.log.WithField("product_id", l.ProductID).
		WithField("stock", newStock).
		Debug("stock updated")
	return result
}

// resetForms clears all three forms and steps the wizard back one
// position after a fully acknowledged submission.
func (w *OrderWizard) resetForms() {
	w.Buyer.Reset()
	w.Meta.Reset()
	w.lines = nil
	w.AddLine()
	w.HideExtraFields = true
	w.Back()
}
