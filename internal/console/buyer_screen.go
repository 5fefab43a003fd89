package console

import (
	"context"

	"github.com/commercia/backoffice/internal/api"
	"github.com/commercia/backoffice/internal/domain/buyer"
	"github.com/commercia/backoffice/pkg/logger"
)

// BuyerScreen is the buyer CRUD screen.
type BuyerScreen struct {
	client *api.Client
	notify Notifier
	log    *logger.Logger

	Form BuyerForm
	// Loading mirrors the table loading flag.
	Loading bool
	// FormVisible toggles between the list view and the form view.
	FormVisible bool
	// SubmitDisabled blocks the submit control while a call is in flight.
	SubmitDisabled bool

	rows    []buyer.Buyer
	editing *buyer.Buyer
}

// NewBuyerScreen creates the buyer screen.
func NewBuyerScreen(client *api.Client, notify Notifier, log *logger.Logger) *BuyerScreen {
	if log == nil {
		log = logger.NewDefault("buyer-screen")
	}
	return &BuyerScreen{client: client, notify: notify, log: log}
}

// Activate loads the buyer list.
func (s *BuyerScreen) Activate(ctx context.Context) {
	s.Loading = true
	resp, err := s.client.Buyers().List(ctx)
	s.Loading = false
	if err != nil {
		s.notify.Error(err.Error())
		return
	}
	s.rows = resp.Data
}

// Rows returns the currently loaded list.
func (s *BuyerScreen) Rows() []buyer.Buyer {
	return s.rows
}

// BeginCreate resets the form and opens it for a new buyer.
func (s *BuyerScreen) BeginCreate() {
	s.Form.Reset()
	s.editing = nil
	s.FormVisible = true
}

// BeginEdit locates the buyer in the loaded list and opens the form
// populated from it. Returns false when the id is not on screen.
func (s *BuyerScreen) BeginEdit(id int64) bool {
	s.Form.Reset()
	s.editing = nil
	for i := range s.rows {
		if s.rows[i].ID == id {
			s.editing = &s.rows[i]
			break
		}
	}
	if s.editing == nil {
		return false
	}
	s.Form.FillFrom(*s.editing)
	s.FormVisible = true
	return true
}

// Submit creates or updates depending on whether an edit target is set.
// The form closes only when the server reports success.
func (s *BuyerScreen) Submit(ctx context.Context) {
	if err := s.Form.Validate(); err != nil {
		return
	}

	s.SubmitDisabled = true
	s.Loading = true

	var st api.Status
	var err error
	if s.editing != nil {
		var resp api.BuyerResult
		resp, err = s.client.Buyers().Edit(ctx, s.editing.ID, s.Form.Payload())
		st = resp.Status
	} else {
		var resp api.BuyerResult
		resp, err = s.client.Buyers().Create(ctx, s.Form.Payload())
		st = resp.Status
	}

	s.SubmitDisabled = false
	s.Loading = false

	if err != nil {
		s.notify.Error(err.Error())
		return
	}
	s.handleStatus(ctx, st)
}

// Delete asks for confirmation, then removes the buyer and re-fetches
// the list. Declining performs no action.
func (s *BuyerScreen) Delete(ctx context.Context, id int64) {
	if !s.notify.ConfirmDelete() {
		return
	}
	stop := s.notify.Loading("Deleting buyer...")
	st, err := s.client.Buyers().Delete(ctx, id)
	stop()
	if err != nil {
		s.notify.Error("We had a problem processing your request. Please try again.")
		return
	}
	s.Activate(ctx)
	s.notify.Success(st.Message)
}

func (s *BuyerScreen) handleStatus(ctx context.Context, st api.Status) {
	if st.Success {
		s.Activate(ctx)
		s.notify.Success(st.Message)
		s.FormVisible = false
		return
	}
	s.notify.Warning("We had a problem processing your request. Please try again.")
}
