package services

import (
	"context"
	"strings"

	"github.com/gstledger/ledger-api/internal/models"
)

// PartyService validates and normalises party directory changes before they
// reach the store
type PartyService struct {
	store *AccountingStore
}

// NewPartyService creates a new party service
func NewPartyService(store *AccountingStore) *PartyService {
	return &PartyService{store: store}
}

// CreatePartyRequest is the input for a new party. Address is free text,
// one line per row.
type CreatePartyRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"omitempty,email"`
	Address  string `json:"address"`
	District string `json:"district" validate:"required"`
	State    string `json:"state" validate:"required"`
	GSTIN    string `json:"gstin" validate:"max=15"`
}

func (r *CreatePartyRequest) normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.District = strings.TrimSpace(r.District)
	r.State = strings.TrimSpace(r.State)
	r.GSTIN = strings.ToUpper(strings.TrimSpace(r.GSTIN))
}

// List returns the party directory
func (s *PartyService) List() []models.Party {
	return s.store.Parties()
}

// Create validates req and adds the party
func (s *PartyService) Create(ctx context.Context, req CreatePartyRequest) (models.Party, error) {
	req.normalize()
	if err := validateStruct(&req); err != nil {
		return models.Party{}, err
	}

	party := models.Party{
		Name:     req.Name,
		Address:  models.SplitAddress(req.Address),
		District: req.District,
		State:    req.State,
	}
	if req.Email != "" {
		party.Email = &req.Email
	}
	if req.GSTIN != "" {
		party.GSTIN = &req.GSTIN
	}
	return s.store.AddParty(ctx, party)
}

// Update applies a partial update. A changed state re-derives the state code.
func (s *PartyService) Update(ctx context.Context, id string, req models.UpdatePartyRequest) (models.Party, error) {
	if _, ok := s.store.FindParty(id); !ok {
		return models.Party{}, ErrNotFound
	}

	errs := fieldErrors{}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		req.Name = &name
		if name == "" {
			errs.add("name", "is required")
		} else if len(name) > 100 {
			errs.add("name", "must be at most 100 characters")
		}
	}
	if req.Email != nil {
		email := strings.TrimSpace(*req.Email)
		req.Email = &email
		if email != "" {
			if err := validate.Var(email, "email"); err != nil {
				errs.add("email", "must be a valid email address")
			}
		}
	}
	if req.District != nil {
		district := strings.TrimSpace(*req.District)
		req.District = &district
		if district == "" {
			errs.add("district", "is required")
		}
	}
	if req.State != nil {
		state := strings.TrimSpace(*req.State)
		req.State = &state
		if state == "" {
			errs.add("state", "is required")
		}
		code := models.LookupStateCode(state)
		req.StateCode = &code
	}
	if req.GSTIN != nil {
		gstin := strings.ToUpper(strings.TrimSpace(*req.GSTIN))
		req.GSTIN = &gstin
		if len(gstin) > 15 {
			errs.add("gstin", "must be at most 15 characters")
		}
	}
	if req.Address != nil {
		lines := models.SplitAddress(strings.Join(*req.Address, "\n"))
		req.Address = &lines
	}
	if err := errs.merge(nil); err != nil {
		return models.Party{}, err
	}

	if err := s.store.UpdateParty(ctx, id, req); err != nil {
		return models.Party{}, err
	}
	party, _ := s.store.FindParty(id)
	return party, nil
}

// Delete removes a party. Its invoices and ledger entries stay and show "Unknown".
func (s *PartyService) Delete(ctx context.Context, id string) error {
	if _, ok := s.store.FindParty(id); !ok {
		return ErrNotFound
	}
	return s.store.DeleteParty(ctx, id)
}
