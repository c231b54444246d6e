package services

import (
	"context"
	"errors"
	"testing"

	"github.com/gstledger/ledger-api/internal/models"
	"github.com/gstledger/ledger-api/internal/statemachine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountingStore_LoadAll_EmptyBackendUsesDefaults(t *testing.T) {
	store := NewAccountingStore(newFakeBackend().repos(), testCompany)
	assert.True(t, store.Loading())

	require.NoError(t, store.LoadAll(context.Background()))

	assert.False(t, store.Loading())
	assert.Equal(t, statemachine.SnapshotReady, store.State())
	assert.Equal(t, testCompany.Name, store.Company().Name)
	assert.Empty(t, store.Company().ID)
	assert.NotNil(t, store.Parties())
	assert.Empty(t, store.Invoices())
	assert.Empty(t, store.LedgerEntries())
}

func TestAccountingStore_LoadAll_ResolvesInvoiceParties(t *testing.T) {
	backend := newFakeBackend()
	backend.company.company = &models.Company{ID: "c1", Name: "Persisted Co"}
	backend.parties.rows = []models.Party{{ID: "p1", Name: "Kumar Stores"}}
	backend.invoices.rows = []models.Invoice{
		{ID: "i1", InvoiceNo: 1, PartyID: "p1"},
		{ID: "i2", InvoiceNo: 2, PartyID: "gone"},
		{ID: "i3", InvoiceNo: 3, PartyID: "p2", Party: models.Party{ID: "p2", Name: "Joined Row"}},
	}

	store := newLoadedStore(t, backend)

	assert.Equal(t, "Persisted Co", store.Company().Name)
	invoices := store.Invoices()
	require.Len(t, invoices, 3)
	assert.Equal(t, "Kumar Stores", invoices[0].Party.Name)
	assert.Equal(t, "Unknown", invoices[1].Party.Name)
	assert.Equal(t, "Joined Row", invoices[2].Party.Name)
}

func TestAccountingStore_LoadAll_FailureKeepsSnapshot(t *testing.T) {
	backend := newFakeBackend()
	backend.parties.rows = []models.Party{{ID: "p1", Name: "Kumar Stores"}}
	store := newLoadedStore(t, backend)

	backend.parties.rows = nil
	backend.ledger.listErr = errBackend
	err := store.RefreshData(context.Background())

	assert.ErrorIs(t, err, ErrPersistence)
	assert.ErrorIs(t, err, errBackend)
	assert.False(t, store.Loading())
	assert.Equal(t, statemachine.SnapshotFailed, store.State())
	assert.Len(t, store.Parties(), 1)
}

func TestAccountingStore_NextInvoiceNo(t *testing.T) {
	t.Run("empty register starts at one", func(t *testing.T) {
		store := newLoadedStore(t, newFakeBackend())
		assert.Equal(t, 1, store.NextInvoiceNo())
	})

	t.Run("gaps are not reused", func(t *testing.T) {
		backend := newFakeBackend()
		backend.invoices.rows = []models.Invoice{
			{ID: "a", InvoiceNo: 1}, {ID: "b", InvoiceNo: 2}, {ID: "d", InvoiceNo: 4},
		}
		store := newLoadedStore(t, backend)
		assert.Equal(t, 5, store.NextInvoiceNo())
	})
}

func TestAccountingStore_NextVoucherNo_IndependentSequences(t *testing.T) {
	backend := newFakeBackend()
	backend.ledger.rows = []models.LedgerEntry{
		{ID: "e1", VoucherType: models.VoucherPayment, VoucherNo: 1},
		{ID: "e2", VoucherType: models.VoucherPayment, VoucherNo: 2},
		{ID: "e3", VoucherType: models.VoucherReceipt, VoucherNo: 1},
	}
	store := newLoadedStore(t, backend)

	assert.Equal(t, 3, store.NextVoucherNo(models.VoucherPayment))
	assert.Equal(t, 2, store.NextVoucherNo(models.VoucherReceipt))
	assert.Equal(t, 1, store.NextVoucherNo(models.VoucherJournal))
}

func TestAccountingStore_AddParty(t *testing.T) {
	backend := newFakeBackend()
	store := newLoadedStore(t, backend)
	ctx := context.Background()

	first, err := store.AddParty(ctx, models.Party{Name: "Kumar Stores", State: "Tamil Nadu"})
	require.NoError(t, err)
	second, err := store.AddParty(ctx, models.Party{Name: "Nowhere Ltd", State: "Atlantis"})
	require.NoError(t, err)

	assert.NotEmpty(t, first.ID)
	assert.Equal(t, "33", first.StateCode)
	assert.Equal(t, "", second.StateCode)

	parties := store.Parties()
	require.Len(t, parties, 2)
	assert.Equal(t, second.ID, parties[0].ID, "newest party first")
}

func TestAccountingStore_AddParty_FailureLeavesSnapshot(t *testing.T) {
	backend := newFakeBackend()
	store := newLoadedStore(t, backend)
	backend.parties.createErr = errBackend

	_, err := store.AddParty(context.Background(), models.Party{Name: "Kumar Stores"})

	assert.ErrorIs(t, err, ErrPersistence)
	assert.Empty(t, store.Parties())
}

func TestAccountingStore_UpdateParty_PartialFields(t *testing.T) {
	backend := newFakeBackend()
	email := "kumar@example.com"
	backend.parties.rows = []models.Party{{ID: "p1", Name: "Kumar", District: "Salem", Email: &email}}
	store := newLoadedStore(t, backend)

	name := "Kumar Stores"
	require.NoError(t, store.UpdateParty(context.Background(), "p1", models.UpdatePartyRequest{Name: &name}))

	party, ok := store.FindParty("p1")
	require.True(t, ok)
	assert.Equal(t, "Kumar Stores", party.Name)
	assert.Equal(t, "Salem", party.District)
	require.NotNil(t, party.Email)
	assert.Equal(t, email, *party.Email)
}

func TestAccountingStore_UpdateParty_FailureLeavesSnapshot(t *testing.T) {
	backend := newFakeBackend()
	backend.parties.rows = []models.Party{{ID: "p1", Name: "Kumar"}}
	store := newLoadedStore(t, backend)
	backend.parties.updateErr = errBackend

	name := "Changed"
	err := store.UpdateParty(context.Background(), "p1", models.UpdatePartyRequest{Name: &name})

	assert.ErrorIs(t, err, ErrPersistence)
	party, _ := store.FindParty("p1")
	assert.Equal(t, "Kumar", party.Name)
}

func TestAccountingStore_DeleteParty_KeepsReferences(t *testing.T) {
	backend := newFakeBackend()
	backend.parties.rows = []models.Party{{ID: "p1", Name: "Kumar"}}
	backend.ledger.rows = []models.LedgerEntry{{ID: "e1", PartyID: "p1", VoucherType: models.VoucherReceipt, VoucherNo: 1, Credit: decPtr("100")}}
	store := newLoadedStore(t, backend)

	require.NoError(t, store.DeleteParty(context.Background(), "p1"))

	assert.Empty(t, store.Parties())
	assert.Len(t, store.LedgerEntries(), 1)
	assert.Equal(t, "Unknown", store.PartyName("p1"))
}

func TestAccountingStore_SetCompany(t *testing.T) {
	t.Run("without identity only the snapshot changes", func(t *testing.T) {
		backend := newFakeBackend()
		store := newLoadedStore(t, backend)

		require.NoError(t, store.SetCompany(context.Background(), models.Company{Name: "Renamed"}))

		assert.Equal(t, "Renamed", store.Company().Name)
		assert.Zero(t, backend.company.updates)
	})

	t.Run("with identity it is persisted", func(t *testing.T) {
		backend := newFakeBackend()
		backend.company.company = &models.Company{ID: "c1", Name: "Old"}
		store := newLoadedStore(t, backend)

		require.NoError(t, store.SetCompany(context.Background(), models.Company{Name: "New"}))

		assert.Equal(t, 1, backend.company.updates)
		assert.Equal(t, "c1", store.Company().ID)
		assert.Equal(t, "New", store.Company().Name)
	})

	t.Run("failure keeps the old profile", func(t *testing.T) {
		backend := newFakeBackend()
		backend.company.company = &models.Company{ID: "c1", Name: "Old"}
		store := newLoadedStore(t, backend)
		backend.company.updateErr = errBackend

		err := store.SetCompany(context.Background(), models.Company{Name: "New"})

		assert.ErrorIs(t, err, ErrPersistence)
		assert.Equal(t, "Old", store.Company().Name)
	})
}

func TestAccountingStore_AddInvoice_DoesNotRecomputeTotals(t *testing.T) {
	store := newLoadedStore(t, newFakeBackend())

	inv, err := store.AddInvoice(context.Background(), models.Invoice{
		InvoiceNo:   1,
		Items:       []models.InvoiceItem{{SlNo: 1, Quantity: dec("2"), Rate: dec("10"), Amount: dec("20")}},
		TotalAmount: dec("999"),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, inv.ID)
	found, ok := store.FindInvoice(inv.ID)
	require.True(t, ok)
	assert.True(t, dec("999").Equal(found.TotalAmount))
}

func TestAccountingStore_DeleteInvoice_LeavesPairedEntry(t *testing.T) {
	backend := newFakeBackend()
	backend.invoices.rows = []models.Invoice{{ID: "i1", InvoiceNo: 1}}
	backend.ledger.rows = []models.LedgerEntry{{ID: "e1", VoucherType: models.VoucherSales, VoucherNo: 1, Debit: decPtr("560")}}
	store := newLoadedStore(t, backend)

	require.NoError(t, store.DeleteInvoice(context.Background(), "i1"))

	assert.Empty(t, store.Invoices())
	_, ok := store.FindSalesEntry(1)
	assert.True(t, ok)
}

func TestAccountingStore_LedgerEntryCRUD(t *testing.T) {
	backend := newFakeBackend()
	store := newLoadedStore(t, backend)
	ctx := context.Background()

	entry, err := store.AddLedgerEntry(ctx, models.LedgerEntry{
		Date: "01-Apr-26", PartyID: "p1", VoucherType: models.VoucherReceipt, VoucherNo: 1, Credit: decPtr("1000"),
	})
	require.NoError(t, err)

	particulars := "By Cash"
	require.NoError(t, store.UpdateLedgerEntry(ctx, entry.ID, models.UpdateLedgerEntryRequest{Particulars: &particulars}))
	updated, _ := store.FindLedgerEntry(entry.ID)
	assert.Equal(t, "By Cash", updated.Particulars)
	assert.True(t, dec("1000").Equal(updated.CreditAmount()))

	backend.ledger.deleteErr = errBackend
	assert.ErrorIs(t, store.DeleteLedgerEntry(ctx, entry.ID), ErrPersistence)
	assert.Len(t, store.LedgerEntries(), 1)

	backend.ledger.deleteErr = nil
	require.NoError(t, store.DeleteLedgerEntry(ctx, entry.ID))
	assert.Empty(t, store.LedgerEntries())
}

func TestAccountingStore_Aggregates(t *testing.T) {
	backend := newFakeBackend()
	backend.invoices.rows = []models.Invoice{
		{ID: "i1", InvoiceNo: 1, TotalAmount: dec("560")},
		{ID: "i2", InvoiceNo: 2, TotalAmount: dec("440")},
	}
	backend.ledger.rows = []models.LedgerEntry{
		{ID: "e1", PartyID: "P", VoucherType: models.VoucherReceipt, VoucherNo: 1, Credit: decPtr("1000")},
		{ID: "e2", PartyID: "P", VoucherType: models.VoucherSales, VoucherNo: 1, Debit: decPtr("400")},
		{ID: "e3", PartyID: "Q", VoucherType: models.VoucherSales, VoucherNo: 2, Debit: decPtr("900")},
	}
	store := newLoadedStore(t, backend)

	assert.True(t, dec("1000").Equal(store.TotalSales()))
	assert.True(t, dec("500").Equal(store.AverageInvoice()))

	net := store.NetBalance("P")
	assert.True(t, dec("600").Equal(net.Amount))
	assert.Equal(t, models.BalanceCredit, net.Type)

	all := store.NetBalance("")
	assert.True(t, dec("300").Equal(all.Amount))
	assert.Equal(t, models.BalanceDebit, all.Type)
	assert.True(t, dec("1300").Equal(store.TotalDebits("")))
	assert.True(t, dec("1000").Equal(store.TotalCredits("")))

	// recomputed, identical without an intervening mutation
	assert.Equal(t, store.TotalSales().String(), store.TotalSales().String())
	assert.Equal(t, store.NetBalance("P"), store.NetBalance("P"))
}

func TestAccountingStore_AverageInvoice_NoInvoices(t *testing.T) {
	store := newLoadedStore(t, newFakeBackend())
	assert.True(t, store.AverageInvoice().IsZero())
}

func TestAccountingStore_RoundTrip(t *testing.T) {
	backend := newFakeBackend()
	store := newLoadedStore(t, backend)
	ctx := context.Background()

	gstin := "33AAACK1234Q1Z2"
	party, err := store.AddParty(ctx, models.Party{
		Name: "Kumar Stores", Address: []string{"2 Mill Street"}, District: "Salem", State: "Tamil Nadu", GSTIN: &gstin,
	})
	require.NoError(t, err)
	inv, err := store.AddInvoice(ctx, models.Invoice{
		InvoiceNo: 1, Date: "01-Apr-26", PartyID: party.ID, Party: party,
		Items:       []models.InvoiceItem{{SlNo: 1, Description: "Turmeric", Quantity: dec("10"), Unit: "kg", Rate: dec("50"), Per: "kg", Amount: dec("500")}},
		TotalAmount: dec("500"), TotalQuantity: dec("10"), AmountInWords: "INR Five Hundred Only",
	})
	require.NoError(t, err)
	entry, err := store.AddLedgerEntry(ctx, models.LedgerEntry{
		Date: "01-Apr-26", PartyID: party.ID, Particulars: models.SalesParticulars,
		VoucherType: models.VoucherSales, VoucherNo: 1, Debit: decPtr("500"),
	})
	require.NoError(t, err)

	reloaded := newLoadedStore(t, backend)

	gotParty, ok := reloaded.FindParty(party.ID)
	require.True(t, ok)
	assert.Equal(t, party, gotParty)
	gotInvoice, ok := reloaded.FindInvoice(inv.ID)
	require.True(t, ok)
	assert.Equal(t, inv, gotInvoice)
	gotEntry, ok := reloaded.FindLedgerEntry(entry.ID)
	require.True(t, ok)
	assert.Equal(t, entry, gotEntry)
}

func TestAccountingStore_ReadersReturnCopies(t *testing.T) {
	backend := newFakeBackend()
	backend.parties.rows = []models.Party{{ID: "p1", Name: "Kumar", Address: []string{"Line 1"}}}
	store := newLoadedStore(t, backend)

	parties := store.Parties()
	parties[0].Name = "Mutated"
	parties[0].Address[0] = "Mutated"

	party, _ := store.FindParty("p1")
	assert.Equal(t, "Kumar", party.Name)
	assert.Equal(t, "Line 1", party.Address[0])
}

func TestAccountingStore_LoadAll_RejectsOverlap(t *testing.T) {
	store := NewAccountingStore(newFakeBackend().repos(), testCompany)
	require.NoError(t, store.state.BeginLoad(context.Background()))

	err := store.LoadAll(context.Background())
	assert.True(t, errors.Is(err, ErrLoadInProgress))
}

// cancellingPartyRepo cancels the load context while parties are being read
type cancellingPartyRepo struct {
	*fakePartyRepo
	cancel context.CancelFunc
}

func (r *cancellingPartyRepo) List(ctx context.Context) ([]models.Party, error) {
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
		return nil, ctx.Err()
	}
	return r.fakePartyRepo.List(ctx)
}

func TestAccountingStore_LoadAll_CancelledContextCanBeRefreshed(t *testing.T) {
	backend := newFakeBackend()
	backend.parties.rows = []models.Party{{ID: "p1", Name: "Kumar Stores"}}
	ctx, cancel := context.WithCancel(context.Background())
	repos := backend.repos()
	repos.Party = &cancellingPartyRepo{fakePartyRepo: backend.parties, cancel: cancel}
	store := NewAccountingStore(repos, testCompany)

	err := store.LoadAll(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, statemachine.SnapshotFailed, store.State())
	assert.False(t, store.Loading())

	require.NoError(t, store.RefreshData(context.Background()))
	assert.Equal(t, statemachine.SnapshotReady, store.State())
	assert.Len(t, store.Parties(), 1)
}

func TestAccountingStore_LoadAll_ContextCancelledBeforeStart(t *testing.T) {
	backend := newFakeBackend()
	backend.parties.listErr = context.Canceled
	store := NewAccountingStore(backend.repos(), testCompany)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Error(t, store.LoadAll(ctx))
	assert.False(t, store.Loading())

	backend.parties.listErr = nil
	require.NoError(t, store.RefreshData(context.Background()))
	assert.Equal(t, statemachine.SnapshotReady, store.State())
}

func TestAccountingStore_AverageInvoice_RoundsToPaise(t *testing.T) {
	backend := newFakeBackend()
	backend.invoices.rows = []models.Invoice{
		{ID: "i1", InvoiceNo: 1, TotalAmount: dec("300")},
		{ID: "i2", InvoiceNo: 2, TotalAmount: dec("200")},
		{ID: "i3", InvoiceNo: 3, TotalAmount: dec("60")},
	}
	store := newLoadedStore(t, backend)

	assert.Equal(t, "186.67", store.AverageInvoice().String())
}

func TestAccountingStore_VoucherNoInUse(t *testing.T) {
	backend := newFakeBackend()
	backend.ledger.rows = []models.LedgerEntry{
		{ID: "e1", VoucherType: models.VoucherReceipt, VoucherNo: 1, Credit: decPtr("100")},
	}
	store := newLoadedStore(t, backend)

	assert.True(t, store.VoucherNoInUse(models.VoucherReceipt, 1, ""))
	assert.False(t, store.VoucherNoInUse(models.VoucherReceipt, 1, "e1"))
	assert.False(t, store.VoucherNoInUse(models.VoucherPayment, 1, ""))
	assert.False(t, store.VoucherNoInUse(models.VoucherReceipt, 2, ""))
}
