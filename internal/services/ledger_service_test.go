package services

import (
	"context"
	"errors"
	"testing"

	"github.com/gstledger/ledger-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLedgerFixture(t *testing.T) (*fakeBackend, *AccountingStore, *LedgerService) {
	t.Helper()
	backend := newFakeBackend()
	backend.parties.rows = []models.Party{
		{ID: "p1", Name: "Kumar Stores"},
		{ID: "p2", Name: "Lakshmi Agencies"},
	}
	store := newLoadedStore(t, backend)
	return backend, store, NewLedgerService(store)
}

func TestLedgerService_PostEntry_DefaultParticulars(t *testing.T) {
	_, _, svc := newLedgerFixture(t)
	ctx := context.Background()

	credit, err := svc.PostEntry(ctx, PostEntryRequest{
		PartyID: "p1", Date: "2026-04-02", VoucherType: models.VoucherReceipt, Direction: "credit", Amount: dec("1000"),
	})
	require.NoError(t, err)
	assert.Equal(t, "By Kumar Stores", credit.Particulars)
	assert.Equal(t, "02-Apr-26", credit.Date)
	assert.Equal(t, 1, credit.VoucherNo)
	assert.Nil(t, credit.Debit)
	assert.True(t, dec("1000").Equal(credit.CreditAmount()))

	debit, err := svc.PostEntry(ctx, PostEntryRequest{
		PartyID: "p1", Date: "2026-04-03", VoucherType: models.VoucherPayment, Direction: "Debit", Amount: dec("400"),
	})
	require.NoError(t, err)
	assert.Equal(t, "To Kumar Stores", debit.Particulars)
	assert.Equal(t, 1, debit.VoucherNo)
	assert.Nil(t, debit.Credit)

	custom, err := svc.PostEntry(ctx, PostEntryRequest{
		PartyID: "p2", Date: "2026-04-03", VoucherType: models.VoucherReceipt, Direction: "credit", Amount: dec("50"), Particulars: "By Cheque 0042",
	})
	require.NoError(t, err)
	assert.Equal(t, "By Cheque 0042", custom.Particulars)
	assert.Equal(t, 2, custom.VoucherNo)
}

func TestLedgerService_PostEntry_Validation(t *testing.T) {
	_, store, svc := newLedgerFixture(t)

	_, err := svc.PostEntry(context.Background(), PostEntryRequest{
		PartyID: "p1", VoucherType: "Barter", Direction: "sideways", Amount: dec("0"),
	})

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "date")
	assert.Contains(t, verr.Fields, "voucher_type")
	assert.Contains(t, verr.Fields, "direction")
	assert.Contains(t, verr.Fields, "amount")
	assert.Empty(t, store.LedgerEntries())
}

func TestLedgerService_PostEntry_UnknownParty(t *testing.T) {
	_, _, svc := newLedgerFixture(t)

	_, err := svc.PostEntry(context.Background(), PostEntryRequest{
		PartyID: "ghost", Date: "2026-04-02", VoucherType: models.VoucherReceipt, Direction: "credit", Amount: dec("1"),
	})
	assert.ErrorIs(t, err, ErrUnknownParty)
}

func TestLedgerService_PostEntry_PersistenceFailure(t *testing.T) {
	backend, store, svc := newLedgerFixture(t)
	backend.ledger.createErr = errBackend

	_, err := svc.PostEntry(context.Background(), PostEntryRequest{
		PartyID: "p1", Date: "2026-04-02", VoucherType: models.VoucherReceipt, Direction: "credit", Amount: dec("1"),
	})
	assert.ErrorIs(t, err, ErrPersistence)
	assert.Empty(t, store.LedgerEntries())
}

func TestLedgerService_Statement_RunningBalance(t *testing.T) {
	backend := newFakeBackend()
	backend.parties.rows = []models.Party{{ID: "P", Name: "Kumar Stores"}}
	backend.ledger.rows = []models.LedgerEntry{
		{ID: "e1", PartyID: "P", VoucherType: models.VoucherReceipt, VoucherNo: 1, Credit: decPtr("1000")},
		{ID: "e2", PartyID: "X", VoucherType: models.VoucherReceipt, VoucherNo: 2, Credit: decPtr("75")},
		{ID: "e3", PartyID: "P", VoucherType: models.VoucherSales, VoucherNo: 1, Debit: decPtr("400")},
		{ID: "e4", PartyID: "P", VoucherType: models.VoucherSales, VoucherNo: 2, Debit: decPtr("800")},
	}
	svc := NewLedgerService(newLoadedStore(t, backend))

	statement := svc.Statement("P")
	require.Len(t, statement.Rows, 3)
	assert.Equal(t, "Kumar Stores", statement.PartyName)
	assert.Equal(t, "1,000.00 Cr", statement.Rows[0].Balance.String())
	assert.Equal(t, "600.00 Cr", statement.Rows[1].Balance.String())
	assert.Equal(t, "200.00 Dr", statement.Rows[2].Balance.String())
	assert.True(t, dec("1200").Equal(statement.TotalDebits))
	assert.True(t, dec("1000").Equal(statement.TotalCredits))
	assert.Equal(t, models.BalanceDebit, statement.Closing.Type)

	all := svc.Statement("")
	require.Len(t, all.Rows, 4)
	assert.Equal(t, "Unknown", all.Rows[1].PartyName)
}

func TestLedgerService_NextVoucherNo(t *testing.T) {
	_, _, svc := newLedgerFixture(t)

	n, err := svc.NextVoucherNo(models.VoucherContra)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = svc.NextVoucherNo("Gift")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestLedgerService_EditEntry(t *testing.T) {
	_, _, svc := newLedgerFixture(t)
	ctx := context.Background()

	entry, err := svc.PostEntry(ctx, PostEntryRequest{
		PartyID: "p1", Date: "2026-04-02", VoucherType: models.VoucherReceipt, Direction: "credit", Amount: dec("1000"),
	})
	require.NoError(t, err)

	date := "2026-04-09"
	edited, err := svc.EditEntry(ctx, entry.ID, models.UpdateLedgerEntryRequest{Date: &date, Credit: decPtr("900")})
	require.NoError(t, err)
	assert.Equal(t, "09-Apr-26", edited.Date)
	assert.True(t, dec("900").Equal(edited.CreditAmount()))

	ghost := "ghost"
	_, err = svc.EditEntry(ctx, entry.ID, models.UpdateLedgerEntryRequest{PartyID: &ghost})
	assert.ErrorIs(t, err, ErrUnknownParty)

	bad := models.VoucherType("Gift")
	_, err = svc.EditEntry(ctx, entry.ID, models.UpdateLedgerEntryRequest{VoucherType: &bad})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.EditEntry(ctx, "missing", models.UpdateLedgerEntryRequest{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLedgerService_PostEntry_VoucherNoMustBeUnused(t *testing.T) {
	_, store, svc := newLedgerFixture(t)
	ctx := context.Background()

	one := 1
	req := PostEntryRequest{
		PartyID: "p1", Date: "2026-04-02", VoucherType: models.VoucherReceipt, VoucherNo: &one, Direction: "credit", Amount: dec("100"),
	}
	_, err := svc.PostEntry(ctx, req)
	require.NoError(t, err)

	_, err = svc.PostEntry(ctx, req)
	assert.ErrorIs(t, err, ErrDuplicate)
	assert.Len(t, store.LedgerEntries(), 1)

	// the same number is free in another voucher type's sequence
	req.VoucherType = models.VoucherPayment
	_, err = svc.PostEntry(ctx, req)
	assert.NoError(t, err)
}

func TestLedgerService_PostEntry_RejectsSalesVoucher(t *testing.T) {
	backend, _, svc := newLedgerFixture(t)

	_, err := svc.PostEntry(context.Background(), PostEntryRequest{
		PartyID: "p1", Date: "2026-04-02", VoucherType: models.VoucherSales, Direction: "debit", Amount: dec("99"),
	})

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "voucher_type")
	assert.Empty(t, backend.ledger.rows)
}

func TestLedgerService_EditEntry_VoucherNumbers(t *testing.T) {
	_, _, svc := newLedgerFixture(t)
	ctx := context.Background()

	post := func(voucherType models.VoucherType) models.LedgerEntry {
		entry, err := svc.PostEntry(ctx, PostEntryRequest{
			PartyID: "p1", Date: "2026-04-02", VoucherType: voucherType, Direction: "credit", Amount: dec("100"),
		})
		require.NoError(t, err)
		return entry
	}
	first := post(models.VoucherReceipt)
	second := post(models.VoucherReceipt)
	payment := post(models.VoucherPayment)

	taken := first.VoucherNo
	_, err := svc.EditEntry(ctx, second.ID, models.UpdateLedgerEntryRequest{VoucherNo: &taken})
	assert.ErrorIs(t, err, ErrDuplicate)

	receipt := models.VoucherReceipt
	_, err = svc.EditEntry(ctx, payment.ID, models.UpdateLedgerEntryRequest{VoucherType: &receipt})
	assert.ErrorIs(t, err, ErrDuplicate)

	sales := models.VoucherSales
	_, err = svc.EditEntry(ctx, payment.ID, models.UpdateLedgerEntryRequest{VoucherType: &sales})
	assert.ErrorIs(t, err, ErrValidation)

	own := second.VoucherNo
	_, err = svc.EditEntry(ctx, second.ID, models.UpdateLedgerEntryRequest{VoucherNo: &own, VoucherType: &receipt})
	assert.NoError(t, err)

	free := 7
	edited, err := svc.EditEntry(ctx, second.ID, models.UpdateLedgerEntryRequest{VoucherNo: &free})
	require.NoError(t, err)
	assert.Equal(t, 7, edited.VoucherNo)
}
