package repository

import (
	"context"
	"testing"
	"time"

	"invoice-dashboard-backend/internal/models"
	"invoice-dashboard-backend/internal/testhelpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestFetchCardData_Empty(t *testing.T) {
	store := NewStore(testhelpers.SetupTestDB(t))

	cards, err := store.Dashboard.FetchCardData(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), cards.NumberOfCustomers)
	assert.Equal(t, int64(0), cards.NumberOfInvoices)
	assert.Equal(t, "$0.00", cards.TotalPaidInvoices)
	assert.Equal(t, "$0.00", cards.TotalPendingInvoices)
}

func TestFetchCardData_NoPaidInvoices(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	store := NewStore(db)

	c := &models.Customer{UUID: "u1", Name: "Evil Rabbit", Email: "evil@rabbit.com"}
	require.NoError(t, db.Create(c).Error)
	for _, amount := range []int64{15795, 666} {
		inv := &models.Invoice{CustomerID: c.ID, Amount: amount, Status: models.InvoiceStatusPending, Date: datatypes.Date(time.Now())}
		require.NoError(t, db.Create(inv).Error)
	}

	cards, err := store.Dashboard.FetchCardData(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), cards.NumberOfCustomers)
	assert.Equal(t, int64(2), cards.NumberOfInvoices)
	assert.Equal(t, "$0.00", cards.TotalPaidInvoices)
	assert.Equal(t, "$164.61", cards.TotalPendingInvoices)
}

func TestFetchCardData_StorageFault(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	store := NewStore(db)
	require.NoError(t, db.Migrator().DropTable(&models.Invoice{}))

	_, err := store.Dashboard.FetchCardData(context.Background())
	assert.ErrorIs(t, err, ErrFetchCardData)
}
