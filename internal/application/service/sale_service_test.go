package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mainak-github/sk-electricks-api/internal/domain/entity"
	"github.com/mainak-github/sk-electricks-api/internal/domain/enum"
	"github.com/mainak-github/sk-electricks-api/internal/domain/repository"
	"github.com/mainak-github/sk-electricks-api/pkg/apperror"
	"github.com/mainak-github/sk-electricks-api/pkg/pagination"
)

// in-memory fakes, enough behaviour for the service paths under test

type fakeSaleRepo struct {
	sales     map[uuid.UUID]*entity.Sale
	updateErr error
}

func newFakeSaleRepo() *fakeSaleRepo {
	return &fakeSaleRepo{sales: make(map[uuid.UUID]*entity.Sale)}
}

func (r *fakeSaleRepo) Create(_ context.Context, sale *entity.Sale) error {
	if sale.ID == uuid.Nil {
		sale.ID = uuid.New()
	}
	cp := *sale
	r.sales[sale.ID] = &cp
	return nil
}

func (r *fakeSaleRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Sale, error) {
	sale, ok := r.sales[id]
	if !ok {
		return nil, nil
	}
	cp := *sale
	return &cp, nil
}

func (r *fakeSaleRepo) GetWithLines(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeSaleRepo) GetByNumber(_ context.Context, saleNo string) (*entity.Sale, error) {
	for _, sale := range r.sales {
		if sale.SaleNo == saleNo {
			cp := *sale
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeSaleRepo) Update(_ context.Context, sale *entity.Sale) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	cp := *sale
	r.sales[sale.ID] = &cp
	return nil
}

func (r *fakeSaleRepo) UpdateStatus(_ context.Context, id uuid.UUID, status enum.DocumentStatus) error {
	if sale, ok := r.sales[id]; ok {
		sale.Status = status
	}
	return nil
}

func (r *fakeSaleRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.sales, id)
	return nil
}

func (r *fakeSaleRepo) List(_ context.Context, _ uuid.UUID, _ *repository.DocumentFilterParams) ([]entity.Sale, int64, error) {
	var out []entity.Sale
	for _, sale := range r.sales {
		out = append(out, *sale)
	}
	return out, int64(len(out)), nil
}

func (r *fakeSaleRepo) ListDue(_ context.Context, _ uuid.UUID, _ *pagination.Params) ([]entity.Sale, int64, error) {
	var out []entity.Sale
	for _, sale := range r.sales {
		if sale.Due > 0 && sale.Status != enum.DocumentStatusCancelled {
			out = append(out, *sale)
		}
	}
	return out, int64(len(out)), nil
}

type fakeCustomerRepo struct {
	customers map[uuid.UUID]*entity.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: make(map[uuid.UUID]*entity.Customer)}
}

func (r *fakeCustomerRepo) Create(_ context.Context, customer *entity.Customer) error {
	if customer.ID == uuid.Nil {
		customer.ID = uuid.New()
	}
	r.customers[customer.ID] = customer
	return nil
}

func (r *fakeCustomerRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Customer, error) {
	return r.customers[id], nil
}

func (r *fakeCustomerRepo) GetByPhone(_ context.Context, phone string) (*entity.Customer, error) {
	for _, c := range r.customers {
		if c.Phone == phone {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCustomerRepo) Update(_ context.Context, customer *entity.Customer) error {
	r.customers[customer.ID] = customer
	return nil
}

func (r *fakeCustomerRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.customers, id)
	return nil
}

func (r *fakeCustomerRepo) List(_ context.Context, _ *repository.PartyFilterParams) ([]entity.Customer, int64, error) {
	var out []entity.Customer
	for _, c := range r.customers {
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

type fakeItemRepo struct {
	items map[uuid.UUID]*entity.Item
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{items: make(map[uuid.UUID]*entity.Item)}
}

func (r *fakeItemRepo) Create(_ context.Context, item *entity.Item) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	r.items[item.ID] = item
	return nil
}

func (r *fakeItemRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Item, error) {
	return r.items[id], nil
}

func (r *fakeItemRepo) GetByIDs(_ context.Context, ids []uuid.UUID) ([]entity.Item, error) {
	var out []entity.Item
	for _, id := range ids {
		if item, ok := r.items[id]; ok {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (r *fakeItemRepo) GetByCode(_ context.Context, code string) (*entity.Item, error) {
	for _, item := range r.items {
		if item.Code == code {
			return item, nil
		}
	}
	return nil, nil
}

func (r *fakeItemRepo) Update(_ context.Context, item *entity.Item) error {
	r.items[item.ID] = item
	return nil
}

func (r *fakeItemRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.items, id)
	return nil
}

func (r *fakeItemRepo) List(_ context.Context, _ *repository.ItemFilterParams) ([]entity.Item, int64, error) {
	var out []entity.Item
	for _, item := range r.items {
		out = append(out, *item)
	}
	return out, int64(len(out)), nil
}

func (r *fakeItemRepo) AdjustStockBatch(_ context.Context, deltas map[uuid.UUID]float64) ([]uuid.UUID, error) {
	var failed []uuid.UUID
	for id, delta := range deltas {
		item, ok := r.items[id]
		if !ok {
			failed = append(failed, id)
			continue
		}
		if !item.IsService && item.Stock+delta < 0 {
			failed = append(failed, id)
			continue
		}
		item.Stock += delta
	}
	return failed, nil
}

func newSaleServiceForTest() (*SaleService, *fakeSaleRepo, *fakeCustomerRepo, *fakeItemRepo) {
	saleRepo := newFakeSaleRepo()
	customerRepo := newFakeCustomerRepo()
	itemRepo := newFakeItemRepo()
	return NewSaleService(saleRepo, customerRepo, itemRepo), saleRepo, customerRepo, itemRepo
}

func seedItem(t *testing.T, itemRepo *fakeItemRepo, rate, stock float64, isService bool) *entity.Item {
	t.Helper()
	item := &entity.Item{
		ID:        uuid.New(),
		Name:      "Copper Wire 1.5mm",
		Code:      "CW-15",
		SaleRate:  rate,
		Stock:     stock,
		IsService: isService,
	}
	require.NoError(t, itemRepo.Create(context.Background(), item))
	return item
}

func TestCreateSaleComputesTotals(t *testing.T) {
	svc, _, _, itemRepo := newSaleServiceForTest()
	item := seedItem(t, itemRepo, 100, 10, false)
	userID := uuid.New()

	sale, err := svc.CreateSale(context.Background(), &DocumentInput{
		UserID:        userID,
		Status:        enum.DocumentStatusDraft,
		TransportCost: 50,
		Paid:          100,
		Lines: []DocumentLineInput{
			{ItemID: &item.ID, Quantity: 2, DiscountPercent: 10, TaxPercent: 18},
		},
	})
	require.NoError(t, err)

	// 2 x 100 = 200, -10% = 180, +18% = 212.4
	require.Len(t, sale.Lines, 1)
	assert.Equal(t, 212.4, sale.Lines[0].Total)
	assert.Equal(t, 20.0, sale.Lines[0].DiscountAmount)
	assert.Equal(t, 32.4, sale.Lines[0].TaxAmount)
	assert.Equal(t, 100.0, sale.Lines[0].UnitRate) // zero rate falls back to catalog sale rate
	assert.Equal(t, "Copper Wire 1.5mm", sale.Lines[0].ItemName)

	assert.Equal(t, 262.4, sale.SubTotal)
	assert.Equal(t, 262.4, sale.GrandTotal)
	assert.Equal(t, 100.0, sale.Paid)
	assert.Equal(t, 162.4, sale.Due)
	assert.NotEmpty(t, sale.SaleNo)
}

func TestCreateSaleRejectsEmptyCart(t *testing.T) {
	svc, _, _, _ := newSaleServiceForTest()

	_, err := svc.CreateSale(context.Background(), &DocumentInput{
		UserID: uuid.New(),
	})
	assert.ErrorIs(t, err, apperror.ErrEmptyCart)
}

func TestCreateSaleUnknownItem(t *testing.T) {
	svc, _, _, _ := newSaleServiceForTest()
	missing := uuid.New()

	_, err := svc.CreateSale(context.Background(), &DocumentInput{
		UserID: uuid.New(),
		Lines:  []DocumentLineInput{{ItemID: &missing, Quantity: 1}},
	})
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestCreateSaleFreeTextLineNeedsName(t *testing.T) {
	svc, _, _, _ := newSaleServiceForTest()

	_, err := svc.CreateSale(context.Background(), &DocumentInput{
		UserID: uuid.New(),
		Lines:  []DocumentLineInput{{Quantity: 1, UnitRate: 50}},
	})
	require.Error(t, err)
	assert.Equal(t, 422, apperror.GetAppError(err).Code)
}

func TestCreateSaleCompleteMovesStock(t *testing.T) {
	svc, _, _, itemRepo := newSaleServiceForTest()
	item := seedItem(t, itemRepo, 100, 10, false)

	_, err := svc.CreateSale(context.Background(), &DocumentInput{
		UserID: uuid.New(),
		Status: enum.DocumentStatusComplete,
		Lines:  []DocumentLineInput{{ItemID: &item.ID, Quantity: 3}},
	})
	require.NoError(t, err)
	assert.Equal(t, 7.0, itemRepo.items[item.ID].Stock)
}

func TestCreateSaleDraftLeavesStockAlone(t *testing.T) {
	svc, _, _, itemRepo := newSaleServiceForTest()
	item := seedItem(t, itemRepo, 100, 10, false)

	_, err := svc.CreateSale(context.Background(), &DocumentInput{
		UserID: uuid.New(),
		Status: enum.DocumentStatusDraft,
		Lines:  []DocumentLineInput{{ItemID: &item.ID, Quantity: 3}},
	})
	require.NoError(t, err)
	assert.Equal(t, 10.0, itemRepo.items[item.ID].Stock)
}

func TestCreateSaleInsufficientStock(t *testing.T) {
	svc, saleRepo, _, itemRepo := newSaleServiceForTest()
	item := seedItem(t, itemRepo, 100, 2, false)

	_, err := svc.CreateSale(context.Background(), &DocumentInput{
		UserID: uuid.New(),
		Status: enum.DocumentStatusComplete,
		Lines:  []DocumentLineInput{{ItemID: &item.ID, Quantity: 5}},
	})
	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)
	assert.Equal(t, 2.0, itemRepo.items[item.ID].Stock)
	assert.Empty(t, saleRepo.sales)
}

func TestCreateSaleServiceItemSkipsStock(t *testing.T) {
	svc, _, _, itemRepo := newSaleServiceForTest()
	item := seedItem(t, itemRepo, 500, 0, true)

	sale, err := svc.CreateSale(context.Background(), &DocumentInput{
		UserID: uuid.New(),
		Status: enum.DocumentStatusComplete,
		Lines:  []DocumentLineInput{{ItemID: &item.ID, Quantity: 1}},
	})
	require.NoError(t, err)
	assert.Equal(t, 0.0, itemRepo.items[item.ID].Stock)
	assert.Equal(t, 500.0, sale.GrandTotal)
}

func TestCreateSaleResolvesCustomerName(t *testing.T) {
	svc, _, customerRepo, itemRepo := newSaleServiceForTest()
	item := seedItem(t, itemRepo, 100, 10, false)
	customer := &entity.Customer{ID: uuid.New(), Name: "Ravi Traders"}
	require.NoError(t, customerRepo.Create(context.Background(), customer))

	sale, err := svc.CreateSale(context.Background(), &DocumentInput{
		UserID:  uuid.New(),
		PartyID: &customer.ID,
		Lines:   []DocumentLineInput{{ItemID: &item.ID, Quantity: 1}},
	})
	require.NoError(t, err)
	assert.Equal(t, "Ravi Traders", sale.CustomerName)
}

func TestUpdateSaleForbiddenForOtherUser(t *testing.T) {
	svc, _, _, itemRepo := newSaleServiceForTest()
	item := seedItem(t, itemRepo, 100, 10, false)
	owner := uuid.New()

	sale, err := svc.CreateSale(context.Background(), &DocumentInput{
		UserID: owner,
		Lines:  []DocumentLineInput{{ItemID: &item.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	_, err = svc.UpdateSale(context.Background(), sale.ID, &DocumentInput{
		UserID: uuid.New(),
		Lines:  []DocumentLineInput{{ItemID: &item.ID, Quantity: 2}},
	})
	assert.ErrorIs(t, err, apperror.ErrForbidden)
}

func TestUpdateSaleRepricesAndRestocks(t *testing.T) {
	svc, _, _, itemRepo := newSaleServiceForTest()
	item := seedItem(t, itemRepo, 100, 10, false)
	userID := uuid.New()

	sale, err := svc.CreateSale(context.Background(), &DocumentInput{
		UserID: userID,
		Status: enum.DocumentStatusComplete,
		Lines:  []DocumentLineInput{{ItemID: &item.ID, Quantity: 4}},
	})
	require.NoError(t, err)
	require.Equal(t, 6.0, itemRepo.items[item.ID].Stock)

	updated, err := svc.UpdateSale(context.Background(), sale.ID, &DocumentInput{
		UserID: userID,
		Status: enum.DocumentStatusComplete,
		Lines:  []DocumentLineInput{{ItemID: &item.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	// old movement of 4 reversed, new movement of 1 applied
	assert.Equal(t, 9.0, itemRepo.items[item.ID].Stock)
	assert.Equal(t, 100.0, updated.GrandTotal)
	assert.Equal(t, sale.SaleNo, updated.SaleNo)
	assert.Equal(t, sale.ID, updated.ID)
}

func TestUpdateSaleInsufficientStockKeepsMovement(t *testing.T) {
	svc, saleRepo, _, itemRepo := newSaleServiceForTest()
	item := seedItem(t, itemRepo, 100, 10, false)
	userID := uuid.New()

	sale, err := svc.CreateSale(context.Background(), &DocumentInput{
		UserID: userID,
		Status: enum.DocumentStatusComplete,
		Lines:  []DocumentLineInput{{ItemID: &item.ID, Quantity: 4}},
	})
	require.NoError(t, err)
	require.Equal(t, 6.0, itemRepo.items[item.ID].Stock)

	// the swap must fail as one unit, leaving the original consumption
	// in place and the document Complete with its old lines
	grow := &DocumentInput{
		UserID: userID,
		Status: enum.DocumentStatusComplete,
		Lines:  []DocumentLineInput{{ItemID: &item.ID, Quantity: 100}},
	}
	_, err = svc.UpdateSale(context.Background(), sale.ID, grow)
	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)
	assert.Equal(t, 6.0, itemRepo.items[item.ID].Stock)

	// retrying the same failing update must not drift stock further
	_, err = svc.UpdateSale(context.Background(), sale.ID, grow)
	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)
	assert.Equal(t, 6.0, itemRepo.items[item.ID].Stock)

	stored := saleRepo.sales[sale.ID]
	assert.Equal(t, enum.DocumentStatusComplete, stored.Status)
	assert.Equal(t, sale.GrandTotal, stored.GrandTotal)
}

func TestUpdateSaleRollsBackStockWhenSaveFails(t *testing.T) {
	svc, saleRepo, _, itemRepo := newSaleServiceForTest()
	item := seedItem(t, itemRepo, 100, 10, false)
	userID := uuid.New()

	sale, err := svc.CreateSale(context.Background(), &DocumentInput{
		UserID: userID,
		Status: enum.DocumentStatusComplete,
		Lines:  []DocumentLineInput{{ItemID: &item.ID, Quantity: 4}},
	})
	require.NoError(t, err)
	require.Equal(t, 6.0, itemRepo.items[item.ID].Stock)

	saleRepo.updateErr = errors.New("connection reset")
	_, err = svc.UpdateSale(context.Background(), sale.ID, &DocumentInput{
		UserID: userID,
		Status: enum.DocumentStatusComplete,
		Lines:  []DocumentLineInput{{ItemID: &item.ID, Quantity: 1}},
	})
	require.Error(t, err)
	// the net movement was reversed, the original consumption stands
	assert.Equal(t, 6.0, itemRepo.items[item.ID].Stock)
}

func TestUpdateStatusMovesStockAcrossComplete(t *testing.T) {
	svc, _, _, itemRepo := newSaleServiceForTest()
	item := seedItem(t, itemRepo, 100, 10, false)
	userID := uuid.New()

	sale, err := svc.CreateSale(context.Background(), &DocumentInput{
		UserID: userID,
		Status: enum.DocumentStatusPending,
		Lines:  []DocumentLineInput{{ItemID: &item.ID, Quantity: 2}},
	})
	require.NoError(t, err)
	require.Equal(t, 10.0, itemRepo.items[item.ID].Stock)

	_, err = svc.UpdateStatus(context.Background(), userID, sale.ID, false, enum.DocumentStatusComplete)
	require.NoError(t, err)
	assert.Equal(t, 8.0, itemRepo.items[item.ID].Stock)

	_, err = svc.UpdateStatus(context.Background(), userID, sale.ID, false, enum.DocumentStatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, 10.0, itemRepo.items[item.ID].Stock)
}

func TestUpdateStatusNoOpOnSameStatus(t *testing.T) {
	svc, _, _, itemRepo := newSaleServiceForTest()
	item := seedItem(t, itemRepo, 100, 10, false)
	userID := uuid.New()

	sale, err := svc.CreateSale(context.Background(), &DocumentInput{
		UserID: userID,
		Status: enum.DocumentStatusComplete,
		Lines:  []DocumentLineInput{{ItemID: &item.ID, Quantity: 2}},
	})
	require.NoError(t, err)
	require.Equal(t, 8.0, itemRepo.items[item.ID].Stock)

	_, err = svc.UpdateStatus(context.Background(), userID, sale.ID, false, enum.DocumentStatusComplete)
	require.NoError(t, err)
	assert.Equal(t, 8.0, itemRepo.items[item.ID].Stock)
}

func TestPayDue(t *testing.T) {
	svc, _, _, itemRepo := newSaleServiceForTest()
	item := seedItem(t, itemRepo, 100, 10, false)
	userID := uuid.New()

	sale, err := svc.CreateSale(context.Background(), &DocumentInput{
		UserID: userID,
		Paid:   50,
		Lines:  []DocumentLineInput{{ItemID: &item.ID, Quantity: 2}},
	})
	require.NoError(t, err)
	require.Equal(t, 150.0, sale.Due)

	paid, err := svc.PayDue(context.Background(), userID, sale.ID, false, 100)
	require.NoError(t, err)
	assert.Equal(t, 150.0, paid.Paid)
	assert.Equal(t, 50.0, paid.Due)

	// overpayment drives due negative rather than clamping
	paid, err = svc.PayDue(context.Background(), userID, sale.ID, false, 80)
	require.NoError(t, err)
	assert.Equal(t, 230.0, paid.Paid)
	assert.Equal(t, -30.0, paid.Due)
}

func TestPayDueRejectsNonPositiveAmount(t *testing.T) {
	svc, _, _, itemRepo := newSaleServiceForTest()
	item := seedItem(t, itemRepo, 100, 10, false)
	userID := uuid.New()

	sale, err := svc.CreateSale(context.Background(), &DocumentInput{
		UserID: userID,
		Lines:  []DocumentLineInput{{ItemID: &item.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	_, err = svc.PayDue(context.Background(), userID, sale.ID, false, 0)
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)

	_, err = svc.PayDue(context.Background(), userID, sale.ID, false, -5)
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestDeleteSaleRestoresStock(t *testing.T) {
	svc, saleRepo, _, itemRepo := newSaleServiceForTest()
	item := seedItem(t, itemRepo, 100, 10, false)
	userID := uuid.New()

	sale, err := svc.CreateSale(context.Background(), &DocumentInput{
		UserID: userID,
		Status: enum.DocumentStatusComplete,
		Lines:  []DocumentLineInput{{ItemID: &item.ID, Quantity: 4}},
	})
	require.NoError(t, err)
	require.Equal(t, 6.0, itemRepo.items[item.ID].Stock)

	require.NoError(t, svc.DeleteSale(context.Background(), userID, sale.ID, false))
	assert.Equal(t, 10.0, itemRepo.items[item.ID].Stock)
	assert.Empty(t, saleRepo.sales)
}

func TestAdminBypassesOwnership(t *testing.T) {
	svc, _, _, itemRepo := newSaleServiceForTest()
	item := seedItem(t, itemRepo, 100, 10, false)

	sale, err := svc.CreateSale(context.Background(), &DocumentInput{
		UserID: uuid.New(),
		Lines:  []DocumentLineInput{{ItemID: &item.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	_, err = svc.PayDue(context.Background(), uuid.New(), sale.ID, true, 10)
	assert.NoError(t, err)
}
