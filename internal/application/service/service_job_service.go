package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/mainak-github/sk-electricks-api/internal/application/cart"
	"github.com/mainak-github/sk-electricks-api/internal/domain/entity"
	"github.com/mainak-github/sk-electricks-api/internal/domain/enum"
	"github.com/mainak-github/sk-electricks-api/internal/domain/repository"
	"github.com/mainak-github/sk-electricks-api/pkg/apperror"
	"github.com/mainak-github/sk-electricks-api/pkg/money"
	"github.com/mainak-github/sk-electricks-api/pkg/pagination"
	"github.com/mainak-github/sk-electricks-api/pkg/utils"
)

// ServiceJobInput extends the shared document payload with the fields
// specific to service entries.
type ServiceJobInput struct {
	DocumentInput
	DeviceInfo string
}

// ServiceJobService handles service entry billing. Jobs mix labour
// lines (free text or catalog services) with spare parts; completed
// jobs consume stock for the parts only.
type ServiceJobService struct {
	jobRepo      repository.ServiceJobRepository
	customerRepo repository.CustomerRepository
	itemRepo     repository.ItemRepository
}

// NewServiceJobService creates a new service job service
func NewServiceJobService(jobRepo repository.ServiceJobRepository, customerRepo repository.CustomerRepository, itemRepo repository.ItemRepository) *ServiceJobService {
	return &ServiceJobService{jobRepo: jobRepo, customerRepo: customerRepo, itemRepo: itemRepo}
}

func (s *ServiceJobService) loadItems(ctx context.Context, lines []DocumentLineInput) (map[uuid.UUID]entity.Item, error) {
	items, err := s.itemRepo.GetByIDs(ctx, lineItemIDs(lines))
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]entity.Item, len(items))
	for _, it := range items {
		byID[it.ID] = it
	}
	return byID, nil
}

func (s *ServiceJobService) resolveCustomer(ctx context.Context, input *DocumentInput) error {
	if input.PartyID == nil {
		return nil
	}
	customer, err := s.customerRepo.GetByID(ctx, *input.PartyID)
	if err != nil {
		return err
	}
	if customer == nil {
		return apperror.NewNotFoundError("Customer")
	}
	if input.PartyName == "" {
		input.PartyName = customer.Name
	}
	return nil
}

// CreateServiceJob prices the submitted job and persists it
func (s *ServiceJobService) CreateServiceJob(ctx context.Context, input *ServiceJobInput) (*entity.ServiceJob, error) {
	if err := s.resolveCustomer(ctx, &input.DocumentInput); err != nil {
		return nil, err
	}

	items, err := s.loadItems(ctx, input.Lines)
	if err != nil {
		return nil, err
	}

	doc, err := buildDocument(&input.DocumentInput, items, func(it entity.Item) float64 { return it.SaleRate })
	if err != nil {
		return nil, err
	}

	if doc.Header.Number == "" {
		doc.Header.Number = utils.GenerateDocumentNo("SRV")
	}

	job := serviceJobFromDocument(doc, input)

	if job.Status == enum.DocumentStatusComplete {
		if err := applyStockOrFail(ctx, s.itemRepo, stockDeltas(doc.Lines, items, -1)); err != nil {
			return nil, err
		}
	}

	if err := s.jobRepo.Create(ctx, job); err != nil {
		if job.Status == enum.DocumentStatusComplete {
			reverseStock(ctx, s.itemRepo, stockDeltas(doc.Lines, items, -1))
		}
		return nil, err
	}

	return job, nil
}

// UpdateServiceJob reprices and replaces an existing job
func (s *ServiceJobService) UpdateServiceJob(ctx context.Context, id uuid.UUID, input *ServiceJobInput) (*entity.ServiceJob, error) {
	existing, err := s.jobRepo.GetWithLines(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperror.NewNotFoundError("Service job")
	}
	if !input.IsAdmin && existing.UserID != input.UserID {
		return nil, apperror.ErrForbidden
	}

	if err := s.resolveCustomer(ctx, &input.DocumentInput); err != nil {
		return nil, err
	}

	items, err := s.loadItems(ctx, input.Lines)
	if err != nil {
		return nil, err
	}

	doc, err := buildDocument(&input.DocumentInput, items, func(it entity.Item) float64 { return it.SaleRate })
	if err != nil {
		return nil, err
	}

	if doc.Header.Number == "" {
		doc.Header.Number = existing.JobNo
	}

	var oldDeltas map[uuid.UUID]float64
	if existing.Status == enum.DocumentStatusComplete {
		oldDeltas, err = s.storedDeltas(ctx, existing.Lines)
		if err != nil {
			return nil, err
		}
	}
	var newDeltas map[uuid.UUID]float64
	if input.Status == enum.DocumentStatusComplete {
		newDeltas = stockDeltas(doc.Lines, items, -1)
	}
	// one batch: a failed swap leaves the existing movement untouched
	net := netDeltas(newDeltas, oldDeltas)
	if err := applyStockOrFail(ctx, s.itemRepo, net); err != nil {
		return nil, err
	}

	job := serviceJobFromDocument(doc, input)
	job.ID = existing.ID
	job.UserID = existing.UserID
	job.CreatedAt = existing.CreatedAt

	if err := s.jobRepo.Update(ctx, job); err != nil {
		reverseStock(ctx, s.itemRepo, net)
		return nil, err
	}
	return job, nil
}

// GetServiceJob retrieves a job with its lines
func (s *ServiceJobService) GetServiceJob(ctx context.Context, id uuid.UUID) (*entity.ServiceJob, error) {
	job, err := s.jobRepo.GetWithLines(ctx, id)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, apperror.NewNotFoundError("Service job")
	}
	return job, nil
}

// ListServiceJobs lists jobs for the given user
func (s *ServiceJobService) ListServiceJobs(ctx context.Context, userID uuid.UUID, params *repository.DocumentFilterParams) (*pagination.Result[entity.ServiceJob], error) {
	jobs, total, err := s.jobRepo.List(ctx, userID, params)
	if err != nil {
		return nil, err
	}
	pag := pagination.New(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewResult(jobs, pag), nil
}

// UpdateStatus moves a job between workflow states, applying or
// reversing the parts stock movement on Complete transitions.
func (s *ServiceJobService) UpdateStatus(ctx context.Context, userID, id uuid.UUID, isAdmin bool, status enum.DocumentStatus) (*entity.ServiceJob, error) {
	job, err := s.jobRepo.GetWithLines(ctx, id)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, apperror.NewNotFoundError("Service job")
	}
	if !isAdmin && job.UserID != userID {
		return nil, apperror.ErrForbidden
	}
	if job.Status == status {
		return job, nil
	}

	deltas, err := s.storedDeltas(ctx, job.Lines)
	if err != nil {
		return nil, err
	}

	wasComplete := job.Status == enum.DocumentStatusComplete
	nowComplete := status == enum.DocumentStatusComplete
	if !wasComplete && nowComplete {
		if err := applyStockOrFail(ctx, s.itemRepo, deltas); err != nil {
			return nil, err
		}
	}
	if wasComplete && !nowComplete {
		reverseStock(ctx, s.itemRepo, deltas)
	}

	if err := s.jobRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	job.Status = status
	return job, nil
}

// PayDue records an additional payment against a job
func (s *ServiceJobService) PayDue(ctx context.Context, userID, id uuid.UUID, isAdmin bool, amount float64) (*entity.ServiceJob, error) {
	if amount <= 0 {
		return nil, apperror.NewBadRequestError("Payment amount must be positive")
	}

	job, err := s.jobRepo.GetWithLines(ctx, id)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, apperror.NewNotFoundError("Service job")
	}
	if !isAdmin && job.UserID != userID {
		return nil, apperror.ErrForbidden
	}

	job.Paid = money.Round2(job.Paid + amount)
	job.Due = money.Round2(job.GrandTotal - job.Paid)

	if err := s.jobRepo.Update(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

// DeleteServiceJob removes a job, returning parts stock for Complete jobs
func (s *ServiceJobService) DeleteServiceJob(ctx context.Context, userID, id uuid.UUID, isAdmin bool) error {
	job, err := s.jobRepo.GetWithLines(ctx, id)
	if err != nil {
		return err
	}
	if job == nil {
		return apperror.NewNotFoundError("Service job")
	}
	if !isAdmin && job.UserID != userID {
		return apperror.ErrForbidden
	}

	if job.Status == enum.DocumentStatusComplete {
		deltas, err := s.storedDeltas(ctx, job.Lines)
		if err != nil {
			return err
		}
		reverseStock(ctx, s.itemRepo, deltas)
	}

	return s.jobRepo.Delete(ctx, id)
}

// storedDeltas rebuilds the parts stock movement from persisted lines
func (s *ServiceJobService) storedDeltas(ctx context.Context, lines []entity.ServiceJobLine) (map[uuid.UUID]float64, error) {
	var ids []uuid.UUID
	for _, l := range lines {
		if l.ItemID != nil {
			ids = append(ids, *l.ItemID)
		}
	}
	items, err := s.itemRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]entity.Item, len(items))
	for _, it := range items {
		byID[it.ID] = it
	}

	deltas := make(map[uuid.UUID]float64)
	for _, l := range lines {
		if l.ItemID == nil {
			continue
		}
		item, ok := byID[*l.ItemID]
		if !ok || item.IsService {
			continue
		}
		deltas[*l.ItemID] += -l.Quantity
	}
	return deltas, nil
}

// serviceJobFromDocument maps a priced cart snapshot onto the job entity
func serviceJobFromDocument(doc cart.Document, input *ServiceJobInput) *entity.ServiceJob {
	job := &entity.ServiceJob{
		UserID:       input.UserID,
		CustomerID:   doc.Header.PartyID,
		JobNo:        doc.Header.Number,
		Date:         doc.Header.Date,
		Status:       input.Status,
		PaymentMode:  doc.Header.PaymentMode,
		CustomerName: doc.Header.PartyName,
		DeviceInfo:   input.DeviceInfo,
		Note:         doc.Header.Note,

		PricingMethod:   doc.Adjustments.Method,
		TransportCost:   doc.Adjustments.TransportCost,
		DiscountPercent: doc.Adjustments.DiscountPercent,
		DiscountAmount:  doc.Adjustments.DiscountAbsolute,
		TaxPercent:      doc.Adjustments.TaxPercent,
		TaxAmount:       doc.Adjustments.TaxAbsolute,

		SubTotal:      doc.Totals.SubTotal,
		TotalDiscount: doc.Totals.TotalDiscount,
		TotalTax:      doc.Totals.TotalTax,
		GrandTotal:    doc.Totals.GrandTotal,
		Paid:          doc.Adjustments.Paid,
		Due:           doc.Totals.Due,
	}

	for i, l := range doc.Lines {
		var itemID *uuid.UUID
		if l.ItemID != uuid.Nil {
			id := l.ItemID
			itemID = &id
		}
		job.Lines = append(job.Lines, entity.ServiceJobLine{
			ItemID:          itemID,
			ItemName:        l.Name,
			Description:     l.Description,
			Quantity:        l.Quantity,
			UnitRate:        l.UnitRate,
			DiscountPercent: l.DiscountPercent,
			DiscountAmount:  l.DiscountAmount,
			TaxPercent:      l.TaxPercent,
			TaxAmount:       l.TaxAmount,
			Total:           l.Total,
			Position:        i,
		})
	}

	return job
}
