package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mainak-github/sk-electricks-api/internal/application/service"
	"github.com/mainak-github/sk-electricks-api/internal/domain/enum"
	"github.com/mainak-github/sk-electricks-api/internal/domain/repository"
	"github.com/mainak-github/sk-electricks-api/pkg/money"
	"github.com/mainak-github/sk-electricks-api/pkg/pagination"
)

// GetUserID extracts the user ID from the Gin context
func GetUserID(c *gin.Context) *uuid.UUID {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		return nil
	}
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return nil
	}
	return &userID
}

// IsAdmin checks if the signed-in user has the admin role
func IsAdmin(c *gin.Context) bool {
	role, exists := c.Get("user_role")
	return exists && role == "admin"
}

// parsePageParams reads page/per_page query parameters
func parsePageParams(c *gin.Context) *pagination.Params {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))
	return &pagination.Params{Page: page, PerPage: perPage}
}

// parseDocumentFilter reads the list filters shared by the four
// document screens from query parameters.
func parseDocumentFilter(c *gin.Context) *repository.DocumentFilterParams {
	params := &repository.DocumentFilterParams{
		Pagination:     parsePageParams(c),
		Search:         c.Query("search"),
		SortBy:         c.Query("sort_by"),
		SortOrder:      c.Query("sort_order"),
		SkipUserFilter: IsAdmin(c),
	}

	if statusStr := c.Query("status"); statusStr != "" {
		if statusInt, err := strconv.Atoi(statusStr); err == nil {
			status := enum.DocumentStatus(statusInt)
			params.Status = &status
		}
	}

	if partyIDStr := c.Query("party_id"); partyIDStr != "" {
		if partyID, err := uuid.Parse(partyIDStr); err == nil {
			params.PartyID = &partyID
		}
	}

	if startDateStr := c.Query("start_date"); startDateStr != "" {
		if startDate, err := time.Parse("2006-01-02", startDateStr); err == nil {
			params.StartDate = &startDate
		}
	}

	if endDateStr := c.Query("end_date"); endDateStr != "" {
		if endDate, err := time.Parse("2006-01-02", endDateStr); err == nil {
			params.EndDate = &endDate
		}
	}

	return params
}

// documentLineRequest is one submitted cart row. Monetary fields use
// money.Amount so malformed figures decode as zero instead of failing
// the whole save.
type documentLineRequest struct {
	ItemID          *uuid.UUID   `json:"item_id"`
	Name            string       `json:"name"`
	Description     string       `json:"description"`
	Quantity        money.Amount `json:"quantity"`
	UnitRate        money.Amount `json:"unit_rate"`
	DiscountPercent money.Amount `json:"discount_percent"`
	TaxPercent      money.Amount `json:"tax_percent"`
}

// documentRequest is the shared save payload for the document screens
type documentRequest struct {
	Number      string     `json:"number"`
	Date        string     `json:"date"`
	PartyID     *uuid.UUID `json:"party_id"`
	PartyName   string     `json:"party_name"`
	PaymentMode int        `json:"payment_mode"`
	Status      int        `json:"status"`
	Note        string     `json:"note"`

	PricingMethod    int          `json:"pricing_method"`
	TransportCost    money.Amount `json:"transport_cost"`
	DiscountPercent  money.Amount `json:"discount_percent"`
	DiscountAbsolute money.Amount `json:"discount_absolute"`
	TaxPercent       money.Amount `json:"tax_percent"`
	TaxAbsolute      money.Amount `json:"tax_absolute"`
	Paid             money.Amount `json:"paid"`

	Lines []documentLineRequest `json:"lines" binding:"required"`
}

// toDocumentInput converts a bound request into the service input
func (r *documentRequest) toDocumentInput(userID uuid.UUID, isAdmin bool) *service.DocumentInput {
	date := time.Now()
	if r.Date != "" {
		if parsed, err := time.Parse("2006-01-02", r.Date); err == nil {
			date = parsed
		}
	}

	input := &service.DocumentInput{
		UserID:      userID,
		IsAdmin:     isAdmin,
		Number:      r.Number,
		Date:        date,
		PartyID:     r.PartyID,
		PartyName:   r.PartyName,
		PaymentMode: enum.PaymentMode(r.PaymentMode),
		Status:      enum.DocumentStatus(r.Status),
		Note:        r.Note,

		PricingMethod:    enum.PricingMethod(r.PricingMethod),
		TransportCost:    r.TransportCost.Float64(),
		DiscountPercent:  r.DiscountPercent.Float64(),
		DiscountAbsolute: r.DiscountAbsolute.Float64(),
		TaxPercent:       r.TaxPercent.Float64(),
		TaxAbsolute:      r.TaxAbsolute.Float64(),
		Paid:             r.Paid.Float64(),
	}

	for _, l := range r.Lines {
		input.Lines = append(input.Lines, service.DocumentLineInput{
			ItemID:          l.ItemID,
			Name:            l.Name,
			Description:     l.Description,
			Quantity:        l.Quantity.Float64(),
			UnitRate:        l.UnitRate.Float64(),
			DiscountPercent: l.DiscountPercent.Float64(),
			TaxPercent:      l.TaxPercent.Float64(),
		})
	}

	return input
}
