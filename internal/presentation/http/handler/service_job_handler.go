package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mainak-github/sk-electricks-api/internal/application/service"
	"github.com/mainak-github/sk-electricks-api/internal/domain/enum"
	"github.com/mainak-github/sk-electricks-api/internal/presentation/http/dto/response"
	"github.com/mainak-github/sk-electricks-api/pkg/money"
)

// ServiceJobHandler handles service entry HTTP requests
type ServiceJobHandler struct {
	jobService *service.ServiceJobService
}

// NewServiceJobHandler creates a new service job handler
func NewServiceJobHandler(jobService *service.ServiceJobService) *ServiceJobHandler {
	return &ServiceJobHandler{jobService: jobService}
}

// serviceJobRequest extends the shared document payload with the
// device being serviced.
type serviceJobRequest struct {
	documentRequest
	DeviceInfo string `json:"device_info"`
}

func (r *serviceJobRequest) toInput(userID uuid.UUID, isAdmin bool) *service.ServiceJobInput {
	return &service.ServiceJobInput{
		DocumentInput: *r.documentRequest.toDocumentInput(userID, isAdmin),
		DeviceInfo:    r.DeviceInfo,
	}
}

// List handles listing service jobs
func (h *ServiceJobHandler) List(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	result, err := h.jobService.ListServiceJobs(c.Request.Context(), *userID, parseDocumentFilter(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Service jobs retrieved successfully", result)
}

// Get handles retrieving a single job with its lines
func (h *ServiceJobHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid service job ID")
		return
	}

	job, err := h.jobService.GetServiceJob(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Service job retrieved successfully", job)
}

// Create handles creating a service job
func (h *ServiceJobHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req serviceJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	job, err := h.jobService.CreateServiceJob(c.Request.Context(), req.toInput(*userID, IsAdmin(c)))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Service job created successfully", job)
}

// Update handles replacing a job and its lines
func (h *ServiceJobHandler) Update(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid service job ID")
		return
	}

	var req serviceJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	job, err := h.jobService.UpdateServiceJob(c.Request.Context(), id, req.toInput(*userID, IsAdmin(c)))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Service job updated successfully", job)
}

// UpdateStatus handles moving a job between workflow states
func (h *ServiceJobHandler) UpdateStatus(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid service job ID")
		return
	}

	var req struct {
		Status int `json:"status" binding:"min=0,max=3"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	job, err := h.jobService.UpdateStatus(c.Request.Context(), *userID, id, IsAdmin(c), enum.DocumentStatus(req.Status))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Service job status updated successfully", job)
}

// PayDue handles recording a payment against a job
func (h *ServiceJobHandler) PayDue(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid service job ID")
		return
	}

	var req struct {
		Amount money.Amount `json:"amount" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	job, err := h.jobService.PayDue(c.Request.Context(), *userID, id, IsAdmin(c), req.Amount.Float64())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment recorded successfully", job)
}

// Delete handles deleting a service job
func (h *ServiceJobHandler) Delete(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid service job ID")
		return
	}

	if err := h.jobService.DeleteServiceJob(c.Request.Context(), *userID, id, IsAdmin(c)); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
