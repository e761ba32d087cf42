package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ravikt/tuitiondesk/internal/app/models/dto"
	"github.com/ravikt/tuitiondesk/internal/app/services"
	"github.com/ravikt/tuitiondesk/internal/middleware"
)

// AdmissionController handles admission request operations
type AdmissionController struct {
	admissionService services.AdmissionService
}

// NewAdmissionController creates a new AdmissionController
func NewAdmissionController(admissionService services.AdmissionService) *AdmissionController {
	return &AdmissionController{
		admissionService: admissionService,
	}
}

// SubmitRequest accepts a registration-form submission
// @Summary Submit an admission request
// @Description Stores a new pending admission request from the public registration form
// @Tags admissions
// @Accept json
// @Produce json
// @Param request body dto.SubmitAdmissionRequest true "Admission request"
// @Success 201 {object} dto.APIResponse{data=models.AdmissionRequest}
// @Failure 400 {object} dto.APIResponse "Missing required field"
// @Router /admissions [post]
func (c *AdmissionController) SubmitRequest(ctx *gin.Context) {
	var req dto.SubmitAdmissionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	request, err := c.admissionService.SubmitRequest(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(request, "Admission request submitted successfully!"))
}

// GetAllRequests lists admission requests
// @Summary Get admission requests
// @Description Lists admission requests, optionally filtered by exact status
// @Tags admissions
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status filter" Enums(pending, approved, rejected)
// @Success 200 {object} dto.APIResponse{data=dto.AdmissionListResponse}
// @Router /admissions [get]
func (c *AdmissionController) GetAllRequests(ctx *gin.Context) {
	status := ctx.Query("status")

	requests, err := c.admissionService.ListRequests(ctx, status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.AdmissionListResponse{
		Requests: requests,
		Count:    len(requests),
	}, ""))
}

// GetRequestByID retrieves an admission request by ID
// @Summary Get admission request details
// @Tags admissions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID" minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.AdmissionRequest}
// @Failure 404 {object} dto.APIResponse "Request not found"
// @Router /admissions/{id} [get]
func (c *AdmissionController) GetRequestByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	request, err := c.admissionService.GetRequestByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(request, ""))
}

// ApproveRequest approves an admission request and creates a student
// @Summary Approve an admission request
// @Description Creates a student record from the request and marks the request approved
// @Tags admissions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID" minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.Student}
// @Failure 400 {object} dto.APIResponse "Request already processed"
// @Failure 404 {object} dto.APIResponse "Request not found"
// @Router /admissions/{id}/approve [post]
func (c *AdmissionController) ApproveRequest(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	student, err := c.admissionService.Approve(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(student, "Admission approved and student created"))
}

// RejectRequest rejects an admission request
// @Summary Reject an admission request
// @Tags admissions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID" minimum(1)
// @Param request body dto.RejectAdmissionRequest false "Rejection reason"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.APIResponse "Request already processed"
// @Failure 404 {object} dto.APIResponse "Request not found"
// @Router /admissions/{id}/reject [post]
func (c *AdmissionController) RejectRequest(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	// Body is optional; an absent or empty body means no reason given.
	var req dto.RejectAdmissionRequest
	_ = ctx.ShouldBindJSON(&req)

	reason := ""
	if req.Reason != nil {
		reason = *req.Reason
	}

	if err := c.admissionService.Reject(ctx, id, reason); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Admission request rejected"))
}

// GetPendingCount reports pending admission requests
// @Summary Get pending admission count
// @Tags admissions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.PendingAdmissionsResponse}
// @Router /admissions/pending/count [get]
func (c *AdmissionController) GetPendingCount(ctx *gin.Context) {
	requests, err := c.admissionService.PendingRequests(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.PendingAdmissionsResponse{
		Count:    len(requests),
		Requests: requests,
	}, ""))
}
