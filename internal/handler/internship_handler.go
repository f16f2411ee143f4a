package handler

import (
	"net/http"
	"time"

	"internhub/internal/domain"
	"internhub/internal/middleware"
	"internhub/internal/models"
	"internhub/internal/service"

	"github.com/gin-gonic/gin"
)

type InternshipHandler struct {
	svc *service.InternshipService
}

func NewInternshipHandler(svc *service.InternshipService) *InternshipHandler {
	return &InternshipHandler{svc: svc}
}

type CreateInternshipRequest struct {
	Title       string `json:"title" binding:"required,min=3,max=255"`
	Description string `json:"description" binding:"required"`
	Location    string `json:"location" binding:"required"`
	SalaryRange string `json:"salary_range"`
	StartDate   string `json:"start_date" binding:"required"` // ISO date
	EndDate     string `json:"end_date" binding:"required"`
}

type UpdateInternshipRequest struct {
	Title       string `json:"title" binding:"omitempty,min=3,max=255"`
	Description string `json:"description"`
	Location    string `json:"location"`
	SalaryRange string `json:"salary_range"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Status      string `json:"status" binding:"omitempty,oneof=active expired"`
}

func (h *InternshipHandler) Create(c *gin.Context) {
	var req CreateInternshipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start_date format (use YYYY-MM-DD)"})
		return
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil || !end.After(start) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end_date must be a valid date after start_date"})
		return
	}
	in := &models.Internship{
		EmployerID:  middleware.GetUserID(c),
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		SalaryRange: req.SalaryRange,
		StartDate:   start,
		EndDate:     end,
		Status:      domain.InternshipStatusActive,
	}
	if err := h.svc.Create(in); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}
	c.JSON(http.StatusCreated, in)
}

func (h *InternshipHandler) listQuery(c *gin.Context) service.InternshipQuery {
	return service.InternshipQuery{
		Title:      c.Query("title"),
		Location:   c.Query("location"),
		EmployerID: queryUint(c, "employer_id"),
		Params:     paginationParams(c),
	}
}

// List is the public catalogue: active internships only, unless the caller
// is an admin asking for everything.
func (h *InternshipHandler) List(c *gin.Context) {
	q := h.listQuery(c)
	if middleware.GetCaller(c).IsAdmin() && c.Query("include_expired") == "true" {
		q.IncludeExpired = true
	}
	list, count, err := h.svc.List(q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"rows": list, "count": count})
}

func (h *InternshipHandler) Get(c *gin.Context) {
	in, err := h.svc.Get(paramUint(c, "id"))
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, in)
}

func (h *InternshipHandler) Update(c *gin.Context) {
	var req UpdateInternshipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var start, end time.Time
	var err error
	if req.StartDate != "" {
		if start, err = time.Parse("2006-01-02", req.StartDate); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start_date format (use YYYY-MM-DD)"})
			return
		}
	}
	if req.EndDate != "" {
		if end, err = time.Parse("2006-01-02", req.EndDate); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid end_date format (use YYYY-MM-DD)"})
			return
		}
	}
	in, err := h.svc.Update(middleware.GetCaller(c), paramUint(c, "id"), func(in *models.Internship) {
		if req.Title != "" {
			in.Title = req.Title
		}
		if req.Description != "" {
			in.Description = req.Description
		}
		if req.Location != "" {
			in.Location = req.Location
		}
		if req.SalaryRange != "" {
			in.SalaryRange = req.SalaryRange
		}
		if !start.IsZero() {
			in.StartDate = start
		}
		if !end.IsZero() {
			in.EndDate = end
		}
		if req.Status != "" {
			in.Status = req.Status
		}
	})
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, in)
}

func (h *InternshipHandler) Remove(c *gin.Context) {
	if err := h.svc.Remove(middleware.GetCaller(c), paramUint(c, "id")); err != nil {
		serviceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *InternshipHandler) Own(c *gin.Context) {
	list, count, err := h.svc.Own(middleware.GetUserID(c), h.listQuery(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"rows": list, "count": count})
}
