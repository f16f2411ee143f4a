package handler

import (
	"net/http"

	"internhub/internal/middleware"
	"internhub/internal/service"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	svc *service.ApplicationService
}

func NewApplicationHandler(svc *service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{svc: svc}
}

type CreateApplicationRequest struct {
	InternshipID uint `json:"internship_id" binding:"required"`
}

type UpdateApplicationRequest struct {
	Status string `json:"status" binding:"required,oneof=pending approved rejected"`
}

func (h *ApplicationHandler) Create(c *gin.Context) {
	var req CreateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	app, err := h.svc.Create(middleware.GetUserID(c), req.InternshipID)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, app)
}

func (h *ApplicationHandler) listQuery(c *gin.Context) service.ApplicationQuery {
	return service.ApplicationQuery{
		InternshipID: queryUint(c, "internship_id"),
		StudentID:    queryUint(c, "student_id"),
		Status:       c.Query("status"),
		Params:       paginationParams(c),
	}
}

func (h *ApplicationHandler) List(c *gin.Context) {
	list, count, err := h.svc.List(middleware.GetCaller(c), h.listQuery(c))
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rows": list, "count": count})
}

func (h *ApplicationHandler) Get(c *gin.Context) {
	app, err := h.svc.Get(middleware.GetCaller(c), paramUint(c, "id"))
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	var req UpdateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	app, err := h.svc.UpdateStatus(middleware.GetCaller(c), paramUint(c, "id"), req.Status)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

func (h *ApplicationHandler) Remove(c *gin.Context) {
	if err := h.svc.Remove(middleware.GetCaller(c), paramUint(c, "id")); err != nil {
		serviceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetOwn is the student's self-scoped listing; the service forces
// student_id to the caller regardless of the supplied filter.
func (h *ApplicationHandler) GetOwn(c *gin.Context) {
	caller := middleware.GetCaller(c)
	q := h.listQuery(c)
	q.StudentID = caller.ID
	list, count, err := h.svc.List(caller, q)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rows": list, "count": count})
}

// GetForInternship scopes the listing to one internship; organisations only
// see it when they own the internship.
func (h *ApplicationHandler) GetForInternship(c *gin.Context) {
	q := h.listQuery(c)
	q.InternshipID = paramUint(c, "internshipId")
	list, count, err := h.svc.List(middleware.GetCaller(c), q)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rows": list, "count": count})
}

func (h *ApplicationHandler) GetResume(c *gin.Context) {
	resume, err := h.svc.ResumeFor(middleware.GetCaller(c), paramUint(c, "id"))
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resume)
}
