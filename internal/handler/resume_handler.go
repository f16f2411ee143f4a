package handler

import (
	"net/http"
	"time"

	"internhub/internal/middleware"
	"internhub/internal/models"
	"internhub/internal/service"

	"github.com/gin-gonic/gin"
)

type ResumeHandler struct {
	svc *service.ResumeService
}

func NewResumeHandler(svc *service.ResumeService) *ResumeHandler {
	return &ResumeHandler{svc: svc}
}

type ExperienceRequest struct {
	Company     string  `json:"company" binding:"required"`
	Position    string  `json:"position" binding:"required"`
	StartDate   string  `json:"start_date" binding:"required"` // ISO date
	EndDate     *string `json:"end_date"`                      // null means current
	Description string  `json:"description"`
	Location    string  `json:"location"`
}

type EducationRequest struct {
	Institution  string  `json:"institution" binding:"required"`
	Degree       string  `json:"degree" binding:"required"`
	FieldOfStudy string  `json:"field_of_study"`
	StartDate    string  `json:"start_date" binding:"required"`
	EndDate      *string `json:"end_date"`
	Grade        string  `json:"grade"`
	Description  string  `json:"description"`
	Location     string  `json:"location"`
}

type ResumeRequest struct {
	Title          string              `json:"title"`
	Summary        string              `json:"summary"`
	Skills         string              `json:"skills"`
	Languages      string              `json:"languages"`
	Certifications string              `json:"certifications"`
	Experiences    []ExperienceRequest `json:"experiences"`
	Education      []EducationRequest  `json:"education"`
}

func parseDate(s string) (time.Time, bool) {
	t, err := time.Parse("2006-01-02", s)
	return t, err == nil
}

func (r ResumeRequest) toInput() (service.ResumeInput, string) {
	in := service.ResumeInput{
		Title:          r.Title,
		Summary:        r.Summary,
		Skills:         r.Skills,
		Languages:      r.Languages,
		Certifications: r.Certifications,
	}
	if r.Experiences != nil {
		in.Experiences = make([]models.Experience, 0, len(r.Experiences))
		for _, e := range r.Experiences {
			start, ok := parseDate(e.StartDate)
			if !ok {
				return in, "invalid experience start_date (use YYYY-MM-DD)"
			}
			exp := models.Experience{
				Company:     e.Company,
				Position:    e.Position,
				StartDate:   start,
				Description: e.Description,
				Location:    e.Location,
			}
			if e.EndDate != nil {
				end, ok := parseDate(*e.EndDate)
				if !ok {
					return in, "invalid experience end_date (use YYYY-MM-DD)"
				}
				exp.EndDate = &end
			}
			in.Experiences = append(in.Experiences, exp)
		}
	}
	if r.Education != nil {
		in.Education = make([]models.Education, 0, len(r.Education))
		for _, e := range r.Education {
			start, ok := parseDate(e.StartDate)
			if !ok {
				return in, "invalid education start_date (use YYYY-MM-DD)"
			}
			edu := models.Education{
				Institution:  e.Institution,
				Degree:       e.Degree,
				FieldOfStudy: e.FieldOfStudy,
				StartDate:    start,
				Grade:        e.Grade,
				Description:  e.Description,
				Location:     e.Location,
			}
			if e.EndDate != nil {
				end, ok := parseDate(*e.EndDate)
				if !ok {
					return in, "invalid education end_date (use YYYY-MM-DD)"
				}
				edu.EndDate = &end
			}
			in.Education = append(in.Education, edu)
		}
	}
	return in, ""
}

func (h *ResumeHandler) Create(c *gin.Context) {
	var req ResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	in, msg := req.toInput()
	if msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}
	res, err := h.svc.Create(middleware.GetUserID(c), in)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (h *ResumeHandler) GetOwn(c *gin.Context) {
	res, err := h.svc.GetOwn(middleware.GetUserID(c))
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *ResumeHandler) Update(c *gin.Context) {
	var req ResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	in, msg := req.toInput()
	if msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}
	res, err := h.svc.Update(middleware.GetUserID(c), in)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
