package server

import (
	"net/http"
	"strconv"

	"github.com/Azure/go-autorest/autorest/date"
	"github.com/UnknownOlympus/hrms-lite/internal/models"
	"github.com/UnknownOlympus/hrms-lite/internal/services/attendance"
	"github.com/UnknownOlympus/hrms-lite/internal/services/employees"
	"github.com/gin-gonic/gin"
)

type createEmployeeRequest struct {
	EmployeeID string `json:"employee_id" binding:"required"`
	FullName   string `json:"full_name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Department string `json:"department" binding:"required"`
}

type markAttendanceRequest struct {
	EmployeeID int        `json:"employee_id" binding:"required,gt=0"`
	Date       *date.Date `json:"date" binding:"required"`
	Status     string     `json:"status" binding:"required,oneof=Present Absent"`
}

type attendanceQuery struct {
	EmployeeID string `form:"employee_id"`
	Date       string `form:"date"`
}

func (h *Handler) createEmployee(c *gin.Context) {
	var req createEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, bindingMessage(err))
		return
	}

	employee, err := h.directory.CreateEmployee(c.Request.Context(), employees.CreateEmployeeInput{
		EmployeeID: req.EmployeeID,
		FullName:   req.FullName,
		Email:      req.Email,
		Department: req.Department,
	})
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, employee)
}

func (h *Handler) listEmployees(c *gin.Context) {
	list, err := h.directory.ListEmployees(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

func (h *Handler) deleteEmployee(c *gin.Context) {
	identifier, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		writeError(c, http.StatusBadRequest, "Employee id must be an integer")
		return
	}

	ack, err := h.directory.DeleteEmployee(c.Request.Context(), identifier)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, ack)
}

func (h *Handler) markAttendance(c *gin.Context) {
	var req markAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, bindingMessage(err))
		return
	}

	record, err := h.ledger.MarkAttendance(c.Request.Context(), attendance.MarkAttendanceInput{
		EmployeeID: req.EmployeeID,
		Date:       *req.Date,
		Status:     models.AttendanceStatus(req.Status),
	})
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

func (h *Handler) queryAttendance(c *gin.Context) {
	var query attendanceQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		writeError(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	var filter models.AttendanceFilter
	if query.EmployeeID != "" {
		employeeID, err := strconv.Atoi(query.EmployeeID)
		if err != nil {
			writeError(c, http.StatusBadRequest, "employee_id must be an integer")
			return
		}
		filter.EmployeeID = &employeeID
	}
	if query.Date != "" {
		day, err := models.ParseDate(query.Date)
		if err != nil {
			writeError(c, http.StatusBadRequest, "date must be formatted as YYYY-MM-DD")
			return
		}
		filter.Date = &day
	}

	records, err := h.ledger.QueryAttendance(c.Request.Context(), filter)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, records)
}
