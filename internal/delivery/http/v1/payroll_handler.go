package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"job-finder-backend/internal/delivery/http/response"
	"job-finder-backend/internal/domain"
	"job-finder-backend/pkg/apperror"
)

// PayrollHandler exposes the payroll subsystem. It is mounted under the admin
// namespace only.
type PayrollHandler struct {
	payrollUC domain.PayrollUsecase
}

func NewPayrollHandler(r *gin.RouterGroup, payrollUC domain.PayrollUsecase) {
	handler := &PayrollHandler{payrollUC: payrollUC}

	payroll := r.Group("/payroll")
	{
		employees := payroll.Group("/employees")
		{
			employees.POST("", handler.CreateEmployee)
			employees.GET("", handler.ListEmployees)
			employees.GET("/:id", handler.GetEmployee)
			employees.PATCH("/:id", handler.UpdateEmployee)
			employees.DELETE("/:id", handler.RemoveEmployee)
		}

		paydetails := payroll.Group("/paydetails")
		{
			paydetails.POST("", handler.CreatePayDetail)
			paydetails.GET("/:id", handler.GetPayDetail)
			paydetails.PATCH("/:id", handler.UpdatePayDetail)
			paydetails.DELETE("/:id", handler.RemovePayDetail)
		}

		deductions := payroll.Group("/deductions")
		{
			deductions.POST("", handler.CreateDeduction)
			deductions.GET("/:id", handler.GetDeduction)
			deductions.PATCH("/:id", handler.UpdateDeduction)
			deductions.DELETE("/:id", handler.RemoveDeduction)
		}

		payslips := payroll.Group("/payslips")
		{
			payslips.POST("", handler.CreatePayslip)
			payslips.GET("/:id", handler.GetPayslip)
			payslips.DELETE("/:id", handler.RemovePayslip)
		}
	}
}

// CreateEmployee godoc
// @Summary      Create a payroll employee
// @Tags         payroll
// @Accept       json
// @Produce      json
// @Success      201  {object}  response.Envelope{payload=domain.Employee}
// @Failure      400  {object}  response.Envelope
// @Router       /admin/payroll/employees [post]
// @Security     BearerAuth
func (h *PayrollHandler) CreateEmployee(c *gin.Context) {
	var req domain.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	employee, err := h.payrollUC.CreateEmployee(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusCreated, gin.H{"employee": employee})
}

func (h *PayrollHandler) ListEmployees(c *gin.Context) {
	employees, err := h.payrollUC.ListEmployees(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{"employees": employees})
}

func (h *PayrollHandler) GetEmployee(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	employee, err := h.payrollUC.GetEmployee(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{"employee": employee})
}

func (h *PayrollHandler) UpdateEmployee(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	var patch domain.EmployeePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.payrollUC.UpdateEmployee(c.Request.Context(), id, patch); err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{"message": "Employee updated."})
}

func (h *PayrollHandler) RemoveEmployee(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.payrollUC.RemoveEmployee(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *PayrollHandler) CreatePayDetail(c *gin.Context) {
	var req domain.CreatePayDetailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	payDetail, err := h.payrollUC.CreatePayDetail(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusCreated, gin.H{"payDetail": payDetail})
}

func (h *PayrollHandler) GetPayDetail(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	payDetail, err := h.payrollUC.GetPayDetail(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{"payDetail": payDetail})
}

func (h *PayrollHandler) UpdatePayDetail(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	var patch domain.PayDetailPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.payrollUC.UpdatePayDetail(c.Request.Context(), id, patch); err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{"message": "Pay detail updated."})
}

func (h *PayrollHandler) RemovePayDetail(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.payrollUC.RemovePayDetail(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *PayrollHandler) CreateDeduction(c *gin.Context) {
	var req domain.CreateDeductionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	deduction, err := h.payrollUC.CreateDeduction(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusCreated, gin.H{"deduction": deduction})
}

func (h *PayrollHandler) GetDeduction(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	deduction, err := h.payrollUC.GetDeduction(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{"deduction": deduction})
}

func (h *PayrollHandler) UpdateDeduction(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	var patch domain.DeductionPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.payrollUC.UpdateDeduction(c.Request.Context(), id, patch); err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{"message": "Deduction updated."})
}

func (h *PayrollHandler) RemoveDeduction(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.payrollUC.RemoveDeduction(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

// CreatePayslip godoc
// @Summary      Issue a payslip
// @Description  Totals are computed from the referenced pay detail and deduction at creation
// @Tags         payroll
// @Accept       json
// @Produce      json
// @Success      201  {object}  response.Envelope{payload=domain.Payslip}
// @Failure      404  {object}  response.Envelope
// @Router       /admin/payroll/payslips [post]
// @Security     BearerAuth
func (h *PayrollHandler) CreatePayslip(c *gin.Context) {
	var req domain.CreatePayslipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	payslip, err := h.payrollUC.CreatePayslip(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusCreated, gin.H{"payslip": payslip})
}

func (h *PayrollHandler) GetPayslip(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	payslip, err := h.payrollUC.GetPayslip(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{"payslip": payslip})
}

func (h *PayrollHandler) RemovePayslip(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.payrollUC.RemovePayslip(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}
