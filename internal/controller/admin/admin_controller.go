package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/adarshgupta/exam-portal/internal/controller"
	"github.com/adarshgupta/exam-portal/internal/dto"
	"github.com/adarshgupta/exam-portal/internal/service"
)

type AdminController struct {
	adminService service.AdminService
}

func NewAdminController(adminService service.AdminService) *AdminController {
	return &AdminController{adminService: adminService}
}

// CreateTest godoc
// @Summary (Admin) Create a new test
// @Description Creates a test with its questions. Tests are published immediately.
// @Tags Admin
// @Accept json
// @Produce json
// @Param test body dto.TestCreateDTO true "Test details including questions"
// @Success 200 {object} dto.CreatedResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid test"
// @Router /admin/test [post]
func (c *AdminController) CreateTest(ctx *gin.Context) {
	var req dto.TestCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin CreateTest: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid test"})
		return
	}

	resp, err := c.adminService.CreateTest(req)
	if err != nil {
		log.Warn().Err(err).Str("title", req.Title).Msg("Admin CreateTest: Service error")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// ListResults godoc
// @Summary (Admin) List all results
// @Description Every attempt joined against its student and test title.
// @Tags Admin
// @Produce json
// @Success 200 {array} dto.ResultRow
// @Router /admin/results [get]
func (c *AdminController) ListResults(ctx *gin.Context) {
	rows, err := c.adminService.ListResults()
	if err != nil {
		log.Error().Err(err).Msg("Admin ListResults: Service error")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, rows)
}
