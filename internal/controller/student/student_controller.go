package student

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/adarshgupta/exam-portal/internal/controller"
	"github.com/adarshgupta/exam-portal/internal/dto"
	"github.com/adarshgupta/exam-portal/internal/service"
)

type StudentController struct {
	studentService service.StudentService
}

func NewStudentController(studentService service.StudentService) *StudentController {
	return &StudentController{studentService: studentService}
}

// Login godoc
// @Summary Register or fetch a student
// @Description Idempotent login: returns the existing student for (roll, className) or registers a new one.
// @Tags Student
// @Accept json
// @Produce json
// @Param student body dto.LoginRequest true "Student details"
// @Success 200 {object} dto.StudentResponse
// @Failure 400 {object} dto.ErrorResponse "Missing field, bad roll or bad phone"
// @Router /student/login [post]
func (c *StudentController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Student Login: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid student data"})
		return
	}

	student, err := c.studentService.RegisterOrFetch(req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, student)
}

// ListAvailableTests godoc
// @Summary List tests available to a student
// @Description Published tests for the student's class that the student has not attempted yet.
// @Tags Student
// @Produce json
// @Param studentId path string true "Student ID"
// @Success 200 {array} dto.TestSummaryDTO
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /student/tests/{studentId} [get]
func (c *StudentController) ListAvailableTests(ctx *gin.Context) {
	tests, err := c.studentService.ListAvailableTests(ctx.Param("studentId"))
	if err != nil {
		log.Warn().Err(err).Str("studentID", ctx.Param("studentId")).Msg("Student ListAvailableTests: Service error")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, tests)
}

// GetTestPaper godoc
// @Summary Fetch a test paper
// @Description Full question list for one test with the answer key stripped.
// @Tags Student
// @Produce json
// @Param testId path string true "Test ID"
// @Success 200 {object} dto.TestPaperDTO
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Router /student/test/{testId} [get]
func (c *StudentController) GetTestPaper(ctx *gin.Context) {
	paper, err := c.studentService.GetTestPaper(ctx.Param("testId"))
	if err != nil {
		log.Warn().Err(err).Str("testID", ctx.Param("testId")).Msg("Student GetTestPaper: Service error")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, paper)
}

// Submit godoc
// @Summary Submit answers for a test
// @Description Scores the answers positionally and records the attempt. Each student can submit a given test once.
// @Tags Student
// @Accept json
// @Produce json
// @Param submission body dto.SubmitRequest true "Student ID, test ID and positional answers"
// @Success 200 {object} dto.ScoreResponse
// @Failure 400 {object} dto.ErrorResponse "Malformed submission"
// @Failure 403 {object} dto.ErrorResponse "Test already attempted"
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Router /student/submit [post]
func (c *StudentController) Submit(ctx *gin.Context) {
	var req dto.SubmitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Student Submit: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid submission"})
		return
	}

	result, err := c.studentService.Submit(req)
	if err != nil {
		log.Warn().Err(err).Str("studentID", req.StudentID).Str("testID", req.TestID).Msg("Student Submit: Service error")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}
