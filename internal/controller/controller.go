// Package controller holds helpers shared by the admin and student handler
// packages.
package controller

import (
	"github.com/gin-gonic/gin"

	"github.com/adarshgupta/exam-portal/internal/apperr"
	"github.com/adarshgupta/exam-portal/internal/dto"
)

// RespondError writes the JSON error body for a service failure using the
// status code carried by the error's classification.
func RespondError(ctx *gin.Context, err error) {
	ctx.JSON(apperr.StatusOf(err), dto.ErrorResponse{Error: apperr.MessageOf(err)})
}
