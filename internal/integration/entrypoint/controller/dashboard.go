package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smart-paisa/backend/internal/application/usecase/dashboard"
	"github.com/smart-paisa/backend/internal/integration/entrypoint/dto"
	"github.com/smart-paisa/backend/internal/integration/entrypoint/middleware"
)

// DashboardController handles the dashboard overview endpoint.
type DashboardController struct {
	overviewUseCase *dashboard.GetOverviewUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(overviewUseCase *dashboard.GetOverviewUseCase) *DashboardController {
	return &DashboardController{overviewUseCase: overviewUseCase}
}

// Overview handles GET /dashboard/overview requests.
func (c *DashboardController) Overview(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	output, err := c.overviewUseCase.Execute(ctx.Request.Context(), dashboard.GetOverviewInput{UserID: userID})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOverviewResponse(output))
}
