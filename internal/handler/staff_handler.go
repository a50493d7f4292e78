package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"baikuk-backoffice-api/internal/cache"
	"baikuk-backoffice-api/internal/service"
	"baikuk-backoffice-api/internal/utils"
)

// StaffHandler 직원 조회 처리기
type StaffHandler struct{ svc *service.StaffService }

func NewStaffHandler(staff *cache.StaffCache) *StaffHandler {
	return &StaffHandler{svc: service.NewStaffService(staff)}
}

// List GET /api/v1/staff
func (h *StaffHandler) List(c *gin.Context) {
	groups, bizErr := h.svc.Groups()
	if bizErr != nil {
		c.JSON(http.StatusOK, utils.Error(bizErr.Code()))
		return
	}
	c.JSON(http.StatusOK, utils.Success(groups))
}

// Refresh POST /api/v1/staff/refresh
func (h *StaffHandler) Refresh(c *gin.Context) {
	if bizErr := h.svc.Refresh(); bizErr != nil {
		c.JSON(http.StatusOK, utils.Error(bizErr.Code()))
		return
	}
	c.JSON(http.StatusOK, utils.Success(nil))
}
