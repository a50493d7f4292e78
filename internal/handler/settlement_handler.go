package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"baikuk-backoffice-api/internal/cache"
	"baikuk-backoffice-api/internal/constant"
	"baikuk-backoffice-api/internal/service"
	"baikuk-backoffice-api/internal/utils"
)

// SettlementHandler 지점 정산 조회 처리기
type SettlementHandler struct{ svc *service.SettlementService }

func NewSettlementHandler(staff *cache.StaffCache) *SettlementHandler {
	return &SettlementHandler{svc: service.NewSettlementService(staff)}
}

// Branches GET /api/v1/settlement/branches
func (h *SettlementHandler) Branches(c *gin.Context) {
	list, bizErr := h.svc.Branches()
	if bizErr != nil {
		c.JSON(http.StatusOK, utils.Error(bizErr.Code()))
		return
	}
	c.JSON(http.StatusOK, utils.Success(list))
}

// Monthly GET /api/v1/settlement/:affiliation/monthly
func (h *SettlementHandler) Monthly(c *gin.Context) {
	affiliation := c.Param("affiliation")
	if affiliation == "" {
		c.JSON(http.StatusBadRequest, utils.Error(constant.CodeInvalidParams))
		return
	}

	resp, bizErr := h.svc.BranchMonthly(affiliation)
	if bizErr != nil {
		c.JSON(http.StatusOK, utils.Error(bizErr.Code()))
		return
	}
	c.JSON(http.StatusOK, utils.Success(resp))
}
