package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"baikuk-backoffice-api/internal/cache"
	"baikuk-backoffice-api/internal/config"
	"baikuk-backoffice-api/internal/constant"
	"baikuk-backoffice-api/internal/dto"
	"baikuk-backoffice-api/internal/middleware"
	"baikuk-backoffice-api/internal/service"
	"baikuk-backoffice-api/internal/utils"
)

// DealHandler 매출 입력/조회 처리기
type DealHandler struct{ svc *service.DealService }

func NewDealHandler(staff *cache.StaffCache) *DealHandler {
	return &DealHandler{svc: service.NewDealService(staff)}
}

// Create POST /api/v1/performance
func (h *DealHandler) Create(c *gin.Context) {
	var req dto.SavePerformanceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.CustomError(constant.CodeInvalidParams, err.Error()))
		return
	}

	resp, bizErr := h.svc.Save(0, req)
	if bizErr != nil {
		c.JSON(http.StatusOK, utils.CustomError(bizErr.Code(), bizErr.Message()))
		return
	}
	r := utils.Success(resp)
	r.TraceID = middleware.TraceID(c)
	c.JSON(http.StatusOK, r)
}

// Update PUT /api/v1/performance/:id
func (h *DealHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, utils.Error(constant.CodeInvalidParams))
		return
	}

	var req dto.SavePerformanceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.CustomError(constant.CodeInvalidParams, err.Error()))
		return
	}

	resp, bizErr := h.svc.Save(id, req)
	if bizErr != nil {
		c.JSON(http.StatusOK, utils.CustomError(bizErr.Code(), bizErr.Message()))
		return
	}
	r := utils.Success(resp)
	r.TraceID = middleware.TraceID(c)
	c.JSON(http.StatusOK, r)
}

// Get GET /api/v1/performance/:id
func (h *DealHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, utils.Error(constant.CodeInvalidParams))
		return
	}

	vo, bizErr := h.svc.Get(id)
	if bizErr != nil {
		c.JSON(http.StatusOK, utils.Error(bizErr.Code()))
		return
	}
	c.JSON(http.StatusOK, utils.Success(vo))
}

// List GET /api/v1/performance
func (h *DealHandler) List(c *gin.Context) {
	kw := c.Query("keyword")
	affiliation := c.Query("affiliation")
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	pageNum, _ := strconv.Atoi(c.DefaultQuery("page_num", "1"))
	if pageSize <= 0 || pageSize > 200 {
		pageSize = 20
	}
	if pageNum <= 0 {
		pageNum = 1
	}

	list, total, bizErr := h.svc.List(kw, affiliation, pageSize, pageNum)
	if bizErr != nil {
		c.JSON(http.StatusOK, utils.Error(bizErr.Code()))
		return
	}
	c.JSON(http.StatusOK, utils.Success(gin.H{
		"total": total,
		"list":  list,
	}))
}

// Preview POST /api/v1/performance/preview
// 저장 없이 수수료/분배/배분 금액만 계산해 돌려준다.
func (h *DealHandler) Preview(c *gin.Context) {
	var req dto.PreviewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.CustomError(constant.CodeInvalidParams, err.Error()))
		return
	}
	c.JSON(http.StatusOK, utils.Success(h.svc.Preview(req)))
}

// FormDefaults GET /api/v1/performance/defaults
// 신규 입력 폼 기본값
func (h *DealHandler) FormDefaults(c *gin.Context) {
	c.JSON(http.StatusOK, utils.Success(gin.H{
		"dist_rate_pct":    config.C.Perf.DefaultDistRatePct,
		"deal_types":       []string{"매매", "월세"},
		"allocation_slots": 4,
	}))
}
