package service

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"baikuk-backoffice-api/internal/cache"
	"baikuk-backoffice-api/internal/commission"
	"baikuk-backoffice-api/internal/config"
	"baikuk-backoffice-api/internal/constant"
	"baikuk-backoffice-api/internal/dal"
	"baikuk-backoffice-api/internal/dao"
	"baikuk-backoffice-api/internal/dto"
	"baikuk-backoffice-api/internal/idgen"
	"baikuk-backoffice-api/internal/logger"
	dealmodel "baikuk-backoffice-api/internal/model/deal"
	"baikuk-backoffice-api/internal/mq"
	"baikuk-backoffice-api/internal/shard"
	"baikuk-backoffice-api/internal/utils"
)

type DealService struct {
	mainDao *dao.MainDao
	dealDao *dao.DealDao
	staff   *cache.StaffCache
}

func NewDealService(staff *cache.StaffCache) *DealService {
	return &DealService{
		mainDao: dao.NewMainDao(),
		dealDao: dao.NewDealDao(),
		staff:   staff,
	}
}

// Save 매출 저장. id가 0이면 신규.
// 수수료 → 매출 분배 → 직원 배분 순서로 계산한 뒤 매출과 배분을
// 한 트랜잭션으로 저장한다. 실패 시 아무것도 반영되지 않는다.
func (s *DealService) Save(id uint64, req dto.SavePerformanceReq) (*dto.SavePerformanceResp, constant.Error) {
	action := "update"
	if id == 0 {
		id = idgen.New()
		action = "create"
	}

	// 1) 배분 슬롯의 직원 확인
	rows := make([]commission.AllocationRow, commission.MaxAllocationSlots)
	assigned := false
	for i, slot := range req.Allocations {
		if i >= commission.MaxAllocationSlots {
			break
		}
		if slot.StaffID != "" {
			if _, err := uuid.Parse(slot.StaffID); err != nil {
				return nil, constant.NewError(constant.CodeStaffIdInvalid)
			}
			if _, ok := s.staff.NameByID(slot.StaffID); !ok {
				return nil, constant.NewError(constant.CodeStaffNotFound)
			}
			assigned = true
		}
		rows[i] = commission.AllocationRow{
			StaffID:         slot.StaffID,
			BuyerWeightPct:  float64(slot.BuyerWeight),
			SellerWeightPct: float64(slot.SellerWeight),
		}
	}

	// 2) 분배율 합계 검증 (직원이 한 명이라도 배정된 경우에만)
	if assigned {
		if ok, msg := commission.ValidateWeights(rows); !ok {
			return nil, constant.NewErrorWithMessage(constant.CodeWeightSumInvalid, msg)
		}
	}

	// 3) 수수료 → 매출 분배 → 직원 배분
	deal := commission.DealRecord{
		DealType:     commission.DealType(req.DealType),
		SalePrice:    int64(req.SalePrice),
		DepositPrice: int64(req.DepositPrice),
		MonthlyRent:  int64(req.MonthlyRent),
		PremiumPrice: int64(req.PremiumPrice),
		Expense:      int64(req.Expense),
	}
	fee, ok := commission.DeriveFee(deal)
	if !ok {
		return nil, constant.NewError(constant.CodeDealTypeInvalid)
	}
	split := commission.SplitPerformance(fee, float64(req.SellerDistributionRate), deal.Expense, splitPolicy(req.SplitPolicy))
	commission.Allocate(split, rows)

	// 4) 계약금/잔금
	downPayment := commission.DownPayment(deal.DepositPrice)
	if req.DownPayment != nil {
		downPayment = int64(*req.DownPayment)
	}
	balance := commission.Balance(deal.DepositPrice, downPayment,
		int64(req.InterimPayment1), int64(req.InterimPayment2), int64(req.InterimPayment3))

	// 5) 모델 구성
	now := time.Now()
	m := &dealmodel.Performance{}
	_ = copier.Copy(m, &req) // 문자열/포인터 동명 필드
	m.PerformanceID = id
	m.SalePrice = deal.SalePrice
	m.DepositPrice = deal.DepositPrice
	m.MonthlyRent = deal.MonthlyRent
	m.PremiumPrice = deal.PremiumPrice
	m.Expense = deal.Expense
	m.DownPayment = downPayment
	m.InterimPayment1 = int64(req.InterimPayment1)
	m.InterimPayment2 = int64(req.InterimPayment2)
	m.InterimPayment3 = int64(req.InterimPayment3)
	m.Balance = balance
	m.ContractDate = parseDate(req.ContractDate)
	m.BalanceDate = parseDate(req.BalanceDate)
	m.BuyerFee = fee.BuyerFee
	m.SellerFee = fee.SellerFee
	m.SellerDistributionRate = float64(req.SellerDistributionRate)
	m.SellerPerformance = split.SellerPerformance
	m.BuyerPerformance = split.BuyerPerformance
	m.CreatedAt = now
	m.UpdatedAt = now

	alloc := buildAllocationModel(id, rows, now)

	// 6) 저장 (타임아웃 내 전체 반영 또는 전체 롤백)
	ctx, cancel := context.WithTimeout(context.Background(),
		time.Duration(config.C.Perf.SaveTimeoutSec)*time.Second)
	defer cancel()
	if err := s.dealDao.SaveWithAllocation(ctx, m, alloc); err != nil {
		logger.Save.Errorf("save failed: id=%d err=%v", id, err)
		return nil, constant.NewError(constant.CodeDealSaveFailed)
	}

	// 7) 캐시/이벤트/감사 로그 (실패해도 저장 자체는 유효)
	cacheKey := "performance:" + strconv.FormatUint(id, 10)
	_ = dal.RedisClient.Set(dal.RedisCtx, cacheKey, utils.MapToJSON(m), 10*time.Minute).Err()

	evt := mq.PerformanceSavedEvent{
		PerformanceID: id,
		Affiliation:   m.Affiliation,
		Action:        action,
		Operator:      req.Operator,
		SavedAt:       now.Unix(),
	}
	if m.BalanceDate != nil {
		evt.BalanceMonth = m.BalanceDate.Format("2006-01")
	}
	_ = mq.PublishPerformanceSaved(evt)

	logTable := shard.DealLogShard.GetTable(id, now)
	if err := s.dealDao.InsertLog(logTable, &dealmodel.PerformanceLog{
		ID:            idgen.New(),
		PerformanceID: id,
		Action:        action,
		Operator:      req.Operator,
		Snapshot:      utils.MapToJSON(m),
		CreatedAt:     now,
	}); err != nil {
		logger.Save.Warnf("audit log failed: id=%d err=%v", id, err)
	}

	return &dto.SavePerformanceResp{
		PerformanceID: id,
		BuyerFee:      fee.BuyerFee,
		SellerFee:     fee.SellerFee,
		BuyerPerf:     split.BuyerPerformance,
		SellerPerf:    split.SellerPerformance,
		DownPayment:   downPayment,
		Balance:       balance,
		Allocations:   s.slotVOs(rows),
	}, nil
}

// Get 매출 단건. Redis 우선 조회.
func (s *DealService) Get(id uint64) (*dto.PerformanceVO, constant.Error) {
	var m *dealmodel.Performance
	cacheKey := "performance:" + strconv.FormatUint(id, 10)
	if raw, err := dal.RedisClient.Get(dal.RedisCtx, cacheKey).Result(); err == nil {
		var cached dealmodel.Performance
		if utils.JSONToMap(raw, &cached) == nil {
			m = &cached
		}
	}
	if m == nil {
		found, err := s.dealDao.GetByID(id)
		if err != nil {
			return nil, constant.NewError(constant.CodeDatabaseError)
		}
		m = found
	}
	if m == nil {
		return nil, constant.NewError(constant.CodeDealNotFound)
	}

	alloc, err := s.dealDao.GetAllocation(id)
	if err != nil {
		return nil, constant.NewError(constant.CodeDatabaseError)
	}

	vo := &dto.PerformanceVO{}
	_ = copier.Copy(vo, m)
	vo.BuyerFeeText = utils.FormatWithCommas(m.BuyerFee)
	vo.SellerFeeText = utils.FormatWithCommas(m.SellerFee)
	vo.BuyerPerformanceText = utils.FormatWithCommas(m.BuyerPerformance)
	vo.SellerPerformanceText = utils.FormatWithCommas(m.SellerPerformance)
	vo.Allocations = s.allocationVOs(alloc)
	return vo, nil
}

// List 매출 목록
func (s *DealService) List(kw, affiliation string, pageSize, pageNum int) ([]dto.PerformanceVO, int64, constant.Error) {
	offset := (pageNum - 1) * pageSize
	list, total, err := s.dealDao.List(kw, affiliation, pageSize, offset)
	if err != nil {
		return nil, 0, constant.NewError(constant.CodeDatabaseError)
	}
	out := make([]dto.PerformanceVO, 0, len(list))
	for i := range list {
		vo := dto.PerformanceVO{}
		_ = copier.Copy(&vo, &list[i])
		vo.BuyerFeeText = utils.FormatWithCommas(list[i].BuyerFee)
		vo.SellerFeeText = utils.FormatWithCommas(list[i].SellerFee)
		vo.BuyerPerformanceText = utils.FormatWithCommas(list[i].BuyerPerformance)
		vo.SellerPerformanceText = utils.FormatWithCommas(list[i].SellerPerformance)
		out = append(out, vo)
	}
	return out, total, nil
}

// Preview 실시간 재계산. 저장하지 않는다.
func (s *DealService) Preview(req dto.PreviewReq) *dto.PreviewResp {
	deal := commission.DealRecord{
		DealType:     commission.DealType(req.DealType),
		SalePrice:    int64(req.SalePrice),
		DepositPrice: int64(req.DepositPrice),
		MonthlyRent:  int64(req.MonthlyRent),
		Expense:      int64(req.Expense),
	}
	resp := &dto.PreviewResp{WeightsOK: true}

	fee, ok := commission.DeriveFee(deal)
	if !ok {
		// 거래유형 미정: 기존 값 유지가 원칙이므로 0만 돌려준다
		return resp
	}
	split := commission.SplitPerformance(fee, float64(req.SellerDistributionRate), deal.Expense, splitPolicy(req.SplitPolicy))

	resp.BuyerFee = fee.BuyerFee
	resp.SellerFee = fee.SellerFee
	resp.BuyerPerf = split.BuyerPerformance
	resp.SellerPerf = split.SellerPerformance

	rows := make([]commission.AllocationRow, 0, commission.MaxAllocationSlots)
	for i, slot := range req.Allocations {
		if i >= commission.MaxAllocationSlots {
			break
		}
		rows = append(rows, commission.AllocationRow{
			StaffID:         slot.StaffID,
			BuyerWeightPct:  float64(slot.BuyerWeight),
			SellerWeightPct: float64(slot.SellerWeight),
		})
		resp.Previews = append(resp.Previews,
			commission.PreviewRow(split, float64(slot.BuyerWeight), float64(slot.SellerWeight)))
	}
	if len(rows) > 0 {
		resp.WeightsOK, resp.WeightsMsg = commission.ValidateWeights(rows)
	}
	return resp
}

func splitPolicy(s string) commission.SplitPolicy {
	if s == string(commission.PolicySimple) {
		return commission.PolicySimple
	}
	return commission.PolicyExpenseAware
}

func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return nil
	}
	return &t
}

func (s *DealService) slotVOs(rows []commission.AllocationRow) []dto.AllocationSlotVO {
	out := make([]dto.AllocationSlotVO, 0, len(rows))
	for _, r := range rows {
		vo := dto.AllocationSlotVO{
			StaffID:          r.StaffID,
			BuyerWeight:      r.BuyerWeightPct,
			SellerWeight:     r.SellerWeightPct,
			BuyerAmount:      r.BuyerAmount,
			SellerAmount:     r.SellerAmount,
			InvolvementSales: r.InvolvementSales,
		}
		if r.StaffID != "" {
			if name, ok := s.staff.NameByID(r.StaffID); ok {
				vo.StaffName = name
			}
		}
		out = append(out, vo)
	}
	return out
}

func (s *DealService) allocationVOs(a *dealmodel.PerformanceAllocation) []dto.AllocationSlotVO {
	if a == nil {
		return []dto.AllocationSlotVO{}
	}
	type slot struct {
		id          *string
		bw, sw      float64
		ba, sa, inv int64
	}
	slots := []slot{
		{a.StaffID1, a.BuyerWeight1, a.SellerWeight1, a.BuyerAmount1, a.SellerAmount1, a.InvolvementSales1},
		{a.StaffID2, a.BuyerWeight2, a.SellerWeight2, a.BuyerAmount2, a.SellerAmount2, a.InvolvementSales2},
		{a.StaffID3, a.BuyerWeight3, a.SellerWeight3, a.BuyerAmount3, a.SellerAmount3, a.InvolvementSales3},
		{a.StaffID4, a.BuyerWeight4, a.SellerWeight4, a.BuyerAmount4, a.SellerAmount4, a.InvolvementSales4},
	}
	out := make([]dto.AllocationSlotVO, 0, len(slots))
	for _, sl := range slots {
		vo := dto.AllocationSlotVO{
			BuyerWeight:      sl.bw,
			SellerWeight:     sl.sw,
			BuyerAmount:      sl.ba,
			SellerAmount:     sl.sa,
			InvolvementSales: sl.inv,
		}
		if sl.id != nil && *sl.id != "" {
			vo.StaffID = *sl.id
			if name, ok := s.staff.NameByID(*sl.id); ok {
				vo.StaffName = name
			}
		}
		out = append(out, vo)
	}
	return out
}

func buildAllocationModel(id uint64, rows []commission.AllocationRow, now time.Time) *dealmodel.PerformanceAllocation {
	a := &dealmodel.PerformanceAllocation{PerformanceID: id, CreatedAt: now, UpdatedAt: now}
	sid := func(r commission.AllocationRow) *string {
		if r.StaffID == "" {
			return nil
		}
		v := r.StaffID
		return &v
	}
	if len(rows) > 0 {
		a.StaffID1, a.BuyerWeight1, a.SellerWeight1 = sid(rows[0]), rows[0].BuyerWeightPct, rows[0].SellerWeightPct
		a.BuyerAmount1, a.SellerAmount1, a.InvolvementSales1 = rows[0].BuyerAmount, rows[0].SellerAmount, rows[0].InvolvementSales
	}
	if len(rows) > 1 {
		a.StaffID2, a.BuyerWeight2, a.SellerWeight2 = sid(rows[1]), rows[1].BuyerWeightPct, rows[1].SellerWeightPct
		a.BuyerAmount2, a.SellerAmount2, a.InvolvementSales2 = rows[1].BuyerAmount, rows[1].SellerAmount, rows[1].InvolvementSales
	}
	if len(rows) > 2 {
		a.StaffID3, a.BuyerWeight3, a.SellerWeight3 = sid(rows[2]), rows[2].BuyerWeightPct, rows[2].SellerWeightPct
		a.BuyerAmount3, a.SellerAmount3, a.InvolvementSales3 = rows[2].BuyerAmount, rows[2].SellerAmount, rows[2].InvolvementSales
	}
	if len(rows) > 3 {
		a.StaffID4, a.BuyerWeight4, a.SellerWeight4 = sid(rows[3]), rows[3].BuyerWeightPct, rows[3].SellerWeightPct
		a.BuyerAmount4, a.SellerAmount4, a.InvolvementSales4 = rows[3].BuyerAmount, rows[3].SellerAmount, rows[3].InvolvementSales
	}
	return a
}
