package settlement

import (
	"errors"
	"sort"
	"time"

	"baikuk-backoffice-api/internal/cache"
	"baikuk-backoffice-api/internal/dal"
	"baikuk-backoffice-api/internal/dao"
	"baikuk-backoffice-api/internal/dto"
	dealmodel "baikuk-backoffice-api/internal/model/deal"
	"baikuk-backoffice-api/internal/utils"
)

// Settlement 지점 월별 정산 집계.
// 잔금일(YYYY-MM) 기준으로, 지점 소속 재직자가 들어간 슬롯의
// 관여매출을 월별로 합산한다.
type Settlement struct {
	dealDao    *dao.DealDao
	staffCache *cache.StaffCache
}

func New(staffCache *cache.StaffCache) *Settlement {
	return &Settlement{
		dealDao:    dao.NewDealDao(),
		staffCache: staffCache,
	}
}

const branchMonthlyKeyPrefix = "settlement:branch:"

// MonthlyTotals 지점의 월별 관여매출 합계 (월 오름차순)
func (s *Settlement) MonthlyTotals(affiliation string) ([]dto.MonthlyTotal, error) {
	if affiliation == "" {
		return nil, errors.New("affiliation required")
	}
	staffIDs, err := s.staffCache.ActiveIDsByAffiliation(affiliation)
	if err != nil {
		return nil, err
	}
	if len(staffIDs) == 0 {
		return []dto.MonthlyTotal{}, nil
	}

	deals, err := s.dealDao.ListWithBalanceDate()
	if err != nil {
		return nil, err
	}
	if len(deals) == 0 {
		return []dto.MonthlyTotal{}, nil
	}

	ymByID := make(map[uint64]string, len(deals))
	ids := make([]uint64, 0, len(deals))
	for _, d := range deals {
		if d.BalanceDate == nil {
			continue
		}
		ymByID[d.PerformanceID] = d.BalanceDate.Format("2006-01")
		ids = append(ids, d.PerformanceID)
	}

	allocs, err := s.dealDao.ListAllocations(ids)
	if err != nil {
		return nil, err
	}

	monthly := map[string]int64{}
	for i := range allocs {
		ym, ok := ymByID[allocs[i].PerformanceID]
		if !ok {
			continue
		}
		monthly[ym] += sumForStaff(&allocs[i], staffIDs)
	}

	months := make([]string, 0, len(monthly))
	for ym := range monthly {
		months = append(months, ym)
	}
	sort.Strings(months)

	out := make([]dto.MonthlyTotal, 0, len(months))
	for _, ym := range months {
		out = append(out, dto.MonthlyTotal{
			Month:     ym,
			Total:     monthly[ym],
			TotalText: utils.FormatWithCommas(monthly[ym]),
		})
	}
	return out, nil
}

// RefreshBranchCache 집계 결과를 Redis에 갱신 (이벤트 소비자가 호출)
func (s *Settlement) RefreshBranchCache(affiliation string) error {
	months, err := s.MonthlyTotals(affiliation)
	if err != nil {
		return err
	}
	if dal.RedisClient == nil {
		return nil
	}
	key := branchMonthlyKeyPrefix + affiliation
	return dal.RedisClient.Set(dal.RedisCtx, key, utils.MapToJSON(months), 30*time.Minute).Err()
}

// CachedMonthlyTotals Redis에 집계가 있으면 그것을 먼저 쓴다
func (s *Settlement) CachedMonthlyTotals(affiliation string) ([]dto.MonthlyTotal, error) {
	if dal.RedisClient != nil {
		key := branchMonthlyKeyPrefix + affiliation
		if raw, err := dal.RedisClient.Get(dal.RedisCtx, key).Result(); err == nil && raw != "" {
			var months []dto.MonthlyTotal
			if utils.JSONToMap(raw, &months) == nil {
				return months, nil
			}
		}
	}
	return s.MonthlyTotals(affiliation)
}

// sumForStaff 슬롯 1~4 중 지점 직원 슬롯의 관여매출 합.
// 관여매출이 0 이하인 과거 행은 매수+매도 금액으로 대신한다.
func sumForStaff(a *dealmodel.PerformanceAllocation, staffIDs map[string]struct{}) int64 {
	type slot struct {
		id          *string
		inv         int64
		buyer, sell int64
	}
	slots := []slot{
		{a.StaffID1, a.InvolvementSales1, a.BuyerAmount1, a.SellerAmount1},
		{a.StaffID2, a.InvolvementSales2, a.BuyerAmount2, a.SellerAmount2},
		{a.StaffID3, a.InvolvementSales3, a.BuyerAmount3, a.SellerAmount3},
		{a.StaffID4, a.InvolvementSales4, a.BuyerAmount4, a.SellerAmount4},
	}
	var sum int64
	for _, sl := range slots {
		if sl.id == nil || *sl.id == "" {
			continue
		}
		if _, ok := staffIDs[*sl.id]; !ok {
			continue
		}
		if sl.inv > 0 {
			sum += sl.inv
		} else {
			sum += sl.buyer + sl.sell
		}
	}
	return sum
}
