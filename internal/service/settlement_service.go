package service

import (
	"baikuk-backoffice-api/internal/cache"
	"baikuk-backoffice-api/internal/constant"
	"baikuk-backoffice-api/internal/dao"
	"baikuk-backoffice-api/internal/dto"
	"baikuk-backoffice-api/internal/settlement"
)

type SettlementService struct {
	mainDao *dao.MainDao
	stl     *settlement.Settlement
}

func NewSettlementService(staff *cache.StaffCache) *SettlementService {
	return &SettlementService{
		mainDao: dao.NewMainDao(),
		stl:     settlement.New(staff),
	}
}

// Branches 지점 목록
func (s *SettlementService) Branches() ([]dto.BranchVO, constant.Error) {
	list, err := s.mainDao.ListBranches()
	if err != nil {
		return nil, constant.NewError(constant.CodeDatabaseError)
	}
	out := make([]dto.BranchVO, 0, len(list))
	for _, b := range list {
		out = append(out, dto.BranchVO{
			Affiliation:   b.Affiliation,
			OfficeName:    b.OfficeName,
			ContactNumber: b.ContactNumber,
		})
	}
	return out, nil
}

// BranchMonthly 지점 월별 정산. 집계 캐시가 있으면 그것을 쓴다.
func (s *SettlementService) BranchMonthly(affiliation string) (*dto.BranchMonthlyResp, constant.Error) {
	branch, err := s.mainDao.GetBranch(affiliation)
	if err != nil {
		return nil, constant.NewError(constant.CodeDatabaseError)
	}
	if branch == nil {
		return nil, constant.NewError(constant.CodeBranchNotFound)
	}

	months, err := s.stl.CachedMonthlyTotals(affiliation)
	if err != nil {
		return nil, constant.NewError(constant.CodeSettlementFailed)
	}
	return &dto.BranchMonthlyResp{
		Affiliation: affiliation,
		Months:      months,
	}, nil
}
