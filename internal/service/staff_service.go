package service

import (
	"sort"

	"baikuk-backoffice-api/internal/cache"
	"baikuk-backoffice-api/internal/constant"
	"baikuk-backoffice-api/internal/dto"
)

type StaffService struct {
	staff *cache.StaffCache
}

func NewStaffService(staff *cache.StaffCache) *StaffService {
	return &StaffService{staff: staff}
}

// Groups 지점별 재직자 목록 (폼 직원 셀렉트용)
func (s *StaffService) Groups() ([]dto.StaffGroupVO, constant.Error) {
	groups, err := s.staff.Groups()
	if err != nil {
		return nil, constant.NewError(constant.CodeDatabaseError)
	}

	affs := make([]string, 0, len(groups))
	for aff := range groups {
		affs = append(affs, aff)
	}
	sort.Strings(affs)

	out := make([]dto.StaffGroupVO, 0, len(affs))
	for _, aff := range affs {
		g := dto.StaffGroupVO{Affiliation: aff}
		for _, st := range groups[aff] {
			g.Staff = append(g.Staff, dto.StaffVO{
				ID:          st.ID,
				Name:        st.Name,
				Affiliation: st.Affiliation,
				Extension:   st.Extension,
			})
		}
		out = append(out, g)
	}
	return out, nil
}

// Refresh 인사 변경 후 캐시 재적재
func (s *StaffService) Refresh() constant.Error {
	if err := s.staff.Refresh(); err != nil {
		return constant.NewError(constant.CodeDatabaseError)
	}
	return nil
}
