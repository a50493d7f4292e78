package dao

import (
	"context"
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"baikuk-backoffice-api/internal/dal"
	dealmodel "baikuk-backoffice-api/internal/model/deal"
)

type DealDao struct {
	DB *gorm.DB
}

func NewDealDao() *DealDao {
	if dal.DealDB == nil {
		log.Panic("[FATAL] dal.DealDB is nil - database not initialized")
	}
	return &DealDao{DB: dal.DealDB}
}

func NewDealDaoWithDB(db *gorm.DB) *DealDao {
	if db == nil {
		log.Panic("[FATAL] db cannot be nil")
	}
	return &DealDao{DB: db}
}

func (r *DealDao) checkDB() error {
	if r == nil {
		return errors.New("DealDao is nil")
	}
	if r.DB == nil {
		return errors.New("DB connection is nil")
	}
	return nil
}

// SaveWithAllocation 매출 + 배분 행을 한 트랜잭션으로 저장.
// 배분은 전부 반영되거나 전부 반영되지 않는다 (부분 저장 금지).
func (r *DealDao) SaveWithAllocation(ctx context.Context, p *dealmodel.Performance, a *dealmodel.PerformanceAllocation) error {
	if err := r.checkDB(); err != nil {
		return fmt.Errorf("save performance failed: %w", err)
	}
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "performance_id"}},
			UpdateAll: true,
		}).Create(p).Error; err != nil {
			return fmt.Errorf("upsert performance: %w", err)
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "performance_id"}},
			UpdateAll: true,
		}).Create(a).Error; err != nil {
			return fmt.Errorf("upsert allocation: %w", err)
		}
		return nil
	})
}

// 매출 단건
func (r *DealDao) GetByID(id uint64) (*dealmodel.Performance, error) {
	if err := r.checkDB(); err != nil {
		return nil, fmt.Errorf("get performance failed: %w", err)
	}
	var m dealmodel.Performance
	err := r.DB.Where("performance_id = ?", id).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	return &m, nil
}

// 배분 단건
func (r *DealDao) GetAllocation(performanceID uint64) (*dealmodel.PerformanceAllocation, error) {
	if err := r.checkDB(); err != nil {
		return nil, fmt.Errorf("get allocation failed: %w", err)
	}
	var m dealmodel.PerformanceAllocation
	err := r.DB.Where("performance_id = ?", performanceID).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	return &m, nil
}

// 목록 (제목 키워드 / 지점 필터)
func (r *DealDao) List(kw, affiliation string, limit, offset int) ([]dealmodel.Performance, int64, error) {
	if err := r.checkDB(); err != nil {
		return nil, 0, fmt.Errorf("list performance failed: %w", err)
	}
	q := r.DB.Model(&dealmodel.Performance{})
	if kw != "" {
		q = q.Where("listing_title LIKE ?", "%"+kw+"%")
	}
	if affiliation != "" {
		q = q.Where("affiliation = ?", affiliation)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count failed: %w", err)
	}
	var out []dealmodel.Performance
	if err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&out).Error; err != nil {
		return nil, 0, fmt.Errorf("find failed: %w", err)
	}
	return out, total, nil
}

// 정산 대상: 잔금일이 있는 매출 전체
func (r *DealDao) ListWithBalanceDate() ([]dealmodel.Performance, error) {
	if err := r.checkDB(); err != nil {
		return nil, fmt.Errorf("list settlement targets failed: %w", err)
	}
	var out []dealmodel.Performance
	err := r.DB.Where("balance_date IS NOT NULL").Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	return out, nil
}

// 매출 ID 목록으로 배분 행 일괄 조회 (IN 조건은 배치로 나눈다)
func (r *DealDao) ListAllocations(performanceIDs []uint64) ([]dealmodel.PerformanceAllocation, error) {
	if err := r.checkDB(); err != nil {
		return nil, fmt.Errorf("list allocations failed: %w", err)
	}
	const batch = 800
	var out []dealmodel.PerformanceAllocation
	for i := 0; i < len(performanceIDs); i += batch {
		end := i + batch
		if end > len(performanceIDs) {
			end = len(performanceIDs)
		}
		var chunk []dealmodel.PerformanceAllocation
		if err := r.DB.Where("performance_id IN ?", performanceIDs[i:end]).Find(&chunk).Error; err != nil {
			return nil, fmt.Errorf("query failed: %w", err)
		}
		out = append(out, chunk...)
	}
	return out, nil
}

// 감사 로그 기록 (월별 샤드 테이블)
func (r *DealDao) InsertLog(table string, l *dealmodel.PerformanceLog) error {
	if err := r.checkDB(); err != nil {
		return fmt.Errorf("insert log failed: %w", err)
	}
	return r.DB.Table(table).Create(l).Error
}
