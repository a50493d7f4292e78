package cache

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"

	"baikuk-backoffice-api/internal/dal"
	mainmodel "baikuk-backoffice-api/internal/model/main"
)

const staffSnapshotKey = "staff:active:snapshot"

// StaffLoader 직원 목록 적재원 (보통 MainDao)
type StaffLoader interface {
	ListActiveStaff() ([]mainmodel.StaffProfile, error)
}

// StaffCache 직원 이름/소속 read-through 캐시.
// 전역 맵 대신 주입해서 쓰고, 인사 변경 시 Refresh/Invalidate를 명시적으로
// 호출한다. Redis 스냅샷은 다중 인스턴스 웜업용.
type StaffCache struct {
	mu     sync.RWMutex
	loader StaffLoader
	rdb    *redis.Client
	ttl    time.Duration

	nameByID      map[string]string
	byAffiliation map[string][]mainmodel.StaffProfile
}

func NewStaffCache(loader StaffLoader, rdb *redis.Client) *StaffCache {
	return &StaffCache{
		loader: loader,
		rdb:    rdb,
		ttl:    10 * time.Minute,
	}
}

// NameByID 직원 이름 조회. 캐시에 없으면 전체를 다시 적재한다.
func (c *StaffCache) NameByID(id string) (string, bool) {
	c.mu.RLock()
	if c.nameByID != nil {
		name, ok := c.nameByID[id]
		c.mu.RUnlock()
		return name, ok
	}
	c.mu.RUnlock()

	if err := c.Refresh(); err != nil {
		return "", false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	name, ok := c.nameByID[id]
	return name, ok
}

// ActiveIDsByAffiliation 지점 소속 재직자 ID 집합 (정산 합계용)
func (c *StaffCache) ActiveIDsByAffiliation(affiliation string) (map[string]struct{}, error) {
	if err := c.ensureLoaded(); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make(map[string]struct{})
	for _, s := range c.byAffiliation[affiliation] {
		out[s.ID] = struct{}{}
	}
	return out, nil
}

// Groups 지점별 재직자 목록 (폼 셀렉트 채우기용)
func (c *StaffCache) Groups() (map[string][]mainmodel.StaffProfile, error) {
	if err := c.ensureLoaded(); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make(map[string][]mainmodel.StaffProfile, len(c.byAffiliation))
	for aff, list := range c.byAffiliation {
		out[aff] = append([]mainmodel.StaffProfile(nil), list...)
	}
	return out, nil
}

// Refresh DB에서 다시 적재하고 Redis 스냅샷을 갱신한다
func (c *StaffCache) Refresh() error {
	staff, err := c.loader.ListActiveStaff()
	if err != nil {
		return err
	}
	nameByID := make(map[string]string, len(staff))
	byAff := make(map[string][]mainmodel.StaffProfile)
	for _, s := range staff {
		nameByID[s.ID] = s.Name
		byAff[s.Affiliation] = append(byAff[s.Affiliation], s)
	}

	c.mu.Lock()
	c.nameByID = nameByID
	c.byAffiliation = byAff
	c.mu.Unlock()

	if c.rdb != nil {
		if b, err := json.Marshal(staff); err == nil {
			_ = c.rdb.Set(dal.RedisCtx, staffSnapshotKey, b, c.ttl).Err()
		}
	}
	return nil
}

// Invalidate 캐시 비우기. 다음 조회 때 다시 적재된다.
func (c *StaffCache) Invalidate() {
	c.mu.Lock()
	c.nameByID = nil
	c.byAffiliation = nil
	c.mu.Unlock()
	if c.rdb != nil {
		_ = c.rdb.Del(dal.RedisCtx, staffSnapshotKey).Err()
	}
}

func (c *StaffCache) ensureLoaded() error {
	c.mu.RLock()
	loaded := c.nameByID != nil
	c.mu.RUnlock()
	if loaded {
		return nil
	}
	// Redis 스냅샷이 있으면 DB를 거치지 않고 웜업
	if c.rdb != nil {
		if b, err := c.rdb.Get(dal.RedisCtx, staffSnapshotKey).Bytes(); err == nil {
			var staff []mainmodel.StaffProfile
			if json.Unmarshal(b, &staff) == nil && len(staff) > 0 {
				nameByID := make(map[string]string, len(staff))
				byAff := make(map[string][]mainmodel.StaffProfile)
				for _, s := range staff {
					nameByID[s.ID] = s.Name
					byAff[s.Affiliation] = append(byAff[s.Affiliation], s)
				}
				c.mu.Lock()
				c.nameByID = nameByID
				c.byAffiliation = byAff
				c.mu.Unlock()
				return nil
			}
		}
	}
	return c.Refresh()
}
