package cache

import (
	"testing"

	mainmodel "baikuk-backoffice-api/internal/model/main"
)

type fakeLoader struct {
	staff []mainmodel.StaffProfile
	calls int
}

func (f *fakeLoader) ListActiveStaff() ([]mainmodel.StaffProfile, error) {
	f.calls++
	return f.staff, nil
}

func TestStaffCacheReadThrough(t *testing.T) {
	loader := &fakeLoader{staff: []mainmodel.StaffProfile{
		{ID: "u1", Name: "김철수", Affiliation: "강남점"},
		{ID: "u2", Name: "이영희", Affiliation: "강남점"},
		{ID: "u3", Name: "박민수", Affiliation: "서초점"},
	}}
	c := NewStaffCache(loader, nil)

	name, ok := c.NameByID("u1")
	if !ok || name != "김철수" {
		t.Errorf("NameByID(u1) = %q, %v", name, ok)
	}
	// 두 번째 조회는 적재 없이 캐시에서
	c.NameByID("u2")
	if loader.calls != 1 {
		t.Errorf("loader called %d times, want 1", loader.calls)
	}

	ids, err := c.ActiveIDsByAffiliation("강남점")
	if err != nil {
		t.Fatal(err)
	}
	if len(ids) != 2 {
		t.Errorf("expected 2 staff in 강남점, got %d", len(ids))
	}
	if _, ok := ids["u3"]; ok {
		t.Error("u3 belongs to 서초점")
	}
}

func TestStaffCacheInvalidate(t *testing.T) {
	loader := &fakeLoader{staff: []mainmodel.StaffProfile{{ID: "u1", Name: "김철수", Affiliation: "강남점"}}}
	c := NewStaffCache(loader, nil)

	c.NameByID("u1")
	c.Invalidate()
	c.NameByID("u1")
	if loader.calls != 2 {
		t.Errorf("loader called %d times after invalidate, want 2", loader.calls)
	}
}

func TestStaffCacheUnknownID(t *testing.T) {
	loader := &fakeLoader{}
	c := NewStaffCache(loader, nil)
	if _, ok := c.NameByID("nope"); ok {
		t.Error("unknown id must not resolve")
	}
}
