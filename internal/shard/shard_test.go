package shard

import (
	"testing"
	"time"
)

func TestCRC32ShardStrategy(t *testing.T) {
	strategy := NewCRC32Strategy(4)
	dealID := uint64(123456789)
	shard := strategy.GetShard(dealID)
	if shard < 0 || shard >= 4 {
		t.Errorf("Shard out of range: %d", shard)
	}
}

func TestShardEngine_GetTable(t *testing.T) {
	engine := NewShardEngine("performance_log", 4)
	dealID := uint64(987654321)
	timestamp := time.Date(2025, 9, 12, 12, 0, 0, 0, time.Local)
	table := engine.GetTable(dealID, timestamp)

	expectedPrefix := "performance_log_202509_p"
	if len(table) < len(expectedPrefix) || table[:len(expectedPrefix)] != expectedPrefix {
		t.Errorf("Unexpected table name: %s", table)
	}
}

func TestShardEngine_AllTables(t *testing.T) {
	engine := NewShardEngine("performance_log", 4)
	tables := engine.AllTables(time.Date(2025, 9, 1, 0, 0, 0, 0, time.Local))
	if len(tables) != 4 {
		t.Fatalf("expected 4 tables, got %d", len(tables))
	}
	if tables[0] != "performance_log_202509_p0" {
		t.Errorf("unexpected first table: %s", tables[0])
	}
}
