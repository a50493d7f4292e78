package shard

import "baikuk-backoffice-api/internal/config"

// DealLogShard 매출 저장 감사 로그 샤드
var DealLogShard *ShardEngine

func InitShardEngines() {
	DealLogShard = NewShardEngine("performance_log", uint32(config.C.Perf.LogShardsPerMonth))
}
