package shard

import (
	"fmt"
	"hash/crc32"
)

// ShardStrategy 샤드 결정 전략 인터페이스
type ShardStrategy interface {
	GetShard(id uint64) int
}

// CRC32ShardStrategy CRC32 해시 기반 샤드 결정
type CRC32ShardStrategy struct {
	ShardCount uint32
}

func NewCRC32Strategy(count uint32) *CRC32ShardStrategy {
	return &CRC32ShardStrategy{ShardCount: count}
}

func (s *CRC32ShardStrategy) GetShard(id uint64) int {
	hash := crc32.ChecksumIEEE([]byte(fmt.Sprintf("%d", id)))
	return int(hash % s.ShardCount)
}
