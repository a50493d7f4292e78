package idgen

import (
	"log"
	"os"
	"strconv"
)

// Init 기본 노드 초기화. SNOWFLAKE_NODE_ID가 있으면 그 값을 우선한다.
func Init(defaultNodeID int64) {
	nodeID := defaultNodeID
	if s := os.Getenv("SNOWFLAKE_NODE_ID"); s != "" {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil || v < 0 || v > 1023 {
			log.Fatalf("[IDGen] Invalid SNOWFLAKE_NODE_ID: %v", s)
		}
		nodeID = v
	}
	if err := InitNode("default", nodeID); err != nil {
		log.Fatalf("[IDGen] InitNode failed: %v", err)
	}
	log.Printf("[IDGen] Snowflake node initialized: nodeID=%d", nodeID)
}
