package snowflake

import (
	"sync"

	"github.com/bwmarrin/snowflake"
)

var (
	node *snowflake.Node
	once sync.Once
)

// Init 初始化雪花节点
func Init(machineID int64) error {
	var err error
	once.Do(func() {
		node, err = snowflake.NewNode(machineID)
	})
	return err
}

// GenID 生成全局唯一ID
func GenID() int64 {
	if node == nil {
		_ = Init(1)
	}
	return node.Generate().Int64()
}

// GenIDString 生成字符串形式的ID
func GenIDString() string {
	if node == nil {
		_ = Init(1)
	}
	return node.Generate().String()
}
