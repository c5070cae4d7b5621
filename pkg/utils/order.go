package utils

import (
	"fmt"
	"time"

	"smarttech/pkg/snowflake"
)

// GenerateOrderSn 生成订单号 order_<毫秒时间戳><雪花ID后6位>
func GenerateOrderSn() string {
	id := snowflake.GenID()
	return fmt.Sprintf("order_%d%06d", time.Now().UnixMilli(), id%1000000)
}
