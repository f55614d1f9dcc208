// Package clock provides the system clock used for domain timestamps.
package clock

import (
	"time"

	"community_backend/internal/feature/user/domain/entity"
)

// SystemClock はUnixエポックミリ秒を返す本番用の時計です。
type SystemClock struct{}

var _ entity.ClockHolder = SystemClock{}

// Millis は現在時刻をエポックミリ秒で返します。
func (SystemClock) Millis() int64 {
	return time.Now().UnixMilli()
}
