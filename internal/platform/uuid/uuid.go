// Package uuid provides the random identifier source used for certification codes.
package uuid

import (
	guuid "github.com/google/uuid"

	"community_backend/internal/feature/user/domain/entity"
)

// SystemUUIDHolder はランダムなUUID v4文字列を生成する本番用の実装です。
type SystemUUIDHolder struct{}

var _ entity.UUIDHolder = SystemUUIDHolder{}

// Random は新しいUUID v4を文字列で返します。
func (SystemUUIDHolder) Random() string {
	return guuid.NewString()
}
