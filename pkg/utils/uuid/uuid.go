package uuid

import (
	"encoding/hex"

	"github.com/gofrs/uuid"
)

// GenUUID4 生成 32 位十六进制的 UUID4（无连字符），用于 Request ID / Session ID
func GenUUID4() string {
	return hex.EncodeToString(uuid.Must(uuid.NewV4()).Bytes())
}

// IsValid 判断是否为 GenUUID4 生成的格式
func IsValid(id string) bool {
	if len(id) != 32 {
		return false
	}
	_, err := hex.DecodeString(id)
	return err == nil
}
