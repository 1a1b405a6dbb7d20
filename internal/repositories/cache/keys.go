package cache

import "fmt"

type EntityType string

const EntityUser EntityType = "user"

type KeyType string

const (
	KeyWalletList  KeyType = "wallets"
	KeyListVersion KeyType = "wallets_version"
)

const keyPrefix = "ledgerly"

// GenerateKey creates a standardized cache key
func GenerateKey(entity EntityType, keyType KeyType, value interface{}) string {
	return fmt.Sprintf("%s:%s:%s:%v", keyPrefix, entity, keyType, value)
}

// WalletListKey is the key of a user's cached wallet list.
func WalletListKey(userID string) string {
	return GenerateKey(EntityUser, KeyWalletList, userID)
}

// ListVersionKey is the key of the counter bumped on every invalidation of a
// user's wallet list.
func ListVersionKey(userID string) string {
	return GenerateKey(EntityUser, KeyListVersion, userID)
}
