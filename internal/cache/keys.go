package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

const (
	GlobalKeyPrefix = "interviewprep"

	capabilityService = "capability"
)

// GenerateCacheKey generates a cache key for a given service, object type, and identifier.
// If paramsKey are provided, they are joined by "_" and appended to the cache key.
func GenerateCacheKey(serviceName, objectType, identifier string, paramsKey ...string) string {
	baseKey := strings.Join([]string{GlobalKeyPrefix, serviceName, objectType, identifier}, ":")
	if len(paramsKey) > 0 {
		return strings.Join([]string{baseKey, strings.Join(paramsKey, "_")}, ":")
	}
	return baseKey
}

// CapabilityKey keys a capability result by its inputs. Inputs are
// case-folded and trimmed, then hashed so free-text roles stay out of the key.
func CapabilityKey(capability string, inputs ...string) string {
	h := sha256.New()
	for _, in := range inputs {
		h.Write([]byte(strings.ToLower(strings.TrimSpace(in))))
		h.Write([]byte{0})
	}
	return GenerateCacheKey(capabilityService, capability, hex.EncodeToString(h.Sum(nil))[:32])
}
