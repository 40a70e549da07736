package cache

import "strings"

const (
	GlobalKeyPrefix = "devopsref"
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

// RenderedAnswerKey addresses the rendered markup of one answer revision.
// The digest changes whenever the raw answer text does, so reloads never serve stale markup.
func RenderedAnswerKey(questionID, answerDigest string) string {
	return GenerateCacheKey("answer", "rendered", questionID, answerDigest)
}
