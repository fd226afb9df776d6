package cache

import "strings"

const (
	GlobalKeyPrefix = "vidlearn"
)

// GenerateCacheKey builds "vidlearn:<service>:<objectType>:<identifier>", with
// any params joined by "_" and appended as a final segment.
func GenerateCacheKey(serviceName, objectType, identifier string, paramsKey ...string) string {
	baseKey := strings.Join([]string{GlobalKeyPrefix, serviceName, objectType, identifier}, ":")
	if len(paramsKey) > 0 {
		return strings.Join([]string{baseKey, strings.Join(paramsKey, "_")}, ":")
	}
	return baseKey
}

// TranscriptKey is where the caption segments of a video are cached.
func TranscriptKey(videoID string) string {
	return GenerateCacheKey("transcript", "segments", videoID)
}
