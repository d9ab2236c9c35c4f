package caches

import "cafe-dashboard/internal/models"

// APIPrefix is the route prefix every cache key is built under. The HTTP
// layer and the refresh scheduler both go through the builders below, so a
// warmed key is byte-for-byte the key a request hit computes.
const APIPrefix = "/api/v1"

// RankingsKey returns the cache key for the member rankings of a timeframe.
func RankingsKey(prefix string, timeframe models.Timeframe) string {
	return prefix + "/members/rankings?timeframe=" + string(timeframe)
}

// MembersKey returns the cache key for the full member listing.
func MembersKey(prefix string) string {
	return prefix + "/members"
}
