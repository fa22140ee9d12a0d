// Package cache keeps enumerated mesh-code sets in Redis.
//
// A map client that pans and zooms asks for the same viewports over and over. RedisCache stores
// the codes of each (viewport, level) pair as a compressed code-set blob (package codeset) under
//
//	<prefix>:<level>:<xxhash64 of the viewport>
//
// with the default prefix "jismesh:codes". CachedEnumerator puts a RedisCache in front of a
// region.Enumerator: hits are served from Redis, misses are enumerated and written back. Redis
// failures never fail an enumeration; they are logged and counted, and the codes are computed.
package cache
