package cache

import (
	"github.com/go-redis/redis/v8"
)

// Lua scripts for Redis operations
var (
	setIfGenerationScript         *redis.Script
	setListingScript              *redis.Script
	invalidatePropertyCacheScript *redis.Script
	invalidateKeyScript           *redis.Script
	releaseLockScript             *redis.Script
)

func init() {
	// store a value only while the generation counter still holds the value
	// the caller read before loading it. A missing counter reads as "0".
	setIfGenerationScript = redis.NewScript(`
		local gen = redis.call('GET', KEYS[2]) or '0'
		if gen ~= ARGV[1] then
			return 0
		end
		redis.call('SET', KEYS[1], ARGV[2], 'EX', tonumber(ARGV[3]))
		return 1
	`)

	// store a listing payload under the same generation check and associate
	// the listing key with every property it contains, so a write to any of
	// them drops the listing.
	setListingScript = redis.NewScript(`
		local gen = redis.call('GET', KEYS[2]) or '0'
		if gen ~= ARGV[1] then
			return 0
		end
		local expiration = tonumber(ARGV[3])
		redis.call('SET', KEYS[1], ARGV[2], 'EX', expiration)
		for i = 4, #ARGV do
			local set_key = 'property:keys:' .. ARGV[i]
			redis.call('SADD', set_key, KEYS[1])
			redis.call('EXPIRE', set_key, expiration)
		end
		return 1
	`)

	// remove the property entry and every cache key associated with it, then
	// bump the property generation so in-flight fills are refused.
	invalidatePropertyCacheScript = redis.NewScript(`
		local set_key = 'property:keys:' .. ARGV[1]
		local cache_keys = redis.call('SMEMBERS', set_key)
		if #cache_keys > 0 then
			redis.call('DEL', unpack(cache_keys))
		end
		redis.call('DEL', set_key, 'property:' .. ARGV[1])
		local gen_key = 'property:gen:' .. ARGV[1]
		redis.call('INCR', gen_key)
		redis.call('EXPIRE', gen_key, tonumber(ARGV[2]))
		return 1
	`)

	// remove a single key and bump its generation counter.
	invalidateKeyScript = redis.NewScript(`
		redis.call('DEL', KEYS[1])
		redis.call('INCR', KEYS[2])
		redis.call('EXPIRE', KEYS[2], tonumber(ARGV[1]))
		return 1
	`)

	// delete the lock only if it still holds the caller's token.
	releaseLockScript = redis.NewScript(`
		if redis.call('GET', KEYS[1]) == ARGV[1] then
			return redis.call('DEL', KEYS[1])
		end
		return 0
	`)
}
