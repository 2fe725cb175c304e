package hint

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/go-redis/redis/v8"
	"github.com/ribgsilva/notes-service/sys"
)

const hintKey = "notes.hint.%s"

// raiseScript keeps the stored value at max(current, candidate) in one round trip.
var raiseScript = redis.NewScript(`
local current = tonumber(redis.call("GET", KEYS[1]) or "0")
local candidate = tonumber(ARGV[1])
if candidate > current then
	redis.call("SET", KEYS[1], ARGV[1])
	return candidate
end
return current
`)

// local is used when no redis is configured; it only sees ids allocated by this process.
var local = struct {
	sync.Mutex
	highest map[string]uint64
}{highest: map[string]uint64{}}

// Current returns the highest id allocated so far for username, or 0.
func Current(ctx context.Context, username string) (uint64, error) {
	rdb := sys.R.Hint
	if rdb == nil {
		local.Lock()
		defer local.Unlock()
		return local.highest[username], nil
	}

	rCtx, rCancel := context.WithTimeout(ctx, sys.Configs.Hint.OperationTimeout)
	defer rCancel()
	get, err := rdb.Get(rCtx, fmt.Sprintf(hintKey, username)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get hint: %w", err)
	}
	v, err := strconv.ParseUint(get, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error parsing hint %q: %w", get, err)
	}
	return v, nil
}

// Raise lifts the hint for username to at least id.
func Raise(ctx context.Context, username string, id uint64) error {
	rdb := sys.R.Hint
	if rdb == nil {
		local.Lock()
		defer local.Unlock()
		if id > local.highest[username] {
			local.highest[username] = id
		}
		return nil
	}

	rCtx, rCancel := context.WithTimeout(ctx, sys.Configs.Hint.OperationTimeout)
	defer rCancel()
	if err := raiseScript.Run(rCtx, rdb, []string{fmt.Sprintf(hintKey, username)}, strconv.FormatUint(id, 10)).Err(); err != nil {
		return fmt.Errorf("failed to raise hint: %w", err)
	}
	return nil
}
