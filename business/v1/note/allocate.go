package note

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/ribgsilva/notes-service/persistence/v1/hint"
	"github.com/ribgsilva/notes-service/persistence/v1/note"
	"github.com/ribgsilva/notes-service/sys"
)

const (
	minSearchSpace = 100
	// maxSearchSpace keeps candidates inside a signed BIGINT column.
	maxSearchSpace = 1 << 62
)

// Allocator picks note ids that are unused for a given user.
//
// Candidates are drawn uniformly from [0, max) where max starts at the larger
// of 100 and the user's hint, doubling after every collision. The hint only
// shrinks the chance of a collision; correctness rests on Exists.
type Allocator struct {
	Exists  func(ctx context.Context, username string, id uint64) (bool, error)
	Current func(ctx context.Context, username string) (uint64, error)
	Raise   func(ctx context.Context, username string, id uint64) error
	Intn    func(n uint64) uint64
}

var allocator = Allocator{
	Exists:  note.Exists,
	Current: hint.Current,
	Raise:   hint.Raise,
	Intn:    randomIntn,
}

// Allocate returns an id not currently used by any note owned by username.
func (a Allocator) Allocate(ctx context.Context, username string) (uint64, error) {
	max := uint64(minSearchSpace)
	if h, err := a.Current(ctx, username); err != nil {
		sys.R.Log.Warnw("allocate", "username", username, "status", "hint unavailable", "ERROR", err)
	} else if h > max {
		max = h
	}

	for {
		candidate := a.Intn(max)
		taken, err := a.Exists(ctx, username, candidate)
		if err != nil {
			return 0, err
		}
		if !taken {
			if err := a.Raise(ctx, username, candidate); err != nil {
				sys.R.Log.Warnw("allocate", "username", username, "status", "hint not raised", "ERROR", err)
			}
			return candidate, nil
		}
		if max < maxSearchSpace {
			max *= 2
		}
	}
}

var rnd = struct {
	sync.Mutex
	*rand.Rand
}{Rand: rand.New(rand.NewSource(time.Now().UnixNano()))}

func randomIntn(n uint64) uint64 {
	rnd.Lock()
	defer rnd.Unlock()
	return uint64(rnd.Int63n(int64(n)))
}
