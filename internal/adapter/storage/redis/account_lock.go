package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bank-ledger/internal/core/ports"
	"bank-ledger/pkg/apperror"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

const (
	defaultLockTTL   = 5 * time.Second
	defaultLockRetry = 25 * time.Millisecond
)

// ErrLockLost is returned by release when the lock expired and was taken by
// another holder before it was released.
var ErrLockLost = errors.New("account lock lost before release")

// Deletes the key only while it still holds our token.
var releaseScript = goredis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// AccountLocker implements ports.AccountLocker with a Redis key per account.
// The key holds a random token and expires after TTL so a crashed holder
// cannot block the account forever.
type AccountLocker struct {
	client *goredis.Client
	prefix string
	opts   ports.LockOptions
}

func NewAccountLocker(client *goredis.Client, opts ports.LockOptions) *AccountLocker {
	if opts.TTL <= 0 {
		opts.TTL = defaultLockTTL
	}
	if opts.Retry <= 0 {
		opts.Retry = defaultLockRetry
	}
	return &AccountLocker{
		client: client,
		prefix: "ledger:lock:",
		opts:   opts,
	}
}

// Lock retries SET NX until it wins, Wait has elapsed or ctx is done.
// A zero Wait leaves the bound to ctx.
func (l *AccountLocker) Lock(ctx context.Context, accountID uuid.UUID) (func(context.Context) error, error) {
	key := l.key(accountID)
	token := uuid.NewString()
	deadline := time.Now().Add(l.opts.Wait)

	for {
		acquired, err := l.tryAcquire(ctx, key, token)
		if err != nil {
			if ctx.Err() != nil {
				return nil, apperror.ErrLockTimeout(ctx.Err())
			}
			return nil, err
		}
		if acquired {
			return func(releaseCtx context.Context) error {
				return l.release(releaseCtx, key, token)
			}, nil
		}

		if l.opts.Wait > 0 && !time.Now().Before(deadline) {
			return nil, apperror.ErrLockTimeout(fmt.Errorf("account %s still locked after %s", accountID, l.opts.Wait))
		}

		timer := time.NewTimer(l.opts.Retry)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, apperror.ErrLockTimeout(ctx.Err())
		case <-timer.C:
		}
	}
}

func (l *AccountLocker) tryAcquire(ctx context.Context, key, token string) (bool, error) {
	res, err := l.client.SetArgs(ctx, key, token, goredis.SetArgs{
		Mode: "NX",
		TTL:  l.opts.TTL,
	}).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("redis account lock: %w", err)
	}
	return res == "OK", nil
}

func (l *AccountLocker) release(ctx context.Context, key, token string) error {
	deleted, err := releaseScript.Run(ctx, l.client, []string{key}, token).Int64()
	if err != nil {
		return fmt.Errorf("redis account unlock: %w", err)
	}
	if deleted == 0 {
		return ErrLockLost
	}
	return nil
}

func (l *AccountLocker) key(accountID uuid.UUID) string {
	return l.prefix + accountID.String()
}
