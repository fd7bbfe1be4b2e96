// Package session is the mock pilot authentication: a locally persisted
// directory plus a single current-user pointer. Not a security boundary.
package session

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/ariefcatur/gunpla-storefront/internal/apperr"
	"github.com/ariefcatur/gunpla-storefront/internal/clock"
	"github.com/ariefcatur/gunpla-storefront/internal/storage"
)

const (
	MsgPasscodeMismatch = "Error: Passcode Verification Failed"
	MsgDuplicateEmail   = "Signal Intercepted: Pilot ID already registered."
	MsgAccessDenied     = "Access Denied: Invalid Credentials"
)

type Options struct {
	LoginDelay    time.Duration
	RegisterDelay time.Duration
	Sleep         clock.Sleeper
	Now           clock.Now
	Log           *zap.Logger
}

type Manager struct {
	mu      sync.Mutex
	store   storage.Store
	current *User
	ids     *clock.IDs
	busy    atomic.Int32
	opts    Options
}

// Open restores the persisted session pointer as-is; it is not checked against the directory.
func Open(ctx context.Context, store storage.Store, opts Options) (*Manager, error) {
	if opts.Sleep == nil {
		opts.Sleep = clock.RealSleep
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Log == nil {
		opts.Log = zap.NewNop()
	}
	m := &Manager{store: store, ids: clock.NewIDs(opts.Now), opts: opts}

	u, ok, err := storage.LoadJSON[User](ctx, store, storage.KeySession)
	if err != nil {
		return nil, errors.Wrap(err, "restore session")
	}
	if ok {
		m.current = &u
		opts.Log.Info("session restored", zap.String("pilot_id", u.ID))
	}
	return m, nil
}

func (m *Manager) Current() (User, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return User{}, false
	}
	return *m.current, true
}

func (m *Manager) Authenticated() bool {
	_, ok := m.Current()
	return ok
}

// Busy reports a simulated call in flight; callers disable their submit affordance meanwhile.
func (m *Manager) Busy() bool { return m.busy.Load() > 0 }

// simulate waits out the configured latency. The wait ignores ctx and the
// work after it runs detached from cancellation: a started call always lands.
func (m *Manager) simulate(ctx context.Context, d time.Duration) context.Context {
	m.busy.Add(1)
	m.opts.Sleep(d)
	return context.WithoutCancel(ctx)
}

// Register signs the new pilot in on success. A duplicate email is a Conflict.
func (m *Manager) Register(ctx context.Context, f RegisterForm) (User, error) {
	if f.Password != f.ConfirmPassword {
		return User{}, apperr.Validation(MsgPasscodeMismatch)
	}
	if err := apperr.Struct(f); err != nil {
		return User{}, err
	}

	ctx = m.simulate(ctx, m.opts.RegisterDelay)
	defer m.busy.Add(-1)

	m.mu.Lock()
	defer m.mu.Unlock()

	dir, _, err := storage.LoadJSON[[]Record](ctx, m.store, storage.KeyUsersDB)
	if err != nil {
		return User{}, errors.Wrap(err, "load directory")
	}
	for _, r := range dir {
		if r.Email == f.Email {
			return User{}, apperr.Conflict(MsgDuplicateEmail)
		}
	}

	u := User{
		ID:         "PILOT-" + m.ids.Next(),
		Name:       f.Name,
		Email:      f.Email,
		Faction:    f.Faction,
		Rank:       DefaultRank,
		JoinedDate: clock.DisplayDate(m.opts.Now()),
	}
	dir = append(dir, Record{User: u, Password: f.Password})
	if err := storage.SaveJSON(ctx, m.store, storage.KeyUsersDB, dir); err != nil {
		return User{}, errors.Wrap(err, "save directory")
	}

	// directory sudah tersimpan; kalau pointer gagal, pilot terdaftar tapi belum login
	if err := storage.SaveJSON(ctx, m.store, storage.KeySession, u); err != nil {
		return u, errors.Wrap(err, "save session")
	}
	m.current = &u
	m.opts.Log.Info("pilot registered", zap.String("pilot_id", u.ID), zap.String("faction", string(u.Faction)))
	return u, nil
}

// Login reports false for any mismatch without saying which field was wrong.
// The error is reserved for storage failures.
func (m *Manager) Login(ctx context.Context, email, password string) (User, bool, error) {
	ctx = m.simulate(ctx, m.opts.LoginDelay)
	defer m.busy.Add(-1)

	m.mu.Lock()
	defer m.mu.Unlock()

	dir, _, err := storage.LoadJSON[[]Record](ctx, m.store, storage.KeyUsersDB)
	if err != nil {
		return User{}, false, errors.Wrap(err, "load directory")
	}
	for _, r := range dir {
		if r.Email == email && r.Password == password {
			u := r.User
			if err := storage.SaveJSON(ctx, m.store, storage.KeySession, u); err != nil {
				return User{}, false, errors.Wrap(err, "save session")
			}
			m.current = &u
			m.opts.Log.Info("pilot signed in", zap.String("pilot_id", u.ID))
			return u, true, nil
		}
	}
	m.opts.Log.Info("sign-in rejected")
	return User{}, false, nil
}

func (m *Manager) Logout(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = nil
	return errors.Wrap(m.store.Delete(ctx, storage.KeySession), "clear session")
}
