// Package exchange is the peer-to-peer trade board: posts, their comment
// threads and status, persisted as one snapshot after every mutation.
package exchange

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/ariefcatur/gunpla-storefront/internal/apperr"
	"github.com/ariefcatur/gunpla-storefront/internal/clock"
	"github.com/ariefcatur/gunpla-storefront/internal/storage"
)

type Options struct {
	// StrictComments turns a comment on an unknown post into a NotFound error instead of a silent no-op.
	StrictComments bool
	Now            clock.Now
	IDs            *clock.IDs
	Log            *zap.Logger
}

type Board struct {
	mu    sync.Mutex
	posts []Post // newest first
	store storage.Store
	opts  Options
}

// NewBoard restores the persisted snapshot, or seeds the two example posts when nothing is stored.
func NewBoard(ctx context.Context, store storage.Store, opts Options) (*Board, error) {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.IDs == nil {
		opts.IDs = clock.NewIDs(opts.Now)
	}
	if opts.Log == nil {
		opts.Log = zap.NewNop()
	}

	posts, ok, err := storage.LoadJSON[[]Post](ctx, store, storage.KeyExchangePosts)
	if err != nil {
		return nil, errors.Wrap(err, "restore exchange board")
	}
	if !ok {
		posts = seedPosts()
		opts.Log.Info("exchange board seeded", zap.Int("posts", len(posts)))
	}
	for i := range posts {
		if posts[i].Status == "" {
			posts[i].Status = StatusOpen
		}
		if posts[i].Comments == nil {
			posts[i].Comments = []Comment{}
		}
	}
	return &Board{posts: posts, store: store, opts: opts}, nil
}

// commit persists next and only then makes it the live collection.
func (b *Board) commit(ctx context.Context, next []Post) error {
	if err := storage.SaveJSON(ctx, b.store, storage.KeyExchangePosts, next); err != nil {
		return errors.Wrap(err, "persist exchange board")
	}
	b.posts = next
	return nil
}

func (b *Board) CreatePost(ctx context.Context, f PostForm) (Post, error) {
	if f.Condition == "" {
		f.Condition = ConditionNewInBox
	}
	if err := apperr.Struct(f); err != nil {
		return Post{}, err
	}

	now := b.opts.Now()
	p := Post{
		ID:          b.opts.IDs.Next(),
		Author:      strings.TrimSpace(f.Author),
		Have:        strings.TrimSpace(f.Have),
		Want:        strings.TrimSpace(f.Want),
		Condition:   f.Condition,
		Date:        clock.DisplayDate(now),
		Image:       strings.TrimSpace(f.Image),
		Description: strings.TrimSpace(f.Description),
		Comments:    []Comment{},
		Status:      StatusOpen,
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	next := make([]Post, 0, len(b.posts)+1)
	next = append(next, p)
	next = append(next, b.posts...)
	if err := b.commit(ctx, next); err != nil {
		return Post{}, err
	}
	b.opts.Log.Info("exchange post created", zap.String("post_id", p.ID), zap.String("author", p.Author))
	return p.clone(), nil
}

// AddComment returns (nil, nil) when nothing was appended: blank text, or an
// unknown post outside strict mode.
func (b *Board) AddComment(ctx context.Context, postID, text string) (*Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	idx := b.indexOf(postID)
	if idx < 0 {
		if b.opts.StrictComments {
			return nil, apperr.NotFoundf("exchange post %s not found", postID)
		}
		b.opts.Log.Debug("comment on unknown post ignored", zap.String("post_id", postID))
		return nil, nil
	}

	c := Comment{
		ID:     b.opts.IDs.Next(),
		Author: GuestAuthor,
		Text:   text,
		Date:   clock.DisplayDate(b.opts.Now()),
	}
	next := b.snapshot()
	next[idx].Comments = append(next[idx].Comments, c)
	if err := b.commit(ctx, next); err != nil {
		return nil, err
	}
	return &c, nil
}

// SetStatus moves a post along Open -> Pending -> Closed; Closed is terminal.
func (b *Board) SetStatus(ctx context.Context, postID string, to Status) (from Status, err error) {
	if !to.Valid() {
		return "", apperr.Validationf("unknown status %q", to)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	idx := b.indexOf(postID)
	if idx < 0 {
		return "", apperr.NotFoundf("exchange post %s not found", postID)
	}
	from = b.posts[idx].Status
	if !CanTransition(from, to) {
		return from, apperr.Conflict("cannot move post from " + string(from) + " to " + string(to))
	}

	next := b.snapshot()
	next[idx].Status = to
	if err := b.commit(ctx, next); err != nil {
		return from, err
	}
	return from, nil
}

// Search matches have, want or author case-insensitively and keeps board order.
func (b *Board) Search(query string) []Post {
	q := strings.ToLower(query)
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]Post, 0, len(b.posts))
	for _, p := range b.posts {
		if q == "" ||
			strings.Contains(strings.ToLower(p.Have), q) ||
			strings.Contains(strings.ToLower(p.Want), q) ||
			strings.Contains(strings.ToLower(p.Author), q) {
			out = append(out, p.clone())
		}
	}
	return out
}

func (b *Board) Posts() []Post { return b.Search("") }

func (b *Board) Get(id string) (Post, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if i := b.indexOf(id); i >= 0 {
		return b.posts[i].clone(), true
	}
	return Post{}, false
}

func (b *Board) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.posts)
}

func (b *Board) indexOf(id string) int {
	for i := range b.posts {
		if b.posts[i].ID == id {
			return i
		}
	}
	return -1
}

func (b *Board) snapshot() []Post {
	out := make([]Post, len(b.posts))
	for i, p := range b.posts {
		out[i] = p.clone()
	}
	return out
}
