package core

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/example/eventapp/internal/db"
	"github.com/example/eventapp/internal/models"
)

// UnknownNickName stands in for the nickname of a photo whose owner has no
// user document.
const UnknownNickName = "unknown"

// FormatPostDate renders the age of a post relative to now: minutes under an
// hour, hours under a day, days under a week, otherwise the calendar date in
// loc. Each bound belongs to the next bucket.
func FormatPostDate(posted, now time.Time, loc *time.Location) string {
	elapsed := now.Sub(posted)
	if elapsed < 0 {
		elapsed = 0
	}
	switch {
	case elapsed < time.Hour:
		return strconv.FormatInt(int64(elapsed/time.Minute), 10) + "分前"
	case elapsed < 24*time.Hour:
		return strconv.FormatInt(int64(elapsed/time.Hour), 10) + "時間前"
	case elapsed < 7*24*time.Hour:
		return strconv.FormatInt(int64(elapsed/(24*time.Hour)), 10) + "日前"
	}
	local := posted.In(loc)
	return fmt.Sprintf("%d年%d月%d日", local.Year(), int(local.Month()), local.Day())
}

type feedService struct {
	photos      db.PhotoRepository
	users       db.UserRepository
	loc         *time.Location
	concurrency int
	now         func() time.Time
	logger      *zap.Logger
}

// NewFeedService creates a FeedService. At most concurrency owner lookups
// run at once.
func NewFeedService(photos db.PhotoRepository, users db.UserRepository, loc *time.Location, concurrency int, now func() time.Time, logger *zap.Logger) FeedService {
	if concurrency < 1 {
		concurrency = 1
	}
	if now == nil {
		now = time.Now
	}
	return &feedService{
		photos:      photos,
		users:       users,
		loc:         loc,
		concurrency: concurrency,
		now:         now,
		logger:      logger,
	}
}

func (s *feedService) ListFeed(ctx context.Context) ([]models.FeedItem, error) {
	photos, err := s.photos.ListNewestFirst(ctx)
	if err != nil {
		return nil, err
	}

	nickNames, err := s.nickNames(ctx, photos)
	if err != nil {
		return nil, err
	}

	now := s.now()
	feed := make([]models.FeedItem, 0, len(photos))
	for _, p := range photos {
		feed = append(feed, models.FeedItem{
			ID:       p.ID,
			NickName: nickNames[p.UID],
			Fav:      p.Fav,
			URL:      p.URL,
			Place:    p.Place,
			PostDate: FormatPostDate(p.Date, now, s.loc),
		})
	}
	return feed, nil
}

// nickNames resolves each distinct owner once.
func (s *feedService) nickNames(ctx context.Context, photos []*models.Photo) (map[string]string, error) {
	var (
		mu    sync.Mutex
		names = make(map[string]string)
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	seen := make(map[string]bool)
	hasAnonymous := false
	for _, p := range photos {
		uid := p.UID
		if uid == "" {
			hasAnonymous = true
			continue
		}
		if seen[uid] {
			continue
		}
		seen[uid] = true
		g.Go(func() error {
			name := UnknownNickName
			user, err := s.users.GetByID(gctx, uid)
			switch {
			case err == nil:
				name = user.Settings.NickName
			case errors.Is(err, db.ErrNotFound):
				s.logger.Warn("Photo owner has no user document", zap.String("uid", uid))
			default:
				return fmt.Errorf("failed to resolve owner '%s': %w", uid, err)
			}
			mu.Lock()
			names[uid] = name
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if hasAnonymous {
		names[""] = UnknownNickName
	}
	return names, nil
}
