package service

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"breaking_news/internal/config"
	"breaking_news/internal/domain"
)

// Dispatcher drains the obligation queue oldest first, one page at a time.
type Dispatcher struct {
	articles ArticleStore
	queue    QueueStore
	sender   Sender
	observer Observer
	logger   *slog.Logger
	config   config.PipelineConfig
}

func NewDispatcher(
	articles ArticleStore,
	queue QueueStore,
	sender Sender,
	observer Observer,
	logger *slog.Logger,
	cfg config.PipelineConfig,
) *Dispatcher {
	if observer == nil {
		observer = nopObserver{}
	}
	return &Dispatcher{
		articles: articles,
		queue:    queue,
		sender:   sender,
		observer: observer,
		logger:   logger.With("component", "dispatcher"),
		config:   cfg,
	}
}

// Drain delivers every queued obligation. Each page is deleted once it has
// been sent and marked, so the next page is always read from the head of the
// queue.
//
// A failed send aborts the page: none of its items are marked or deleted and
// the next run delivers them again, including the ones already sent.
func (d *Dispatcher) Drain(ctx context.Context) (domain.DrainStats, error) {
	var stats domain.DrainStats

	for {
		items, err := d.queue.ListOldest(ctx, d.config.QueuePageSize)
		if err != nil {
			return stats, fmt.Errorf("list queued items: %w", err)
		}
		if len(items) == 0 {
			break
		}

		if err := d.processPage(ctx, items); err != nil {
			return stats, err
		}

		stats.Pages++
		stats.Delivered += len(items)

		d.logger.Debug("queue page drained", "page", stats.Pages, "items", len(items))

		if err := pause(ctx, d.config.PageDelay); err != nil {
			return stats, err
		}
	}

	if stats.Delivered > 0 {
		d.logger.Info("queue drained", "pages", stats.Pages, "delivered", stats.Delivered)
	}

	return stats, nil
}

func (d *Dispatcher) processPage(ctx context.Context, items []domain.QueuedItem) error {
	for i := range items {
		if err := d.deliver(ctx, &items[i]); err != nil {
			d.observer.SendFailed()
			d.logger.Warn("page aborted",
				"item_id", items[i].ID,
				"position", i,
				"page_size", len(items),
				"error", err,
			)
			return err
		}
	}

	if err := d.markReceived(ctx, items); err != nil {
		return err
	}
	d.observer.ReceivedMarked(len(items))

	ids := make([]string, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}
	if err := d.queue.DeleteByIDs(ctx, ids); err != nil {
		return fmt.Errorf("delete queued items: %w", err)
	}
	d.observer.Drained(len(ids))

	return nil
}

// deliver sends the alert and then the card for one obligation.
func (d *Dispatcher) deliver(ctx context.Context, item *domain.QueuedItem) error {
	alert := NewAlertMessage(item.User, d.config.AlertText)
	if err := d.sender.Send(ctx, item.User, alert); err != nil {
		return fmt.Errorf("send alert for item %s to user %s: %w", item.ID, item.User.ID, err)
	}
	d.observer.MessageSent(alert.Type)

	link := ReadURL(d.config.ReadServerURL, item.Article.FeedID, item.Article.ID, item.User.ID)
	card := NewArticleCard(item.User, item.Article, link, d.config.ReadMoreLabel)
	if err := d.sender.Send(ctx, item.User, card); err != nil {
		return fmt.Errorf("send card for item %s to user %s: %w", item.ID, item.User.ID, err)
	}
	d.observer.MessageSent(card.Type)

	return nil
}

// markReceived adds every user of the page to its article's received-set.
// The updates touch independent keys and run concurrently.
func (d *Dispatcher) markReceived(ctx context.Context, items []domain.QueuedItem) error {
	g, gctx := errgroup.WithContext(ctx)
	if d.config.MarkConcurrency > 0 {
		g.SetLimit(d.config.MarkConcurrency)
	}

	for _, item := range items {
		articleID, userID := item.Article.ID, item.User.ID
		g.Go(func() error {
			if err := d.articles.AddReceivedBy(gctx, articleID, userID); err != nil {
				return fmt.Errorf("mark article %s received by %s: %w", articleID, userID, err)
			}
			return nil
		})
	}

	return g.Wait()
}
