package cli

import (
	"context"
	"errors"

	"github.com/redhub-app/redhub-cli/internal/client/session"
	"github.com/redhub-app/redhub-cli/internal/common"
)

// Moderation refreshes and prints the pending article queue. Requires the
// moderator role.
func (a *App) Moderation(ctx context.Context) error {
	if !a.visit(ctx, session.PathModerate) {
		return nil
	}

	if err := a.moderation.Refresh(ctx); err != nil {
		printlnFn("Failed to load moderation queue:", err.Error())
		return err
	}
	for _, article := range a.moderation.Queue() {
		printlnFn(article.String())
	}
	return nil
}

// Approve removes a pending article from the queue and publishes it. The
// two steps are separate gateway calls; if publishing fails, the removal
// stands and a notification reports the partial outcome.
func (a *App) Approve(ctx context.Context) error {
	if !a.visit(ctx, session.PathModerate) {
		return nil
	}

	id, err := a.promptArticleID()
	if err != nil {
		return err
	}

	if err := a.moderation.Approve(ctx, id); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			printlnFn("Not in the queue")
		}
		return err
	}
	printlnFn("Approved")
	return nil
}

// Reject removes a pending article from the queue without publishing it.
func (a *App) Reject(ctx context.Context) error {
	if !a.visit(ctx, session.PathModerate) {
		return nil
	}

	id, err := a.promptArticleID()
	if err != nil {
		return err
	}

	if err := a.moderation.Reject(ctx, id); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			printlnFn("Not in the queue")
		}
		return err
	}
	printlnFn("Rejected")
	return nil
}
