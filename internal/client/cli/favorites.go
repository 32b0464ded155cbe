package cli

import (
	"context"
	"errors"

	"github.com/redhub-app/redhub-cli/internal/client/session"
	"github.com/redhub-app/redhub-cli/internal/common"
)

// Favorites refreshes and prints the current user's favorites.
func (a *App) Favorites(ctx context.Context) error {
	if !a.visit(ctx, session.PathFavorites) {
		return nil
	}

	if err := a.favorites.Refresh(ctx); err != nil {
		printlnFn("Failed to load favorites:", err.Error())
		return err
	}
	for _, article := range a.favorites.List() {
		printlnFn(article.String())
	}
	return nil
}

// Favorite marks a published article as a favorite. The local list updates
// immediately; a gateway failure rolls it back and leaves a notification.
func (a *App) Favorite(ctx context.Context) error {
	if !a.visit(ctx, session.PathFavorites) {
		return nil
	}

	if err := a.articles.Refresh(ctx); err != nil {
		printlnFn("Failed to load articles:", err.Error())
		return err
	}

	id, err := a.promptArticleID()
	if err != nil {
		return err
	}

	article, ok := a.findArticle(id)
	if !ok {
		printlnFn("No such article")
		return common.ErrNotFound
	}

	return a.favorites.Add(ctx, article)
}

// Unfavorite removes an article from the favorites list optimistically.
func (a *App) Unfavorite(ctx context.Context) error {
	if !a.visit(ctx, session.PathFavorites) {
		return nil
	}

	id, err := a.promptArticleID()
	if err != nil {
		return err
	}

	if err := a.favorites.Remove(ctx, id); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			printlnFn("Not in favorites")
		}
		return err
	}
	return nil
}
