package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/redhub-app/redhub-cli/internal/client/models"
	"github.com/redhub-app/redhub-cli/internal/client/session"
	"github.com/redhub-app/redhub-cli/internal/common"
)

// Articles refreshes and prints the published article list. Public view.
func (a *App) Articles(ctx context.Context) error {
	if !a.visit(ctx, session.PathArticles) {
		return nil
	}

	if err := a.articles.Refresh(ctx); err != nil {
		printlnFn("Failed to load articles:", err.Error())
		return err
	}
	for _, article := range a.articles.List() {
		printlnFn(article.String())
	}
	return nil
}

// ShowArticle prints a single article with its comments.
func (a *App) ShowArticle(ctx context.Context) error {
	if !a.visit(ctx, session.PathArticles) {
		return nil
	}

	id, err := a.promptArticleID()
	if err != nil {
		return err
	}

	article, err := a.articles.Get(ctx, id)
	if err != nil {
		printlnFn("Failed to load article:", err.Error())
		return err
	}

	printlnFn(article.Title)
	printlnFn(article.Content)

	comments, err := a.comments.List(ctx, id)
	if err != nil {
		printlnFn("Failed to load comments:", err.Error())
		return err
	}
	for _, c := range comments {
		printlnFn(fmt.Sprintf("  %s: %s", c.OwnerId, c.Content))
	}
	return nil
}

// Submit authors a new article, which enters the moderation queue.
func (a *App) Submit(ctx context.Context) error {
	if !a.visit(ctx, session.PathSubmit) {
		return nil
	}

	title, err := getSimpleText(a.reader, "Enter title", os.Stdout)
	if err != nil {
		return err
	}
	tag, err := getSimpleText(a.reader, "Enter tag", os.Stdout)
	if err != nil {
		return err
	}
	content, err := GetMultiline(a.reader, "Enter article text (double Enter to finish):", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.articles.Submit(ctx, title, content, tag); err != nil {
		printlnFn("Submit failed:", err.Error())
		return err
	}

	printlnFn("Submitted for moderation")
	return nil
}

// EditArticle rewrites a published article. Management view, requires the
// article administrator role.
func (a *App) EditArticle(ctx context.Context) error {
	if !a.visit(ctx, session.PathManage) {
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

	current, ok := a.findArticle(id)
	if !ok {
		printlnFn("No such article")
		return common.ErrNotFound
	}

	title, err := getSimpleText(a.reader, "Enter new title", os.Stdout)
	if err != nil {
		return err
	}
	content, err := GetMultiline(a.reader, "Enter new text (double Enter to finish):", os.Stdout)
	if err != nil {
		return err
	}

	edited := current
	if title != "" {
		edited.Title = title
	}
	if content != "" {
		edited.Content = content
	}

	if err := a.articles.Update(ctx, edited); err != nil {
		return err
	}
	printlnFn("Updated")
	return nil
}

// DeleteArticle removes a published article. Management view, requires the
// article administrator role.
func (a *App) DeleteArticle(ctx context.Context) error {
	if !a.visit(ctx, session.PathManage) {
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

	if err := a.articles.Delete(ctx, id); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			printlnFn("No such article")
		}
		return err
	}
	printlnFn("Deleted")
	return nil
}

// AddComment attaches a comment to an article. The comment printed back is
// the record the server stored, never a local draft.
func (a *App) AddComment(ctx context.Context) error {
	if !a.visit(ctx, session.PathArticles) {
		return nil
	}

	id, err := a.promptArticleID()
	if err != nil {
		return err
	}
	content, err := getSimpleText(a.reader, "Enter comment", os.Stdout)
	if err != nil {
		return err
	}

	stored, err := a.comments.Add(ctx, id, content)
	if err != nil {
		if errors.Is(err, common.ErrNotLoggedIn) {
			printlnFn("Log in to comment")
		} else {
			printlnFn("Comment failed:", err.Error())
		}
		return err
	}

	printlnFn(fmt.Sprintf("  %s: %s", stored.OwnerId, stored.Content))
	return nil
}

func (a *App) promptArticleID() (uuid.UUID, error) {
	raw, err := getSimpleText(a.reader, "Enter article id", os.Stdout)
	if err != nil {
		return uuid.Nil, err
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		printlnFn("Not a valid article id:", raw)
		return uuid.Nil, err
	}
	return id, nil
}

func (a *App) findArticle(id uuid.UUID) (models.Article, bool) {
	for _, article := range a.articles.List() {
		if article.Id == id {
			return article, true
		}
	}
	return models.Article{}, false
}
