package cli

import (
	"context"
	"fmt"

	"github.com/redhub-app/redhub-cli/internal/client/session"
)

// ageBuckets labels UserStats.ArrayOfAges positions.
var ageBuckets = []string{"0-18", "19-25", "26-45", "46+"}

// Stats prints the platform statistics. Requires the analyst role.
func (a *App) Stats(ctx context.Context) error {
	if !a.visit(ctx, session.PathStats) {
		return nil
	}

	articleStats, err := a.stats.Articles(ctx)
	if err != nil {
		printlnFn("Failed to load article stats:", err.Error())
		return err
	}

	printlnFn("Articles per author:")
	for _, oc := range articleStats.OwnerArticles {
		printlnFn(fmt.Sprintf("  %s: %d", oc.OwnerId, oc.CountOfArticles))
	}

	userStats, err := a.stats.Users(ctx)
	if err != nil {
		printlnFn("Failed to load user stats:", err.Error())
		return err
	}

	printlnFn("Users by age:")
	for i, n := range userStats.ArrayOfAges {
		label := fmt.Sprintf("bucket %d", i)
		if i < len(ageBuckets) {
			label = ageBuckets[i]
		}
		printlnFn(fmt.Sprintf("  %s: %d", label, n))
	}
	return nil
}
