package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/redhub-app/redhub-cli/internal/client/api"
	"github.com/redhub-app/redhub-cli/internal/client/models"
	"github.com/redhub-app/redhub-cli/internal/client/optimistic"
	"github.com/redhub-app/redhub-cli/internal/common"
)

func moderationFixture(t *testing.T, pending ...models.Article) (*fakeGateway, *optimistic.Notifier, ModerationService) {
	t.Helper()
	gw := newFakeGateway()
	gw.out["GET /moderation/get"] = pending
	notifier := optimistic.NewNotifier()
	svc := NewModerationService(gw, notifier)
	require.NoError(t, svc.Refresh(context.Background()))
	return gw, notifier, svc
}

func TestModerationService_ApprovePublishesAfterRemoval(t *testing.T) {
	a := article("pending")
	gw, notifier, svc := moderationFixture(t, a)

	require.NoError(t, svc.Approve(context.Background(), a.Id))
	require.Empty(t, svc.Queue())

	require.Len(t, gw.callsTo("DELETE", "/moderation/remove?id="+a.Id.String()), 1)

	published := gw.callsTo("POST", "/articles")
	require.Len(t, published, 1)
	got, ok := published[0].Body.(models.Article)
	require.True(t, ok)
	require.Equal(t, a.Id, got.Id)

	require.Zero(t, notifier.Len())
}

func TestModerationService_ApproveRollsBackWhenRemovalFails(t *testing.T) {
	a := article("pending")
	gw, notifier, svc := moderationFixture(t, a)
	gw.errs["DELETE /moderation/remove?id="+a.Id.String()] = &api.Error{Kind: api.KindServer, Status: 502}

	err := svc.Approve(context.Background(), a.Id)
	require.Error(t, err)

	require.Len(t, svc.Queue(), 1, "queue restored on removal failure")
	require.Empty(t, gw.callsTo("POST", "/articles"), "nothing is published when removal fails")
	require.Equal(t, 1, notifier.Len())
}

func TestModerationService_ApprovePublishFailureIsNonAtomic(t *testing.T) {
	a := article("pending")
	gw, notifier, svc := moderationFixture(t, a)
	gw.errs["POST /articles"] = &api.Error{Kind: api.KindServer, Status: 500}

	err := svc.Approve(context.Background(), a.Id)
	require.Error(t, err)

	// removal already succeeded; approving is two separate steps
	require.Empty(t, svc.Queue(), "queue removal stands even when publishing fails")

	notes := notifier.Drain()
	require.Len(t, notes, 1)
	require.Contains(t, notes[0].Message, "publishing failed")
}

func TestModerationService_ApproveUnknownEntry(t *testing.T) {
	a := article("pending")
	_, _, svc := moderationFixture(t, a)

	err := svc.Approve(context.Background(), article("other").Id)
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestModerationService_RejectRemovesOnly(t *testing.T) {
	a, b := article("keep"), article("drop")
	gw, notifier, svc := moderationFixture(t, a, b)

	require.NoError(t, svc.Reject(context.Background(), b.Id))

	queue := svc.Queue()
	require.Len(t, queue, 1)
	require.Equal(t, a.Id, queue[0].Id)

	require.Empty(t, gw.callsTo("POST", "/articles"), "rejecting never publishes")
	require.Zero(t, notifier.Len())
}

func TestModerationService_RejectRollback(t *testing.T) {
	a := article("pending")
	gw, notifier, svc := moderationFixture(t, a)
	gw.errs["DELETE /moderation/remove?id="+a.Id.String()] = &api.Error{Kind: api.KindNetwork}

	require.Error(t, svc.Reject(context.Background(), a.Id))
	require.Len(t, svc.Queue(), 1)
	require.Equal(t, 1, notifier.Len())
}
