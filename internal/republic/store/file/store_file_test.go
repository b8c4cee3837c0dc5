package file

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"republic/internal/republic/models"
	id "republic/pkg/domain"
	"republic/pkg/platform/sentinel"
	"republic/pkg/testutil"
)

func TestFileStoreMissingDocument(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "republic.json"))

	_, err := store.Load(context.Background())
	assert.True(t, errors.Is(err, sentinel.ErrNotFound))
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "republic.json")
	store := New(path)
	ctx := context.Background()
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	lawID := id.NewBillID()

	doc := models.DefaultDocument()
	doc.Republic = models.Republic{Name: "Atlantis", Motto: "Per aspera", FoundedDate: &now, SetupComplete: true}
	doc.Constitution.Preamble = "We the citizen"
	article := models.NewArticle(id.NewArticleID(), 1, "Health first", "body", now)
	doc.Constitution.Articles = []*models.Article{article}

	bill := models.NewBill(id.NewBillID(), "LR-2025-001", "No phone in bed", "desc", "health", now)
	bill.ApplyAdvance()
	bill.ApplyAdvance()
	bill.Debate.Pros = append(bill.Debate.Pros, models.DebatePoint{ID: id.NewPointID(), Text: "sleep", AddedDate: now})
	bill.ApplyConclusion(models.DebateDecisionEnact, "clear win", now)
	doc.Legislature.Bills = []*models.Bill{bill}
	doc.Legislature.NextBillNum = 2

	c := models.NewCase(id.NewCaseID(), "CR-2025-001", "Skipped gym", "three times", &lawID, "health", now)
	c.ApplyVerdict(models.VerdictGuilty, "breach", "extra workout", now)
	doc.Judiciary.Cases = []*models.Case{c}
	doc.Judiciary.NextCaseNum = 2

	deadline := now.Add(24 * time.Hour)
	order := models.NewOrder(id.NewOrderID(), "EO-2025-001", "Ship it", "career", models.PriorityCritical, &deadline, now)
	doc.Executive.Orders = []*models.Order{order}
	doc.Executive.NextOrderNum = 2

	doc.Activity = []models.ActivityEntry{models.NewActivityEntry(models.ActivityRepublic, "🏛️", "Founded", now)}

	require.NoError(t, store.Save(ctx, doc))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, doc, loaded)
}

func TestFileStoreSaveReplacesAtomically(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "republic.json")
	store := New(path)
	ctx := context.Background()

	first := models.DefaultDocument()
	first.Republic.Name = "first"
	require.NoError(t, store.Save(ctx, first))

	second := models.DefaultDocument()
	second.Republic.Name = "second"
	require.NoError(t, store.Save(ctx, second))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "second", loaded.Republic.Name)

	// No temp files left behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "republic.json", entries[0].Name())
}

func TestFileStoreSurvivesRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "republic.json")
	ctx := context.Background()

	testutil.Given(t, "a document saved by one store instance", func(t *testing.T) {
		doc := models.DefaultDocument()
		doc.Republic.Name = "Atlantis"
		require.NoError(t, New(path).Save(ctx, doc))

		testutil.When(t, "a fresh instance opens the same path", func(t *testing.T) {
			loaded, err := New(path).Load(ctx)
			require.NoError(t, err)

			testutil.Then(t, "the document is intact", func(t *testing.T) {
				assert.Equal(t, "Atlantis", loaded.Republic.Name)
			})
		})
	})
}

func TestFileStoreCorruptDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "republic.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := New(path).Load(context.Background())
	require.Error(t, err)
	assert.False(t, errors.Is(err, sentinel.ErrNotFound))
}
