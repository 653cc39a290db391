package service

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/sakif/monkey-intelligence/internal/metrics"
	"github.com/sakif/monkey-intelligence/internal/model"
)

func TestProgressSave_EchoesInput(t *testing.T) {
	repo := &fakeProgressRepo{}
	svc := NewProgressService(repo, discardLogger())
	in := &model.GameProgress{UserID: 5, GameType: "math_easy", Score: 8, CompletedAt: time.Now()}

	out, err := svc.Save(context.Background(), in)

	require.NoError(t, err)
	assert.Same(t, in, out)
	assert.Equal(t, int64(0), out.ID)
	require.Len(t, repo.saved, 1)
	assert.Equal(t, *in, repo.saved[0])
}

func TestProgressSave_CountsKnownGameTypes(t *testing.T) {
	svc := NewProgressService(&fakeProgressRepo{}, discardLogger())
	hard := testutil.ToFloat64(metrics.ProgressSaved.WithLabelValues("math_hard"))
	other := testutil.ToFloat64(metrics.ProgressSaved.WithLabelValues("other"))

	_, err := svc.Save(context.Background(), &model.GameProgress{UserID: 1, GameType: "math_hard"})
	require.NoError(t, err)
	_, err = svc.Save(context.Background(), &model.GameProgress{UserID: 1, GameType: "spelling_bee"})
	require.NoError(t, err)

	assert.Equal(t, hard+1, testutil.ToFloat64(metrics.ProgressSaved.WithLabelValues("math_hard")))
	assert.Equal(t, other+1, testutil.ToFloat64(metrics.ProgressSaved.WithLabelValues("other")))
}

func TestProgressSave_RepositoryError(t *testing.T) {
	svc := NewProgressService(&fakeProgressRepo{err: errStoreDown}, discardLogger())

	_, err := svc.Save(context.Background(), &model.GameProgress{UserID: 1})

	assert.ErrorIs(t, err, errStoreDown)
}

func TestProgressList(t *testing.T) {
	repo := &fakeProgressRepo{}
	svc := NewProgressService(repo, discardLogger())
	for _, score := range []int{1, 2, 3} {
		_, err := svc.Save(context.Background(), &model.GameProgress{UserID: 9, GameType: "math_easy", Score: score})
		require.NoError(t, err)
	}

	list, err := svc.List(context.Background(), 9)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{list[0].Score, list[1].Score, list[2].Score})

	empty, err := svc.List(context.Background(), 10)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestProgressExport(t *testing.T) {
	repo := &fakeProgressRepo{}
	svc := NewProgressService(repo, discardLogger())
	_, err := svc.Save(context.Background(), &model.GameProgress{UserID: 2, GameType: "math_medium", Score: 6, CompletedAt: time.Now()})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, svc.Export(context.Background(), 2, &buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(f.GetSheetName(0))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "math_medium", rows[1][1])
}

func TestProgressExport_RepositoryError(t *testing.T) {
	svc := NewProgressService(&fakeProgressRepo{err: errStoreDown}, discardLogger())

	var buf bytes.Buffer
	err := svc.Export(context.Background(), 2, &buf)

	assert.ErrorIs(t, err, errStoreDown)
	assert.Zero(t, buf.Len())
}
