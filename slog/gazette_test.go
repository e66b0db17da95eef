package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/amontero/boletin"
	"github.com/amontero/boletin/mock"
	boeslog "github.com/amontero/boletin/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingGazetteClient_FetchDayIndex(t *testing.T) {
	t.Parallel()

	t.Run("logs date and publication status", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.GazetteClient{
			FetchDayIndexFn: func(ctx context.Context, date boletin.Date) (string, error) {
				return "<sumario/>", nil
			},
		}

		client := boeslog.NewLoggingGazetteClient(inner, logger)
		markup, err := client.FetchDayIndex(context.Background(), boletin.Date{Year: 2025, Month: 7, Day: 3})

		require.NoError(t, err)
		assert.NotEmpty(t, markup)
		output := buf.String()
		assert.Contains(t, output, "fetch day index")
		assert.Contains(t, output, "date=2025-07-03")
		assert.Contains(t, output, "published=true")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.GazetteClient{
			FetchDayIndexFn: func(ctx context.Context, date boletin.Date) (string, error) {
				return "", boletin.Errorf(boletin.EUNAVAILABLE, "connection failed")
			},
		}

		client := boeslog.NewLoggingGazetteClient(inner, logger)
		_, err := client.FetchDayIndex(context.Background(), boletin.Date{Year: 2025, Month: 7, Day: 3})

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "fetch day index")
		assert.Contains(t, output, "published=false")
		assert.Contains(t, output, "connection failed")
	})
}

func TestLoggingGazetteClient_FetchArticle(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.GazetteClient{
		FetchArticleFn: func(ctx context.Context, id string) (string, error) {
			return "<documento/>", nil
		},
	}

	client := boeslog.NewLoggingGazetteClient(inner, logger)
	markup, err := client.FetchArticle(context.Background(), "BOE-A-2025-00001")

	require.NoError(t, err)
	assert.NotEmpty(t, markup)
	output := buf.String()
	assert.Contains(t, output, "fetch article")
	assert.Contains(t, output, "id=BOE-A-2025-00001")
	assert.Contains(t, output, "bytes=12")
}
