package main_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/amontero/boletin"
	main "github.com/amontero/boletin/cmd/boletin"
	"github.com/amontero/boletin/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestMain returns a Main wired to throwaway paths so tests never
// touch the user's real database or index.
func newTestMain(t *testing.T) *main.Main {
	t.Helper()
	dir := t.TempDir()
	return &main.Main{
		DBPath:  filepath.Join(dir, "boletin.db"),
		DataDir: filepath.Join(dir, "data"),
	}
}

// testEmbedder maps every text to a fixed-width vector derived from its
// length, which is deterministic and cheap.
func testEmbedder() *mock.Embedder {
	return &mock.Embedder{
		DimensionsFn: func() int { return 3 },
		EmbedFn: func(ctx context.Context, texts []string) ([][]float32, error) {
			out := make([][]float32, len(texts))
			for i, text := range texts {
				out[i] = []float32{float32(len(text)), 1, 0}
			}
			return out, nil
		},
	}
}

func TestRun(t *testing.T) {
	t.Parallel()

	t.Run("no command shows help and errors", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(t)
		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}

		err := m.Run(context.Background(), nil, stdout, stderr)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no command specified")
	})

	t.Run("help succeeds", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(t)
		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"--help"}, stdout, stderr)
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "crawl")
		assert.Contains(t, stdout.String(), "search")
	})

	t.Run("unknown command errors", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(t)
		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"bogus"}, stdout, stderr)
		require.Error(t, err)
	})
}

func TestCmdCrawl(t *testing.T) {
	t.Parallel()

	gazette := func() *mock.GazetteClient {
		return &mock.GazetteClient{
			FetchDayIndexFn: func(ctx context.Context, date boletin.Date) (string, error) {
				return `<sumario><item id="BOE-A-2025-00001"/><item id="BOE-A-2025-00002"/></sumario>`, nil
			},
			FetchArticleFn: func(ctx context.Context, id string) (string, error) {
				return `<documento>
					<metadatos><identificador>` + id + `</identificador></metadatos>
					<titulo>Titulo de ` + id + `</titulo>
					<texto><p>Texto de la disposicion.</p></texto>
				</documento>`, nil
			},
		}
	}

	t.Run("stores a day and skips it on the second run", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(t)
		m.Gazette = gazette()
		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"crawl", "2025/07/03"}, stdout, stderr)
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Saved 2 of 2 articles")
		assert.Empty(t, stderr.String())

		// Second run over the same day downloads nothing.
		m2 := &main.Main{DBPath: m.DBPath, DataDir: m.DataDir, Gazette: gazette()}
		stdout2 := &bytes.Buffer{}

		err = m2.Run(context.Background(), []string{"crawl", "2025/07/03"}, stdout2, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Contains(t, stdout2.String(), "Saved 0 of 2 articles (2 already stored, 0 failed)")
	})

	t.Run("accepts compact and dashed dates", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(t)
		m.Gazette = gazette()
		stdout := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"crawl", "2025-07-03"}, stdout, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Saved 2 of 2 articles")
	})

	t.Run("rejects a malformed date", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(t)
		m.Gazette = gazette()
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"crawl", "julio"}, &bytes.Buffer{}, stderr)
		require.Error(t, err)
		assert.Equal(t, boletin.EINVALID, boletin.ErrorCode(err))
		assert.Contains(t, stderr.String(), "error:")
	})

	t.Run("reports an unpublished day", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(t)
		m.Gazette = &mock.GazetteClient{
			FetchDayIndexFn: func(ctx context.Context, date boletin.Date) (string, error) {
				return "", nil
			},
		}
		stdout := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"crawl", "2025/07/06"}, stdout, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No gazette published on 2025-07-06")
	})
}

func TestCmdIndexAndSearch(t *testing.T) {
	t.Parallel()

	t.Run("index then search finds a stored article", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(t)
		m.Gazette = &mock.GazetteClient{
			FetchDayIndexFn: func(ctx context.Context, date boletin.Date) (string, error) {
				return `<sumario><item id="BOE-A-2025-00001"/></sumario>`, nil
			},
			FetchArticleFn: func(ctx context.Context, id string) (string, error) {
				return `<documento>
					<titulo>Subvenciones agrarias</titulo>
					<texto><p>Se regulan las subvenciones.</p></texto>
				</documento>`, nil
			},
		}
		m.Embedder = testEmbedder()

		ctx := context.Background()
		err := m.Run(ctx, []string{"crawl", "2025/07/03"}, &bytes.Buffer{}, &bytes.Buffer{})
		require.NoError(t, err)

		m2 := &main.Main{DBPath: m.DBPath, DataDir: m.DataDir, Embedder: testEmbedder()}
		stdout := &bytes.Buffer{}
		err = m2.Run(ctx, []string{"index"}, stdout, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Indexed 1 articles: 1 new vectors, 1 total")

		m3 := &main.Main{DBPath: m.DBPath, DataDir: m.DataDir, Embedder: testEmbedder()}
		stdout = &bytes.Buffer{}
		err = m3.Run(ctx, []string{"search", "subvenciones"}, stdout, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "BOE-A-2025-00001")
		assert.Contains(t, stdout.String(), "Subvenciones agrarias")
	})

	t.Run("index with no stored articles", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(t)
		m.Embedder = testEmbedder()
		stdout := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"index"}, stdout, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No stored articles")
	})

	t.Run("search with an empty index", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(t)
		m.Embedder = testEmbedder()
		stdout := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"search", "impuestos"}, stdout, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No results")
	})
}

func TestCmdShow(t *testing.T) {
	t.Parallel()

	t.Run("prints a stored article", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(t)
		m.Articles = &mock.ArticleService{
			FindArticleByIDFn: func(ctx context.Context, id string) (*boletin.Article, error) {
				return &boletin.Article{
					ID:         id,
					Date:       "2025-07-03",
					Title:      "Real Decreto de subvenciones",
					Department: "Ministerio de Hacienda",
					Rank:       "Real Decreto",
					Text:       "Texto completo.",
					Subjects:   []string{"Subvenciones", "Agricultura"},
				}, nil
			},
		}
		stdout := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"show", "BOE-A-2025-00001", "--full"}, stdout, &bytes.Buffer{})
		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "Real Decreto de subvenciones")
		assert.Contains(t, output, "ID:         BOE-A-2025-00001")
		assert.Contains(t, output, "Subvenciones; Agricultura")
		assert.Contains(t, output, "Texto completo.")
	})

	t.Run("missing article reports not found", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(t)
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"show", "BOE-A-2025-99999"}, &bytes.Buffer{}, stderr)
		require.Error(t, err)
		assert.Equal(t, boletin.ENOTFOUND, boletin.ErrorCode(err))
		assert.Contains(t, stderr.String(), "not found")
	})
}

func TestCmdScrape(t *testing.T) {
	t.Parallel()

	m := newTestMain(t)
	m.Fetcher = &mock.PageFetcher{
		FetchPageFn: func(ctx context.Context, url string) (string, error) {
			assert.Equal(t, "https://example.com/nota", url)
			return `<html><body><p>Nota de prensa.</p></body></html>`, nil
		},
	}
	stdout := &bytes.Buffer{}

	err := m.Run(context.Background(), []string{"scrape", "https://example.com/nota", "nota"}, stdout, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Saved ")
	assert.Contains(t, stdout.String(), "nota.txt")
}
