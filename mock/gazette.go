package mock

import (
	"context"

	"github.com/amontero/boletin"
)

var _ boletin.GazetteClient = (*GazetteClient)(nil)

// GazetteClient is a mock implementation of boletin.GazetteClient.
type GazetteClient struct {
	FetchDayIndexFn func(ctx context.Context, date boletin.Date) (string, error)
	FetchArticleFn  func(ctx context.Context, id string) (string, error)
	ArticleXMLURLFn func(id string) string
	ArticlePDFURLFn func(id string, date boletin.Date) string
}

func (c *GazetteClient) FetchDayIndex(ctx context.Context, date boletin.Date) (string, error) {
	return c.FetchDayIndexFn(ctx, date)
}

func (c *GazetteClient) FetchArticle(ctx context.Context, id string) (string, error) {
	return c.FetchArticleFn(ctx, id)
}

func (c *GazetteClient) ArticleXMLURL(id string) string {
	if c.ArticleXMLURLFn == nil {
		return "https://www.boe.es/diario_boe/xml.php?id=" + id
	}
	return c.ArticleXMLURLFn(id)
}

func (c *GazetteClient) ArticlePDFURL(id string, date boletin.Date) string {
	if c.ArticlePDFURLFn == nil {
		return "https://www.boe.es/boe/dias/" + date.String() + "/pdfs/" + id + ".pdf"
	}
	return c.ArticlePDFURLFn(id, date)
}
