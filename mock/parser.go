package mock

import "github.com/amontero/boletin"

var _ boletin.IndexParser = (*IndexParser)(nil)

// IndexParser is a mock implementation of boletin.IndexParser.
type IndexParser struct {
	ExtractArticleIDsFn func(markup string) ([]string, error)
}

func (p *IndexParser) ExtractArticleIDs(markup string) ([]string, error) {
	return p.ExtractArticleIDsFn(markup)
}

var _ boletin.ArticleParser = (*ArticleParser)(nil)

// ArticleParser is a mock implementation of boletin.ArticleParser.
type ArticleParser struct {
	ParseArticleFn func(markup string) (*boletin.Article, error)
}

func (p *ArticleParser) ParseArticle(markup string) (*boletin.Article, error) {
	return p.ParseArticleFn(markup)
}
