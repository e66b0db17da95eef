package etree

import (
	"github.com/amontero/boletin"
	"github.com/beevik/etree"
)

// Ensure ArticleParser implements boletin.ArticleParser at compile time.
var _ boletin.ArticleParser = (*ArticleParser)(nil)

// ArticleParser parses an article's XML document into a structured
// record. Missing fields yield empty defaults: absence of the metadata
// or analysis block is a normal case, never an error.
type ArticleParser struct{}

// NewArticleParser creates a new ArticleParser.
func NewArticleParser() *ArticleParser {
	return &ArticleParser{}
}

// ParseArticle extracts the article fields from raw XML. The body text
// is normalized with boletin.CleanText before being returned.
func (p *ArticleParser) ParseArticle(markup string) (*boletin.Article, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(markup); err != nil {
		return nil, boletin.Errorf(boletin.EINVALID, "unparsable article markup: %v", err)
	}
	root := doc.Root()
	if root == nil {
		return nil, boletin.Errorf(boletin.EINVALID, "article markup has no root element")
	}

	article := &boletin.Article{
		Title:      elementText(root, "titulo"),
		Department: elementText(root, "departamento"),
		Rank:       elementText(root, "rango"),
		Text:       boletin.CleanText(flatText(findFirst(root, "texto"))),
		Subjects:   []string{},
		Notes:      []string{},
		References: []string{},
		Alerts:     []string{},
	}

	if meta := findFirst(root, "metadatos"); meta != nil {
		article.ID = elementText(meta, "identificador")
		article.DispositionDate = elementText(meta, "fecha_disposicion")
		article.Issue = elementText(meta, "diario")
		article.PublicationDate = elementText(meta, "fecha_publicacion")
		article.FirstPage = elementText(meta, "pagina_inicial")
		article.FinalPage = elementText(meta, "pagina_final")
	}

	if analysis := findFirst(root, "analisis"); analysis != nil {
		article.Subjects = itemTexts(analysis, "materias", "materia")
		article.Notes = itemTexts(analysis, "notas", "nota")
		article.References = itemTexts(analysis, "referencias", "referencia")
		article.Alerts = itemTexts(analysis, "alertas", "alerta")
	}

	return article, nil
}
