package boletin

import (
	"context"
	"regexp"
)

// ArticleIDPattern matches a BOE article identifier: a source-type code,
// the publication year, and a five-digit sequence number
// (e.g. BOE-A-2025-13297). Identifiers are assigned by the gazette and
// are stable across runs.
var ArticleIDPattern = regexp.MustCompile(`BOE-[A-Z]-\d{4}-\d{5}`)

// ValidArticleID reports whether id is exactly one well-formed BOE
// article identifier.
func ValidArticleID(id string) bool {
	return ArticleIDPattern.FindString(id) == id
}

// Article represents one gazette article: its identifying metadata, the
// normalized body text, and the optional metadata and analysis blocks
// from the article XML. Optional fields are never absent: fields with no
// source value hold an empty string, list fields an empty slice, so the
// stored schema stays stable.
type Article struct {
	ID         string `json:"id"`
	Date       string `json:"date"`
	Title      string `json:"title"`
	Department string `json:"department"`
	Rank       string `json:"rank"`
	Text       string `json:"text"`
	URLXML     string `json:"urlXml"`
	URLPDF     string `json:"urlPdf"`

	// Metadata block (metadatos).
	DispositionDate string `json:"dispositionDate"`
	Issue           string `json:"issue"`
	PublicationDate string `json:"publicationDate"`
	FirstPage       string `json:"firstPage"`
	FinalPage       string `json:"finalPage"`

	// Analysis block (analisis).
	Subjects   []string `json:"subjects"`
	Notes      []string `json:"notes"`
	References []string `json:"references"`
	Alerts     []string `json:"alerts"`
}

// Validate returns an error if the article contains invalid fields.
func (a *Article) Validate() error {
	if a.ID == "" {
		return Errorf(EINVALID, "article ID required")
	}
	if !ValidArticleID(a.ID) {
		return Errorf(EINVALID, "malformed article ID %q", a.ID)
	}
	return nil
}

// ArticleSummary is the minimal projection used by the indexing pass.
type ArticleSummary struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Text  string `json:"text"`
}

// ArticleService represents durable keyed storage for articles.
type ArticleService interface {
	// Exists reports whether a full record for id was previously upserted.
	Exists(ctx context.Context, id string) (bool, error)

	// Upsert writes both the metadata-only and the full projection of the
	// article within one atomic unit. Replace semantics: a second upsert
	// for the same ID fully overwrites the first.
	Upsert(ctx context.Context, article *Article) error

	// FindArticleByID retrieves one stored article.
	// Returns ENOTFOUND if the article does not exist.
	FindArticleByID(ctx context.Context, id string) (*Article, error)

	// FindArticles returns a summary of every stored article, in
	// unspecified order, for the indexing pass.
	FindArticles(ctx context.Context) ([]ArticleSummary, error)
}
