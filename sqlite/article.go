package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/amontero/boletin"
	"github.com/cespare/xxhash/v2"
)

// Compile-time interface verification.
var _ boletin.ArticleService = (*ArticleService)(nil)

// ArticleService implements boletin.ArticleService using SQLite.
type ArticleService struct {
	db *DB
}

// NewArticleService creates a new ArticleService.
func NewArticleService(db *DB) *ArticleService {
	return &ArticleService{db: db}
}

// hashText computes xxHash of the body text and returns a hex string.
// Stored alongside the text so a changed upstream article is detectable
// without comparing full bodies.
func hashText(text string) string {
	h := xxhash.Sum64String(text)
	b := make([]byte, 8)
	for i := 0; i < 8; i++ {
		b[i] = byte(h >> (56 - 8*i))
	}
	return hex.EncodeToString(b)
}

// marshalList encodes a string list as JSON for storage. Nil encodes as
// an empty list.
func marshalList(list []string) (string, error) {
	if list == nil {
		list = []string{}
	}
	b, err := json.Marshal(list)
	if err != nil {
		return "", fmt.Errorf("failed to encode list: %w", err)
	}
	return string(b), nil
}

// unmarshalList decodes a stored JSON list. The result is never nil.
func unmarshalList(value string) ([]string, error) {
	list := []string{}
	if value == "" {
		return list, nil
	}
	if err := json.Unmarshal([]byte(value), &list); err != nil {
		return nil, fmt.Errorf("failed to decode list: %w", err)
	}
	return list, nil
}

// Exists reports whether a full record for id was previously upserted.
func (s *ArticleService) Exists(ctx context.Context, id string) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx, "SELECT 1 FROM articles WHERE id = ?", id).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Upsert writes the metadata-only and full projections of the article
// within one transaction. Replace semantics: the stored record is fully
// overwritten, there is no field-level merge.
func (s *ArticleService) Upsert(ctx context.Context, article *boletin.Article) error {
	if err := article.Validate(); err != nil {
		return err
	}

	subjects, err := marshalList(article.Subjects)
	if err != nil {
		return err
	}
	notes, err := marshalList(article.Notes)
	if err != nil {
		return err
	}
	references, err := marshalList(article.References)
	if err != nil {
		return err
	}
	alerts, err := marshalList(article.Alerts)
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT OR REPLACE INTO metadata (
			id, date, title, department, rank, url_xml, url_pdf,
			disposition_date, issue, publication_date, first_page, final_page,
			subjects, notes, refs, alerts
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, article.ID, article.Date, article.Title, article.Department, article.Rank,
		article.URLXML, article.URLPDF,
		article.DispositionDate, article.Issue, article.PublicationDate,
		article.FirstPage, article.FinalPage,
		subjects, notes, references, alerts)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `
		INSERT OR REPLACE INTO articles (
			id, date, title, department, rank, text, text_hash, url_xml, url_pdf,
			disposition_date, issue, publication_date, first_page, final_page,
			subjects, notes, refs, alerts
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, article.ID, article.Date, article.Title, article.Department, article.Rank,
		article.Text, hashText(article.Text), article.URLXML, article.URLPDF,
		article.DispositionDate, article.Issue, article.PublicationDate,
		article.FirstPage, article.FinalPage,
		subjects, notes, references, alerts)
	if err != nil {
		return err
	}

	return tx.Commit()
}

// FindArticleByID retrieves one stored article.
func (s *ArticleService) FindArticleByID(ctx context.Context, id string) (*boletin.Article, error) {
	var article boletin.Article
	var subjects, notes, references, alerts string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, date, title, department, rank, text, url_xml, url_pdf,
			disposition_date, issue, publication_date, first_page, final_page,
			subjects, notes, refs, alerts
		FROM articles
		WHERE id = ?
	`, id).Scan(&article.ID, &article.Date, &article.Title, &article.Department,
		&article.Rank, &article.Text, &article.URLXML, &article.URLPDF,
		&article.DispositionDate, &article.Issue, &article.PublicationDate,
		&article.FirstPage, &article.FinalPage,
		&subjects, &notes, &references, &alerts)

	if err == sql.ErrNoRows {
		return nil, boletin.Errorf(boletin.ENOTFOUND, "article %q not found", id)
	}
	if err != nil {
		return nil, err
	}

	if article.Subjects, err = unmarshalList(subjects); err != nil {
		return nil, err
	}
	if article.Notes, err = unmarshalList(notes); err != nil {
		return nil, err
	}
	if article.References, err = unmarshalList(references); err != nil {
		return nil, err
	}
	if article.Alerts, err = unmarshalList(alerts); err != nil {
		return nil, err
	}

	return &article, nil
}

// FindArticles returns a summary of every stored article for the
// indexing pass. Order is unspecified.
func (s *ArticleService) FindArticles(ctx context.Context) ([]boletin.ArticleSummary, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, title, text FROM articles")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []boletin.ArticleSummary
	for rows.Next() {
		var s boletin.ArticleSummary
		if err := rows.Scan(&s.ID, &s.Title, &s.Text); err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}

	return summaries, rows.Err()
}
