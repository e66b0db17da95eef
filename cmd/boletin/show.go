package main

import (
	"fmt"
	"strings"

	"github.com/amontero/boletin"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	article, err := deps.Articles.FindArticleByID(deps.Ctx, c.ID)
	if err != nil {
		if boletin.ErrorCode(err) == boletin.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: article %q not found. Use 'boletin crawl' to download articles.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", boletin.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "%s\n", article.Title)
	fmt.Fprintf(deps.Stdout, "ID:         %s\n", article.ID)
	fmt.Fprintf(deps.Stdout, "Date:       %s\n", article.Date)
	fmt.Fprintf(deps.Stdout, "Department: %s\n", article.Department)
	fmt.Fprintf(deps.Stdout, "Rank:       %s\n", article.Rank)
	if len(article.Subjects) > 0 {
		fmt.Fprintf(deps.Stdout, "Subjects:   %s\n", strings.Join(article.Subjects, "; "))
	}
	fmt.Fprintf(deps.Stdout, "XML:        %s\n", article.URLXML)
	fmt.Fprintf(deps.Stdout, "PDF:        %s\n", article.URLPDF)

	if c.Full && article.Text != "" {
		fmt.Fprintf(deps.Stdout, "\n%s\n", article.Text)
	}
	return nil
}
