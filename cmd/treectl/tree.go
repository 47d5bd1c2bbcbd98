package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"discuss/internal/commenttree"

	"github.com/spf13/cobra"
)

func newTreeCmd() *cobra.Command {
	var (
		file  string
		sort  string
		limit int
	)
	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Print a comment forest as an indented tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := commenttree.ParseSortMode(sort)
			if err != nil {
				return err
			}
			records, err := readRecords(file, cmd.InOrStdin())
			if err != nil {
				return err
			}
			forest := commenttree.BuildForest(records, mode)
			printPage(cmd.OutOrStdout(), commenttree.Paginate(forest.Roots, limit))
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "-", "JSON array of comment records, - for stdin")
	cmd.Flags().StringVarP(&sort, "sort", "s", "top", "sort mode: top, new, old, controversial")
	cmd.Flags().IntVarP(&limit, "limit", "n", 50, "number of comments to show")
	return cmd
}

func readRecords(file string, stdin io.Reader) ([]commenttree.Record, error) {
	r := stdin
	if file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var records []commenttree.Record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode records: %w", err)
	}
	return records, nil
}

func printPage(w io.Writer, page commenttree.Page) {
	var walk func(nodes []*commenttree.Node, depth int)
	walk = func(nodes []*commenttree.Node, depth int) {
		for _, n := range nodes {
			fmt.Fprintf(w, "%s[%d] %s (%d): %s\n",
				strings.Repeat("  ", depth), n.ID, n.AuthorName, n.Score, firstLine(n.DisplayBody()))
			walk(n.Replies, depth+1)
		}
	}
	walk(page.Comments, 0)

	if page.HasMore() {
		fmt.Fprintf(w, "%d remaining\n", page.Remaining)
	}
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i] + " ..."
	}
	return s
}
