// Package parsing turns the public API markdown list into canonical records.
package parsing

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/jonathan/api-catalog/internal/normalize"
	"github.com/jonathan/api-catalog/internal/types"
)

// rowPattern matches "| [Name](url) | description | auth | https | cors |".
// Some rows use YES for HTTPS and leave CORS empty or misspelled.
var rowPattern = regexp.MustCompile(
	`^\|\s*\[([^\]]+)\]\(([^)]+)\)\s*\|` +
		`\s*(.+?)\s*\|` +
		"\\s*(`[^`]+`|No)\\s*\\|" +
		`\s*(Yes|No|YES)\s*\|` +
		`\s*(Yes|No|Unknown|Unkown|)\s*` +
		`\|?\s*`,
)

// Result holds the parsed records and the lines that needed a fallback
type Result struct {
	Records  []types.APIRecord
	Warnings []string
}

// ParseMarkdownFile parses the markdown list at path
func ParseMarkdownFile(path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ParseError{Path: path, Message: "failed to open file", Cause: err}
	}
	defer func() { _ = f.Close() }()

	res, err := ParseMarkdown(f)
	if err != nil {
		return nil, &ParseError{Path: path, Message: "failed to read file", Cause: err}
	}
	return res, nil
}

// ParseMarkdown reads "### Category" headers and the table rows below them.
// Rows before the first category header and lines that are not API rows are
// ignored. Every record starts out pending.
func ParseMarkdown(r io.Reader) (*Result, error) {
	res := &Result{Records: []types.APIRecord{}}
	category := ""

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		if strings.HasPrefix(line, "### ") {
			category = normalize.Slugify(strings.TrimSpace(line[4:]))
			continue
		}
		if !strings.HasPrefix(line, "| [") || category == "" {
			continue
		}

		m := rowPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		auth, known := NormalizeAuth(m[4])
		if !known {
			res.Warnings = append(res.Warnings, fmt.Sprintf("line %d: unknown auth %s for %s, using %s", lineNo, m[4], m[1], auth))
		}

		res.Records = append(res.Records, types.APIRecord{
			Name:        m[1],
			URL:         m[2],
			Description: strings.TrimSpace(strings.ReplaceAll(m[3], "\t", " ")),
			Auth:        auth,
			HTTPS:       strings.EqualFold(m[5], "yes"),
			Cors:        NormalizeCors(m[6]),
			Category:    category,
			Status:      types.StatusPending,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

// AuthCounts counts parsed records per auth value
func (r *Result) AuthCounts() map[types.Auth]int {
	counts := make(map[types.Auth]int)
	for i := range r.Records {
		counts[r.Records[i].Auth]++
	}
	return counts
}
