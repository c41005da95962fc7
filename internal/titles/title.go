// Package titles builds browser page titles for archive pages.
package titles

import "strings"

// minComponentLen is where truncation starts looking for a word boundary, so
// every truncated component keeps at least this many characters.
const minComponentLen = 15

// Options controls PageTitle composition.
type Options struct {
	// Truncate shortens each component at the first word boundary past
	// minComponentLen.
	Truncate bool
	// Pattern is the user's title format with TITLE, AUTHOR and FANDOM
	// tokens; empty falls back to "title - author - fandom".
	Pattern string
	// AppName, when set, is appended as " [AppName]".
	AppName string
}

// truncateAtWord cuts s at the first space at or past minComponentLen.
// Strings without a later boundary are kept whole.
func truncateAtWord(s string) string {
	if len(s) <= minComponentLen {
		return s
	}
	idx := strings.IndexByte(s[minComponentLen:], ' ')
	if idx < 0 {
		return s
	}
	return s[:minComponentLen+idx] + "..."
}

// PageTitle composes the page title from fandom, author and work title.
func PageTitle(fandom, author, title string, opts Options) string {
	if opts.Truncate {
		fandom = truncateAtWord(fandom)
		author = truncateAtWord(author)
		title = truncateAtWord(title)
	}

	var page string
	if opts.Pattern != "" {
		page = opts.Pattern
		page = strings.ReplaceAll(page, "TITLE", title)
		page = strings.ReplaceAll(page, "AUTHOR", author)
		page = strings.ReplaceAll(page, "FANDOM", fandom)
	} else {
		page = title + " - " + author + " - " + fandom
	}

	if opts.AppName != "" {
		page += " [" + opts.AppName + "]"
	}
	return page
}
