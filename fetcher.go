package somnolent

import "context"

// Fetcher retrieves raw HTML from URLs.
type Fetcher interface {
	// Fetch returns the body of the page at url.
	// Transport failures are reported with the EFETCH code, and so is a
	// canceled or expired context. A page the server reports as missing
	// (HTTP 404 or 410) is reported with ENOTFOUND.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases underlying resources.
	Close() error
}
