// Package somnolent extracts tweet-ready content from the short stories
// published on somnolentworks.com. It finds the newest story on the index
// page, picks a random story, recovers its title and body from HTML and
// selects one well-formed sentence for posting.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, regexp2/, http/).
package somnolent
