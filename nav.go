// Package nav builds the page index for a static site. It scans a folder of
// HTML documents, reads each page's title and meta tags, derives a short
// display alias when none is declared, and writes the result as one JSON file.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., fs/, goquery/, regexp/, yaml/).
package nav
