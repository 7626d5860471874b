// Package webread provides bounded web page retrieval for language models.
// It answers a search query, or a direct page URL, by fetching a capped
// number of candidate pages concurrently, reducing each page to readable
// text, and optionally distilling that text down to query-relevant content.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., brave/, gemini/, sqlite/).
package webread
