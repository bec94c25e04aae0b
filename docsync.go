// Package docsync synchronises tutorial assets from the public xsnow
// documentation. It crawls the tutorial index page, downloads linked
// Jupyter notebooks or scrapes code blocks from tutorial HTML, and keeps
// a manifest of the synchronised assets so CI jobs can report a concise
// diff across runs.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., goquery/,
// http/, fs/).
package docsync
