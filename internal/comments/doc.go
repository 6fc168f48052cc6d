package comments

// Package comments implements the in-memory comment store behind the comments
// panel. The store is append-only for the life of the process: entries are
// never edited or removed, and blank submissions are silently ignored.
