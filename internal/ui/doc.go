package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It composes the five panels (header, sidebar, video grid, player, comments),
// wires user interactions to the feed and comment services, and renders the
// static mock-up layout. All UI strings are localized via Localization.
