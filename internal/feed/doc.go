package feed

// Package feed generates the placeholder video tiles shown in the grid.
// Tiles are synthetic: positional titles and random view counts drawn from an
// injectable randomness source, so tests can substitute a deterministic one.
