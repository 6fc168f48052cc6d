package model

// Package model defines domain data structures used across the app: video
// tiles, comment entries, and the fixed seed content. Structures are designed
// for direct rendering in the UI and carry no behavior beyond display helpers.
