package model

// Package model contains domain models/data structures shared across layers.
// No business logic and no database-specific tags here.
