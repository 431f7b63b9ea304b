// Package cashflow implements the state machine behind a board-game style
// personal finance exercise: a single player tracks cash, income-producing
// assets, debts, and an append-only transaction ledger while trying to get
// passive income to cover monthly expenses.
//
// The package is split in two layers:
//   - Calculation Engine: pure functions that derive monthly figures (passive
//     income, expenses, cash flow) and the fast-track predicate from a player
//     snapshot. See calc.go.
//   - Game State Core: the Game type owns the mutable Player aggregate and
//     exposes every state transition (buy, sell, borrow, pay off, collect
//     paycheck, change profession, ...). Each operation clones the player,
//     mutates the clone, re-evaluates the phase predicate, and commits
//     atomically. See game.go.
//
// Persistence is a set of three independent JSON documents (player state,
// profession presets, saved player names) managed by Store. A missing or
// corrupt document degrades to its default value, never to a hard failure.
//
// This package serves as the foundational logic for the `cfh` command-line
// tool.
package cashflow
