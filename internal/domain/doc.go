// Package domain defines the core business entities of the task board:
// users, boards, and tasks. Entities validate themselves; persistence
// and transport concerns live elsewhere.
package domain
