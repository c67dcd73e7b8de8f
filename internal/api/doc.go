// Package api implements the HTTP handlers for the task-board API:
// signup/login, board CRUD, and task CRUD. Handlers translate between
// the JSON wire contract and the service/store layers, and map internal
// errors onto the HTTP status taxonomy.
package api
