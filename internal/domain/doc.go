// Package domain defines the core entities of the task board: tasks and the
// audit log entries recorded for every mutation against them. Types in this
// package carry no persistence or transport concerns beyond their JSON shape.
package domain
