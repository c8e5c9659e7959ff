// Package events carries notifications about task mutations from the
// service layer to observers such as the metrics recorder, without the
// service knowing who listens.
//
// The primary components are:
// - MutationEvent: a task was created, updated or deleted
// - EventHandler: Interface for components that can handle events
// - EventEmitter: Interface for components that can emit events
package events
