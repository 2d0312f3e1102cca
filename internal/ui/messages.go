package ui

import (
	"coursepage/internal/autoplay"
	"coursepage/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// autoplayTickMsg carries one autoplay timer tick into Update
type autoplayTickMsg struct {
	tick autoplay.Tick
}

// pagerMsg contains the result of a pager command
type pagerMsg struct {
	err error
}
