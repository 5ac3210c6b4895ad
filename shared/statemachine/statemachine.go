package statemachine

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrInvalidTransition is returned when a trigger is not permitted from the current state.
	ErrInvalidTransition = errors.New("invalid state transition")
	// ErrUnknownTrigger is returned when no state permits the trigger at all.
	ErrUnknownTrigger = errors.New("unknown trigger")
)

// Machine is an immutable transition table. It holds no current state, so one instance is shared
// by every request and the state always comes from the stored record.
type Machine[S ~string, T ~string] struct {
	transitions map[S]map[T]S
	targets     map[T]S
}

type Builder[S ~string, T ~string] struct {
	transitions map[S]map[T]S
	targets     map[T]S
}

type StateConfig[S ~string, T ~string] struct {
	builder *Builder[S, T]
	state   S
}

func NewBuilder[S ~string, T ~string]() *Builder[S, T] {
	return &Builder[S, T]{
		transitions: map[S]map[T]S{},
		targets:     map[T]S{},
	}
}

// Configure starts declaring the triggers accepted while in state.
func (b *Builder[S, T]) Configure(state S) *StateConfig[S, T] {
	if _, ok := b.transitions[state]; !ok {
		b.transitions[state] = map[T]S{}
	}

	return &StateConfig[S, T]{builder: b, state: state}
}

// Permit allows trigger to move the configured state to destination.
func (c *StateConfig[S, T]) Permit(trigger T, destination S) *StateConfig[S, T] {
	c.builder.transitions[c.state][trigger] = destination
	c.builder.targets[trigger] = destination

	if _, ok := c.builder.transitions[destination]; !ok {
		c.builder.transitions[destination] = map[T]S{}
	}

	return c
}

func (b *Builder[S, T]) Build() *Machine[S, T] {
	return &Machine[S, T]{
		transitions: b.transitions,
		targets:     b.targets,
	}
}

// Fire returns the state reached by trigger from the current state.
func (m *Machine[S, T]) Fire(current S, trigger T) (S, error) {
	next, ok := m.transitions[current][trigger]
	if !ok {
		return current, fmt.Errorf("%w: cannot fire trigger %s from state %s", ErrInvalidTransition, trigger, current)
	}

	return next, nil
}

func (m *Machine[S, T]) CanFire(current S, trigger T) bool {
	_, ok := m.transitions[current][trigger]

	return ok
}

// Target returns the destination trigger leads to, regardless of the source state.
func (m *Machine[S, T]) Target(trigger T) (S, error) {
	target, ok := m.targets[trigger]
	if !ok {
		var zero S

		return zero, fmt.Errorf("%w: %s", ErrUnknownTrigger, trigger)
	}

	return target, nil
}

// Sources lists the states from which trigger may fire, sorted.
func (m *Machine[S, T]) Sources(trigger T) []S {
	sources := []S{}

	for state, triggers := range m.transitions {
		if _, ok := triggers[trigger]; ok {
			sources = append(sources, state)
		}
	}

	slices.Sort(sources)

	return sources
}

func (m *Machine[S, T]) PermittedTriggers(current S) []T {
	triggers := make([]T, 0, len(m.transitions[current]))

	for trigger := range m.transitions[current] {
		triggers = append(triggers, trigger)
	}

	slices.Sort(triggers)

	return triggers
}

// IsTerminal reports whether nothing can leave state.
func (m *Machine[S, T]) IsTerminal(state S) bool {
	triggers, ok := m.transitions[state]

	return ok && len(triggers) == 0
}

// IsValid reports whether state was declared by the builder.
func (m *Machine[S, T]) IsValid(state S) bool {
	_, ok := m.transitions[state]

	return ok
}
