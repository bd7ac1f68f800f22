package domain

import (
	"errors"
	"fmt"
)

// ErrInstanceNotFound is returned when an instance name cannot be found in a circuit.
var ErrInstanceNotFound = errors.New("component instance not found")

// ErrInstanceAttached is returned when attaching an instance that already belongs to a circuit.
var ErrInstanceAttached = errors.New("component instance already attached to a circuit")

// ErrConnectionNotFound is returned when removing a connection that is not part of the circuit.
var ErrConnectionNotFound = errors.New("connection not found")

// DuplicateDomainError indicates a domain name was defined twice in the same registry.
type DuplicateDomainError struct {
	Name string
}

func (e *DuplicateDomainError) Error() string {
	return fmt.Sprintf("domain %q already defined", e.Name)
}

// UnknownDomainError indicates a lookup for a domain name that was never defined.
type UnknownDomainError struct {
	Name string
}

func (e *UnknownDomainError) Error() string {
	return fmt.Sprintf("unknown domain %q", e.Name)
}

// DomainConfigError indicates an inconsistent domain definition.
type DomainConfigError struct {
	Name   string
	Reason string
}

func (e *DomainConfigError) Error() string {
	return fmt.Sprintf("domain %q: %s", e.Name, e.Reason)
}

// PortOwnershipError indicates an attempt to attach an already-owned port
// to a second owner. Callers must Clone first.
type PortOwnershipError struct {
	Port  string // qualified port name, e.g. "b1.In1"
	Owner string // current owner name
}

func (e *PortOwnershipError) Error() string {
	return fmt.Sprintf("port %q is already owned by %q; clone it before reattaching", e.Port, e.Owner)
}

// UnknownPortError indicates a port-name lookup failure on a type, instance or circuit.
type UnknownPortError struct {
	Owner string
	Port  string
}

func (e *UnknownPortError) Error() string {
	return fmt.Sprintf("%q has no port named %q", e.Owner, e.Port)
}

// DuplicatePortNameError indicates two ports with the same name under one owner.
type DuplicatePortNameError struct {
	Owner string
	Port  string
}

func (e *DuplicatePortNameError) Error() string {
	return fmt.Sprintf("%q already has a port named %q", e.Owner, e.Port)
}

// DuplicateInstanceNameError indicates an instance-name collision within a circuit.
type DuplicateInstanceNameError struct {
	Circuit  string
	Instance string
}

func (e *DuplicateInstanceNameError) Error() string {
	return fmt.Sprintf("circuit %q already contains an instance named %q", e.Circuit, e.Instance)
}

// ForeignPortError indicates a connection endpoint that is owned neither by the
// circuit's boundary nor by one of its instances.
type ForeignPortError struct {
	Circuit string
	Port    string
}

func (e *ForeignPortError) Error() string {
	return fmt.Sprintf("port %q does not belong to circuit %q", e.Port, e.Circuit)
}

// DomainMismatchError indicates a connection between ports of different domains.
type DomainMismatchError struct {
	Source       string
	Target       string
	SourceDomain string
	TargetDomain string
}

func (e *DomainMismatchError) Error() string {
	return fmt.Sprintf("cannot connect %q (domain %q) to %q (domain %q)",
		e.Source, e.SourceDomain, e.Target, e.TargetDomain)
}

// DirectionError indicates an illegal port direction, either at port creation
// or when a causal connection has no valid source/sink orientation.
type DirectionError struct {
	Port   string
	Reason string
}

func (e *DirectionError) Error() string {
	return fmt.Sprintf("port %q: %s", e.Port, e.Reason)
}

// FanOutViolationError indicates a port of a one2one domain that would end up
// with more than one connection.
type FanOutViolationError struct {
	Port   string
	Domain string
}

func (e *FanOutViolationError) Error() string {
	return fmt.Sprintf("port %q already carries a connection (domain %q is one-to-one)", e.Port, e.Domain)
}

// SelfConnectionError indicates a port connected to itself.
type SelfConnectionError struct {
	Port string
}

func (e *SelfConnectionError) Error() string {
	return fmt.Sprintf("port %q cannot be connected to itself", e.Port)
}

// DuplicateConnectionError indicates a connection between two ports that are
// already linked to each other.
type DuplicateConnectionError struct {
	Source string
	Target string
}

func (e *DuplicateConnectionError) Error() string {
	return fmt.Sprintf("ports %q and %q are already connected", e.Source, e.Target)
}
