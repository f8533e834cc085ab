// Package repository contains the data access layer: one repository
// per record kind plus the sequence counter store. Sentinel errors
// defined here are shared by every repository so the service layer can
// distinguish failure scenarios without inspecting driver errors.
package repository

import "errors"

// ErrNotFound is returned when a record looked up by its identity does
// not exist. Services translate this into their own not-found failure.
var ErrNotFound = errors.New("record not found")

// ErrUnknownSequence is returned by the sequence store when asked to
// advance a counter that was never seeded. Creation of sequence-numbered
// records must fail closed on this error rather than invent a number.
var ErrUnknownSequence = errors.New("unknown sequence")
