package service

import (
	"errors"
	"fmt"

	"tableside/internal/domain"
)

// ValidationError marks a user-correctable mistake. The collections are never
// mutated when one is returned.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

const (
	ErrNoTable        ValidationError = "invalid table: scan the table QR code to order"
	ErrDishInvalid    ValidationError = "dish name, category and a positive base price are required"
	ErrTableNameEmpty ValidationError = "table name cannot be empty"
	ErrTableNameTaken ValidationError = "table name already exists"
	ErrUnknownStatus  ValidationError = "unknown order status"
)

var ErrTableNotFound = errors.New("table not found")

// InvalidTransitionError is returned when a status update would move an order
// against the state machine, e.g. cancelling food that is already prepared.
type InvalidTransitionError struct {
	From domain.OrderStatus
	To   domain.OrderStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("order status cannot move from %s to %s", e.From, e.To)
}
