// Package apperr is the closed error taxonomy shared by the repositories,
// services and handlers. Every failure a client can observe is one of these
// kinds; raw storage errors never cross the handler boundary.
package apperr

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
)

type Kind string

const (
	KindInvalidID        Kind = "invalid_id"        // malformed identifier
	KindNotFound         Kind = "not_found"         // well-formed identifier, no match
	KindValidation       Kind = "validation"        // missing/empty required field
	KindInvalidReference Kind = "invalid_reference" // malformed folder/tag reference
	KindDuplicateName    Kind = "duplicate_name"    // unique index violated
	KindStorage          Kind = "storage"           // unclassified storage failure
)

type Error struct {
	Kind    Kind
	Message string
	// Field and Value identify the offending input for validation and
	// reference errors; Entity names the collection for duplicate-name and
	// not-found errors.
	Field  string
	Value  string
	Entity string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func InvalidID() *Error {
	return &Error{Kind: KindInvalidID, Message: "The id is not valid"}
}

func NotFound(entity string) *Error {
	return &Error{Kind: KindNotFound, Entity: entity, Message: "Not found"}
}

func Validation(field, reason string) *Error {
	return &Error{Kind: KindValidation, Field: field, Message: reason}
}

func MissingField(field string) *Error {
	return Validation(field, fmt.Sprintf("Missing `%s` in request body", field))
}

func InvalidReference(field, value string) *Error {
	return &Error{
		Kind:    KindInvalidReference,
		Field:   field,
		Value:   value,
		Message: fmt.Sprintf("The `%s` is not valid", field),
	}
}

func DuplicateName(entity string) *Error {
	return &Error{
		Kind:    KindDuplicateName,
		Entity:  entity,
		Message: fmt.Sprintf("The %s name already exists", entity),
	}
}

func Storage(err error) *Error {
	return &Error{Kind: KindStorage, Message: "Internal server error", Err: err}
}

// Classify translates a mongo-driver failure into the taxonomy. The entity
// tag lets callers render "The folder name already exists" vs "The tag name
// already exists" without owning message text themselves.
func Classify(entity string, err error) *Error {
	if err == nil {
		return nil
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return NotFound(entity)
	}
	if mongo.IsDuplicateKeyError(err) {
		return DuplicateName(entity)
	}
	return Storage(err)
}

// KindOf reports the taxonomy kind of err, or KindStorage when err did not
// come out of this package.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindStorage
}
