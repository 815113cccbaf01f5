package apperrors

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindConflict
	KindAuth
)

type Error struct {
	kind Kind
	msg  string
}

func (e *Error) Error() string {
	return e.msg
}

func (e *Error) Kind() Kind {
	return e.kind
}

func NewValidation(msg string) error {
	return &Error{kind: KindValidation, msg: msg}
}

func NewNotFound(msg string) error {
	return &Error{kind: KindNotFound, msg: msg}
}

func NewConflict(msg string) error {
	return &Error{kind: KindConflict, msg: msg}
}

func NewAuth(msg string) error {
	return &Error{kind: KindAuth, msg: msg}
}

// KindOf распознаёт тип ошибки в том числе через цепочку обёрток pkg/errors
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.kind
	}
	return KindInternal
}

func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// HTTPStatus возвращает код ответа для ошибки.
// Conflict отдаётся как 400, как в исходном поведении API.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation, KindConflict:
		return fiber.StatusBadRequest
	case KindNotFound:
		return fiber.StatusNotFound
	case KindAuth:
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusInternalServerError
	}
}
