package apperrors

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	err := NewConflict("подразделение уже существует")
	require.Equal(t, KindConflict, KindOf(err))

	wrapped := errors.Wrap(err, "ошибка создания подразделения")
	require.Equal(t, KindConflict, KindOf(wrapped))
	require.True(t, IsKind(wrapped, KindConflict))

	require.Equal(t, KindInternal, KindOf(errors.New("что-то пошло не так")))
}

func TestHTTPStatus(t *testing.T) {
	require.Equal(t, fiber.StatusBadRequest, HTTPStatus(NewValidation("дата не распознана")))
	require.Equal(t, fiber.StatusBadRequest, HTTPStatus(NewConflict("запись уже существует")))
	require.Equal(t, fiber.StatusNotFound, HTTPStatus(NewNotFound("запись не найдена")))
	require.Equal(t, fiber.StatusUnauthorized, HTTPStatus(NewAuth("неверные учетные данные")))
	require.Equal(t, fiber.StatusInternalServerError, HTTPStatus(errors.New("сбой")))
}
