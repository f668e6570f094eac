package handlers

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDecodeJSON_EmptyBody проверяет, что запрос без тела дает ErrEmptyBody,
// а не сырую ошибку декодера
func TestDecodeJSON_EmptyBody(t *testing.T) {
	var dst struct {
		Reason *string `json:"reason"`
	}

	t.Run("тело отсутствует", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/reservations/42/cancel", nil)

		err := DecodeJSON(req, &dst)
		assert.ErrorIs(t, err, ErrEmptyBody)
	})

	t.Run("тело нулевой длины", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/reservations/42/cancel", strings.NewReader(""))

		err := DecodeJSON(req, &dst)
		assert.ErrorIs(t, err, ErrEmptyBody)
	})
}

func TestDecodeJSON_MalformedBody(t *testing.T) {
	var dst struct {
		Reason *string `json:"reason"`
	}
	req := httptest.NewRequest("POST", "/api/v1/reservations/42/cancel", strings.NewReader("{broken"))

	err := DecodeJSON(req, &dst)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrEmptyBody)
}
