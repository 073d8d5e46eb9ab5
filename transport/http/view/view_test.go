package view_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"sorabora/shared/session"
	"sorabora/transport/http/view"
)

func TestRenderer_Render(t *testing.T) {
	renderer := view.NewRenderer()

	t.Run("renders flashes once into the page", func(t *testing.T) {
		recorder := httptest.NewRecorder()

		page := view.PageData{
			Flashes: []session.Flash{
				{Severity: session.FlashSuccess, Message: "Room 101 added successfully!"},
			},
		}

		err := renderer.Render(recorder, "index.html", page)

		assert.NoError(t, err)
		assert.Contains(t, recorder.Body.String(), "Room 101 added successfully!")
		assert.Contains(t, recorder.Body.String(), "flash-success")
		assert.Contains(t, recorder.Header().Get("Content-Type"), "text/html")
	})

	t.Run("navigation follows the authentication flag", func(t *testing.T) {
		recorder := httptest.NewRecorder()

		err := renderer.Render(recorder, "index.html", view.PageData{Authenticated: true})

		assert.NoError(t, err)
		assert.Contains(t, recorder.Body.String(), "/logout")
	})

	t.Run("unknown template is an error", func(t *testing.T) {
		recorder := httptest.NewRecorder()

		err := renderer.Render(recorder, "missing.html", view.PageData{})

		assert.Error(t, err)
		assert.Empty(t, recorder.Body.String())
	})
}
