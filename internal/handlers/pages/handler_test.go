package pages_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"sorabora/infras/otel/mocks"
	galleryMocks "sorabora/internal/domains/gallery/service/mocks"
	"sorabora/internal/handlers/pages"
	"sorabora/shared/session"
	sessionMocks "sorabora/shared/session/mocks"
	"sorabora/transport/http/response"
	"sorabora/transport/http/view"
)

func newPagesHandler(t *testing.T) (pages.Handler, *galleryMocks.MockGallery, *sessionMocks.MockStore) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockGallery := galleryMocks.NewMockGallery(ctrl)
	mockSessions := sessionMocks.NewMockStore(ctrl)
	mockOtel := mocks.NewOtel()

	presenter := response.NewPresenter(view.NewRenderer(), mockSessions)
	handler := pages.New(mockGallery, presenter, mockOtel)

	return handler, mockGallery, mockSessions
}

func pageRequest(target string) *http.Request {
	request := httptest.NewRequest(http.MethodGet, target, nil)
	sess := &session.Session{ID: "guest"}

	return request.WithContext(session.NewContext(request.Context(), sess))
}

func TestPagesHandler_Home(t *testing.T) {
	handler, _, mockSessions := newPagesHandler(t)

	mockSessions.EXPECT().
		PopFlashes(gomock.Any(), gomock.Any()).
		Return(nil, nil)

	recorder := httptest.NewRecorder()
	handler.Home(recorder, pageRequest("/"))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Welcome to Sorabora Suites")
}

func TestPagesHandler_Gallery(t *testing.T) {
	t.Run("lists image urls", func(t *testing.T) {
		handler, mockGallery, mockSessions := newPagesHandler(t)

		mockGallery.EXPECT().
			Images(gomock.Any()).
			Return([]string{"https://cdn.example/gallery/lake.jpg"}, nil)
		mockSessions.EXPECT().
			PopFlashes(gomock.Any(), gomock.Any()).
			Return(nil, nil)

		recorder := httptest.NewRecorder()
		handler.Gallery(recorder, pageRequest("/gallery"))

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "https://cdn.example/gallery/lake.jpg")
	})

	t.Run("service error still renders the page", func(t *testing.T) {
		handler, mockGallery, mockSessions := newPagesHandler(t)

		mockGallery.EXPECT().
			Images(gomock.Any()).
			Return(nil, errors.New("bucket unreachable"))
		mockSessions.EXPECT().
			PopFlashes(gomock.Any(), gomock.Any()).
			Return(nil, nil)

		recorder := httptest.NewRecorder()
		handler.Gallery(recorder, pageRequest("/gallery"))

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "No photos to show right now")
	})
}
