package service_test

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"sorabora/config"
	"sorabora/infras/otel/mocks"
	"sorabora/internal/domains/auth/service"
	authMocks "sorabora/internal/domains/auth/service/mocks"
	"sorabora/shared/session"
	sessionMocks "sorabora/shared/session/mocks"
)

func TestStaticVerifier(t *testing.T) {
	cfg := &config.Config{}
	cfg.Staff.Username = "manager"
	cfg.Staff.Password = "lakeside"

	verifier := service.NewStaticVerifier(cfg)

	tests := []struct {
		name     string
		username string
		password string
		want     bool
	}{
		{"both correct", "manager", "lakeside", true},
		{"wrong password", "manager", "wrong", false},
		{"wrong username", "intruder", "lakeside", false},
		{"both wrong", "intruder", "wrong", false},
		{"both empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, verifier.Verify(tt.username, tt.password))
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockVerifier := authMocks.NewMockVerifier(ctrl)
	mockSessions := sessionMocks.NewMockStore(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockVerifier, mockSessions, mockOtel)

	sess := &session.Session{ID: "session-id"}

	t.Run("valid credentials mark the session", func(t *testing.T) {
		mockVerifier.EXPECT().
			Verify("manager", "lakeside").
			Return(true)
		mockSessions.EXPECT().
			SetLoggedIn(gomock.Any(), sess).
			Return(nil)

		err := svc.Login(context.Background(), sess, "manager", "lakeside")

		assert.NoError(t, err)
	})

	t.Run("invalid credentials never touch the session", func(t *testing.T) {
		mockVerifier.EXPECT().
			Verify("manager", "wrong").
			Return(false)

		err := svc.Login(context.Background(), sess, "manager", "wrong")

		assert.Error(t, err)
	})

	t.Run("session store error surfaces", func(t *testing.T) {
		mockVerifier.EXPECT().
			Verify("manager", "lakeside").
			Return(true)
		mockSessions.EXPECT().
			SetLoggedIn(gomock.Any(), sess).
			Return(errors.New("redis down"))

		err := svc.Login(context.Background(), sess, "manager", "lakeside")

		assert.Error(t, err)
	})
}

func TestAuthService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockVerifier := authMocks.NewMockVerifier(ctrl)
	mockSessions := sessionMocks.NewMockStore(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockVerifier, mockSessions, mockOtel)

	t.Run("destroys old session and issues a fresh one", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		sess := &session.Session{ID: "old-session", LoggedIn: true}
		fresh := &session.Session{ID: "fresh-session"}

		mockSessions.EXPECT().
			Destroy(gomock.Any(), recorder, sess).
			Return(nil)
		mockSessions.EXPECT().
			Issue(gomock.Any(), recorder).
			Return(fresh, nil)

		got, err := svc.Logout(context.Background(), recorder, sess)

		assert.NoError(t, err)
		assert.Equal(t, fresh, got)
		assert.False(t, got.Authenticated())
	})

	t.Run("destroy error surfaces", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		sess := &session.Session{ID: "old-session", LoggedIn: true}

		mockSessions.EXPECT().
			Destroy(gomock.Any(), recorder, sess).
			Return(errors.New("redis down"))

		_, err := svc.Logout(context.Background(), recorder, sess)

		assert.Error(t, err)
	})
}
