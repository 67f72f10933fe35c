package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"sellquick/internal/auth"
	"sellquick/internal/model"
)

const testJWTSecret = "test-secret"

func newAuthFixture(userRepo *MockUserRepository, tokenStore *MockTokenStore) (AuthService, *auth.Notifier) {
	notifier := auth.NewNotifier()
	svc := NewAuthService(userRepo, auth.NewJWTService(testJWTSecret), tokenStore, notifier)
	return svc, notifier
}

func TestAuthService_Register(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByEmail", mock.Anything, "new@example.com").Return(nil, gorm.ErrRecordNotFound)
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

		svc, _ := newAuthFixture(mockRepo, new(MockTokenStore))
		user, err := svc.Register(context.Background(), "new@example.com", "password123", "New User")

		assert.NoError(t, err)
		assert.Equal(t, "new@example.com", user.Email)
		assert.Equal(t, "New User", user.Name)
		assert.NotEqual(t, "password123", user.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("password123")))
		mockRepo.AssertExpectations(t)
	})

	t.Run("duplicate email", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByEmail", mock.Anything, "taken@example.com").
			Return(&model.User{Email: "taken@example.com"}, nil)

		svc, _ := newAuthFixture(mockRepo, new(MockTokenStore))
		_, err := svc.Register(context.Background(), "taken@example.com", "password123", "Someone")

		assert.ErrorIs(t, err, ErrUserAlreadyExists)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestAuthService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcryptCost)
	assert.NoError(t, err)
	stored := &model.User{ID: uuid.New(), Email: "user@example.com", PasswordHash: string(hash)}

	t.Run("success publishes login event", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByEmail", mock.Anything, "user@example.com").Return(stored, nil)

		mockStore := new(MockTokenStore)
		mockStore.On("StoreRefreshToken", mock.Anything, mock.Anything, stored.ID.String(), stored.Email, auth.RefreshTokenExpiry).Return(nil)

		svc, notifier := newAuthFixture(mockRepo, mockStore)
		var events []auth.Event
		unsubscribe := notifier.Subscribe(func(ev auth.Event) { events = append(events, ev) })
		defer unsubscribe()

		access, refresh, user, err := svc.Login(context.Background(), "user@example.com", "password123")

		assert.NoError(t, err)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, refresh)
		assert.Equal(t, stored.ID, user.ID)
		assert.Equal(t, []auth.Event{{Kind: auth.EventLogin, UserID: stored.ID.String(), Email: stored.Email}}, events)
		mockStore.AssertExpectations(t)
	})

	t.Run("wrong password", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByEmail", mock.Anything, "user@example.com").Return(stored, nil)

		svc, _ := newAuthFixture(mockRepo, new(MockTokenStore))
		_, _, _, err := svc.Login(context.Background(), "user@example.com", "wrong")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, gorm.ErrRecordNotFound)

		svc, _ := newAuthFixture(mockRepo, new(MockTokenStore))
		_, _, _, err := svc.Login(context.Background(), "nobody@example.com", "password123")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	jwtService := auth.NewJWTService(testJWTSecret)
	uid := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		tokenID, refresh, err := jwtService.GenerateRefreshToken(uid, "user@example.com")
		assert.NoError(t, err)

		mockStore := new(MockTokenStore)
		mockStore.On("GetRefreshToken", mock.Anything, tokenID).Return(uid, "user@example.com", nil)

		svc := NewAuthService(new(MockUserRepository), jwtService, mockStore, auth.NewNotifier())
		access, err := svc.RefreshToken(context.Background(), refresh)

		assert.NoError(t, err)
		claims, err := jwtService.ValidateToken(access)
		assert.NoError(t, err)
		assert.Equal(t, uid, claims.UserID)
	})

	t.Run("revoked token", func(t *testing.T) {
		tokenID, refresh, err := jwtService.GenerateRefreshToken(uid, "user@example.com")
		assert.NoError(t, err)

		mockStore := new(MockTokenStore)
		mockStore.On("GetRefreshToken", mock.Anything, tokenID).Return("", "", assert.AnError)

		svc := NewAuthService(new(MockUserRepository), jwtService, mockStore, auth.NewNotifier())
		_, err = svc.RefreshToken(context.Background(), refresh)

		assert.ErrorIs(t, err, ErrInvalidRefreshToken)
	})

	t.Run("garbage token", func(t *testing.T) {
		svc := NewAuthService(new(MockUserRepository), jwtService, new(MockTokenStore), auth.NewNotifier())
		_, err := svc.RefreshToken(context.Background(), "not-a-jwt")

		assert.ErrorIs(t, err, ErrInvalidRefreshToken)
	})
}

func TestAuthService_Logout(t *testing.T) {
	jwtService := auth.NewJWTService(testJWTSecret)
	uid := uuid.New().String()

	tokenID, refresh, err := jwtService.GenerateRefreshToken(uid, "user@example.com")
	assert.NoError(t, err)

	mockStore := new(MockTokenStore)
	mockStore.On("DeleteRefreshToken", mock.Anything, tokenID).Return(nil)

	notifier := auth.NewNotifier()
	var events []auth.Event
	unsubscribe := notifier.Subscribe(func(ev auth.Event) { events = append(events, ev) })
	defer unsubscribe()

	svc := NewAuthService(new(MockUserRepository), jwtService, mockStore, notifier)
	assert.NoError(t, svc.Logout(context.Background(), refresh))

	assert.Equal(t, []auth.Event{{Kind: auth.EventLogout, UserID: uid, Email: "user@example.com"}}, events)
	mockStore.AssertExpectations(t)
}
