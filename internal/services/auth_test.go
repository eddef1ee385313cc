package services

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/flightpath-edu/flightpath-backend/internal/logger"
	"github.com/flightpath-edu/flightpath-backend/internal/requestdata"
)

func signToken(t *testing.T, secret, subject string, method jwt.SigningMethod) string {
	t.Helper()
	token := jwt.NewWithClaims(method, jwt.MapClaims{
		"sub": subject,
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestSetContextFromToken(t *testing.T) {
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}
	svc := NewAuthService(log, "test-secret")
	userID := uuid.New()

	t.Run("valid token populates request data", func(t *testing.T) {
		ctx, err := svc.SetContextFromToken(context.Background(), signToken(t, "test-secret", userID.String(), jwt.SigningMethodHS256))
		if err != nil {
			t.Fatalf("SetContextFromToken: %v", err)
		}
		rd := requestdata.GetRequestData(ctx)
		if rd == nil || rd.UserID != userID {
			t.Fatalf("request data = %+v, want user %s", rd, userID)
		}
	})

	t.Run("wrong secret rejected", func(t *testing.T) {
		_, err := svc.SetContextFromToken(context.Background(), signToken(t, "other-secret", userID.String(), jwt.SigningMethodHS256))
		if err == nil {
			t.Fatalf("expected error for token signed with the wrong secret")
		}
	})

	t.Run("non-uuid subject rejected", func(t *testing.T) {
		_, err := svc.SetContextFromToken(context.Background(), signToken(t, "test-secret", "not-a-uuid", jwt.SigningMethodHS256))
		if err == nil {
			t.Fatalf("expected error for non-uuid subject")
		}
	})

	t.Run("missing subject rejected", func(t *testing.T) {
		_, err := svc.SetContextFromToken(context.Background(), signToken(t, "test-secret", "", jwt.SigningMethodHS256))
		if err == nil {
			t.Fatalf("expected error for empty subject")
		}
	})

	t.Run("garbage rejected", func(t *testing.T) {
		if _, err := svc.SetContextFromToken(context.Background(), "not.a.token"); err == nil {
			t.Fatalf("expected error for malformed token")
		}
	})
}
