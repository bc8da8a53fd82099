package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestClientTokenRoundTrip(t *testing.T) {
	token, err := GenerateClientToken("s3cret", "judge-runner", time.Hour)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	claims, err := ValidateClientToken("s3cret", token)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if claims.ClientID != "judge-runner" || claims.Subject != "judge-runner" {
		t.Errorf("Unexpected claims %+v", claims)
	}
	if claims.ID == "" {
		t.Error("Expected a token ID")
	}
}

func TestValidateClientTokenRejects(t *testing.T) {
	good, _ := GenerateClientToken("s3cret", "client", time.Hour)
	expired, _ := GenerateClientToken("s3cret", "client", -time.Minute)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, &ClientClaims{ClientID: "client"})
	unsigned, _ := none.SignedString(jwt.UnsafeAllowNoneSignatureType)

	noClient := jwt.NewWithClaims(jwt.SigningMethodHS256, &ClientClaims{})
	anonymous, _ := noClient.SignedString([]byte("s3cret"))

	tt := []struct {
		name   string
		secret string
		token  string
	}{
		{name: "wrong secret", secret: "other", token: good},
		{name: "expired", secret: "s3cret", token: expired},
		{name: "unsigned", secret: "s3cret", token: unsigned},
		{name: "missing client id", secret: "s3cret", token: anonymous},
		{name: "garbage", secret: "s3cret", token: "not-a-jwt"},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ValidateClientToken(tc.secret, tc.token); err == nil {
				t.Error("Expected validation to fail")
			}
		})
	}
}

func TestGenerateClientTokenRequiresInput(t *testing.T) {
	if _, err := GenerateClientToken("", "client", time.Hour); err == nil {
		t.Error("Expected error for empty secret")
	}
	if _, err := GenerateClientToken("s3cret", "", time.Hour); err == nil {
		t.Error("Expected error for empty client id")
	}
}
