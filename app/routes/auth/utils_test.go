package auth

import "testing"

func TestJWTRoundTrip(t *testing.T) {
	studentID := "9f3a0c52-1f6d-4a8e-9d3c-6a1b2c3d4e5f"

	token, err := GenerateJWT("u1", "aarav", "student", &studentID)
	if err != nil {
		t.Fatalf("GenerateJWT returned error: %v", err)
	}

	claims, err := ValidateJWT(token)
	if err != nil {
		t.Fatalf("ValidateJWT returned error: %v", err)
	}

	if claims.UserID != "u1" {
		t.Errorf("UserID = %q, want %q", claims.UserID, "u1")
	}
	if claims.Username != "aarav" {
		t.Errorf("Username = %q, want %q", claims.Username, "aarav")
	}
	if claims.Role != "student" {
		t.Errorf("Role = %q, want %q", claims.Role, "student")
	}
	if claims.StudentID == nil || *claims.StudentID != studentID {
		t.Errorf("StudentID = %v, want %q", claims.StudentID, studentID)
	}
}

func TestValidateJWTRejectsGarbage(t *testing.T) {
	if _, err := ValidateJWT("not-a-token"); err == nil {
		t.Error("expected error for malformed token")
	}
}

func TestAuthorize(t *testing.T) {
	admin := &JWTClaims{UserID: "u1", Username: "admin", Role: "admin"}
	teacher := &JWTClaims{UserID: "u2", Username: "teacher", Role: "teacher"}

	tests := []struct {
		name    string
		claims  *JWTClaims
		allowed []string
		want    Outcome
	}{
		{"nil claims", nil, []string{"admin"}, Unauthenticated},
		{"nil claims no roles", nil, nil, Unauthenticated},
		{"any authenticated", teacher, nil, Allowed},
		{"matching role", admin, []string{"admin"}, Allowed},
		{"one of several roles", teacher, []string{"admin", "teacher"}, Allowed},
		{"wrong role", teacher, []string{"admin"}, Forbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Authorize(tt.claims, tt.allowed...); got != tt.want {
				t.Errorf("Authorize = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("secret-password")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}

	if !CheckPasswordHash("secret-password", hash) {
		t.Error("correct password rejected")
	}
	if CheckPasswordHash("wrong-password", hash) {
		t.Error("wrong password accepted")
	}
}
