package auth

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

// The forgot-password endpoint is public, so it must never update
// credentials no matter what the request carries.
func TestForgotPasswordDoesNotResetCredentials(t *testing.T) {
	app := fiber.New()
	app.Post("/auth/forgot-password", ForgotPasswordAPI)

	body := strings.NewReader(`{"username":"admin","new_password":"hijacked"}`)
	req := httptest.NewRequest("POST", "/auth/forgot-password", body)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response: %v", err)
	}

	var payload map[string]string
	if err := json.Unmarshal(raw, &payload); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}

	if !strings.Contains(payload["message"], "contact the administrator") {
		t.Errorf("message = %q, want administrator referral", payload["message"])
	}
	if strings.Contains(payload["message"], "reset successfully") {
		t.Errorf("message = %q, endpoint must not claim a reset happened", payload["message"])
	}
}
