package dto

import (
	"strings"
	"testing"
)

func validSignup() SignupRequest {
	return SignupRequest{
		Username:    "editor",
		Password:    "password1",
		Email:       "editor@example.com",
		PhoneNumber: "+15550001111",
		Role:        "EDITOR",
	}
}

func TestSignupValidateAccepts(t *testing.T) {
	if details := validSignup().Validate(); details != nil {
		t.Fatalf("expected no errors, got %v", details)
	}

	noPhone := validSignup()
	noPhone.PhoneNumber = ""
	if details := noPhone.Validate(); details != nil {
		t.Fatalf("phone is optional, got %v", details)
	}
}

func TestSignupValidateBounds(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*SignupRequest)
		field  string
	}{
		{"username too short", func(r *SignupRequest) { r.Username = "ab" }, "username"},
		{"username too long", func(r *SignupRequest) { r.Username = strings.Repeat("a", 51) }, "username"},
		{"password too short", func(r *SignupRequest) { r.Password = "12345" }, "password"},
		{"password too long", func(r *SignupRequest) { r.Password = strings.Repeat("p", 101) }, "password"},
		{"phone too short", func(r *SignupRequest) { r.PhoneNumber = "+123456789" }, "phoneNumber"},
		{"phone with letters", func(r *SignupRequest) { r.PhoneNumber = "+1555000abcd" }, "phoneNumber"},
		{"missing role", func(r *SignupRequest) { r.Role = "" }, "role"},
	}
	for _, tc := range cases {
		req := validSignup()
		tc.mutate(&req)
		details := req.Validate()
		if details == nil {
			t.Fatalf("%s: expected a validation error", tc.name)
		}
		if _, ok := details[tc.field]; !ok {
			t.Fatalf("%s: expected error on %q, got %v", tc.name, tc.field, details)
		}
	}
}

func TestSignupValidateBoundaryLengths(t *testing.T) {
	req := validSignup()
	req.Username = "abc"
	req.Password = "123456"
	if details := req.Validate(); details != nil {
		t.Fatalf("minimum lengths must be accepted, got %v", details)
	}

	req.Username = strings.Repeat("a", 50)
	req.Password = strings.Repeat("p", 100)
	if details := req.Validate(); details != nil {
		t.Fatalf("maximum lengths must be accepted, got %v", details)
	}
}
