package request

import "testing"

func TestSignupRequest_Validate(t *testing.T) {
	valid := SignupRequest{
		Email:           "jamie@example.com",
		Password:        "Password1",
		ConfirmPassword: "Password1",
		Name:            "Jamie",
	}

	tests := []struct {
		name    string
		mutate  func(r *SignupRequest)
		wantErr bool
	}{
		{"valid", func(r *SignupRequest) {}, false},
		{"bad email", func(r *SignupRequest) { r.Email = "not-an-email" }, true},
		{"missing name", func(r *SignupRequest) { r.Name = "" }, true},
		{"too short password", func(r *SignupRequest) { r.Password = "Pass1"; r.ConfirmPassword = "Pass1" }, true},
		{"no digit", func(r *SignupRequest) { r.Password = "Passwords"; r.ConfirmPassword = "Passwords" }, true},
		{"no letter", func(r *SignupRequest) { r.Password = "12345678"; r.ConfirmPassword = "12345678" }, true},
		{"confirm mismatch", func(r *SignupRequest) { r.ConfirmPassword = "Password2" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			if err := req.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
