package service

import (
	"errors"
	"testing"
)

func TestRegisterAndLogin(t *testing.T) {
	env := newTestEnv(t)

	user, err := env.users.Register(RegisterInput{
		FirstName: "Nour",
		LastName:  "Said",
		Phone:     "01012345678",
		Password:  "hunter22",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.PasswordHash == "hunter22" {
		t.Fatal("password stored in plain text")
	}

	result, err := env.users.Login("01012345678", "hunter22")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if result.Token == "" {
		t.Fatal("login returned no token")
	}

	if _, err := env.users.Login("01012345678", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("bad password err = %v, want ErrInvalidCredentials", err)
	}
	if _, err := env.users.Login("00000000000", "hunter22"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown phone err = %v, want ErrInvalidCredentials", err)
	}
}

func TestRegisterDuplicatePhone(t *testing.T) {
	env := newTestEnv(t)
	in := RegisterInput{FirstName: "A", LastName: "B", Phone: "0100", Password: "pw"}
	if _, err := env.users.Register(in); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := env.users.Register(in); !errors.Is(err, ErrPhoneTaken) {
		t.Fatalf("duplicate err = %v, want ErrPhoneTaken", err)
	}
}

func TestRegisterMissingFields(t *testing.T) {
	env := newTestEnv(t)
	if _, err := env.users.Register(RegisterInput{FirstName: "A"}); !errors.Is(err, ErrMissingFields) {
		t.Fatalf("err = %v, want ErrMissingFields", err)
	}
}

func TestTokenRolesAreNotInterchangeable(t *testing.T) {
	env := newTestEnv(t)
	user, err := env.users.Register(RegisterInput{
		FirstName: "Nour", LastName: "Said", Phone: "0101", Password: "pw",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	token, err := IssueToken(env.users.jwtCfg, user.ID, TokenRoleUser)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := ParseToken(env.users.jwtCfg, token, TokenRoleUser); err != nil {
		t.Fatalf("parse own role: %v", err)
	}
	if _, err := ParseToken(env.users.jwtCfg, token, TokenRolePartner); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("cross-role parse err = %v, want ErrInvalidCredentials", err)
	}
	if _, err := ParseToken(env.partners.jwtCfg, token, TokenRoleUser); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("cross-secret parse err = %v, want ErrInvalidCredentials", err)
	}
}
