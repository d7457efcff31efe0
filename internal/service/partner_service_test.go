package service

import (
	"errors"
	"testing"

	"github.com/yallaorder-next/internal/constants"
)

func apply(t *testing.T, env *testEnv, name, email string) uint {
	t.Helper()
	app, err := env.partners.Apply(ApplyInput{
		ManagerName:     "Manager",
		ManagerPhone:    "0100",
		RestaurantName:  name,
		RestaurantPhone: "0200",
		RestaurantEmail: email,
		Address:         "Somewhere",
		HasLicense:      true,
	})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	return app.ID
}

func TestApplyDefaultsAndDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	app, err := env.partners.Apply(ApplyInput{
		ManagerName:     "Omar",
		ManagerPhone:    "0100",
		RestaurantName:  "Koshary",
		RestaurantPhone: "0200",
		RestaurantEmail: "Koshary@Example.com",
		Address:         "Cairo",
	})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if app.Status != constants.ApplicationStatusPending {
		t.Fatalf("status = %q, want pending", app.Status)
	}
	if app.Hotline != constants.DefaultHotline {
		t.Fatalf("hotline = %q, want %q", app.Hotline, constants.DefaultHotline)
	}
	if app.RestaurantEmail != "koshary@example.com" {
		t.Fatalf("email not lowercased: %q", app.RestaurantEmail)
	}

	_, err = env.partners.Apply(ApplyInput{
		ManagerName:     "Other",
		ManagerPhone:    "0101",
		RestaurantName:  "Other Place",
		RestaurantPhone: "0201",
		RestaurantEmail: "koshary@example.com",
		Address:         "Giza",
	})
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("duplicate email err = %v, want ErrEmailTaken", err)
	}
}

func TestApproveIssuesCredentialAndLoginTrims(t *testing.T) {
	env := newTestEnv(t)
	id := apply(t, env, "Pizza Roma", "roma@example.com")

	app, err := env.partners.Review(id, constants.ApplicationStatusApproved)
	if err != nil {
		t.Fatalf("review: %v", err)
	}
	if app.Status != constants.ApplicationStatusApproved {
		t.Fatalf("status = %q, want approved", app.Status)
	}
	if len(app.TempPassword) != 8 {
		t.Fatalf("credential length = %d, want 8", len(app.TempPassword))
	}
	if app.ReviewedAt == nil {
		t.Fatal("reviewed_at not set")
	}

	// the applicant sees the credential when checking status
	status, err := env.partners.CheckStatus("roma@example.com")
	if err != nil {
		t.Fatalf("check status: %v", err)
	}
	if status.TempPassword != app.TempPassword {
		t.Fatal("check-status did not return the credential")
	}

	// whitespace around the credential is tolerated
	result, err := env.partners.Login("roma@example.com", "  "+app.TempPassword+" ")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if result.Token == "" {
		t.Fatal("login returned no token")
	}
	if result.Partner.ID != id {
		t.Fatalf("partner id = %d, want %d", result.Partner.ID, id)
	}

	if _, err := env.partners.Login("roma@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("bad credential err = %v, want ErrInvalidCredentials", err)
	}
}

func TestReviewValidatesStatus(t *testing.T) {
	env := newTestEnv(t)
	id := apply(t, env, "Koshary", "v@example.com")

	if _, err := env.partners.Review(id, "activated"); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("bogus status err = %v, want ErrInvalidStatus", err)
	}
	if _, err := env.partners.Review(9999, constants.ApplicationStatusApproved); !errors.Is(err, ErrApplicationNotFound) {
		t.Fatalf("unknown id err = %v, want ErrApplicationNotFound", err)
	}

	// input is case-insensitive
	app, err := env.partners.Review(id, "Rejected")
	if err != nil {
		t.Fatalf("reject: %v", err)
	}
	if app.Status != constants.ApplicationStatusRejected {
		t.Fatalf("status = %q, want rejected", app.Status)
	}
}

func TestReReviewRevokesAndRestoresCredential(t *testing.T) {
	env := newTestEnv(t)
	id := apply(t, env, "Koshary", "k@example.com")

	approved, err := env.partners.Review(id, constants.ApplicationStatusApproved)
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if approved.TempPassword == "" {
		t.Fatal("approval issued no credential")
	}
	if _, err := env.partners.Login("k@example.com", approved.TempPassword); err != nil {
		t.Fatalf("login while approved: %v", err)
	}

	// rejecting an approved application revokes its credential
	rejected, err := env.partners.Review(id, constants.ApplicationStatusRejected)
	if err != nil {
		t.Fatalf("reject: %v", err)
	}
	if rejected.TempPassword != "" {
		t.Fatal("rejected application kept a credential")
	}
	status, err := env.partners.CheckStatus("k@example.com")
	if err != nil {
		t.Fatalf("check status: %v", err)
	}
	if status.Status != constants.ApplicationStatusRejected {
		t.Fatalf("status = %q, want rejected", status.Status)
	}
	if status.TempPassword != "" {
		t.Fatal("rejected application exposed a credential")
	}
	if _, err := env.partners.Login("k@example.com", approved.TempPassword); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("login after rejection err = %v, want ErrInvalidCredentials", err)
	}

	// approving again issues a fresh credential
	reapproved, err := env.partners.Review(id, constants.ApplicationStatusApproved)
	if err != nil {
		t.Fatalf("re-approve: %v", err)
	}
	if reapproved.TempPassword == "" {
		t.Fatal("re-approval issued no credential")
	}
	if _, err := env.partners.Login("k@example.com", reapproved.TempPassword); err != nil {
		t.Fatalf("login after re-approval: %v", err)
	}
}

func TestChangePassword(t *testing.T) {
	env := newTestEnv(t)
	id := apply(t, env, "Roma", "r@example.com")
	app, err := env.partners.Review(id, constants.ApplicationStatusApproved)
	if err != nil {
		t.Fatalf("review: %v", err)
	}

	if err := env.partners.ChangePassword(id, "wrong", "newpass99"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong current err = %v, want ErrInvalidCredentials", err)
	}
	if err := env.partners.ChangePassword(id, app.TempPassword, "newpass99"); err != nil {
		t.Fatalf("change: %v", err)
	}
	if _, err := env.partners.Login("r@example.com", "newpass99"); err != nil {
		t.Fatalf("login with new credential: %v", err)
	}
}

func TestUpdateInfo(t *testing.T) {
	env := newTestEnv(t)
	id := apply(t, env, "Roma", "u@example.com")
	if _, err := env.partners.Review(id, constants.ApplicationStatusApproved); err != nil {
		t.Fatalf("review: %v", err)
	}

	name := "Roma Trattoria"
	hotline := "19002"
	profile, err := env.partners.UpdateInfo(id, UpdateInfoInput{
		RestaurantName: &name,
		Hotline:        &hotline,
	})
	if err != nil {
		t.Fatalf("update info: %v", err)
	}
	if profile.RestaurantName != "Roma Trattoria" || profile.Hotline != "19002" {
		t.Fatalf("profile not updated: %+v", profile)
	}

	if _, err := env.partners.UpdateInfo(id, UpdateInfoInput{}); !errors.Is(err, ErrMissingFields) {
		t.Fatalf("empty update err = %v, want ErrMissingFields", err)
	}
}

func TestStatistics(t *testing.T) {
	env := newTestEnv(t)
	a := apply(t, env, "A", "a@example.com")
	apply(t, env, "B", "b@example.com")
	c := apply(t, env, "C", "c@example.com")

	if _, err := env.partners.Review(a, constants.ApplicationStatusApproved); err != nil {
		t.Fatalf("approve: %v", err)
	}
	if _, err := env.partners.Review(c, constants.ApplicationStatusRejected); err != nil {
		t.Fatalf("reject: %v", err)
	}

	stats, err := env.partners.Statistics()
	if err != nil {
		t.Fatalf("statistics: %v", err)
	}
	if stats.Total != 3 || stats.Pending != 1 || stats.Approved != 1 || stats.Rejected != 1 {
		t.Fatalf("stats = %+v, want total 3 / pending 1 / approved 1 / rejected 1", stats)
	}
}

func TestListFilterValidation(t *testing.T) {
	env := newTestEnv(t)
	apply(t, env, "A", "f@example.com")

	if _, err := env.partners.List("bogus"); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("err = %v, want ErrInvalidStatus", err)
	}
	apps, err := env.partners.List("pending")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(apps) != 1 {
		t.Fatalf("apps = %d, want 1", len(apps))
	}
}
