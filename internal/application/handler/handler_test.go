package handler

import (
	"math/rand"
	"net/http"
	"testing"

	"github.com/google/uuid"

	appservice "ujjwala/internal/application/service"
	appstore "ujjwala/internal/application/store"
	"ujjwala/internal/officer"
	"ujjwala/internal/platform/logger"
	"ujjwala/internal/platform/metrics"
	registrystore "ujjwala/internal/registry/store"
	httptransport "ujjwala/internal/transport/http"
	"ujjwala/pkg/platform/httputil"
	"ujjwala/pkg/testutil"
)

var testMetrics = metrics.New()

func newPortalRouter(t *testing.T) http.Handler {
	t.Helper()

	registry := registrystore.NewInMemory()
	registrystore.Seed(registry)
	directory := officer.NewDirectory(officer.DefaultOfficers(),
		officer.WithRand(rand.New(rand.NewSource(11))))

	applications := appservice.New(appstore.NewInMemory(), registry, directory)
	return httptransport.NewRouter(New(applications, logger.New(), testMetrics))
}

func submit(t *testing.T, router http.Handler, identityNumber string) httputil.Envelope {
	t.Helper()

	req := testutil.NewJSONRequest(t, http.MethodPost, "/applications",
		map[string]string{"identity_number": identityNumber})
	rr := testutil.DoRequest(router, req)

	var env httputil.Envelope
	testutil.DecodeJSON(t, rr, &env)
	return env
}

func TestSubmitLifecycleViaHandlers(t *testing.T) {
	router := newPortalRouter(t)

	req := testutil.NewJSONRequest(t, http.MethodPost, "/applications",
		map[string]string{"identity_number": "2345-6789-0123"})
	rr := testutil.DoRequest(router, req)
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201 submitting application, got %d", rr.Code)
	}

	var env httputil.Envelope
	testutil.DecodeJSON(t, rr, &env)
	if !env.Success || env.ApplicationID == "" {
		t.Fatalf("expected success envelope with application_id, got %+v", env)
	}
	if _, err := uuid.Parse(env.ApplicationID); err != nil {
		t.Fatalf("application_id is not a UUID: %v", err)
	}

	statusReq := testutil.NewRequest(t, http.MethodGet, "/applications/identity/2345-6789-0123")
	statusRR := testutil.DoRequest(router, statusReq)
	if statusRR.Code != http.StatusOK {
		t.Fatalf("expected 200 fetching status, got %d", statusRR.Code)
	}

	var app struct {
		ID     string `json:"id"`
		Status string `json:"status"`
		Income int    `json:"income"`
	}
	testutil.DecodeJSON(t, statusRR, &app)
	if app.ID != env.ApplicationID || app.Status != "pending" || app.Income != 25000 {
		t.Fatalf("unexpected application payload: %+v", app)
	}
}

func TestSubmitValidation(t *testing.T) {
	router := newPortalRouter(t)

	t.Run("unknown identity number", func(t *testing.T) {
		req := testutil.NewJSONRequest(t, http.MethodPost, "/applications",
			map[string]string{"identity_number": "0000-0000-0000"})
		rr := testutil.DoRequest(router, req)
		if rr.Code != http.StatusNotFound {
			t.Fatalf("expected 404 for unknown identity, got %d", rr.Code)
		}
		var env httputil.Envelope
		testutil.DecodeJSON(t, rr, &env)
		if env.Success || env.Message == "" {
			t.Fatalf("expected failure envelope with message, got %+v", env)
		}
	})

	t.Run("duplicate application", func(t *testing.T) {
		if env := submit(t, router, "6789-0123-4567"); !env.Success {
			t.Fatalf("first submit should succeed: %+v", env)
		}

		req := testutil.NewJSONRequest(t, http.MethodPost, "/applications",
			map[string]string{"identity_number": "6789-0123-4567"})
		rr := testutil.DoRequest(router, req)
		if rr.Code != http.StatusConflict {
			t.Fatalf("expected 409 for duplicate, got %d", rr.Code)
		}
	})

	t.Run("missing identity number", func(t *testing.T) {
		req := testutil.NewJSONRequest(t, http.MethodPost, "/applications", map[string]string{})
		rr := testutil.DoRequest(router, req)
		if rr.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for empty body, got %d", rr.Code)
		}
	})
}

func TestApproveViaHandlers(t *testing.T) {
	router := newPortalRouter(t)

	env := submit(t, router, "2345-6789-0123")
	approveRR := testutil.DoRequest(router, testutil.NewJSONRequest(t,
		http.MethodPost, "/admin/applications/"+env.ApplicationID+"/approve", nil))
	if approveRR.Code != http.StatusOK {
		t.Fatalf("expected 200 approving, got %d", approveRR.Code)
	}

	listRR := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/admin/applications"))
	if listRR.Code != http.StatusOK {
		t.Fatalf("expected 200 listing, got %d", listRR.Code)
	}
	var apps []struct {
		Status            string `json:"status"`
		SubsidyPercentage *int   `json:"subsidy_percentage"`
		SubsidyAmount     *int   `json:"subsidy_amount"`
		AssignedOfficer   *struct {
			Name string `json:"name"`
		} `json:"assigned_officer"`
	}
	testutil.DecodeJSON(t, listRR, &apps)
	if len(apps) != 1 {
		t.Fatalf("expected one application, got %d", len(apps))
	}
	if apps[0].Status != "approved" {
		t.Fatalf("expected approved status, got %q", apps[0].Status)
	}
	if apps[0].SubsidyPercentage == nil || *apps[0].SubsidyPercentage != 40 {
		t.Fatalf("expected subsidy percentage 40, got %v", apps[0].SubsidyPercentage)
	}
	if apps[0].SubsidyAmount == nil || *apps[0].SubsidyAmount != 1200 {
		t.Fatalf("expected subsidy amount 1200, got %v", apps[0].SubsidyAmount)
	}
	if apps[0].AssignedOfficer == nil || apps[0].AssignedOfficer.Name == "" {
		t.Fatalf("expected assigned officer on approval")
	}

	t.Run("second approval is rejected", func(t *testing.T) {
		rr := testutil.DoRequest(router, testutil.NewJSONRequest(t,
			http.MethodPost, "/admin/applications/"+env.ApplicationID+"/approve", nil))
		if rr.Code != http.StatusConflict {
			t.Fatalf("expected 409 re-approving, got %d", rr.Code)
		}
	})
}

func TestApproveFailures(t *testing.T) {
	router := newPortalRouter(t)

	t.Run("ineligible income stays pending", func(t *testing.T) {
		env := submit(t, router, "5678-9012-3456") // income 120,000

		rr := testutil.DoRequest(router, testutil.NewJSONRequest(t,
			http.MethodPost, "/admin/applications/"+env.ApplicationID+"/approve", nil))
		if rr.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422 for ineligible income, got %d", rr.Code)
		}

		statusRR := testutil.DoRequest(router,
			testutil.NewRequest(t, http.MethodGet, "/applications/identity/5678-9012-3456"))
		var app struct {
			Status string `json:"status"`
		}
		testutil.DecodeJSON(t, statusRR, &app)
		if app.Status != "pending" {
			t.Fatalf("expected application to remain pending, got %q", app.Status)
		}
	})

	t.Run("unknown application id", func(t *testing.T) {
		rr := testutil.DoRequest(router, testutil.NewJSONRequest(t,
			http.MethodPost, "/admin/applications/"+uuid.NewString()+"/approve", nil))
		if rr.Code != http.StatusNotFound {
			t.Fatalf("expected 404 for unknown id, got %d", rr.Code)
		}
	})

	t.Run("malformed application id", func(t *testing.T) {
		rr := testutil.DoRequest(router, testutil.NewJSONRequest(t,
			http.MethodPost, "/admin/applications/not-a-uuid/approve", nil))
		if rr.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for malformed id, got %d", rr.Code)
		}
	})
}

func TestRejectViaHandlers(t *testing.T) {
	router := newPortalRouter(t)
	env := submit(t, router, "3456-7890-1234")

	t.Run("empty reason fails", func(t *testing.T) {
		rr := testutil.DoRequest(router, testutil.NewJSONRequest(t,
			http.MethodPost, "/admin/applications/"+env.ApplicationID+"/reject",
			map[string]string{"reason": ""}))
		if rr.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422 for empty reason, got %d", rr.Code)
		}
	})

	t.Run("rejection records the reason", func(t *testing.T) {
		rr := testutil.DoRequest(router, testutil.NewJSONRequest(t,
			http.MethodPost, "/admin/applications/"+env.ApplicationID+"/reject",
			map[string]string{"reason": "Address could not be verified"}))
		if rr.Code != http.StatusOK {
			t.Fatalf("expected 200 rejecting, got %d", rr.Code)
		}

		statusRR := testutil.DoRequest(router,
			testutil.NewRequest(t, http.MethodGet, "/applications/identity/3456-7890-1234"))
		var app struct {
			Status          string `json:"status"`
			RejectionReason string `json:"rejection_reason"`
		}
		testutil.DecodeJSON(t, statusRR, &app)
		if app.Status != "rejected" || app.RejectionReason != "Address could not be verified" {
			t.Fatalf("unexpected rejected payload: %+v", app)
		}
	})
}

func TestStatusNotFound(t *testing.T) {
	router := newPortalRouter(t)

	rr := testutil.DoRequest(router,
		testutil.NewRequest(t, http.MethodGet, "/applications/identity/1234-5678-9012"))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 when no application exists, got %d", rr.Code)
	}
}
