package api

import (
	"context"
	"net/http"
	"testing"

	"fithub/backend/internal/domain"
	"fithub/backend/internal/service"
)

// fakeGymService implements service.GymService with overridable functions
// per test.
type fakeGymService struct {
	CreateFunc func(ctx context.Context, gym *domain.Gym) (*domain.Gym, error)
	GetAllFunc func(ctx context.Context) ([]domain.Gym, error)
	UpdateFunc func(ctx context.Context, gymID string, patch *domain.GymPatch) error
	DeleteFunc func(ctx context.Context, gymID string) error
}

func (f *fakeGymService) Create(ctx context.Context, gym *domain.Gym) (*domain.Gym, error) {
	return f.CreateFunc(ctx, gym)
}

func (f *fakeGymService) GetAll(ctx context.Context) ([]domain.Gym, error) {
	return f.GetAllFunc(ctx)
}

func (f *fakeGymService) Update(ctx context.Context, gymID string, patch *domain.GymPatch) error {
	return f.UpdateFunc(ctx, gymID, patch)
}

func (f *fakeGymService) Delete(ctx context.Context, gymID string) error {
	return f.DeleteFunc(ctx, gymID)
}

func TestCreateGymHandler_Success(t *testing.T) {
	var created *domain.Gym
	svc := &fakeGymService{
		CreateFunc: func(ctx context.Context, gym *domain.Gym) (*domain.Gym, error) {
			created = gym
			gym.GymID = "gym-1"
			return gym, nil
		},
	}
	router := newTestRouter()
	router.POST("/api/v1/create/new/gym", NewGymHandler(svc).CreateGym)

	w := performRequest(router, http.MethodPost, "/api/v1/create/new/gym",
		`{"gym_name":"Iron Temple","city":"Berlin","facilities":["sauna","pool"]}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["status"] != true {
		t.Error("expected status true")
	}
	if body["message"] != "gym created successfully" {
		t.Errorf("unexpected message: %v", body["message"])
	}
	if body["gym_id"] != "gym-1" {
		t.Errorf("unexpected gym id: %v", body["gym_id"])
	}
	if created.City != "Berlin" || len(created.Facilities) != 2 {
		t.Errorf("unexpected gym passed to service: %+v", created)
	}
}

func TestCreateGymHandler_DuplicateName(t *testing.T) {
	svc := &fakeGymService{
		CreateFunc: func(ctx context.Context, gym *domain.Gym) (*domain.Gym, error) {
			return nil, service.ErrGymExists
		},
	}
	router := newTestRouter()
	router.POST("/api/v1/create/new/gym", NewGymHandler(svc).CreateGym)

	w := performRequest(router, http.MethodPost, "/api/v1/create/new/gym", `{"gym_name":"Iron Temple"}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["error"] != "Gym with this name already exists." {
		t.Errorf("unexpected error body: %v", body)
	}
}

func TestUpdateGymHandler_PartialBody(t *testing.T) {
	var captured *domain.GymPatch
	svc := &fakeGymService{
		UpdateFunc: func(ctx context.Context, gymID string, patch *domain.GymPatch) error {
			captured = patch
			return nil
		},
	}
	router := newTestRouter()
	router.PUT("/api/v1/update/gym/by/:gym_id", NewGymHandler(svc).UpdateGym)

	w := performRequest(router, http.MethodPut, "/api/v1/update/gym/by/gym-1", `{"city":"Hamburg"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["message"] != "gym updated successfully" {
		t.Errorf("unexpected message: %v", body["message"])
	}
	if !captured.City.Set || captured.City.Value != "Hamburg" {
		t.Errorf("expected city patch, got %+v", captured.City)
	}
	if captured.GymName.Set {
		t.Error("expected absent gym_name to stay unset")
	}
}

func TestUpdateGymHandler_NotFound(t *testing.T) {
	svc := &fakeGymService{
		UpdateFunc: func(ctx context.Context, gymID string, patch *domain.GymPatch) error {
			return service.ErrGymNotFound
		},
	}
	router := newTestRouter()
	router.PUT("/api/v1/update/gym/by/:gym_id", NewGymHandler(svc).UpdateGym)

	w := performRequest(router, http.MethodPut, "/api/v1/update/gym/by/missing", `{"city":"Hamburg"}`)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["error"] != "gym not found." {
		t.Errorf("unexpected error body: %v", body)
	}
}

func TestDeleteGymHandler_Success(t *testing.T) {
	svc := &fakeGymService{
		DeleteFunc: func(ctx context.Context, gymID string) error {
			return nil
		},
	}
	router := newTestRouter()
	router.DELETE("/api/v1/delete/gym/by/:gym_id", NewGymHandler(svc).DeleteGym)

	w := performRequest(router, http.MethodDelete, "/api/v1/delete/gym/by/gym-1", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["message"] != "gym deleted successfully" {
		t.Errorf("unexpected message: %v", body["message"])
	}
}

func TestGetGymsHandler_Envelope(t *testing.T) {
	svc := &fakeGymService{
		GetAllFunc: func(ctx context.Context) ([]domain.Gym, error) {
			return []domain.Gym{{GymID: "gym-1", GymName: "Iron Temple", Status: domain.StatusActive}}, nil
		},
	}
	router := newTestRouter()
	router.GET("/api/v1/get/all/gyms", NewGymHandler(svc).GetGyms)

	w := performRequest(router, http.MethodGet, "/api/v1/get/all/gyms", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := decodeBody(t, w)
	gyms, ok := body["gyms"].([]any)
	if !ok || len(gyms) != 1 {
		t.Fatalf("unexpected gyms payload: %v", body["gyms"])
	}
}
