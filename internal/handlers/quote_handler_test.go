package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"quotes-api/internal/models"
	"quotes-api/internal/repositories"
	"quotes-api/internal/services"
	"quotes-api/pkg/lambda"
)

// mockQuoteService is a hand-written service double
type mockQuoteService struct {
	createQuote *models.Quote
	createErr   error
	getQuote    *models.Quote
	getErr      error
	listQuotes  []*models.Quote
	listErr     error
	updateQuote *models.Quote
	updateErr   error
	deleteOK    bool
	deleteErr   error
	gotID       int64
}

func (m *mockQuoteService) CreateQuote(ctx context.Context, req *services.CreateQuoteRequest) (*models.Quote, error) {
	return m.createQuote, m.createErr
}

func (m *mockQuoteService) GetQuote(ctx context.Context, id int64) (*models.Quote, error) {
	m.gotID = id
	return m.getQuote, m.getErr
}

func (m *mockQuoteService) ListQuotes(ctx context.Context) ([]*models.Quote, error) {
	return m.listQuotes, m.listErr
}

func (m *mockQuoteService) UpdateQuote(ctx context.Context, id int64, req *services.UpdateQuoteRequest) (*models.Quote, error) {
	m.gotID = id
	return m.updateQuote, m.updateErr
}

func (m *mockQuoteService) DeleteQuote(ctx context.Context, id int64) (bool, error) {
	m.gotID = id
	return m.deleteOK, m.deleteErr
}

func stringPtr(s string) *string {
	return &s
}

func lambdaRequest(method string, query map[string]string, body string) *lambda.Request {
	if query == nil {
		query = map[string]string{}
	}
	return &lambda.Request{
		Method:      method,
		Path:        "/",
		Headers:     map[string]string{},
		QueryParams: query,
		Body:        []byte(body),
	}
}

func TestQuoteHandler_Route_MethodNotAllowed(t *testing.T) {
	handler := NewQuoteHandler(&mockQuoteService{})

	for _, method := range []string{http.MethodPatch, http.MethodHead, "BREW"} {
		resp, err := handler.Route(context.Background(), lambdaRequest(method, nil, ""))
		if err != nil {
			t.Fatalf("Route(%s) failed: %v", method, err)
		}
		if resp.StatusCode != http.StatusMethodNotAllowed {
			t.Errorf("Route(%s) status = %d, want 405", method, resp.StatusCode)
		}
		if string(resp.Body) != "Method Not Allowed" {
			t.Errorf("Route(%s) body = %q, want Method Not Allowed", method, resp.Body)
		}
	}
}

func TestQuoteHandler_Route_GetDispatch(t *testing.T) {
	quote := &models.Quote{ID: 7, Quote: stringPtr("Engage")}
	svc := &mockQuoteService{
		getQuote:   quote,
		listQuotes: []*models.Quote{quote},
	}
	handler := NewQuoteHandler(svc)

	// No rowid routes to the listing
	resp, err := handler.Route(context.Background(), lambdaRequest(http.MethodGet, nil, ""))
	if err != nil {
		t.Fatalf("Route(GET) failed: %v", err)
	}
	var listed []*models.Quote
	if err := json.Unmarshal(resp.Body, &listed); err != nil {
		t.Fatalf("list body is not a JSON array: %v", err)
	}
	if len(listed) != 1 {
		t.Errorf("list returned %d quotes, want 1", len(listed))
	}

	// A rowid routes to the single-row lookup
	resp, err = handler.Route(context.Background(), lambdaRequest(http.MethodGet, map[string]string{"rowid": "7"}, ""))
	if err != nil {
		t.Fatalf("Route(GET rowid=7) failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("Route(GET rowid=7) status = %d, want 200", resp.StatusCode)
	}
	if svc.gotID != 7 {
		t.Errorf("service received id %d, want 7", svc.gotID)
	}
}

func TestQuoteHandler_HandleGet_IDAlias(t *testing.T) {
	svc := &mockQuoteService{getQuote: &models.Quote{ID: 3}}
	handler := NewQuoteHandler(svc)

	resp, err := handler.Route(context.Background(), lambdaRequest(http.MethodGet, map[string]string{"id": "3"}, ""))
	if err != nil {
		t.Fatalf("Route(GET id=3) failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
	if svc.gotID != 3 {
		t.Errorf("service received id %d, want 3", svc.gotID)
	}
}

func TestQuoteHandler_HandleGet_BadRowID(t *testing.T) {
	handler := NewQuoteHandler(&mockQuoteService{})

	resp, err := handler.Route(context.Background(), lambdaRequest(http.MethodGet, map[string]string{"rowid": "seven"}, ""))
	if err != nil {
		t.Fatalf("Route() failed: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
	if string(resp.Body) != "rowid must be an integer" {
		t.Errorf("body = %q, want rowid must be an integer", resp.Body)
	}
}

func TestQuoteHandler_HandleGet_NotFound(t *testing.T) {
	svc := &mockQuoteService{getErr: repositories.NotFoundError("quote", 99)}
	handler := NewQuoteHandler(svc)

	resp, err := handler.Route(context.Background(), lambdaRequest(http.MethodGet, map[string]string{"rowid": "99"}, ""))
	if err != nil {
		t.Fatalf("Route() failed: %v", err)
	}
	// Absent rows answer 200 with a null body
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
	if string(resp.Body) != "null" {
		t.Errorf("body = %q, want null", resp.Body)
	}
}

func TestQuoteHandler_HandleCreate(t *testing.T) {
	created := &models.Quote{ID: 1, Quote: stringPtr("Make it so"), Episode: nil}
	handler := NewQuoteHandler(&mockQuoteService{createQuote: created})

	resp, err := handler.Route(context.Background(), lambdaRequest(http.MethodPost, nil, `{"quote":"Make it so"}`))
	if err != nil {
		t.Fatalf("Route(POST) failed: %v", err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Errorf("status = %d, want 201", resp.StatusCode)
	}

	var got models.Quote
	if err := json.Unmarshal(resp.Body, &got); err != nil {
		t.Fatalf("response body is not JSON: %v", err)
	}
	if got.ID != 1 {
		t.Errorf("created id = %d, want 1", got.ID)
	}
	// Sparse fields come back as explicit nulls
	if !strings.Contains(string(resp.Body), `"episode":null`) {
		t.Errorf("body %q lacks explicit null for episode", resp.Body)
	}
}

func TestQuoteHandler_HandleCreate_MalformedJSON(t *testing.T) {
	handler := NewQuoteHandler(&mockQuoteService{})

	resp, err := handler.Route(context.Background(), lambdaRequest(http.MethodPost, nil, `{"quote": "unterminated`))
	if err != nil {
		t.Fatalf("Route(POST) failed: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestQuoteHandler_HandleCreate_StorageError(t *testing.T) {
	handler := NewQuoteHandler(&mockQuoteService{createErr: errors.New("connection refused")})

	resp, err := handler.Route(context.Background(), lambdaRequest(http.MethodPost, nil, `{}`))
	if err != nil {
		t.Fatalf("Route(POST) failed: %v", err)
	}
	if resp.StatusCode != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", resp.StatusCode)
	}
	// Storage detail stays in the logs, not the response
	if string(resp.Body) != "Internal Server Error" {
		t.Errorf("body = %q, want Internal Server Error", resp.Body)
	}
}

func TestQuoteHandler_HandleUpdate(t *testing.T) {
	updated := &models.Quote{ID: 5, Quote: stringPtr("Engage")}
	svc := &mockQuoteService{updateQuote: updated}
	handler := NewQuoteHandler(svc)

	resp, err := handler.Route(context.Background(),
		lambdaRequest(http.MethodPut, map[string]string{"rowid": "5"}, `{"quote":"Engage"}`))
	if err != nil {
		t.Fatalf("Route(PUT) failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
	if svc.gotID != 5 {
		t.Errorf("service received id %d, want 5", svc.gotID)
	}
}

func TestQuoteHandler_HandleUpdate_MissingRowID(t *testing.T) {
	handler := NewQuoteHandler(&mockQuoteService{})

	resp, err := handler.Route(context.Background(), lambdaRequest(http.MethodPut, nil, `{"quote":"Engage"}`))
	if err != nil {
		t.Fatalf("Route(PUT) failed: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
	if string(resp.Body) != "rowid is required" {
		t.Errorf("body = %q, want rowid is required", resp.Body)
	}
}

func TestQuoteHandler_HandleUpdate_NotFound(t *testing.T) {
	svc := &mockQuoteService{updateErr: repositories.NotFoundError("quote", 99)}
	handler := NewQuoteHandler(svc)

	resp, err := handler.Route(context.Background(),
		lambdaRequest(http.MethodPut, map[string]string{"rowid": "99"}, `{"quote":"Engage"}`))
	if err != nil {
		t.Fatalf("Route(PUT) failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
	if string(resp.Body) != "null" {
		t.Errorf("body = %q, want null", resp.Body)
	}
}

func TestQuoteHandler_HandleDelete(t *testing.T) {
	svc := &mockQuoteService{deleteOK: true}
	handler := NewQuoteHandler(svc)

	resp, err := handler.Route(context.Background(),
		lambdaRequest(http.MethodDelete, map[string]string{"rowid": "4"}, ""))
	if err != nil {
		t.Fatalf("Route(DELETE) failed: %v", err)
	}
	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("status = %d, want 204", resp.StatusCode)
	}
	if len(resp.Body) != 0 {
		t.Errorf("body = %q, want empty", resp.Body)
	}

	// Deleting an absent row answers 204 as well
	svc.deleteOK = false
	resp, err = handler.Route(context.Background(),
		lambdaRequest(http.MethodDelete, map[string]string{"rowid": "4"}, ""))
	if err != nil {
		t.Fatalf("Route(DELETE) failed: %v", err)
	}
	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("repeat delete status = %d, want 204", resp.StatusCode)
	}
}

func TestQuoteHandler_HandleDelete_MissingRowID(t *testing.T) {
	handler := NewQuoteHandler(&mockQuoteService{})

	resp, err := handler.Route(context.Background(), lambdaRequest(http.MethodDelete, nil, ""))
	if err != nil {
		t.Fatalf("Route(DELETE) failed: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
	if string(resp.Body) != "rowid is required" {
		t.Errorf("body = %q, want rowid is required", resp.Body)
	}
}

func TestQuoteHandler_ResponseHeadersEmpty(t *testing.T) {
	handler := NewQuoteHandler(&mockQuoteService{})

	resp, err := handler.Route(context.Background(), lambdaRequest(http.MethodGet, nil, ""))
	if err != nil {
		t.Fatalf("Route(GET) failed: %v", err)
	}
	if len(resp.Headers) != 0 {
		t.Errorf("response carries headers %v, want none", resp.Headers)
	}
}
