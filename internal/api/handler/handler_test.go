package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Sylvio143/G-stagiaire/internal/dto"
	"github.com/Sylvio143/G-stagiaire/internal/model"
	"github.com/Sylvio143/G-stagiaire/internal/service"
	"github.com/Sylvio143/G-stagiaire/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ── mock CompteService ──

type mockCompteService struct {
	compteResult *dto.CompteResponse
	comptesList  []dto.CompteResponse
	authResult   *dto.AuthenticateResponse
	exists       bool
	err          error
}

func (m *mockCompteService) Create(_ context.Context, _ *dto.CreateCompteRequest) (*dto.CompteResponse, error) {
	return m.compteResult, m.err
}
func (m *mockCompteService) CreateForEntity(_ context.Context, _ *dto.CreateCompteForEntityRequest) (*dto.CompteResponse, error) {
	return m.compteResult, m.err
}
func (m *mockCompteService) GetByDocumentID(_ context.Context, _ string) (*dto.CompteResponse, error) {
	return m.compteResult, m.err
}
func (m *mockCompteService) GetByEmail(_ context.Context, _ string) (*dto.CompteResponse, error) {
	return m.compteResult, m.err
}
func (m *mockCompteService) FindByEntity(_ context.Context, _ string, _ model.TypeCompte) (*dto.CompteResponse, error) {
	return m.compteResult, m.err
}
func (m *mockCompteService) ListActifs(_ context.Context) ([]dto.CompteResponse, error) {
	return m.comptesList, m.err
}
func (m *mockCompteService) ListAll(_ context.Context) ([]dto.CompteResponse, error) {
	return m.comptesList, m.err
}
func (m *mockCompteService) ListByStatut(_ context.Context, _ model.Statut) ([]dto.CompteResponse, error) {
	return m.comptesList, m.err
}
func (m *mockCompteService) ListByType(_ context.Context, _ model.TypeCompte) ([]dto.CompteResponse, error) {
	return m.comptesList, m.err
}
func (m *mockCompteService) ListByEntity(_ context.Context, _ string) ([]dto.CompteResponse, error) {
	return m.comptesList, m.err
}
func (m *mockCompteService) Update(_ context.Context, _ string, _ *dto.UpdateCompteRequest) (*dto.CompteResponse, error) {
	return m.compteResult, m.err
}
func (m *mockCompteService) UpdatePassword(_ context.Context, _, _ string) (*dto.CompteResponse, error) {
	return m.compteResult, m.err
}
func (m *mockCompteService) Authenticate(_ context.Context, _, _ string) (*dto.AuthenticateResponse, error) {
	return m.authResult, m.err
}
func (m *mockCompteService) Refresh(_ context.Context, _ string) (*dto.AuthenticateResponse, error) {
	return m.authResult, m.err
}
func (m *mockCompteService) ExistsByEmail(_ context.Context, _ string) (bool, error) {
	return m.exists, m.err
}
func (m *mockCompteService) Desactiver(_ context.Context, _ string) (*dto.CompteResponse, error) {
	return m.compteResult, m.err
}
func (m *mockCompteService) Activer(_ context.Context, _ string) (*dto.CompteResponse, error) {
	return m.compteResult, m.err
}
func (m *mockCompteService) Delete(_ context.Context, _ string) error {
	return m.err
}

// ── mock EncadreurService ──

type mockEncadreurService struct {
	encResult *dto.EncadreurResponse
	encList   []dto.EncadreurResponse
	exists    bool
	err       error
}

func (m *mockEncadreurService) Create(_ context.Context, _ *dto.CreateEncadreurRequest) (*dto.EncadreurResponse, error) {
	return m.encResult, m.err
}
func (m *mockEncadreurService) GetByDocumentID(_ context.Context, _ string) (*dto.EncadreurResponse, error) {
	return m.encResult, m.err
}
func (m *mockEncadreurService) GetByEmail(_ context.Context, _ string) (*dto.EncadreurResponse, error) {
	return m.encResult, m.err
}
func (m *mockEncadreurService) ExistsByEmail(_ context.Context, _ string) (bool, error) {
	return m.exists, m.err
}
func (m *mockEncadreurService) ExistsByCin(_ context.Context, _ string) (bool, error) {
	return m.exists, m.err
}
func (m *mockEncadreurService) ListActifs(_ context.Context) ([]dto.EncadreurResponse, error) {
	return m.encList, m.err
}
func (m *mockEncadreurService) ListAll(_ context.Context) ([]dto.EncadreurResponse, error) {
	return m.encList, m.err
}
func (m *mockEncadreurService) ListByStatut(_ context.Context, _ model.Statut) ([]dto.EncadreurResponse, error) {
	return m.encList, m.err
}
func (m *mockEncadreurService) ListBySuperieur(_ context.Context, _ string) ([]dto.EncadreurResponse, error) {
	return m.encList, m.err
}
func (m *mockEncadreurService) ListByDepartement(_ context.Context, _ string) ([]dto.EncadreurResponse, error) {
	return m.encList, m.err
}
func (m *mockEncadreurService) ListWithSuperieur(_ context.Context) ([]dto.EncadreurResponse, error) {
	return m.encList, m.err
}
func (m *mockEncadreurService) Update(_ context.Context, _ string, _ *dto.UpdateEncadreurRequest) (*dto.EncadreurResponse, error) {
	return m.encResult, m.err
}
func (m *mockEncadreurService) SetPhoto(_ context.Context, _, _ string) (*dto.EncadreurResponse, error) {
	return m.encResult, m.err
}
func (m *mockEncadreurService) Desactiver(_ context.Context, _ string) (*dto.EncadreurResponse, error) {
	return m.encResult, m.err
}
func (m *mockEncadreurService) Activer(_ context.Context, _ string) (*dto.EncadreurResponse, error) {
	return m.encResult, m.err
}
func (m *mockEncadreurService) Delete(_ context.Context, _ string) error {
	return m.err
}

// ── mock ExportService ──

type mockExportService struct {
	buf      *bytes.Buffer
	filename string
	err      error
}

func (m *mockExportService) ExportStagiaires(_ context.Context) (*bytes.Buffer, string, error) {
	return m.buf, m.filename, m.err
}
func (m *mockExportService) ExportStages(_ context.Context) (*bytes.Buffer, string, error) {
	return m.buf, m.filename, m.err
}

// ── helpers ──

func newRecorder() *httptest.ResponseRecorder {
	return httptest.NewRecorder()
}

func jsonBody(v interface{}) io.Reader {
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}

func parseResponse(w *httptest.ResponseRecorder) response.Response {
	var resp response.Response
	json.Unmarshal(w.Body.Bytes(), &resp)
	return resp
}

// ── CompteHandler ──

func TestCompteHandler_Authenticate_Success(t *testing.T) {
	mock := &mockCompteService{
		authResult: &dto.AuthenticateResponse{
			Compte:       &dto.CompteResponse{Email: "admin@entreprise.mg", TypeCompte: "ADMIN"},
			AccessToken:  "access-token",
			RefreshToken: "refresh-token",
		},
	}
	h := NewCompteHandler(mock, nil, nil)

	w := newRecorder()
	req := httptest.NewRequest("POST", "/comptes-utilisateurs/authenticate", jsonBody(dto.AuthenticateRequest{
		Email:      "admin@entreprise.mg",
		MotDePasse: "Secret123",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/comptes-utilisateurs/authenticate", h.Authenticate)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("statut attendu 200, obtenu %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 0 {
		t.Errorf("code attendu 0, obtenu %d", resp.Code)
	}
}

func TestCompteHandler_Authenticate_BadJSON(t *testing.T) {
	h := NewCompteHandler(&mockCompteService{}, nil, nil)

	w := newRecorder()
	req := httptest.NewRequest("POST", "/comptes-utilisateurs/authenticate", bytes.NewReader([]byte("pas du json")))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/comptes-utilisateurs/authenticate", h.Authenticate)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("statut attendu 400, obtenu %d", w.Code)
	}
}

func TestCompteHandler_Authenticate_InvalidCredentials(t *testing.T) {
	h := NewCompteHandler(&mockCompteService{err: service.ErrInvalidCredentials}, nil, nil)

	w := newRecorder()
	req := httptest.NewRequest("POST", "/comptes-utilisateurs/authenticate", jsonBody(dto.AuthenticateRequest{
		Email:      "admin@entreprise.mg",
		MotDePasse: "mauvais",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/comptes-utilisateurs/authenticate", h.Authenticate)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("statut attendu 401, obtenu %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 17005 {
		t.Errorf("code attendu 17005, obtenu %d", resp.Code)
	}
}

func TestCompteHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   int
	}{
		{"NotFound", service.ErrCompteNotFound, 404, 17001},
		{"EmailExists", service.ErrEmailExists, 409, 17002},
		{"EntityCompteExists", service.ErrEntityCompteExists, 409, 17003},
		{"PasswordRequired", service.ErrPasswordRequired, 400, 17004},
		{"InvalidCredentials", service.ErrInvalidCredentials, 401, 17005},
		{"Internal", errors.New("inconnu"), 500, 50000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewCompteHandler(&mockCompteService{err: tt.err}, nil, nil)

			w := newRecorder()
			req := httptest.NewRequest("GET", "/comptes-utilisateurs/abc", nil)

			r := gin.New()
			r.GET("/comptes-utilisateurs/:documentId", h.Get)
			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("statut attendu %d, obtenu %d", tt.wantStatus, w.Code)
			}
			resp := parseResponse(w)
			if resp.Code != tt.wantCode {
				t.Errorf("code attendu %d, obtenu %d", tt.wantCode, resp.Code)
			}
		})
	}
}

func TestCompteHandler_ListByType_Invalide(t *testing.T) {
	h := NewCompteHandler(&mockCompteService{}, nil, nil)

	w := newRecorder()
	req := httptest.NewRequest("GET", "/comptes-utilisateurs/type/ROBOT", nil)

	r := gin.New()
	r.GET("/comptes-utilisateurs/type/:typeCompte", h.ListByType)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("statut attendu 400, obtenu %d", w.Code)
	}
}

// ── EncadreurHandler ──

func TestEncadreurHandler_Create_Success(t *testing.T) {
	mock := &mockEncadreurService{
		encResult: &dto.EncadreurResponse{Nom: "Rakoto", Prenom: "Jean", Email: "jr@entreprise.mg"},
	}
	h := NewEncadreurHandler(mock)

	w := newRecorder()
	req := httptest.NewRequest("POST", "/encadreurs", jsonBody(dto.CreateEncadreurRequest{
		Nom:       "Rakoto",
		Prenom:    "Jean",
		Email:     "jr@entreprise.mg",
		Telephone: "0341234567",
		Cin:       "101234567890",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/encadreurs", h.Create)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Errorf("statut attendu 201, obtenu %d", w.Code)
	}
}

func TestEncadreurHandler_Create_EmailConflit(t *testing.T) {
	h := NewEncadreurHandler(&mockEncadreurService{err: service.ErrEncadreurEmailExists})

	w := newRecorder()
	req := httptest.NewRequest("POST", "/encadreurs", jsonBody(dto.CreateEncadreurRequest{
		Nom:       "Rakoto",
		Prenom:    "Jean",
		Email:     "jr@entreprise.mg",
		Telephone: "0341234567",
		Cin:       "101234567890",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/encadreurs", h.Create)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Errorf("statut attendu 409, obtenu %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 12002 {
		t.Errorf("code attendu 12002, obtenu %d", resp.Code)
	}
}

func TestEncadreurHandler_Desactiver(t *testing.T) {
	mock := &mockEncadreurService{
		encResult: &dto.EncadreurResponse{Nom: "Rakoto", Statut: "INACTIF"},
	}
	h := NewEncadreurHandler(mock)

	w := newRecorder()
	req := httptest.NewRequest("PUT", "/encadreurs/abc/desactiver", nil)

	r := gin.New()
	r.PUT("/encadreurs/:documentId/desactiver", h.Desactiver)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("statut attendu 200, obtenu %d", w.Code)
	}
}

func TestEncadreurHandler_Desactiver_Introuvable(t *testing.T) {
	h := NewEncadreurHandler(&mockEncadreurService{err: service.ErrEncadreurNotFound})

	w := newRecorder()
	req := httptest.NewRequest("PUT", "/encadreurs/inconnu/desactiver", nil)

	r := gin.New()
	r.PUT("/encadreurs/:documentId/desactiver", h.Desactiver)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("statut attendu 404, obtenu %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 12001 {
		t.Errorf("code attendu 12001, obtenu %d", resp.Code)
	}
}

// ── ExportHandler ──

func TestExportHandler_Stagiaires_Success(t *testing.T) {
	mock := &mockExportService{
		buf:      bytes.NewBufferString("contenu xlsx"),
		filename: "stagiaires_2026-03-15.xlsx",
	}
	h := NewExportHandler(mock)

	w := newRecorder()
	req := httptest.NewRequest("GET", "/export/stagiaires", nil)

	r := gin.New()
	r.GET("/export/stagiaires", h.ExportStagiaires)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("statut attendu 200, obtenu %d", w.Code)
	}
	ct := w.Header().Get("Content-Type")
	if ct != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
		t.Errorf("content type inattendu: %s", ct)
	}
	if w.Header().Get("Content-Disposition") == "" {
		t.Error("en-tête Content-Disposition attendu")
	}
}

func TestExportHandler_Stages_Erreur(t *testing.T) {
	h := NewExportHandler(&mockExportService{err: errors.New("export cassé")})

	w := newRecorder()
	req := httptest.NewRequest("GET", "/export/stages", nil)

	r := gin.New()
	r.GET("/export/stages", h.ExportStages)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("statut attendu 500, obtenu %d", w.Code)
	}
}
