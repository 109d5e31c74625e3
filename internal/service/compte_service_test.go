package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Sylvio143/G-stagiaire/internal/dto"
	"github.com/Sylvio143/G-stagiaire/internal/model"
)

func newCompteService() CompteService {
	return NewCompteService(newTestRepo(), testJWTManager(), testLogger())
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()
	svc := newCompteService()

	created, err := svc.Create(ctx, &dto.CreateCompteRequest{
		Email:      "admin@example.com",
		MotDePasse: "secret123",
		TypeCompte: "ADMIN",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	resp, err := svc.Authenticate(ctx, "admin@example.com", "secret123")
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if resp.AccessToken == "" || resp.RefreshToken == "" {
		t.Error("paire de tokens vide")
	}
	if resp.Compte == nil || resp.Compte.DocumentID != created.DocumentID {
		t.Error("compte renvoyé incorrect")
	}
}

// Unknown email, wrong password and inactive account all collapse into the
// same 401 so a caller cannot probe which emails are registered.
func TestAuthenticateRefusUniforme(t *testing.T) {
	ctx := context.Background()
	svc := newCompteService()

	created, err := svc.Create(ctx, &dto.CreateCompteRequest{
		Email:      "admin@example.com",
		MotDePasse: "secret123",
		TypeCompte: "ADMIN",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := svc.Authenticate(ctx, "inconnu@example.com", "secret123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("email inconnu: err = %v, attendu ErrInvalidCredentials", err)
	}
	if _, err := svc.Authenticate(ctx, "admin@example.com", "mauvais"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("mot de passe faux: err = %v, attendu ErrInvalidCredentials", err)
	}

	if _, err := svc.Desactiver(ctx, created.DocumentID); err != nil {
		t.Fatalf("Desactiver: %v", err)
	}
	if _, err := svc.Authenticate(ctx, "admin@example.com", "secret123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("compte inactif: err = %v, attendu ErrInvalidCredentials", err)
	}
}

func TestCompteCreateEmailDuplique(t *testing.T) {
	ctx := context.Background()
	svc := newCompteService()

	created, err := svc.Create(ctx, &dto.CreateCompteRequest{
		Email: "dup@example.com", MotDePasse: "secret123", TypeCompte: "ENCADREUR",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := svc.Create(ctx, &dto.CreateCompteRequest{
		Email: "dup@example.com", MotDePasse: "secret123", TypeCompte: "ENCADREUR",
	}); !errors.Is(err, ErrEmailExists) {
		t.Errorf("err = %v, attendu ErrEmailExists", err)
	}

	// uniqueness is scoped to active accounts
	if _, err := svc.Desactiver(ctx, created.DocumentID); err != nil {
		t.Fatalf("Desactiver: %v", err)
	}
	if _, err := svc.Create(ctx, &dto.CreateCompteRequest{
		Email: "dup@example.com", MotDePasse: "secret123", TypeCompte: "ENCADREUR",
	}); err != nil {
		t.Errorf("recréation après désactivation: err = %v", err)
	}
}

func TestCreateForEntityConflit(t *testing.T) {
	ctx := context.Background()
	svc := newCompteService()

	req := &dto.CreateCompteForEntityRequest{
		Email:            "enc@example.com",
		MotDePasse:       "secret123",
		TypeCompte:       "ENCADREUR",
		EntityDocumentID: "entity-1",
	}
	if _, err := svc.CreateForEntity(ctx, req); err != nil {
		t.Fatalf("CreateForEntity: %v", err)
	}

	req2 := &dto.CreateCompteForEntityRequest{
		Email:            "enc2@example.com",
		MotDePasse:       "secret123",
		TypeCompte:       "ENCADREUR",
		EntityDocumentID: "entity-1",
	}
	if _, err := svc.CreateForEntity(ctx, req2); !errors.Is(err, ErrEntityCompteExists) {
		t.Errorf("err = %v, attendu ErrEntityCompteExists", err)
	}
}

func TestUpdatePassword(t *testing.T) {
	ctx := context.Background()
	svc := newCompteService()

	created, err := svc.Create(ctx, &dto.CreateCompteRequest{
		Email: "pwd@example.com", MotDePasse: "ancien123", TypeCompte: "STAGIAIRE",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := svc.UpdatePassword(ctx, created.DocumentID, ""); !errors.Is(err, ErrPasswordRequired) {
		t.Errorf("mot de passe vide: err = %v, attendu ErrPasswordRequired", err)
	}

	if _, err := svc.UpdatePassword(ctx, created.DocumentID, "nouveau123"); err != nil {
		t.Fatalf("UpdatePassword: %v", err)
	}
	if _, err := svc.Authenticate(ctx, "pwd@example.com", "nouveau123"); err != nil {
		t.Errorf("authentification avec le nouveau mot de passe: %v", err)
	}
	if _, err := svc.Authenticate(ctx, "pwd@example.com", "ancien123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Error("l'ancien mot de passe est encore accepté")
	}
}

func TestRefresh(t *testing.T) {
	ctx := context.Background()
	svc := newCompteService()

	if _, err := svc.Create(ctx, &dto.CreateCompteRequest{
		Email: "r@example.com", MotDePasse: "secret123", TypeCompte: "ADMIN",
	}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	auth, err := svc.Authenticate(ctx, "r@example.com", "secret123")
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}

	renewed, err := svc.Refresh(ctx, auth.RefreshToken)
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if renewed.AccessToken == "" {
		t.Error("access token vide après refresh")
	}

	// an access token is not accepted as refresh token
	if _, err := svc.Refresh(ctx, auth.AccessToken); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("refresh avec access token: err = %v, attendu ErrInvalidCredentials", err)
	}
}

func TestExistsByEmailActifSeulement(t *testing.T) {
	ctx := context.Background()
	svc := newCompteService()

	created, err := svc.Create(ctx, &dto.CreateCompteRequest{
		Email: "e@example.com", MotDePasse: "secret123", TypeCompte: "ADMIN",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	exists, err := svc.ExistsByEmail(ctx, "e@example.com")
	if err != nil || !exists {
		t.Errorf("exists = %v, err = %v, attendu true", exists, err)
	}

	if _, err := svc.Desactiver(ctx, created.DocumentID); err != nil {
		t.Fatalf("Desactiver: %v", err)
	}
	exists, err = svc.ExistsByEmail(ctx, "e@example.com")
	if err != nil || exists {
		t.Errorf("exists = %v après désactivation, attendu false", exists)
	}
}

func TestUpdateRehashMotDePasse(t *testing.T) {
	ctx := context.Background()
	svc := newCompteService()

	created, err := svc.Create(ctx, &dto.CreateCompteRequest{
		Email: "u@example.com", MotDePasse: "secret123", TypeCompte: "ADMIN",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// nil password field leaves the stored hash untouched
	if _, err := svc.Update(ctx, created.DocumentID, &dto.UpdateCompteRequest{
		Email: strPtr("u2@example.com"),
	}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if _, err := svc.Authenticate(ctx, "u2@example.com", "secret123"); err != nil {
		t.Errorf("mot de passe perdu lors d'un patch partiel: %v", err)
	}

	if _, err := svc.Update(ctx, created.DocumentID, &dto.UpdateCompteRequest{
		MotDePasse: strPtr("change456"),
	}); err != nil {
		t.Fatalf("Update (mot de passe): %v", err)
	}
	if _, err := svc.Authenticate(ctx, "u2@example.com", "change456"); err != nil {
		t.Errorf("authentification après changement: %v", err)
	}

	compte, err := svc.GetByDocumentID(ctx, created.DocumentID)
	if err != nil {
		t.Fatalf("GetByDocumentID: %v", err)
	}
	if compte.Statut != string(model.StatutActif) {
		t.Errorf("statut = %s, attendu ACTIF", compte.Statut)
	}
}
