package service

import (
	"context"
	"testing"

	"github.com/Sylvio143/G-stagiaire/internal/model"
)

// Deactivating a supervisor flips its own account but never touches the
// tutors reporting to it.
func TestSuperieurDesactiverSansCascade(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo()
	svc := NewSuperieurService(repo, testLogger())

	sup := &model.SuperieurHierarchique{
		Nom: "Randria", Prenom: "Paul", Email: "sup@example.com",
		Cin: "701", Fonction: "Directeur", Statut: model.StatutActif,
	}
	if err := repo.Superieur.Create(ctx, sup); err != nil {
		t.Fatalf("seed superieur: %v", err)
	}
	compte := &model.CompteUtilisateur{
		Email:            sup.Email,
		MotDePasse:       "hash",
		TypeCompte:       model.CompteSuperieur,
		EntityDocumentID: sup.DocumentID,
		EntityType:       model.CompteSuperieur,
		Statut:           model.StatutActif,
	}
	if err := repo.Compte.Create(ctx, compte); err != nil {
		t.Fatalf("seed compte: %v", err)
	}
	enc := &model.Encadreur{
		Nom: "Rakoto", Prenom: "Jean", Email: "enc@example.com",
		Cin: "702", Statut: model.StatutActif,
		SuperieurDocumentID: &sup.DocumentID,
	}
	if err := repo.Encadreur.Create(ctx, enc); err != nil {
		t.Fatalf("seed encadreur: %v", err)
	}

	resp, err := svc.Desactiver(ctx, sup.DocumentID)
	if err != nil {
		t.Fatalf("Desactiver: %v", err)
	}
	if resp.Statut != string(model.StatutInactif) {
		t.Errorf("statut = %s, attendu INACTIF", resp.Statut)
	}

	reloadedCompte, _ := repo.Compte.GetByDocumentID(ctx, compte.DocumentID)
	if reloadedCompte.Statut != model.StatutInactif {
		t.Error("compte du superieur non désactivé")
	}

	reloadedEnc, _ := repo.Encadreur.GetByDocumentID(ctx, enc.DocumentID)
	if reloadedEnc.Statut != model.StatutActif {
		t.Errorf("encadreur désactivé par erreur, statut = %s", reloadedEnc.Statut)
	}
}

func TestSuperieurCounts(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo()
	svc := NewSuperieurService(repo, testLogger())

	for i, dep := range []string{"DSI", "DSI", "RH"} {
		sup := &model.SuperieurHierarchique{
			Nom: "Sup", Prenom: "N", Email: string(rune('a'+i)) + "@example.com",
			Cin: string(rune('0' + i)), Fonction: "Chef", Departement: dep,
			Statut: model.StatutActif,
		}
		if err := repo.Superieur.Create(ctx, sup); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	total, err := svc.Count(ctx)
	if err != nil || total != 3 {
		t.Errorf("Count = %d (err %v), attendu 3", total, err)
	}
	dsi, err := svc.CountByDepartement(ctx, "DSI")
	if err != nil || dsi != 2 {
		t.Errorf("CountByDepartement(DSI) = %d (err %v), attendu 2", dsi, err)
	}
}
