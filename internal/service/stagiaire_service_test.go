package service

import (
	"context"
	"testing"
	"time"

	"github.com/Sylvio143/G-stagiaire/internal/dto"
	"github.com/Sylvio143/G-stagiaire/internal/model"
	"github.com/Sylvio143/G-stagiaire/internal/repository"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func seedStagiaireAvecStages(t *testing.T, repo *repository.Repository, stages []model.Stage) *model.Stagiaire {
	t.Helper()
	st := &model.Stagiaire{
		Nom:    "Rabe",
		Prenom: "Lova",
		Email:  "lova@example.com",
		Cin:    "501",
		Statut: model.StatutActif,
		Stages: stages,
	}
	if err := repo.Stagiaire.Create(context.Background(), st); err != nil {
		t.Fatalf("seed stagiaire: %v", err)
	}
	return st
}

func TestHasActiveStage(t *testing.T) {
	ctx := context.Background()
	now := date(2026, time.March, 15)

	cases := []struct {
		name  string
		stage model.Stage
		want  bool
	}{
		{
			name: "EN_COURS dans la fenêtre",
			stage: model.Stage{
				Titre:       "Stage backend",
				DateDebut:   date(2026, time.March, 1),
				DateFin:     date(2026, time.March, 31),
				StatutStage: model.StageEnCours,
			},
			want: true,
		},
		{
			name: "bornes incluses",
			stage: model.Stage{
				Titre:       "Stage d'un jour",
				DateDebut:   date(2026, time.March, 15),
				DateFin:     date(2026, time.March, 15),
				StatutStage: model.StageEnCours,
			},
			want: true,
		},
		{
			name: "fenêtre passée",
			stage: model.Stage{
				Titre:       "Stage terminé",
				DateDebut:   date(2026, time.January, 1),
				DateFin:     date(2026, time.February, 28),
				StatutStage: model.StageEnCours,
			},
			want: false,
		},
		{
			name: "statut VALIDE, pas encore démarré",
			stage: model.Stage{
				Titre:       "Stage validé",
				DateDebut:   date(2026, time.March, 1),
				DateFin:     date(2026, time.March, 31),
				StatutStage: model.StageValide,
			},
			want: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := newTestRepo()
			svc := NewStagiaireService(repo, fixedClock{t: now}, testLogger())

			tc.stage.DocumentID = "stage-" + tc.name
			st := seedStagiaireAvecStages(t, repo, []model.Stage{tc.stage})

			resp, err := svc.HasActiveStage(ctx, st.DocumentID)
			if err != nil {
				t.Fatalf("HasActiveStage: %v", err)
			}
			if resp.HasActiveStage != tc.want {
				t.Errorf("hasActiveStage = %v, attendu %v", resp.HasActiveStage, tc.want)
			}
			if tc.want && (resp.CurrentStage == nil || resp.CurrentStage.DocumentID != tc.stage.DocumentID) {
				t.Error("currentStage absent ou incorrect")
			}
			if !tc.want && resp.CurrentStage != nil {
				t.Error("currentStage renseigné sans stage actif")
			}
		})
	}
}

func TestHasActiveStageIntrouvable(t *testing.T) {
	svc := NewStagiaireService(newTestRepo(), fixedClock{t: date(2026, time.March, 15)}, testLogger())
	if _, err := svc.HasActiveStage(context.Background(), "inconnu"); err != ErrStagiaireNotFound {
		t.Errorf("err = %v, attendu ErrStagiaireNotFound", err)
	}
}

func TestStagiaireUpdatePatchPartiel(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo()
	svc := NewStagiaireService(repo, fixedClock{t: date(2026, time.March, 15)}, testLogger())

	created, err := svc.Create(ctx, &dto.CreateStagiaireRequest{
		Nom:       "Rabe",
		Prenom:    "Lova",
		Email:     "patch@example.com",
		Telephone: "0330000000",
		Cin:       "601",
		Ecole:     "ENI",
		Filiere:   "Informatique",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	resp, err := svc.Update(ctx, created.DocumentID, &dto.UpdateStagiaireRequest{
		Ecole: strPtr("ISPM"),
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	if resp.Ecole != "ISPM" {
		t.Errorf("ecole = %s, attendu ISPM", resp.Ecole)
	}
	// fields absent from the patch keep their value
	if resp.Filiere != "Informatique" || resp.Nom != "Rabe" || resp.Email != "patch@example.com" {
		t.Errorf("champs non patchés modifiés: %+v", resp)
	}
	if resp.Statut != string(model.StatutActif) {
		t.Errorf("statut = %s, attendu ACTIF", resp.Statut)
	}
}

func TestStagiaireDesactiverDesactiveSonCompte(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo()
	svc := NewStagiaireService(repo, fixedClock{t: date(2026, time.March, 15)}, testLogger())

	st := seedStagiaireAvecStages(t, repo, nil)
	compte := &model.CompteUtilisateur{
		Email:            st.Email,
		MotDePasse:       "hash",
		TypeCompte:       model.CompteStagiaire,
		EntityDocumentID: st.DocumentID,
		EntityType:       model.CompteStagiaire,
		Statut:           model.StatutActif,
	}
	if err := repo.Compte.Create(ctx, compte); err != nil {
		t.Fatalf("seed compte: %v", err)
	}

	if _, err := svc.Desactiver(ctx, st.DocumentID); err != nil {
		t.Fatalf("Desactiver: %v", err)
	}
	reloaded, _ := repo.Compte.GetByDocumentID(ctx, compte.DocumentID)
	if reloaded.Statut != model.StatutInactif {
		t.Errorf("compte statut = %s, attendu INACTIF", reloaded.Statut)
	}
}
