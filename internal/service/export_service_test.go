package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/Sylvio143/G-stagiaire/internal/model"
)

func TestExportStagiaires(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo()
	svc := NewExportService(repo, fixedClock{t: date(2026, time.March, 15)}, testLogger())

	st := &model.Stagiaire{
		Nom: "Rabe", Prenom: "Lova", Email: "x@example.com",
		Cin: "901", Ecole: "ENI", Statut: model.StatutActif,
	}
	if err := repo.Stagiaire.Create(ctx, st); err != nil {
		t.Fatalf("seed: %v", err)
	}

	buf, filename, err := svc.ExportStagiaires(ctx)
	if err != nil {
		t.Fatalf("ExportStagiaires: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("classeur vide")
	}
	if filename != "stagiaires_2026-03-15.xlsx" {
		t.Errorf("filename = %s", filename)
	}
}

func TestExportStages(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo()
	svc := NewExportService(repo, fixedClock{t: date(2026, time.March, 15)}, testLogger())

	stage := &model.Stage{
		Titre:       "Stage backend",
		DateDebut:   date(2026, time.June, 1),
		DateFin:     date(2026, time.August, 31),
		StatutStage: model.StageEnCours,
	}
	if err := repo.Stage.Create(ctx, stage); err != nil {
		t.Fatalf("seed: %v", err)
	}

	buf, filename, err := svc.ExportStages(ctx)
	if err != nil {
		t.Fatalf("ExportStages: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("classeur vide")
	}
	if !strings.HasPrefix(filename, "stages_") || !strings.HasSuffix(filename, ".xlsx") {
		t.Errorf("filename = %s", filename)
	}
}
