package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Sylvio143/G-stagiaire/internal/dto"
	"github.com/Sylvio143/G-stagiaire/internal/model"
)

func intPtr(i int) *int { return &i }

func timePtr(t time.Time) *time.Time { return &t }

func newTacheService(now time.Time) TacheService {
	return NewTacheService(newTestRepo(), fixedClock{t: now}, testLogger())
}

func TestTacheCreateDefauts(t *testing.T) {
	ctx := context.Background()
	svc := newTacheService(date(2026, time.March, 15))

	resp, err := svc.Create(ctx, &dto.CreateTacheRequest{Titre: "Relire le rapport"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if resp.Statut != "A_FAIRE" {
		t.Errorf("statut = %s, attendu A_FAIRE", resp.Statut)
	}
	if resp.Priorite != 3 || resp.PrioriteLabel != "BASSE" {
		t.Errorf("priorite = %d (%s), attendu 3 (BASSE)", resp.Priorite, resp.PrioriteLabel)
	}
	if resp.EnRetard {
		t.Error("tâche sans échéance marquée en retard")
	}
}

func TestTachePrioriteLabels(t *testing.T) {
	ctx := context.Background()
	svc := newTacheService(date(2026, time.March, 15))

	labels := map[int]string{1: "HAUTE", 2: "MOYENNE", 3: "BASSE"}
	for p, want := range labels {
		resp, err := svc.Create(ctx, &dto.CreateTacheRequest{
			Titre:    "Tâche",
			Priorite: intPtr(p),
		})
		if err != nil {
			t.Fatalf("Create(priorite=%d): %v", p, err)
		}
		if resp.PrioriteLabel != want {
			t.Errorf("priorite %d: label = %s, attendu %s", p, resp.PrioriteLabel, want)
		}
	}

	// legacy rows may hold priorities outside 1..3
	hors := &model.Tache{Priorite: 99}
	if got := hors.PrioriteLabel(); got != "NON_DEFINIE" {
		t.Errorf("priorite 99: label = %s, attendu NON_DEFINIE", got)
	}
	zero := &model.Tache{}
	if got := zero.PrioriteLabel(); got != "NON_DEFINIE" {
		t.Errorf("priorite 0: label = %s, attendu NON_DEFINIE", got)
	}
}

func TestTacheEnRetard(t *testing.T) {
	ctx := context.Background()
	now := date(2026, time.March, 15)
	svc := newTacheService(now)

	past := date(2026, time.March, 1)
	future := date(2026, time.April, 1)

	enRetard, err := svc.Create(ctx, &dto.CreateTacheRequest{
		Titre:   "Échéance dépassée",
		DateFin: timePtr(past),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !enRetard.EnRetard {
		t.Error("tâche à échéance passée non marquée en retard")
	}

	aTemps, err := svc.Create(ctx, &dto.CreateTacheRequest{
		Titre:   "Échéance future",
		DateFin: timePtr(future),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if aTemps.EnRetard {
		t.Error("tâche à échéance future marquée en retard")
	}

	// finishing the task clears the flag even past the deadline
	termine, err := svc.UpdateStatut(ctx, enRetard.DocumentID, "TERMINEE")
	if err != nil {
		t.Fatalf("UpdateStatut: %v", err)
	}
	if termine.EnRetard {
		t.Error("tâche TERMINEE encore marquée en retard")
	}

	retards, err := svc.ListEnRetard(ctx)
	if err != nil {
		t.Fatalf("ListEnRetard: %v", err)
	}
	if len(retards) != 0 {
		t.Errorf("%d tâche(s) en retard, attendu 0", len(retards))
	}
}

func TestTacheUpdateStatutInvalide(t *testing.T) {
	ctx := context.Background()
	svc := newTacheService(date(2026, time.March, 15))

	resp, err := svc.Create(ctx, &dto.CreateTacheRequest{Titre: "Tâche"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.UpdateStatut(ctx, resp.DocumentID, "FINI"); !errors.Is(err, ErrTacheInvalidStatut) {
		t.Errorf("err = %v, attendu ErrTacheInvalidStatut", err)
	}
	if _, err := svc.UpdatePriorite(ctx, resp.DocumentID, 7); !errors.Is(err, ErrTacheInvalidPriorite) {
		t.Errorf("err = %v, attendu ErrTacheInvalidPriorite", err)
	}
}
