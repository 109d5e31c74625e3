package service

import (
	"context"

	"github.com/Sylvio143/G-stagiaire/internal/model"
	"github.com/Sylvio143/G-stagiaire/internal/repository"
)

// setLinkedCompteStatut propagates an entity status change to the accounts
// referencing it through (entityDocumentId, entityType). An entity without an
// account is not an error. The caller decides whether repo is transaction
// bound.
func setLinkedCompteStatut(ctx context.Context, repo *repository.Repository, entityDocumentID string, entityType model.TypeCompte, statut model.Statut) error {
	comptes, err := repo.Compte.ListByEntityAndType(ctx, entityDocumentID, entityType)
	if err != nil {
		return err
	}
	for i := range comptes {
		if comptes[i].Statut == statut {
			continue
		}
		comptes[i].Statut = statut
		if err := repo.Compte.Update(ctx, &comptes[i]); err != nil {
			return err
		}
	}
	return nil
}
