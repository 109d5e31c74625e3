package service

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/Sylvio143/G-stagiaire/internal/dto"
	"github.com/Sylvio143/G-stagiaire/internal/repository"
)

// ExportService builds spreadsheet exports of the registry.
type ExportService interface {
	ExportStagiaires(ctx context.Context) (*bytes.Buffer, string, error)
	ExportStages(ctx context.Context) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	clock  Clock
	logger *zap.Logger
}

// NewExportService creates the ExportService.
func NewExportService(repo *repository.Repository, clock Clock, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, clock: clock, logger: logger}
}

func (s *exportService) ExportStagiaires(ctx context.Context) (*bytes.Buffer, string, error) {
	stagiaires, err := s.repo.Stagiaire.List(ctx)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := "Stagiaires"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Document ID", "Nom", "Prénom", "Email", "Téléphone", "CIN",
		"École", "Filière", "Niveau d'étude", "Statut", "Encadreur"}
	writeRow(f, sheet, 1, headers)

	for i := range stagiaires {
		st := &stagiaires[i]
		encadreur := ""
		if st.EncadreurDocumentID != nil {
			encadreur = *st.EncadreurDocumentID
		}
		writeRow(f, sheet, i+2, []string{st.DocumentID, st.Nom, st.Prenom, st.Email,
			st.Telephone, st.Cin, st.Ecole, st.Filiere, st.NiveauEtude, string(st.Statut), encadreur})
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}

	s.logger.Info("export des stagiaires généré", zap.Int("rows", len(stagiaires)))
	filename := fmt.Sprintf("stagiaires_%s.xlsx", s.clock.Now().Format(dto.DateLayout))
	return buf, filename, nil
}

func (s *exportService) ExportStages(ctx context.Context) (*bytes.Buffer, string, error) {
	stages, err := s.repo.Stage.ListWithRelations(ctx)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := "Stages"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Document ID", "Titre", "Date début", "Date fin", "Statut",
		"Encadreur", "Supérieur", "Nb stagiaires"}
	writeRow(f, sheet, 1, headers)

	for i := range stages {
		stage := &stages[i]
		encadreur, superieur := "", ""
		if stage.EncadreurDocumentID != nil {
			encadreur = *stage.EncadreurDocumentID
		}
		if stage.SuperieurDocumentID != nil {
			superieur = *stage.SuperieurDocumentID
		}
		writeRow(f, sheet, i+2, []string{
			stage.DocumentID,
			stage.Titre,
			stage.DateDebut.Format(dto.DateLayout),
			stage.DateFin.Format(dto.DateLayout),
			string(stage.StatutStage),
			encadreur,
			superieur,
			fmt.Sprintf("%d", len(stage.Stagiaires)),
		})
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}

	s.logger.Info("export des stages généré", zap.Int("rows", len(stages)))
	filename := fmt.Sprintf("stages_%s.xlsx", s.clock.Now().Format(dto.DateLayout))
	return buf, filename, nil
}

func writeRow(f *excelize.File, sheet string, row int, values []string) {
	for col, v := range values {
		cell, _ := excelize.CoordinatesToCellName(col+1, row)
		f.SetCellValue(sheet, cell, v)
	}
}
