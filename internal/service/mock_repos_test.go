package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Sylvio143/G-stagiaire/config"
	"github.com/Sylvio143/G-stagiaire/internal/model"
	"github.com/Sylvio143/G-stagiaire/internal/repository"
	"github.com/Sylvio143/G-stagiaire/pkg/jwt"
)

// ── Mock Repositories ──
//
// In-memory maps keyed by documentId. The aggregate is built without a
// gorm.DB, so BeginTx hands back a nil transaction and WithTx returns the
// mocks themselves; the cascade paths run against the same maps.

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

func testJWTManager() *jwt.Manager {
	return jwt.NewManager(&config.AuthConfig{
		JWTSecret:       "unit-test-secret-0123456789",
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 24 * time.Hour,
	})
}

func assignBase(b *model.Base, id *uint) {
	*id++
	b.ID = *id
	if b.DocumentID == "" {
		b.DocumentID = uuid.New().String()
	}
}

// ── Admin ──

type mockAdminRepo struct {
	admins map[string]*model.Admin
	nextID uint
}

func newMockAdminRepo() *mockAdminRepo {
	return &mockAdminRepo{admins: make(map[string]*model.Admin)}
}

func (m *mockAdminRepo) Create(_ context.Context, a *model.Admin) error {
	assignBase(&a.Base, &m.nextID)
	m.admins[a.DocumentID] = a
	return nil
}

func (m *mockAdminRepo) GetByDocumentID(_ context.Context, documentID string) (*model.Admin, error) {
	if a, ok := m.admins[documentID]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAdminRepo) GetByEmail(_ context.Context, email string) (*model.Admin, error) {
	for _, a := range m.admins {
		if a.Email == email {
			return a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAdminRepo) GetByCin(_ context.Context, cin string) (*model.Admin, error) {
	for _, a := range m.admins {
		if a.Cin == cin {
			return a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAdminRepo) List(_ context.Context) ([]model.Admin, error) {
	var out []model.Admin
	for _, a := range m.admins {
		out = append(out, *a)
	}
	return out, nil
}

func (m *mockAdminRepo) ListByStatut(_ context.Context, statut model.Statut) ([]model.Admin, error) {
	var out []model.Admin
	for _, a := range m.admins {
		if a.Statut == statut {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (m *mockAdminRepo) Update(_ context.Context, a *model.Admin) error {
	m.admins[a.DocumentID] = a
	return nil
}

func (m *mockAdminRepo) Delete(_ context.Context, id uint) error {
	for key, a := range m.admins {
		if a.ID == id {
			delete(m.admins, key)
		}
	}
	return nil
}

// ── Encadreur ──

type mockEncadreurRepo struct {
	encadreurs map[string]*model.Encadreur
	nextID     uint
}

func newMockEncadreurRepo() *mockEncadreurRepo {
	return &mockEncadreurRepo{encadreurs: make(map[string]*model.Encadreur)}
}

func (m *mockEncadreurRepo) Create(_ context.Context, e *model.Encadreur) error {
	assignBase(&e.Base, &m.nextID)
	m.encadreurs[e.DocumentID] = e
	return nil
}

func (m *mockEncadreurRepo) GetByDocumentID(_ context.Context, documentID string) (*model.Encadreur, error) {
	if e, ok := m.encadreurs[documentID]; ok {
		return e, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEncadreurRepo) GetByEmail(_ context.Context, email string) (*model.Encadreur, error) {
	for _, e := range m.encadreurs {
		if e.Email == email {
			return e, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEncadreurRepo) GetByCin(_ context.Context, cin string) (*model.Encadreur, error) {
	for _, e := range m.encadreurs {
		if e.Cin == cin {
			return e, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEncadreurRepo) List(_ context.Context) ([]model.Encadreur, error) {
	var out []model.Encadreur
	for _, e := range m.encadreurs {
		out = append(out, *e)
	}
	return out, nil
}

func (m *mockEncadreurRepo) ListByStatut(_ context.Context, statut model.Statut) ([]model.Encadreur, error) {
	var out []model.Encadreur
	for _, e := range m.encadreurs {
		if e.Statut == statut {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (m *mockEncadreurRepo) ListBySuperieur(_ context.Context, superieurDocumentID string) ([]model.Encadreur, error) {
	var out []model.Encadreur
	for _, e := range m.encadreurs {
		if e.SuperieurDocumentID != nil && *e.SuperieurDocumentID == superieurDocumentID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (m *mockEncadreurRepo) ListByDepartement(_ context.Context, departement string) ([]model.Encadreur, error) {
	var out []model.Encadreur
	for _, e := range m.encadreurs {
		if e.Departement == departement {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (m *mockEncadreurRepo) ListWithSuperieur(_ context.Context) ([]model.Encadreur, error) {
	var out []model.Encadreur
	for _, e := range m.encadreurs {
		if e.SuperieurDocumentID != nil {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (m *mockEncadreurRepo) Update(_ context.Context, e *model.Encadreur) error {
	m.encadreurs[e.DocumentID] = e
	return nil
}

func (m *mockEncadreurRepo) Delete(_ context.Context, id uint) error {
	for key, e := range m.encadreurs {
		if e.ID == id {
			delete(m.encadreurs, key)
		}
	}
	return nil
}

// ── Stagiaire ──

type mockStagiaireRepo struct {
	stagiaires map[string]*model.Stagiaire
	nextID     uint
}

func newMockStagiaireRepo() *mockStagiaireRepo {
	return &mockStagiaireRepo{stagiaires: make(map[string]*model.Stagiaire)}
}

func (m *mockStagiaireRepo) Create(_ context.Context, s *model.Stagiaire) error {
	assignBase(&s.Base, &m.nextID)
	m.stagiaires[s.DocumentID] = s
	return nil
}

func (m *mockStagiaireRepo) GetByDocumentID(_ context.Context, documentID string) (*model.Stagiaire, error) {
	if s, ok := m.stagiaires[documentID]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStagiaireRepo) GetWithStages(ctx context.Context, documentID string) (*model.Stagiaire, error) {
	return m.GetByDocumentID(ctx, documentID)
}

func (m *mockStagiaireRepo) GetByEmail(_ context.Context, email string) (*model.Stagiaire, error) {
	for _, s := range m.stagiaires {
		if s.Email == email {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStagiaireRepo) GetByCin(_ context.Context, cin string) (*model.Stagiaire, error) {
	for _, s := range m.stagiaires {
		if s.Cin == cin {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStagiaireRepo) List(_ context.Context) ([]model.Stagiaire, error) {
	var out []model.Stagiaire
	for _, s := range m.stagiaires {
		out = append(out, *s)
	}
	return out, nil
}

func (m *mockStagiaireRepo) ListByStatut(_ context.Context, statut model.Statut) ([]model.Stagiaire, error) {
	var out []model.Stagiaire
	for _, s := range m.stagiaires {
		if s.Statut == statut {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (m *mockStagiaireRepo) ListByEncadreur(_ context.Context, encadreurDocumentID string) ([]model.Stagiaire, error) {
	var out []model.Stagiaire
	for _, s := range m.stagiaires {
		if s.EncadreurDocumentID != nil && *s.EncadreurDocumentID == encadreurDocumentID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (m *mockStagiaireRepo) ListByEcole(_ context.Context, ecole string) ([]model.Stagiaire, error) {
	var out []model.Stagiaire
	for _, s := range m.stagiaires {
		if s.Ecole == ecole {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (m *mockStagiaireRepo) ListByFiliere(_ context.Context, filiere string) ([]model.Stagiaire, error) {
	var out []model.Stagiaire
	for _, s := range m.stagiaires {
		if s.Filiere == filiere {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (m *mockStagiaireRepo) ListWithEncadreur(_ context.Context) ([]model.Stagiaire, error) {
	var out []model.Stagiaire
	for _, s := range m.stagiaires {
		if s.EncadreurDocumentID != nil {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (m *mockStagiaireRepo) Update(_ context.Context, s *model.Stagiaire) error {
	m.stagiaires[s.DocumentID] = s
	return nil
}

func (m *mockStagiaireRepo) Delete(_ context.Context, id uint) error {
	for key, s := range m.stagiaires {
		if s.ID == id {
			delete(m.stagiaires, key)
		}
	}
	return nil
}

// ── Superieur ──

type mockSuperieurRepo struct {
	superieurs map[string]*model.SuperieurHierarchique
	nextID     uint
}

func newMockSuperieurRepo() *mockSuperieurRepo {
	return &mockSuperieurRepo{superieurs: make(map[string]*model.SuperieurHierarchique)}
}

func (m *mockSuperieurRepo) Create(_ context.Context, s *model.SuperieurHierarchique) error {
	assignBase(&s.Base, &m.nextID)
	m.superieurs[s.DocumentID] = s
	return nil
}

func (m *mockSuperieurRepo) GetByDocumentID(_ context.Context, documentID string) (*model.SuperieurHierarchique, error) {
	if s, ok := m.superieurs[documentID]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSuperieurRepo) GetByEmail(_ context.Context, email string) (*model.SuperieurHierarchique, error) {
	for _, s := range m.superieurs {
		if s.Email == email {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSuperieurRepo) GetByCin(_ context.Context, cin string) (*model.SuperieurHierarchique, error) {
	for _, s := range m.superieurs {
		if s.Cin == cin {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSuperieurRepo) List(_ context.Context) ([]model.SuperieurHierarchique, error) {
	var out []model.SuperieurHierarchique
	for _, s := range m.superieurs {
		out = append(out, *s)
	}
	return out, nil
}

func (m *mockSuperieurRepo) ListByStatut(_ context.Context, statut model.Statut) ([]model.SuperieurHierarchique, error) {
	var out []model.SuperieurHierarchique
	for _, s := range m.superieurs {
		if s.Statut == statut {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (m *mockSuperieurRepo) ListByDepartement(_ context.Context, departement string) ([]model.SuperieurHierarchique, error) {
	var out []model.SuperieurHierarchique
	for _, s := range m.superieurs {
		if s.Departement == departement {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (m *mockSuperieurRepo) ListWithPhoto(_ context.Context) ([]model.SuperieurHierarchique, error) {
	var out []model.SuperieurHierarchique
	for _, s := range m.superieurs {
		if s.PhotoDocumentID != nil {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (m *mockSuperieurRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.superieurs)), nil
}

func (m *mockSuperieurRepo) CountByDepartement(_ context.Context, departement string) (int64, error) {
	var n int64
	for _, s := range m.superieurs {
		if s.Departement == departement {
			n++
		}
	}
	return n, nil
}

func (m *mockSuperieurRepo) Update(_ context.Context, s *model.SuperieurHierarchique) error {
	m.superieurs[s.DocumentID] = s
	return nil
}

func (m *mockSuperieurRepo) Delete(_ context.Context, id uint) error {
	for key, s := range m.superieurs {
		if s.ID == id {
			delete(m.superieurs, key)
		}
	}
	return nil
}

// ── Stage ──

type mockStageRepo struct {
	stages map[string]*model.Stage
	nextID uint
}

func newMockStageRepo() *mockStageRepo {
	return &mockStageRepo{stages: make(map[string]*model.Stage)}
}

func (m *mockStageRepo) Create(_ context.Context, s *model.Stage) error {
	assignBase(&s.Base, &m.nextID)
	m.stages[s.DocumentID] = s
	return nil
}

func (m *mockStageRepo) GetByDocumentID(_ context.Context, documentID string) (*model.Stage, error) {
	if s, ok := m.stages[documentID]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStageRepo) List(_ context.Context) ([]model.Stage, error) {
	var out []model.Stage
	for _, s := range m.stages {
		out = append(out, *s)
	}
	return out, nil
}

func (m *mockStageRepo) ListByStatut(_ context.Context, statut model.StatutStage) ([]model.Stage, error) {
	var out []model.Stage
	for _, s := range m.stages {
		if s.StatutStage == statut {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (m *mockStageRepo) ListByEncadreur(_ context.Context, encadreurDocumentID string) ([]model.Stage, error) {
	var out []model.Stage
	for _, s := range m.stages {
		if s.EncadreurDocumentID != nil && *s.EncadreurDocumentID == encadreurDocumentID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (m *mockStageRepo) ListBySuperieur(_ context.Context, superieurDocumentID string) ([]model.Stage, error) {
	var out []model.Stage
	for _, s := range m.stages {
		if s.SuperieurDocumentID != nil && *s.SuperieurDocumentID == superieurDocumentID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (m *mockStageRepo) ListByStagiaire(_ context.Context, stagiaireDocumentID string) ([]model.Stage, error) {
	var out []model.Stage
	for _, s := range m.stages {
		for _, st := range s.Stagiaires {
			if st.DocumentID == stagiaireDocumentID {
				out = append(out, *s)
				break
			}
		}
	}
	return out, nil
}

func (m *mockStageRepo) ListWithRelations(ctx context.Context) ([]model.Stage, error) {
	return m.List(ctx)
}

// The join rows live in stage.Stagiaires; the caller maintains the slice.
func (m *mockStageRepo) AddStagiaire(_ context.Context, stage *model.Stage, _ *model.Stagiaire) error {
	m.stages[stage.DocumentID] = stage
	return nil
}

func (m *mockStageRepo) RemoveStagiaire(_ context.Context, stage *model.Stage, _ *model.Stagiaire) error {
	m.stages[stage.DocumentID] = stage
	return nil
}

func (m *mockStageRepo) Update(_ context.Context, s *model.Stage) error {
	m.stages[s.DocumentID] = s
	return nil
}

func (m *mockStageRepo) Delete(_ context.Context, id uint) error {
	for key, s := range m.stages {
		if s.ID == id {
			delete(m.stages, key)
		}
	}
	return nil
}

// ── Tache ──

type mockTacheRepo struct {
	taches map[string]*model.Tache
	nextID uint
}

func newMockTacheRepo() *mockTacheRepo {
	return &mockTacheRepo{taches: make(map[string]*model.Tache)}
}

func (m *mockTacheRepo) Create(_ context.Context, t *model.Tache) error {
	assignBase(&t.Base, &m.nextID)
	m.taches[t.DocumentID] = t
	return nil
}

func (m *mockTacheRepo) GetByDocumentID(_ context.Context, documentID string) (*model.Tache, error) {
	if t, ok := m.taches[documentID]; ok {
		return t, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTacheRepo) List(_ context.Context) ([]model.Tache, error) {
	var out []model.Tache
	for _, t := range m.taches {
		out = append(out, *t)
	}
	return out, nil
}

func (m *mockTacheRepo) ListByStage(_ context.Context, stageDocumentID string) ([]model.Tache, error) {
	var out []model.Tache
	for _, t := range m.taches {
		if t.StageDocumentID != nil && *t.StageDocumentID == stageDocumentID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (m *mockTacheRepo) ListByStatut(_ context.Context, statut model.StatutTache) ([]model.Tache, error) {
	var out []model.Tache
	for _, t := range m.taches {
		if t.Statut == statut {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (m *mockTacheRepo) ListByStageAndStatut(_ context.Context, stageDocumentID string, statut model.StatutTache) ([]model.Tache, error) {
	var out []model.Tache
	for _, t := range m.taches {
		if t.StageDocumentID != nil && *t.StageDocumentID == stageDocumentID && t.Statut == statut {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (m *mockTacheRepo) ListEnRetard(_ context.Context, now time.Time) ([]model.Tache, error) {
	var out []model.Tache
	for _, t := range m.taches {
		if t.DateFin != nil && t.DateFin.Before(now) && t.Statut != model.TacheTerminee {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (m *mockTacheRepo) Update(_ context.Context, t *model.Tache) error {
	m.taches[t.DocumentID] = t
	return nil
}

func (m *mockTacheRepo) Delete(_ context.Context, id uint) error {
	for key, t := range m.taches {
		if t.ID == id {
			delete(m.taches, key)
		}
	}
	return nil
}

// ── Compte ──

type mockCompteRepo struct {
	comptes map[string]*model.CompteUtilisateur
	nextID  uint
}

func newMockCompteRepo() *mockCompteRepo {
	return &mockCompteRepo{comptes: make(map[string]*model.CompteUtilisateur)}
}

func (m *mockCompteRepo) Create(_ context.Context, c *model.CompteUtilisateur) error {
	assignBase(&c.Base, &m.nextID)
	m.comptes[c.DocumentID] = c
	return nil
}

func (m *mockCompteRepo) GetByDocumentID(_ context.Context, documentID string) (*model.CompteUtilisateur, error) {
	if c, ok := m.comptes[documentID]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCompteRepo) GetByEmail(_ context.Context, email string) (*model.CompteUtilisateur, error) {
	for _, c := range m.comptes {
		if c.Email == email {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCompteRepo) List(_ context.Context) ([]model.CompteUtilisateur, error) {
	var out []model.CompteUtilisateur
	for _, c := range m.comptes {
		out = append(out, *c)
	}
	return out, nil
}

func (m *mockCompteRepo) ListByStatut(_ context.Context, statut model.Statut) ([]model.CompteUtilisateur, error) {
	var out []model.CompteUtilisateur
	for _, c := range m.comptes {
		if c.Statut == statut {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (m *mockCompteRepo) ListByType(_ context.Context, typeCompte model.TypeCompte) ([]model.CompteUtilisateur, error) {
	var out []model.CompteUtilisateur
	for _, c := range m.comptes {
		if c.TypeCompte == typeCompte {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (m *mockCompteRepo) ListByEntity(_ context.Context, entityDocumentID string) ([]model.CompteUtilisateur, error) {
	var out []model.CompteUtilisateur
	for _, c := range m.comptes {
		if c.EntityDocumentID == entityDocumentID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (m *mockCompteRepo) ListByEntityAndType(_ context.Context, entityDocumentID string, entityType model.TypeCompte) ([]model.CompteUtilisateur, error) {
	var out []model.CompteUtilisateur
	for _, c := range m.comptes {
		if c.EntityDocumentID == entityDocumentID && c.EntityType == entityType {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (m *mockCompteRepo) Update(_ context.Context, c *model.CompteUtilisateur) error {
	m.comptes[c.DocumentID] = c
	return nil
}

func (m *mockCompteRepo) Delete(_ context.Context, id uint) error {
	for key, c := range m.comptes {
		if c.ID == id {
			delete(m.comptes, key)
		}
	}
	return nil
}

// ── Notification ──

type mockNotificationRepo struct {
	notifications map[string]*model.Notification
	nextID        uint
}

func newMockNotificationRepo() *mockNotificationRepo {
	return &mockNotificationRepo{notifications: make(map[string]*model.Notification)}
}

func (m *mockNotificationRepo) Create(_ context.Context, n *model.Notification) error {
	assignBase(&n.Base, &m.nextID)
	m.notifications[n.DocumentID] = n
	return nil
}

func (m *mockNotificationRepo) GetByDocumentID(_ context.Context, documentID string) (*model.Notification, error) {
	if n, ok := m.notifications[documentID]; ok {
		return n, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockNotificationRepo) List(_ context.Context) ([]model.Notification, error) {
	var out []model.Notification
	for _, n := range m.notifications {
		out = append(out, *n)
	}
	return out, nil
}

func (m *mockNotificationRepo) ListByCompte(_ context.Context, compteDocumentID string) ([]model.Notification, error) {
	var out []model.Notification
	for _, n := range m.notifications {
		if n.CompteUtilisateurDocumentID == compteDocumentID {
			out = append(out, *n)
		}
	}
	return out, nil
}

func (m *mockNotificationRepo) ListByCompteNonLues(_ context.Context, compteDocumentID string) ([]model.Notification, error) {
	var out []model.Notification
	for _, n := range m.notifications {
		if n.CompteUtilisateurDocumentID == compteDocumentID && !n.Lue {
			out = append(out, *n)
		}
	}
	return out, nil
}

func (m *mockNotificationRepo) ListByType(_ context.Context, typeNotif model.TypeNotification) ([]model.Notification, error) {
	var out []model.Notification
	for _, n := range m.notifications {
		if n.Type == typeNotif {
			out = append(out, *n)
		}
	}
	return out, nil
}

func (m *mockNotificationRepo) ListByReference(_ context.Context, typeReference, documentIDReference string) ([]model.Notification, error) {
	var out []model.Notification
	for _, n := range m.notifications {
		if n.TypeReference == typeReference && n.DocumentIDReference == documentIDReference {
			out = append(out, *n)
		}
	}
	return out, nil
}

func (m *mockNotificationRepo) CountNonLues(_ context.Context, compteDocumentID string) (int64, error) {
	var count int64
	for _, n := range m.notifications {
		if n.CompteUtilisateurDocumentID == compteDocumentID && !n.Lue {
			count++
		}
	}
	return count, nil
}

func (m *mockNotificationRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.notifications)), nil
}

func (m *mockNotificationRepo) CountByType(_ context.Context, typeNotif model.TypeNotification) (int64, error) {
	var count int64
	for _, n := range m.notifications {
		if n.Type == typeNotif {
			count++
		}
	}
	return count, nil
}

func (m *mockNotificationRepo) MarquerToutesLues(_ context.Context, compteDocumentID string) error {
	for _, n := range m.notifications {
		if n.CompteUtilisateurDocumentID == compteDocumentID {
			n.Lue = true
		}
	}
	return nil
}

func (m *mockNotificationRepo) Update(_ context.Context, n *model.Notification) error {
	m.notifications[n.DocumentID] = n
	return nil
}

func (m *mockNotificationRepo) Delete(_ context.Context, id uint) error {
	for key, n := range m.notifications {
		if n.ID == id {
			delete(m.notifications, key)
		}
	}
	return nil
}

// ── Media ──

type mockMediaRepo struct {
	files  map[string]*model.MediaFile
	nextID uint
}

func newMockMediaRepo() *mockMediaRepo {
	return &mockMediaRepo{files: make(map[string]*model.MediaFile)}
}

func (m *mockMediaRepo) Create(_ context.Context, f *model.MediaFile) error {
	assignBase(&f.Base, &m.nextID)
	m.files[f.DocumentID] = f
	return nil
}

func (m *mockMediaRepo) GetByDocumentID(_ context.Context, documentID string) (*model.MediaFile, error) {
	if f, ok := m.files[documentID]; ok {
		return f, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockMediaRepo) GetByName(_ context.Context, name string) (*model.MediaFile, error) {
	for _, f := range m.files {
		if f.Name == name {
			return f, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockMediaRepo) GetByURL(_ context.Context, url string) (*model.MediaFile, error) {
	for _, f := range m.files {
		if f.URL == url {
			return f, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockMediaRepo) List(_ context.Context) ([]model.MediaFile, error) {
	var out []model.MediaFile
	for _, f := range m.files {
		out = append(out, *f)
	}
	return out, nil
}

func (m *mockMediaRepo) ListByMime(_ context.Context, mime string) ([]model.MediaFile, error) {
	var out []model.MediaFile
	for _, f := range m.files {
		if f.Mime == mime {
			out = append(out, *f)
		}
	}
	return out, nil
}

func (m *mockMediaRepo) ListByMimePrefix(_ context.Context, prefix string) ([]model.MediaFile, error) {
	var out []model.MediaFile
	for _, f := range m.files {
		if strings.HasPrefix(f.Mime, prefix) {
			out = append(out, *f)
		}
	}
	return out, nil
}

func (m *mockMediaRepo) CountByMime(_ context.Context, mime string) (int64, error) {
	var count int64
	for _, f := range m.files {
		if f.Mime == mime {
			count++
		}
	}
	return count, nil
}

func (m *mockMediaRepo) Update(_ context.Context, f *model.MediaFile) error {
	m.files[f.DocumentID] = f
	return nil
}

func (m *mockMediaRepo) Delete(_ context.Context, id uint) error {
	for key, f := range m.files {
		if f.ID == id {
			delete(m.files, key)
		}
	}
	return nil
}

// ── Fixture ──

func newTestRepo() *repository.Repository {
	return &repository.Repository{
		Admin:        newMockAdminRepo(),
		Encadreur:    newMockEncadreurRepo(),
		Stagiaire:    newMockStagiaireRepo(),
		Superieur:    newMockSuperieurRepo(),
		Stage:        newMockStageRepo(),
		Tache:        newMockTacheRepo(),
		Compte:       newMockCompteRepo(),
		Notification: newMockNotificationRepo(),
		Media:        newMockMediaRepo(),
	}
}

func testLogger() *zap.Logger { return zap.NewNop() }
