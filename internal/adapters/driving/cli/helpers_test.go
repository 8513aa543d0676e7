package cli

import (
	"context"
	"time"

	"github.com/custodia-labs/docshelf-cli/internal/core/domain"
)

// stubSessionService is a canned session service for command tests.
type stubSessionService struct {
	session     domain.Session
	currentErr  error
	loginErr    error
	registerErr error
	logoutErr   error
	updateMsg   string
	updateErr   error

	registered *domain.Registration
	loggedOut  bool
}

func (s *stubSessionService) Register(_ context.Context, reg domain.Registration) error {
	s.registered = &reg
	return s.registerErr
}

func (s *stubSessionService) Login(_ context.Context, _ domain.Credentials) (domain.Session, error) {
	return s.session, s.loginErr
}

func (s *stubSessionService) Logout(_ context.Context) error {
	s.loggedOut = true
	return s.logoutErr
}

func (s *stubSessionService) Current(_ context.Context) (domain.Session, error) {
	return s.session, s.currentErr
}

func (s *stubSessionService) UpdateName(_ context.Context, _ string) (string, error) {
	return s.updateMsg, s.updateErr
}

// stubWorkspaceService is a canned workspace service for command tests.
type stubWorkspaceService struct {
	workspaces []domain.Workspace
	listErr    error
	created    *domain.Workspace
	createErr  error
	renameErr  error
	deleteErr  error
}

func (s *stubWorkspaceService) List(_ context.Context) ([]domain.Workspace, error) {
	return s.workspaces, s.listErr
}

func (s *stubWorkspaceService) Workspaces() []domain.Workspace {
	return s.workspaces
}

func (s *stubWorkspaceService) Create(_ context.Context, _ string) (*domain.Workspace, error) {
	return s.created, s.createErr
}

func (s *stubWorkspaceService) Rename(_ context.Context, _, _ string) error {
	return s.renameErr
}

func (s *stubWorkspaceService) Delete(_ context.Context, _ string) error {
	return s.deleteErr
}

// stubDocumentService is a canned document service for command tests.
type stubDocumentService struct {
	loadDocs     []domain.Document
	loadErr      error
	offlineDocs  []domain.Document
	offlineErr   error
	searchDocs   []domain.Document
	searchErr    error
	uploadDoc    *domain.Document
	uploadErr    error
	renameErr    error
	deleteErr    error
	viewData     *domain.DocumentView
	viewErr      error
	previewData  string
	previewErr   error
	downloadPath string
	downloadErr  error

	loadCalls       int
	lastWorkspaceID string
	lastFilter      domain.TypeFilter
	lastSort        domain.SortOrder
	lastQuery       string
	lastDownloadDir string
	invalidatedID   string
}

func (s *stubDocumentService) Load(
	_ context.Context, workspaceID string, filter domain.TypeFilter, sort domain.SortOrder,
) ([]domain.Document, error) {
	s.loadCalls++
	s.lastWorkspaceID = workspaceID
	s.lastFilter = filter
	s.lastSort = sort
	return s.loadDocs, s.loadErr
}

func (s *stubDocumentService) LoadOffline(
	_ context.Context, workspaceID string, filter domain.TypeFilter, sort domain.SortOrder,
) ([]domain.Document, error) {
	s.lastWorkspaceID = workspaceID
	s.lastFilter = filter
	s.lastSort = sort
	return s.offlineDocs, s.offlineErr
}

func (s *stubDocumentService) InvalidateCache(_ context.Context, workspaceID string) error {
	s.invalidatedID = workspaceID
	return nil
}

func (s *stubDocumentService) ApplySearch(_ context.Context, query string) ([]domain.Document, error) {
	s.lastQuery = query
	return s.searchDocs, s.searchErr
}

func (s *stubDocumentService) Displayed() []domain.Document {
	return s.loadDocs
}

func (s *stubDocumentService) Cached() []domain.Document {
	return s.loadDocs
}

func (s *stubDocumentService) Upload(_ context.Context, _ string) (*domain.Document, error) {
	return s.uploadDoc, s.uploadErr
}

func (s *stubDocumentService) Rename(_ context.Context, _, _ string) error {
	return s.renameErr
}

func (s *stubDocumentService) SoftDelete(_ context.Context, _ string) error {
	return s.deleteErr
}

func (s *stubDocumentService) View(_ context.Context, _ string) (*domain.DocumentView, error) {
	return s.viewData, s.viewErr
}

func (s *stubDocumentService) Preview(_ context.Context, _ string) (string, error) {
	return s.previewData, s.previewErr
}

func (s *stubDocumentService) Download(_ context.Context, _, dir string) (string, error) {
	s.lastDownloadDir = dir
	return s.downloadPath, s.downloadErr
}

// stubRecycleBinService is a canned recycle bin service for command tests.
type stubRecycleBinService struct {
	docs       []domain.Document
	listErr    error
	restoreErr error
	purgeErr   error
}

func (s *stubRecycleBinService) List(_ context.Context) ([]domain.Document, error) {
	return s.docs, s.listErr
}

func (s *stubRecycleBinService) Restore(_ context.Context, _ string) ([]domain.Document, error) {
	if s.restoreErr != nil {
		return nil, s.restoreErr
	}
	return s.docs, nil
}

func (s *stubRecycleBinService) PermanentDelete(_ context.Context, _ string) ([]domain.Document, error) {
	if s.purgeErr != nil {
		return nil, s.purgeErr
	}
	return s.docs, nil
}

// stubConfigStore is an in-memory config store for command tests.
type stubConfigStore struct {
	values map[string]any
}

func (s *stubConfigStore) Get(key string) (any, bool) {
	v, ok := s.values[key]
	return v, ok
}

func (s *stubConfigStore) GetString(key string) string {
	if v, ok := s.values[key].(string); ok {
		return v
	}
	return ""
}

func (s *stubConfigStore) GetInt(key string) int {
	if v, ok := s.values[key].(int); ok {
		return v
	}
	return 0
}

func (s *stubConfigStore) GetBool(key string) bool {
	if v, ok := s.values[key].(bool); ok {
		return v
	}
	return false
}

func (s *stubConfigStore) Set(key string, value any) error {
	if s.values == nil {
		s.values = map[string]any{}
	}
	s.values[key] = value
	return nil
}

func testSession() domain.Session {
	return domain.Session{
		User: domain.User{
			ID:    7,
			Name:  "Sara Adel",
			Email: "sara@example.com",
			NID:   "29805211234567",
		},
		Token: "tok-abc",
	}
}

func testWorkspaces() []domain.Workspace {
	return []domain.Workspace{
		{ID: "ws-1", Name: "Invoices", UserNID: "29805211234567", CreatedAt: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)},
		{ID: "ws-2", Name: "Contracts", UserNID: "29805211234567"},
	}
}

func testDocuments() []domain.Document {
	return []domain.Document{
		{ID: "doc-1", WorkspaceID: "ws-1", Name: "report.pdf", Type: "application/pdf"},
		{ID: "doc-2", WorkspaceID: "ws-1", Name: "photo.png", Type: "image/png"},
	}
}

// setupTestServices installs canned services for every command and returns
// a cleanup that restores the previous wiring.
func setupTestServices() func() {
	oldSession := sessionService
	oldWorkspace := workspaceService
	oldDocument := documentService
	oldBin := recycleBinService
	oldConfig := configStore

	uploaded := domain.Document{ID: "doc-9", WorkspaceID: "ws-1", Name: "new.pdf", Type: "application/pdf"}
	created := domain.Workspace{ID: "ws-3", Name: "Receipts", UserNID: "29805211234567"}

	SetServices(&Services{
		Session: &stubSessionService{session: testSession(), updateMsg: "Name updated successfully"},
		Workspace: &stubWorkspaceService{
			workspaces: testWorkspaces(),
			created:    &created,
		},
		Document: &stubDocumentService{
			loadDocs:     testDocuments(),
			searchDocs:   testDocuments()[:1],
			uploadDoc:    &uploaded,
			viewData:     &domain.DocumentView{Name: "report.pdf", Type: "application/pdf", Data: "JVBERi0x"},
			previewData:  "iVBORw0KGgo",
			downloadPath: "/tmp/report.pdf",
		},
		RecycleBin: &stubRecycleBinService{docs: testDocuments()},
		Config:     &stubConfigStore{values: map[string]any{}},
	})

	return func() {
		sessionService = oldSession
		workspaceService = oldWorkspace
		documentService = oldDocument
		recycleBinService = oldBin
		configStore = oldConfig
	}
}
