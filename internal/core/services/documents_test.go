package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docshelf-cli/internal/core/domain"
)

// mockDocumentAPI is a test double for the remote document service.
type mockDocumentAPI struct {
	listDocs      []domain.Document
	listErr       error
	listCalls     int
	searchDocs    []domain.Document
	searchErr     error
	searchCalls   int
	lastQuery     string
	uploadDoc     *domain.Document
	uploadErr     error
	renameErr     error
	renameCalls   int
	softDeleteErr error
	previewData   string
	previewErr    error
	viewData      *domain.DocumentView
	viewErr       error
	downloadPath  string
	downloadErr   error
}

func (m *mockDocumentAPI) List(
	_ context.Context, _ string, _ domain.TypeFilter, _ domain.SortOrder,
) ([]domain.Document, error) {
	m.listCalls++
	return m.listDocs, m.listErr
}

func (m *mockDocumentAPI) Search(_ context.Context, _ string, query string) ([]domain.Document, error) {
	m.searchCalls++
	m.lastQuery = query
	return m.searchDocs, m.searchErr
}

func (m *mockDocumentAPI) Upload(_ context.Context, _ string, _ string) (*domain.Document, error) {
	return m.uploadDoc, m.uploadErr
}

func (m *mockDocumentAPI) Rename(_ context.Context, _, _ string) error {
	m.renameCalls++
	return m.renameErr
}

func (m *mockDocumentAPI) SoftDelete(_ context.Context, _ string) error {
	return m.softDeleteErr
}

func (m *mockDocumentAPI) Preview(_ context.Context, _ string) (string, error) {
	return m.previewData, m.previewErr
}

func (m *mockDocumentAPI) View(_ context.Context, _ string) (*domain.DocumentView, error) {
	return m.viewData, m.viewErr
}

func (m *mockDocumentAPI) Download(_ context.Context, _, _ string) (string, error) {
	return m.downloadPath, m.downloadErr
}

// mockListCache is a test double for the persisted listing cache.
type mockListCache struct {
	putCalls      int
	putDocs       []domain.Document
	getDocs       []domain.Document
	getErr        error
	invalidatedID string
	invalidateErr error
}

func (m *mockListCache) Put(
	_ context.Context, _ string, _ domain.TypeFilter, _ domain.SortOrder, docs []domain.Document,
) error {
	m.putCalls++
	m.putDocs = docs
	return nil
}

func (m *mockListCache) Get(
	_ context.Context, _ string, _ domain.TypeFilter, _ domain.SortOrder,
) ([]domain.Document, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.getDocs, nil
}

func (m *mockListCache) Invalidate(_ context.Context, workspaceID string) error {
	if m.invalidateErr != nil {
		return m.invalidateErr
	}
	m.invalidatedID = workspaceID
	return nil
}

func testDocs() []domain.Document {
	return []domain.Document{
		{ID: "doc-1", WorkspaceID: "ws-1", Name: "report.pdf", Type: "application/pdf"},
		{ID: "doc-2", WorkspaceID: "ws-1", Name: "photo.png", Type: "image/png"},
		{ID: "doc-3", WorkspaceID: "ws-1", Name: "notes.docx", Type: "application/vnd.openxmlformats-officedocument.wordprocessingml.document"},
	}
}

func TestDocumentService_Load_ReplacesBothContainers(t *testing.T) {
	api := &mockDocumentAPI{listDocs: testDocs()}
	svc := NewDocumentService(api, nil)

	docs, err := svc.Load(context.Background(), "ws-1", domain.FilterAll, domain.SortNone)

	require.NoError(t, err)
	assert.Len(t, docs, 3)
	assert.Equal(t, testDocs(), svc.Cached())
	assert.Equal(t, testDocs(), svc.Displayed())
}

func TestDocumentService_Load_EmptyWorkspaceID(t *testing.T) {
	api := &mockDocumentAPI{}
	svc := NewDocumentService(api, nil)

	_, err := svc.Load(context.Background(), "", domain.FilterAll, domain.SortNone)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoWorkspace)
	assert.Zero(t, api.listCalls)
}

func TestDocumentService_Load_ErrorKeepsPriorState(t *testing.T) {
	api := &mockDocumentAPI{listDocs: testDocs()}
	svc := NewDocumentService(api, nil)

	_, err := svc.Load(context.Background(), "ws-1", domain.FilterAll, domain.SortNone)
	require.NoError(t, err)

	api.listErr = errors.New("server unavailable")
	_, err = svc.Load(context.Background(), "ws-1", domain.FilterAll, domain.SortNone)

	require.Error(t, err)
	assert.Len(t, svc.Displayed(), 3, "failed load must not clear the prior listing")
}

func TestDocumentService_Load_WritesListCache(t *testing.T) {
	api := &mockDocumentAPI{listDocs: testDocs()}
	cache := &mockListCache{}
	svc := NewDocumentService(api, cache)

	_, err := svc.Load(context.Background(), "ws-1", domain.FilterPDF, domain.SortRecent)

	require.NoError(t, err)
	assert.Equal(t, 1, cache.putCalls)
	assert.Equal(t, testDocs(), cache.putDocs)
}

func TestDocumentService_LoadOffline_ReturnsCachedListing(t *testing.T) {
	cache := &mockListCache{getDocs: testDocs()}
	svc := NewDocumentService(&mockDocumentAPI{}, cache)

	docs, err := svc.LoadOffline(context.Background(), "ws-1", domain.FilterAll, domain.SortNone)

	require.NoError(t, err)
	assert.Len(t, docs, 3)
}

func TestDocumentService_LoadOffline_NoCache(t *testing.T) {
	svc := NewDocumentService(&mockDocumentAPI{}, nil)

	_, err := svc.LoadOffline(context.Background(), "ws-1", domain.FilterAll, domain.SortNone)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDocumentService_InvalidateCache_DropsWorkspaceListings(t *testing.T) {
	cache := &mockListCache{}
	svc := NewDocumentService(&mockDocumentAPI{}, cache)

	err := svc.InvalidateCache(context.Background(), "ws-1")

	require.NoError(t, err)
	assert.Equal(t, "ws-1", cache.invalidatedID)
}

func TestDocumentService_InvalidateCache_NoCache(t *testing.T) {
	svc := NewDocumentService(&mockDocumentAPI{}, nil)

	assert.NoError(t, svc.InvalidateCache(context.Background(), "ws-1"))
}

func TestDocumentService_InvalidateCache_Error(t *testing.T) {
	cache := &mockListCache{invalidateErr: errors.New("disk full")}
	svc := NewDocumentService(&mockDocumentAPI{}, cache)

	err := svc.InvalidateCache(context.Background(), "ws-1")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalidate list cache")
}

func TestDocumentService_ApplySearch_ReplacesDisplayedOnly(t *testing.T) {
	api := &mockDocumentAPI{
		listDocs:   testDocs(),
		searchDocs: testDocs()[:1],
	}
	svc := NewDocumentService(api, nil)

	_, err := svc.Load(context.Background(), "ws-1", domain.FilterAll, domain.SortNone)
	require.NoError(t, err)

	docs, err := svc.ApplySearch(context.Background(), "report")

	require.NoError(t, err)
	assert.Len(t, docs, 1)
	assert.Equal(t, "report", api.lastQuery)
	assert.Len(t, svc.Displayed(), 1)
	assert.Len(t, svc.Cached(), 3, "search must not touch the cache")
}

func TestDocumentService_ApplySearch_EmptyQueryRestoresCacheWithoutNetwork(t *testing.T) {
	api := &mockDocumentAPI{
		listDocs:   testDocs(),
		searchDocs: testDocs()[:1],
	}
	svc := NewDocumentService(api, nil)

	_, err := svc.Load(context.Background(), "ws-1", domain.FilterAll, domain.SortNone)
	require.NoError(t, err)
	_, err = svc.ApplySearch(context.Background(), "report")
	require.NoError(t, err)
	require.Equal(t, 1, api.searchCalls)

	docs, err := svc.ApplySearch(context.Background(), "")

	require.NoError(t, err)
	assert.Len(t, docs, 3)
	assert.Equal(t, 1, api.searchCalls, "clearing the query must not hit the network")
	assert.Equal(t, svc.Cached(), svc.Displayed())
}

func TestDocumentService_ApplySearch_WhitespaceQueryRestoresCache(t *testing.T) {
	api := &mockDocumentAPI{listDocs: testDocs(), searchDocs: testDocs()[:1]}
	svc := NewDocumentService(api, nil)

	_, err := svc.Load(context.Background(), "ws-1", domain.FilterAll, domain.SortNone)
	require.NoError(t, err)
	_, err = svc.ApplySearch(context.Background(), "report")
	require.NoError(t, err)

	docs, err := svc.ApplySearch(context.Background(), "   ")

	require.NoError(t, err)
	assert.Len(t, docs, 3)
	assert.Equal(t, 1, api.searchCalls)
}

func TestDocumentService_ApplySearch_NoWorkspace(t *testing.T) {
	svc := NewDocumentService(&mockDocumentAPI{}, nil)

	_, err := svc.ApplySearch(context.Background(), "anything")

	assert.ErrorIs(t, err, domain.ErrNoWorkspace)
}

func TestDocumentService_ApplySearch_ErrorPropagates(t *testing.T) {
	api := &mockDocumentAPI{listDocs: testDocs(), searchErr: errors.New("server unavailable")}
	svc := NewDocumentService(api, nil)

	_, err := svc.Load(context.Background(), "ws-1", domain.FilterAll, domain.SortNone)
	require.NoError(t, err)

	_, err = svc.ApplySearch(context.Background(), "report")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "search documents")
	assert.Len(t, svc.Displayed(), 3, "failed search leaves the displayed list alone")
}

func TestDocumentService_Upload_AppendsToBothContainers(t *testing.T) {
	uploaded := domain.Document{ID: "doc-4", WorkspaceID: "ws-1", Name: "new.pdf", Type: "application/pdf"}
	api := &mockDocumentAPI{listDocs: testDocs(), uploadDoc: &uploaded}
	svc := NewDocumentService(api, nil)

	_, err := svc.Load(context.Background(), "ws-1", domain.FilterAll, domain.SortNone)
	require.NoError(t, err)

	doc, err := svc.Upload(context.Background(), "/tmp/new.pdf")

	require.NoError(t, err)
	assert.Equal(t, "doc-4", doc.ID)
	assert.Len(t, svc.Cached(), 4)
	assert.Len(t, svc.Displayed(), 4)
}

func TestDocumentService_Upload_NoWorkspace(t *testing.T) {
	svc := NewDocumentService(&mockDocumentAPI{}, nil)

	_, err := svc.Upload(context.Background(), "/tmp/new.pdf")

	assert.ErrorIs(t, err, domain.ErrNoWorkspace)
}

func TestDocumentService_Rename_PatchesBothContainers(t *testing.T) {
	api := &mockDocumentAPI{listDocs: testDocs()}
	svc := NewDocumentService(api, nil)

	_, err := svc.Load(context.Background(), "ws-1", domain.FilterAll, domain.SortNone)
	require.NoError(t, err)

	err = svc.Rename(context.Background(), "doc-1", "renamed.pdf")

	require.NoError(t, err)
	assert.Equal(t, "renamed.pdf", svc.Cached()[0].Name)
	assert.Equal(t, "renamed.pdf", svc.Displayed()[0].Name)
	assert.Equal(t, "photo.png", svc.Cached()[1].Name, "other documents untouched")
}

func TestDocumentService_Rename_EmptyName(t *testing.T) {
	api := &mockDocumentAPI{}
	svc := NewDocumentService(api, nil)

	err := svc.Rename(context.Background(), "doc-1", "  ")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, api.renameCalls)
}

func TestDocumentService_Rename_SurvivesSearchRestore(t *testing.T) {
	api := &mockDocumentAPI{listDocs: testDocs(), searchDocs: testDocs()[:1]}
	svc := NewDocumentService(api, nil)

	_, err := svc.Load(context.Background(), "ws-1", domain.FilterAll, domain.SortNone)
	require.NoError(t, err)
	_, err = svc.ApplySearch(context.Background(), "report")
	require.NoError(t, err)

	err = svc.Rename(context.Background(), "doc-1", "renamed.pdf")
	require.NoError(t, err)

	docs, err := svc.ApplySearch(context.Background(), "")

	require.NoError(t, err)
	assert.Equal(t, "renamed.pdf", docs[0].Name, "rename during a search must survive the restore")
}

func TestDocumentService_SoftDelete_RemovesFromBothContainers(t *testing.T) {
	api := &mockDocumentAPI{listDocs: testDocs()}
	svc := NewDocumentService(api, nil)

	_, err := svc.Load(context.Background(), "ws-1", domain.FilterAll, domain.SortNone)
	require.NoError(t, err)

	err = svc.SoftDelete(context.Background(), "doc-2")

	require.NoError(t, err)
	assert.Len(t, svc.Cached(), 2)
	assert.Len(t, svc.Displayed(), 2)
	for _, d := range svc.Cached() {
		assert.NotEqual(t, "doc-2", d.ID)
	}
}

func TestDocumentService_SoftDelete_ErrorKeepsContainers(t *testing.T) {
	api := &mockDocumentAPI{listDocs: testDocs(), softDeleteErr: errors.New("server unavailable")}
	svc := NewDocumentService(api, nil)

	_, err := svc.Load(context.Background(), "ws-1", domain.FilterAll, domain.SortNone)
	require.NoError(t, err)

	err = svc.SoftDelete(context.Background(), "doc-2")

	require.Error(t, err)
	assert.Len(t, svc.Displayed(), 3)
}

func TestDocumentService_MutationsPersistCache(t *testing.T) {
	uploaded := domain.Document{ID: "doc-4", Name: "new.pdf"}
	api := &mockDocumentAPI{listDocs: testDocs(), uploadDoc: &uploaded}
	cache := &mockListCache{}
	svc := NewDocumentService(api, cache)

	_, err := svc.Load(context.Background(), "ws-1", domain.FilterAll, domain.SortNone)
	require.NoError(t, err)
	require.Equal(t, 1, cache.putCalls)

	_, err = svc.Upload(context.Background(), "/tmp/new.pdf")
	require.NoError(t, err)
	assert.Equal(t, 2, cache.putCalls)
	assert.Len(t, cache.putDocs, 4)

	err = svc.SoftDelete(context.Background(), "doc-4")
	require.NoError(t, err)
	assert.Equal(t, 3, cache.putCalls)
	assert.Len(t, cache.putDocs, 3)
}

func TestDocumentService_View_Passthrough(t *testing.T) {
	api := &mockDocumentAPI{viewData: &domain.DocumentView{Name: "report.pdf", Type: "application/pdf", Data: "JVBERi0x"}}
	svc := NewDocumentService(api, nil)

	view, err := svc.View(context.Background(), "doc-1")

	require.NoError(t, err)
	assert.Equal(t, "report.pdf", view.Name)
}

func TestDocumentService_Preview_Passthrough(t *testing.T) {
	api := &mockDocumentAPI{previewData: "iVBORw0KGgo"}
	svc := NewDocumentService(api, nil)

	preview, err := svc.Preview(context.Background(), "doc-2")

	require.NoError(t, err)
	assert.Equal(t, "iVBORw0KGgo", preview)
}

func TestDocumentService_Download_ReturnsWrittenPath(t *testing.T) {
	api := &mockDocumentAPI{downloadPath: "/tmp/report.pdf"}
	svc := NewDocumentService(api, nil)

	path, err := svc.Download(context.Background(), "doc-1", "/tmp")

	require.NoError(t, err)
	assert.Equal(t, "/tmp/report.pdf", path)
}
