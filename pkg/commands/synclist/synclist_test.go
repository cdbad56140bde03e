package synclist

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/pacls/pkg/aur"
	"github.com/arthur-debert/pacls/pkg/errors"
	"github.com/arthur-debert/pacls/pkg/pacman"
	"github.com/arthur-debert/pacls/pkg/style"
	"github.com/arthur-debert/pacls/pkg/testutil"
)

type mockDelegate struct {
	mock.Mock
}

func (m *mockDelegate) SyncList(ctx context.Context, dbs []string) error {
	return m.Called(dbs).Error(0)
}

type staticDatabases []string

func (s staticDatabases) Databases() ([]string, error) { return s, nil }

type failingDatabases struct{ err error }

func (f failingDatabases) Databases() ([]string, error) { return nil, f.err }

type mockIndex struct {
	mock.Mock
}

func (m *mockIndex) Fetch(ctx context.Context) (*aur.Index, error) {
	args := m.Called()
	idx, _ := args.Get(0).(*aur.Index)
	return idx, args.Error(1)
}

func localDB(t *testing.T, entries ...string) *pacman.LocalDB {
	t.Helper()
	return pacman.NewLocalDB(testutil.LocalDBFs(t, entries...), testutil.DBPath)
}

func TestSyncListEmptyTargetsListsEverything(t *testing.T) {
	delegate := &mockDelegate{}
	delegate.On("SyncList", []string{"core", "extra"}).Return(nil).Once()

	index := &mockIndex{}
	index.On("Fetch").Return(aur.ParseIndex([]byte("header\nfoo\nbar\n")), nil).Once()

	var out bytes.Buffer
	err := SyncList(context.Background(), SyncListOptions{
		Databases:  staticDatabases{"core", "extra"},
		Delegate:   delegate,
		Index:      index,
		Installed:  localDB(t, "foo-1.0-1"),
		Decorators: style.Plain(),
		Out:        &out,
	})
	require.NoError(t, err)

	assert.Equal(t, "aur foo unknown-version [installed]\naur bar unknown-version\n", out.String())
	delegate.AssertExpectations(t)
	index.AssertExpectations(t)
}

func TestSyncListAUROnly(t *testing.T) {
	delegate := &mockDelegate{}
	index := &mockIndex{}
	index.On("Fetch").Return(aur.ParseIndex([]byte("header\nfoo\n\nbar\nbaz\n")), nil).Once()

	var out bytes.Buffer
	err := SyncList(context.Background(), SyncListOptions{
		Targets:  []string{"aur"},
		Delegate: delegate,
		Index:    index,
		Quiet:    true,
		Out:      &out,
	})
	require.NoError(t, err)

	assert.Equal(t, "foo\nbar\nbaz\n", out.String())
	delegate.AssertNotCalled(t, "SyncList", mock.Anything)
}

func TestSyncListLocalOnly(t *testing.T) {
	delegate := &mockDelegate{}
	delegate.On("SyncList", []string{"extra", "custom"}).Return(nil).Once()
	index := &mockIndex{}

	var out bytes.Buffer
	err := SyncList(context.Background(), SyncListOptions{
		Targets:  []string{"extra", "custom"},
		Delegate: delegate,
		Index:    index,
		Out:      &out,
	})
	require.NoError(t, err)

	assert.Empty(t, out.String())
	delegate.AssertExpectations(t)
	index.AssertNotCalled(t, "Fetch")
}

func TestSyncListNeverForwardsAURMarker(t *testing.T) {
	delegate := &mockDelegate{}
	delegate.On("SyncList", []string{"core"}).Return(nil).Once()
	index := &mockIndex{}
	index.On("Fetch").Return(aur.ParseIndex([]byte("h\n")), nil).Once()

	err := SyncList(context.Background(), SyncListOptions{
		Targets:  []string{"aur", "core", "aur"},
		Delegate: delegate,
		Index:    index,
		Out:      &bytes.Buffer{},
	})
	require.NoError(t, err)
	delegate.AssertExpectations(t)
}

func TestSyncListDelegateErrorStopsAUR(t *testing.T) {
	delegateErr := errors.Wrap(&pacman.ExitError{Code: 1}, errors.ErrDelegate, "pacman -Sl nosuchdb")
	delegate := &mockDelegate{}
	delegate.On("SyncList", []string{"nosuchdb"}).Return(delegateErr).Once()
	index := &mockIndex{}

	err := SyncList(context.Background(), SyncListOptions{
		Targets:  []string{"nosuchdb", "aur"},
		Delegate: delegate,
		Index:    index,
		Out:      &bytes.Buffer{},
	})
	require.Error(t, err)
	assert.Same(t, delegateErr, err)
	index.AssertNotCalled(t, "Fetch")

	code, ok := pacman.ExitCode(err)
	require.True(t, ok)
	assert.Equal(t, 1, code)
}

func TestSyncListDatabaseError(t *testing.T) {
	dbErr := errors.New(errors.ErrPacmanConf, "open /etc/pacman.conf")
	err := SyncList(context.Background(), SyncListOptions{
		Databases: failingDatabases{err: dbErr},
		Delegate:  &mockDelegate{},
		Index:     &mockIndex{},
	})
	assert.Same(t, dbErr, err)
}

func TestSyncListHTTPStatusRendersNothing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	var out bytes.Buffer
	err := SyncList(context.Background(), SyncListOptions{
		Targets: []string{"aur"},
		Index:   aur.NewFetcher(aur.Options{Client: srv.Client(), BaseURL: srv.URL}),
		Out:     &out,
	})
	require.Error(t, err)

	assert.True(t, errors.IsErrorCode(err, errors.ErrHTTPStatus))
	assert.Contains(t, err.Error(), srv.URL+"/packages.gz")
	assert.Contains(t, err.Error(), "404")
	assert.Empty(t, out.String())
}

func TestSyncListIsIdempotent(t *testing.T) {
	srv := testutil.NewIndexServer(t, "# AUR package list\nparu\nyay\npikaur\n")

	run := func() string {
		var out bytes.Buffer
		err := SyncList(context.Background(), SyncListOptions{
			Targets:    []string{"aur"},
			Index:      aur.NewFetcher(aur.Options{Client: srv.Client(), BaseURL: srv.URL}),
			Installed:  localDB(t, "yay-12.3.5-1"),
			Decorators: style.Plain(),
			Out:        &out,
		})
		require.NoError(t, err)
		return out.String()
	}

	first := run()
	assert.Equal(t, "aur paru unknown-version\naur yay unknown-version [installed]\naur pikaur unknown-version\n", first)
	assert.Equal(t, first, run())
	assert.Equal(t, 2, srv.Hits())
}

func TestSyncListDefaultsToPlainDecorators(t *testing.T) {
	index := &mockIndex{}
	index.On("Fetch").Return(aur.ParseIndex([]byte("h\nfoo\n")), nil).Once()

	var out bytes.Buffer
	err := SyncList(context.Background(), SyncListOptions{
		Targets: []string{"aur"},
		Index:   index,
		Out:     &out,
	})
	require.NoError(t, err)
	assert.Equal(t, "aur foo unknown-version\n", out.String())
}
