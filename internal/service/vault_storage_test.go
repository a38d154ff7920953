package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/mock"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/models"
)

func newStorageService(t *testing.T, withRemote bool) (VaultStorageService, *mock.MockVaultRepository, *mock.MockRemoteStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	local := mock.NewMockVaultRepository(ctrl)
	remote := mock.NewMockRemoteStore(ctrl)

	if !withRemote {
		return NewVaultStorageService(local, nil, logger.Nop()), local, remote
	}
	return NewVaultStorageService(local, remote, logger.Nop()), local, remote
}

func TestVaultStorageService_Save(t *testing.T) {
	s, local, remote := newStorageService(t, true)
	file := models.VaultFile{Raw: "blob", Encrypted: true}

	checkVault := func(_ context.Context, v models.StoredVault) error {
		assert.Equal(t, int64(4), v.UserID)
		assert.Equal(t, "blob", v.Raw)
		assert.True(t, v.Encrypted)
		assert.False(t, v.UpdatedAt.IsZero())
		return nil
	}

	gomock.InOrder(
		local.EXPECT().SaveVault(gomock.Any(), gomock.Any()).DoAndReturn(checkVault),
		remote.EXPECT().Set(gomock.Any(), gomock.Any()).DoAndReturn(checkVault),
		remote.EXPECT().Push(gomock.Any(), gomock.Any()).DoAndReturn(checkVault),
	)

	require.NoError(t, s.Save(context.Background(), 4, file))
}

func TestVaultStorageService_Save_LocalOnly(t *testing.T) {
	s, local, _ := newStorageService(t, false)

	local.EXPECT().SaveVault(gomock.Any(), gomock.Any()).Return(nil)

	require.NoError(t, s.Save(context.Background(), 4, models.VaultFile{Raw: "blob"}))
}

func TestVaultStorageService_Save_Invalid(t *testing.T) {
	s, _, _ := newStorageService(t, true)

	assert.ErrorIs(t, s.Save(context.Background(), 0, models.VaultFile{Raw: "blob"}), ErrInvalidUserID)
	assert.ErrorIs(t, s.Save(context.Background(), 1, models.VaultFile{}), ErrNoVault)
}

func TestVaultStorageService_Save_LocalError(t *testing.T) {
	s, local, _ := newStorageService(t, true)
	boom := errors.New("disk full")

	local.EXPECT().SaveVault(gomock.Any(), gomock.Any()).Return(boom)

	err := s.Save(context.Background(), 1, models.VaultFile{Raw: "blob"})
	assert.ErrorIs(t, err, boom)
}

func TestVaultStorageService_Save_PushError(t *testing.T) {
	s, local, remote := newStorageService(t, true)

	local.EXPECT().SaveVault(gomock.Any(), gomock.Any()).Return(nil)
	remote.EXPECT().Set(gomock.Any(), gomock.Any()).Return(nil)
	remote.EXPECT().Push(gomock.Any(), gomock.Any()).Return(adapter.ErrConflict)

	err := s.Save(context.Background(), 1, models.VaultFile{Raw: "blob"})
	assert.ErrorIs(t, err, adapter.ErrConflict)
}

func TestVaultStorageService_Load_Local(t *testing.T) {
	s, local, _ := newStorageService(t, true)
	want := models.StoredVault{UserID: 2, Raw: "blob"}

	local.EXPECT().GetVault(gomock.Any(), int64(2)).Return(want, nil)

	got, err := s.Load(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestVaultStorageService_Load_FallsBackToRemote(t *testing.T) {
	s, local, remote := newStorageService(t, true)
	want := models.StoredVault{UserID: 2, Raw: "remote-blob", Encrypted: true}

	gomock.InOrder(
		local.EXPECT().GetVault(gomock.Any(), int64(2)).Return(models.StoredVault{}, store.ErrVaultNotFound),
		remote.EXPECT().Get(gomock.Any(), int64(2)).Return(want, nil),
		local.EXPECT().SaveVault(gomock.Any(), want).Return(nil),
	)

	got, err := s.Load(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestVaultStorageService_Load_LocalCacheFailureIsNotFatal(t *testing.T) {
	s, local, remote := newStorageService(t, true)
	want := models.StoredVault{UserID: 2, Raw: "remote-blob"}

	local.EXPECT().GetVault(gomock.Any(), int64(2)).Return(models.StoredVault{}, store.ErrVaultNotFound)
	remote.EXPECT().Get(gomock.Any(), int64(2)).Return(want, nil)
	local.EXPECT().SaveVault(gomock.Any(), want).Return(errors.New("read-only"))

	got, err := s.Load(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestVaultStorageService_Load_NotFoundAnywhere(t *testing.T) {
	s, local, remote := newStorageService(t, true)

	local.EXPECT().GetVault(gomock.Any(), int64(2)).Return(models.StoredVault{}, store.ErrVaultNotFound)
	remote.EXPECT().Get(gomock.Any(), int64(2)).Return(models.StoredVault{}, adapter.ErrNotFound)

	_, err := s.Load(context.Background(), 2)
	assert.ErrorIs(t, err, ErrVaultNotFound)
}

func TestVaultStorageService_Load_NoRemote(t *testing.T) {
	s, local, _ := newStorageService(t, false)

	local.EXPECT().GetVault(gomock.Any(), int64(2)).Return(models.StoredVault{}, store.ErrVaultNotFound)

	_, err := s.Load(context.Background(), 2)
	assert.ErrorIs(t, err, ErrVaultNotFound)
}

func TestVaultStorageService_Load_LocalError(t *testing.T) {
	s, local, _ := newStorageService(t, true)
	boom := errors.New("corrupt")

	local.EXPECT().GetVault(gomock.Any(), int64(2)).Return(models.StoredVault{}, boom)

	_, err := s.Load(context.Background(), 2)
	assert.ErrorIs(t, err, boom)
}

func TestVaultStorageService_Remove(t *testing.T) {
	s, local, remote := newStorageService(t, true)

	local.EXPECT().DeleteVault(gomock.Any(), int64(6)).Return(store.ErrVaultNotFound)
	remote.EXPECT().Remove(gomock.Any(), int64(6)).Return(nil)

	require.NoError(t, s.Remove(context.Background(), 6))
}

func TestVaultStorageService_Remove_RemoteError(t *testing.T) {
	s, local, remote := newStorageService(t, true)

	local.EXPECT().DeleteVault(gomock.Any(), int64(6)).Return(nil)
	remote.EXPECT().Remove(gomock.Any(), int64(6)).Return(adapter.ErrUnauthorized)

	assert.ErrorIs(t, s.Remove(context.Background(), 6), adapter.ErrUnauthorized)
}

func TestVaultStorageService_SaveLoadWithManager(t *testing.T) {
	s, local, _ := newStorageService(t, false)
	m := newRealManager(t)
	m.SetMasterPassword("master")
	require.NoError(t, m.NewVault())
	_, err := m.AddEntry(context.Background(), sampleEntry())
	require.NoError(t, err)

	file, err := m.BuildVaultFile()
	require.NoError(t, err)

	var saved models.StoredVault
	local.EXPECT().SaveVault(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, v models.StoredVault) error {
		saved = v
		return nil
	})
	local.EXPECT().GetVault(gomock.Any(), int64(1)).DoAndReturn(func(context.Context, int64) (models.StoredVault, error) {
		return saved, nil
	})

	require.NoError(t, s.Save(context.Background(), 1, file))
	loaded, err := s.Load(context.Background(), 1)
	require.NoError(t, err)

	other := newRealManager(t)
	other.SetMasterPassword("master")
	_, err = other.LoadVaultFile(loaded.Raw, loaded.Encrypted)
	require.NoError(t, err)

	got, err := other.DecryptEntry(context.Background(), "Fb")
	require.NoError(t, err)
	assert.Equal(t, "pass", got.Password)
}
