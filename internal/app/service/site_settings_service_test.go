package service

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/seyirtepe/seyirtepe-backend/internal/app/model"
	"github.com/seyirtepe/seyirtepe-backend/internal/app/repository"
	"github.com/seyirtepe/seyirtepe-backend/internal/db"
	"github.com/seyirtepe/seyirtepe-backend/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupSiteSettingsService(t *testing.T) (SiteSettingsService, string) {
	t.Helper()

	database, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(database) })

	dir := t.TempDir()
	media := NewMediaService(nil, storage.NewLocalStorage(dir, "/uploads"), 1024)

	return NewSiteSettingsService(repository.NewSiteSettingsRepository(database), media), dir
}

func TestGetSettingsCreatesSingleton(t *testing.T) {
	svc, _ := setupSiteSettingsService(t)

	settings, err := svc.GetSettings()
	require.NoError(t, err)
	assert.Equal(t, model.SiteSettingsID, settings.ID)
	assert.Nil(t, settings.LogoURL)

	// repeated reads return the same row
	again, err := svc.GetSettings()
	require.NoError(t, err)
	assert.Equal(t, settings.ID, again.ID)
}

func TestUploadLogoUsesStableName(t *testing.T) {
	svc, dir := setupSiteSettingsService(t)

	settings, result, err := svc.UploadLogo(context.Background(),
		strings.NewReader("logo v1"), 7, "logo.png", "image/png")
	require.NoError(t, err)

	assert.Equal(t, "site/logo.png", result.PublicID)
	assert.Equal(t, storage.BackendLocal, result.Backend)
	require.NotNil(t, settings.LogoURL)
	assert.Equal(t, result.URL, *settings.LogoURL)
	require.NotNil(t, settings.LogoStorage)
	assert.Equal(t, "local", *settings.LogoStorage)

	// replacing the logo reuses the same object name
	_, result2, err := svc.UploadLogo(context.Background(),
		strings.NewReader("logo v2"), 7, "new-logo.png", "image/png")
	require.NoError(t, err)
	assert.Equal(t, "site/logo.png", result2.PublicID)

	entries, err := os.ReadDir(filepath.Join(dir, "site"))
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	data, err := os.ReadFile(filepath.Join(dir, "site", "logo.png"))
	require.NoError(t, err)
	assert.Equal(t, "logo v2", string(data))
}

func TestUploadLogoRemovesOldObjectOnExtensionChange(t *testing.T) {
	svc, dir := setupSiteSettingsService(t)

	_, _, err := svc.UploadLogo(context.Background(),
		strings.NewReader("png logo"), 8, "logo.png", "image/png")
	require.NoError(t, err)

	_, result, err := svc.UploadLogo(context.Background(),
		strings.NewReader("gif logo"), 8, "logo.gif", "image/gif")
	require.NoError(t, err)
	assert.Equal(t, "site/logo.gif", result.PublicID)

	_, err = os.Stat(filepath.Join(dir, "site", "logo.png"))
	assert.True(t, os.IsNotExist(err), "old logo object should be removed")
}

func TestUploadLogoRejectsNonImage(t *testing.T) {
	svc, _ := setupSiteSettingsService(t)

	_, _, err := svc.UploadLogo(context.Background(),
		strings.NewReader("text"), 4, "logo.txt", "text/plain")
	assert.ErrorIs(t, err, ErrUnsupportedMediaType)

	settings, err := svc.GetSettings()
	require.NoError(t, err)
	assert.Nil(t, settings.LogoURL, "settings must stay untouched after a rejected upload")
}

func TestClearLogo(t *testing.T) {
	svc, dir := setupSiteSettingsService(t)

	_, _, err := svc.UploadLogo(context.Background(),
		strings.NewReader("logo"), 4, "logo.png", "image/png")
	require.NoError(t, err)

	settings, err := svc.ClearLogo(context.Background())
	require.NoError(t, err)
	assert.Nil(t, settings.LogoURL)
	assert.Nil(t, settings.LogoStorage)
	assert.Nil(t, settings.LogoPublicID)

	_, err = os.Stat(filepath.Join(dir, "site", "logo.png"))
	assert.True(t, os.IsNotExist(err))
}

func TestClearLogoWhenNoneSet(t *testing.T) {
	svc, _ := setupSiteSettingsService(t)

	settings, err := svc.ClearLogo(context.Background())
	require.NoError(t, err)
	assert.Nil(t, settings.LogoURL)
}
