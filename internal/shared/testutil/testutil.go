// Package testutil has fixtures shared by domain tests.
package testutil

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"qbrain-backend/internal/config"
	"qbrain-backend/internal/infrastructure/docstore"
	"qbrain-backend/internal/infrastructure/email"
	"qbrain-backend/internal/shared/utils"
)

// NewStore opens a throwaway SQLite docstore under t.TempDir()
func NewStore(t *testing.T) docstore.Store {
	t.Helper()
	store, err := docstore.NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

// PNG encodes a w x h solid image
func PNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: 0, G: 212, B: 255, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// ImageFile wraps a small PNG as an uploaded form file
func ImageFile(t *testing.T, name string) *utils.FileUpload {
	data := PNG(t, 8, 8)
	return &utils.FileUpload{Filename: name, ContentType: "image/png", Size: int64(len(data)), Data: data}
}

const AdminEmail = "admin@qbrain.in"

// Composer builds an email composer with a test admin mailbox
func Composer(t *testing.T) *email.Composer {
	t.Helper()
	c, err := email.NewComposer(config.MailConfig{
		AdminEmail:          AdminEmail,
		From:                "noreply@qbrain.in",
		ContactFromName:     "Qbrain Contact Form",
		ApplicationFromName: "Qbrain Applications",
		TeamFromName:        "Qbrain Team",
	})
	require.NoError(t, err)
	return c
}
