package debugrender

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/debugdraw/internal/debugdraw"
	"github.com/Faultbox/debugdraw/internal/engine/texture"
	"github.com/Faultbox/debugdraw/internal/logger"
)

// FileIconLoader loads icons from image files in a directory and uploads them
// as OpenGL textures.
type FileIconLoader struct {
	dir string
	log *zap.Logger
}

var (
	_ debugdraw.IconLoader   = (*FileIconLoader)(nil)
	_ debugdraw.IconReleaser = (*FileIconLoader)(nil)
)

// NewFileIconLoader creates a loader rooted at dir.
func NewFileIconLoader(dir string) *FileIconLoader {
	return &FileIconLoader{dir: dir, log: logger.Named("icons")}
}

// Dir returns the icon directory.
func (l *FileIconLoader) Dir() string { return l.dir }

// LoadIcon implements debugdraw.IconLoader.
func (l *FileIconLoader) LoadIcon(id string) (*debugdraw.IconHandle, error) {
	path, err := resolveIcon(l.dir, id)
	if err != nil {
		return nil, err
	}

	img, err := texture.DecodeFile(path)
	if err != nil {
		return nil, err
	}
	texture.FlipVertical(img)

	tex := uploadTexture(img)
	l.log.Debug("icon loaded",
		zap.String("icon", id),
		zap.String("path", path),
		zap.Int("width", img.Rect.Dx()),
		zap.Int("height", img.Rect.Dy()),
	)

	return &debugdraw.IconHandle{
		ID:       id,
		Resource: tex,
		Width:    img.Rect.Dx(),
		Height:   img.Rect.Dy(),
	}, nil
}

// ReleaseIcon implements debugdraw.IconReleaser.
func (l *FileIconLoader) ReleaseIcon(h *debugdraw.IconHandle) {
	if tex, ok := h.Resource.(uint32); ok && tex != 0 {
		gl.DeleteTextures(1, &tex)
		h.Resource = nil
	}
}

// FallbackIcon uploads a 1x1 white texture for icons that fail to load.
func FallbackIcon() *debugdraw.IconHandle {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	copy(img.Pix, []byte{255, 255, 255, 255})
	return &debugdraw.IconHandle{
		ID:       "fallback",
		Resource: uploadTexture(img),
		Width:    1,
		Height:   1,
		Fallback: true,
	}
}

// resolveIcon finds the file for id. An id without an extension matches the
// first supported extension that exists.
func resolveIcon(dir, id string) (string, error) {
	if id == "" {
		return "", errors.New("empty icon name")
	}

	base := filepath.Join(dir, filepath.FromSlash(id))
	if filepath.Ext(id) != "" {
		if !texture.Supported(id) {
			return "", fmt.Errorf("icon %q: unsupported format", id)
		}
		if _, err := os.Stat(base); err != nil {
			return "", fmt.Errorf("icon %q: %w", id, err)
		}
		return base, nil
	}

	for _, ext := range texture.Extensions {
		if _, err := os.Stat(base + ext); err == nil {
			return base + ext, nil
		}
	}
	return "", fmt.Errorf("icon %q: %w", id, fs.ErrNotExist)
}

func uploadTexture(img *image.RGBA) uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(img.Rect.Dx()), int32(img.Rect.Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return tex
}
