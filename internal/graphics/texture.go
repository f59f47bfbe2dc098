package graphics

import (
	"image"
	"image/color"
	"sync"

	"curvelab/internal/graphics/imageio"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Texture is a 2D RGBA texture on the GPU.
type Texture struct {
	ID     uint32
	Width  int
	Height int
}

// NewTexture uploads img with repeat wrapping on S, which the revolved
// spheres need at the u=0/1 seam.
func NewTexture(img *image.RGBA) *Texture {
	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	size := img.Rect.Size()
	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.RGBA,
		int32(size.X),
		int32(size.Y),
		0,
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		gl.Ptr(img.Pix),
	)
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return &Texture{ID: id, Width: size.X, Height: size.Y}
}

// SolidTexture is a 1x1 texture of one color, used when a file is missing.
func SolidTexture(c color.RGBA) *Texture {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.SetRGBA(0, 0, c)
	return NewTexture(img)
}

// Bind binds the texture to the given texture unit.
func (t *Texture) Bind(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, t.ID)
}

func (t *Texture) Dispose() {
	if t.ID != 0 {
		gl.DeleteTextures(1, &t.ID)
		t.ID = 0
	}
}

var (
	textureCache = make(map[string]*Texture)
	cacheMutex   sync.RWMutex
)

// GetTexture returns a cached texture for path, loading it on first use.
func GetTexture(path string, maxSize int) (*Texture, error) {
	cacheMutex.RLock()
	if tex, ok := textureCache[path]; ok {
		cacheMutex.RUnlock()
		return tex, nil
	}
	cacheMutex.RUnlock()

	cacheMutex.Lock()
	defer cacheMutex.Unlock()

	// Double check locking
	if tex, ok := textureCache[path]; ok {
		return tex, nil
	}

	img, err := imageio.Load(path, maxSize)
	if err != nil {
		return nil, err
	}
	tex := NewTexture(img)
	textureCache[path] = tex
	return tex, nil
}

// DisposeTextures frees every cached texture.
func DisposeTextures() {
	cacheMutex.Lock()
	defer cacheMutex.Unlock()

	for path, tex := range textureCache {
		tex.Dispose()
		delete(textureCache, path)
	}
}
