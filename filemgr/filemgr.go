package filemgr

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

type EntityType string

const (
	EntityEvent EntityType = "event"
	EntitySong  EntityType = "song"
)

var uploadRoots = map[EntityType]string{
	EntityEvent: "static/eventpic",
	EntitySong:  "static/songpic",
}

var ErrNoFile = errors.New("no image file in form")

// SaveImage decodes the uploaded image from the named form field, writes
// a normalized JPEG plus a 300px thumbnail under the entity's upload dir,
// and returns the public URL of the original.
func SaveImage(r *http.Request, formKey string, entity EntityType, id string) (string, error) {
	file, _, err := r.FormFile(formKey)
	if err != nil {
		if err == http.ErrMissingFile {
			return "", ErrNoFile
		}
		return "", err
	}
	defer file.Close()

	img, err := imaging.Decode(file)
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}

	root := uploadRoots[entity]
	thumbDir := filepath.Join(root, "thumb")
	for _, dir := range []string{root, thumbDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("create upload dir: %w", err)
		}
	}

	name := id + ".jpg"
	if err := imaging.Save(img, filepath.Join(root, name)); err != nil {
		return "", fmt.Errorf("save image: %w", err)
	}

	thumb := imaging.Resize(img, 300, 0, imaging.Lanczos)
	if err := imaging.Save(thumb, filepath.Join(thumbDir, name)); err != nil {
		return "", fmt.Errorf("save thumbnail: %w", err)
	}

	return "/" + filepath.ToSlash(filepath.Join(root, name)), nil
}
