package asset

import (
	"fmt"
	"io/fs"
	"net/http"
	"path"
	"strings"
)

// JarAssetsPath is the URL segment, below the context path, under which
// packaged assets are served.
const JarAssetsPath = "dandelion-assets"

// JarLocator resolves assets packaged with the application. Locations are
// paths inside fsys, typically an embed.FS or an os.DirFS of the packaged
// resources root.
type JarLocator struct {
	contextPath string
	fsys        fs.FS
}

// NewJarLocator returns a locator looking assets up in fsys. A nil fsys
// finds nothing.
func NewJarLocator(contextPath string, fsys fs.FS) *JarLocator {
	return &JarLocator{contextPath: contextPath, fsys: fsys}
}

// Key returns "jar".
func (*JarLocator) Key() string { return LocatorJar }

// Location returns "<contextPath>/dandelion-assets/<path>" if the jar
// location of asu names a regular file of the packaged resources.
func (l *JarLocator) Location(asu StorageUnit, _ *http.Request) (string, error) {
	loc, ok := asu.Locations[LocatorJar]
	if !ok || strings.TrimSpace(loc) == "" {
		return "", ErrNoLocation
	}

	name := strings.TrimPrefix(path.Clean("/"+strings.TrimSpace(loc)), "/")
	if l.fsys == nil {
		return "", fmt.Errorf("%w: %s", ErrJarAssetNotFound, name)
	}

	info, err := fs.Stat(l.fsys, name)
	if err != nil || info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrJarAssetNotFound, name)
	}

	return joinURLPath(l.contextPath, path.Join(JarAssetsPath, name)), nil
}
