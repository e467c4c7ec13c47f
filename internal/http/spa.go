package http

import (
	"log/slog"
	"net/http"
	"os"
	"path"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/gen-relay/genlayer-relay/internal/httputil"
)

// newSPAHandler serves files from dir and falls back to dir/index.html for any
// other GET or HEAD request so client-side routes resolve. Requests that match
// nothing get a JSON 404.
func newSPAHandler(dir string, logger *slog.Logger) gin.HandlerFunc {
	indexPath := filepath.Join(dir, "index.html")

	if dir == "" {
		logger.Info("dashboard disabled: no static directory configured")
	} else if !isFile(indexPath) {
		logger.Warn("dashboard index not found", slog.String("path", indexPath))
	}

	return func(c *gin.Context) {
		method := c.Request.Method
		if dir == "" || (method != http.MethodGet && method != http.MethodHead) {
			c.JSON(http.StatusNotFound, httputil.NewErrorResponse("not found"))
			return
		}

		// Clean against "/" so ".." can never climb out of dir.
		requested := filepath.Join(dir, filepath.FromSlash(path.Clean("/"+c.Request.URL.Path)))
		if serveStatic(c, requested) {
			return
		}

		if serveStatic(c, indexPath) {
			return
		}

		c.JSON(http.StatusNotFound, httputil.NewErrorResponse("not found"))
	}
}

// serveStatic writes the regular file at name and reports whether it did.
// http.ServeContent is used instead of c.File because http.ServeFile rejects
// any request path containing "..", even after it has been cleaned here.
func serveStatic(c *gin.Context, name string) bool {
	f, err := os.Open(name) //nolint:gosec // name is confined to the static dir
	if err != nil {
		return false
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil || info.IsDir() {
		return false
	}

	http.ServeContent(c.Writer, c.Request, info.Name(), info.ModTime(), f)
	return true
}

func isFile(name string) bool {
	info, err := os.Stat(name)
	return err == nil && !info.IsDir()
}
