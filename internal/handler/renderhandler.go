package handler

import (
	"errors"
	"net/http"

	"github.com/zeromicro/go-zero/rest/httpx"

	"sitegen-api/internal/svc"
	"sitegen-api/internal/types"
	renderpkg "sitegen-api/pkg/render"
)

func RenderHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.RenderRequest
		if err := httpx.Parse(r, &req); err != nil {
			writeError(w, r, http.StatusBadRequest, err)
			return
		}

		vp := renderpkg.ViewportFor(req.Viewport)
		url, err := svcCtx.Render.CaptureDataURL(r.Context(), &renderpkg.CaptureRequest{
			HTML:     req.HTML,
			CSS:      req.CSS,
			Viewport: req.Viewport,
			Format:   req.Format,
			Quality:  req.Quality,
		})
		if err != nil {
			if errors.Is(err, renderpkg.ErrUnavailable) {
				writeError(w, r, http.StatusServiceUnavailable, err)
				return
			}
			writeError(w, r, http.StatusInternalServerError, err)
			return
		}

		httpx.OkJsonCtx(r.Context(), w, types.RenderResponse{
			Image:    url,
			Viewport: vp.Name,
			Format:   formatOf(url),
		})
	}
}

// formatOf recovers the image format from a data URL prefix.
func formatOf(dataURL string) string {
	const prefix = "data:image/"
	rest := dataURL[len(prefix):]
	for i := 0; i < len(rest); i++ {
		if rest[i] == ';' {
			return rest[:i]
		}
	}
	return rest
}
