package handler

import (
	"errors"
	"net/http"

	"github.com/zeromicro/go-zero/rest/httpx"

	"sitegen-api/internal/svc"
	"sitegen-api/internal/types"
	renderpkg "sitegen-api/pkg/render"
)

func ResponsiveRenderHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.ResponsiveRenderRequest
		if err := httpx.Parse(r, &req); err != nil {
			writeError(w, r, http.StatusBadRequest, err)
			return
		}

		set, err := svcCtx.Render.CaptureResponsive(r.Context(), req.HTML, req.CSS)
		if err != nil {
			if errors.Is(err, renderpkg.ErrUnavailable) {
				writeError(w, r, http.StatusServiceUnavailable, err)
				return
			}
			writeError(w, r, http.StatusInternalServerError, err)
			return
		}

		httpx.OkJsonCtx(r.Context(), w, types.ResponsiveRenderResponse{
			Desktop: set.Desktop,
			Tablet:  set.Tablet,
			Mobile:  set.Mobile,
		})
	}
}
