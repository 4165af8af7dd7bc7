package handler

import (
	"errors"
	"net/http"

	"github.com/zeromicro/go-zero/rest/httpx"

	"sitegen-api/internal/svc"
	"sitegen-api/internal/types"
	generatorpkg "sitegen-api/pkg/generator"
)

func GenerateHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.GenerateRequest
		if err := httpx.Parse(r, &req); err != nil {
			writeError(w, r, http.StatusBadRequest, err)
			return
		}

		genReq, err := toGenerationRequest(&req)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, err)
			return
		}

		result, err := svcCtx.Generator.Generate(r.Context(), genReq)
		if err != nil {
			var genErr *generatorpkg.GenerationError
			if errors.As(err, &genErr) {
				writeError(w, r, http.StatusBadGateway, err)
				return
			}
			writeError(w, r, http.StatusInternalServerError, err)
			return
		}

		httpx.OkJsonCtx(r.Context(), w, result)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	httpx.WriteJsonCtx(r.Context(), w, status, types.ErrorResponse{Error: err.Error()})
}
