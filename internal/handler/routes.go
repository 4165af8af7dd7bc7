package handler

import (
	"net/http"

	"github.com/zeromicro/go-zero/rest"

	"sitegen-api/internal/svc"
)

func RegisterHandlers(server *rest.Server, serverCtx *svc.ServiceContext) {
	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodPost,
				Path:    "/api/generate",
				Handler: GenerateHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/api/render",
				Handler: RenderHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/api/render/responsive",
				Handler: ResponsiveRenderHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/api/health",
				Handler: HealthHandler(serverCtx),
			},
		},
	)
}
