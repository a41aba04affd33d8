package service

import (
	"github.com/gin-gonic/gin"

	"github.com/seriousplay/MegaSpace/app/core"
	"github.com/seriousplay/MegaSpace/app/response"
	"github.com/seriousplay/MegaSpace/cmd/service/handler"
	"github.com/seriousplay/MegaSpace/cmd/service/middleware"
	"github.com/seriousplay/MegaSpace/pkg/metrics"
)

func serve(core *core.Core) {
	httpSrv := &handler.HttpSrv{
		Core:   core,
		Engine: core.HttpEngine(),
	}
	setupHttpRouter(httpSrv)

	core.HttpEngine().Run(core.Cfg().Addr)
}

func setupHttpRouter(s *handler.HttpSrv) {
	s.Engine.Use(gin.Recovery())
	s.Engine.Use(middleware.I18n(), response.NewResponse())
	s.Engine.Use(middleware.Cors)
	s.Engine.Use(middleware.SetAppid(s.Core), middleware.AcceptLanguage())
	s.Engine.Use(middleware.Metrics(s.Core.Metrics()))

	s.Engine.GET("/metrics", metrics.DefaultExportHandler())

	apiV1 := s.Engine.Group("/api/v1")
	apiV1.Use(middleware.Authorization(s.Core))
	{
		apiV1.POST("/chat", s.Chat)

		agent := apiV1.Group("/agents")
		{
			agent.POST("", s.CreateAgent)
			agent.GET("", s.ListAgents)
			agent.GET("/:agent", s.GetAgent)
			agent.PUT("/:agent", s.UpdateAgent)
			agent.DELETE("/:agent", s.DeactivateAgent)
		}

		organization := apiV1.Group("/organizations")
		{
			organization.GET("", s.ListUserOrganizations)
			organization.GET("/:organization/members", s.ListOrganizationMembers)
		}

		tool := apiV1.Group("/tools")
		{
			tool.GET("", s.ListPublicTools)
			tool.POST("/:tool/use", s.UsePublicTool)
		}

		apiV1.GET("/usage/logs", s.ListMyUsageLogs)
		apiV1.GET("/files/:file", s.GetFileUpload)
	}
}
