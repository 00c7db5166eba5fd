package server

import "github.com/neurobridge/dashboard/users"

func (s *Server) initRoutes() {
	s.RegisterRouteFunc("GET "+RouteIndex, s.IndexHandler())

	// AUTH
	s.RegisterRouteFunc("GET "+RouteAuthLogin, s.LoginEntryHandler())
	s.RegisterRouteFunc("POST "+RouteAuthLogin, s.LoginSubmissionHandler())
	s.RegisterRouteFunc("GET "+RouteAuthLogout, s.LogoutHandler())
	s.RegisterRouteFunc("GET "+RouteAuthSession, s.SessionStateHandler())

	// Dashboard views (any authenticated role)
	anyRole := s.RequireSession()
	s.RegisterRouteHandler("GET "+RouteDashboard, ChainMiddleware(s.DashboardHandler(), s.APIMiddleware(anyRole)...))
	s.RegisterRouteHandler("GET "+RouteInstitutions, ChainMiddleware(s.InstitutionSearchHandler(), s.APIMiddleware(anyRole)...))
	s.RegisterRouteHandler("GET "+RouteMessages, ChainMiddleware(s.ThreadListHandler(), s.APIMiddleware(anyRole)...))
	s.RegisterRouteHandler("GET "+RouteMessageThread, ChainMiddleware(s.ThreadDetailHandler(), s.APIMiddleware(anyRole)...))
	s.RegisterRouteHandler("POST "+RouteMessageThread, ChainMiddleware(s.PostMessageHandler(), s.APIMiddleware(anyRole)...))

	// Case handovers belong to institution admins
	institutionAdmins := s.RequireSession(users.RoleSchoolAdmin, users.RoleTutorCentreAdmin)
	s.RegisterRouteHandler("GET "+RouteCases, ChainMiddleware(s.CaseListHandler(), s.APIMiddleware(institutionAdmins)...))

	// Platform administration
	superAdmin := s.RequireSession(users.RoleSuperAdmin)
	s.RegisterRouteHandler("GET "+RouteAdminAudit, ChainMiddleware(s.AuditTrailHandler(), s.APIMiddleware(superAdmin)...))
}
