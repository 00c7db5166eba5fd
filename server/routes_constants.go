package server

// Route paths
const (
	RouteIndex       = "/"
	RouteAuthLogin   = "/auth/login"
	RouteAuthLogout  = "/auth/logout"
	RouteAuthSession = "/auth/session"

	RouteDashboard     = "/dashboard"
	RouteInstitutions  = "/institutions"
	RouteCases         = "/cases"
	RouteMessages      = "/messages"
	RouteMessageThread = "/messages/{threadID}"

	RouteAdminAudit = "/admin/audit"
)

const contentTypeJSON = "application/json; charset=utf-8"
