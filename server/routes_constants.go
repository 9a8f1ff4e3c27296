package server

// Route path constants
// All application routes are defined here to ensure consistency and prevent typos
const (
	RouteIndex         = "/"
	RouteLogout        = "/logout"
	RouteExecuteScene  = "/scenes/{sceneId}"
	RouteOAuthCallback = "/oauth/callback"

	// Static Asset Routes (patterns)
	RouteStaticCSS = "/css/{file}"
	RouteStaticJS  = "/js/{file}"
)
