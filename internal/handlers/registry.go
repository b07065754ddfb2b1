package handlers

// AppHandlers groups the resource handlers for route registration.
type AppHandlers struct {
	UserHandler   *UserHandler
	ReviewHandler *ReviewHandler
}
