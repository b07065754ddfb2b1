package services

// ServiceContainer groups the services handed to the handler layer.
type ServiceContainer struct {
	AccountService AccountService
	AuthService    AuthService
	ReviewService  ReviewService
}
