package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/es"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	es_translations "github.com/go-playground/validator/v10/translations/es"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"

	"github.com/parkampus-dev/parkampus/backend/internal/config"
	"github.com/parkampus-dev/parkampus/backend/internal/domain"
	"github.com/parkampus-dev/parkampus/backend/internal/repository"
)

type Handler struct {
	validate    *validator.Validate
	config      *config.Config
	repository  *repository.Repository
	translator  ut.Translator
	mailChannel *amqp.Channel
	redisClient *redis.Client

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, mailCh *amqp.Channel, rdb *redis.Client) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	es := es.New()
	uni := ut.New(es, es)
	trans, _ := uni.GetTranslator("es")
	if err := es_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:    validate,
		config:      cfg,
		repository:  repo,
		translator:  trans,
		mailChannel: mailCh,
		redisClient: rdb,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	h.Mux.Get("/health", h.Health)

	h.Mux.Route("/api", func(r chi.Router) {
		// rutas públicas: login, recuperación de contraseña y registro
		r.Post("/login", h.Login)
		r.Route("/reset-password", func(r chi.Router) {
			r.Post("/require", h.RequireResetPassword)
			r.Post("/confirm", h.ConfirmResetPassword)
		})
		r.Post("/users", h.CreateUser)

		// el resto de la API exige un token válido
		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Route("/users", func(r chi.Router) {
				r.Get("/", h.GetAllUsers)
				r.With(h.myInfo).Get("/profile", h.GetMyProfile)
				r.Route("/{id}", func(r chi.Router) {
					r.Use(h.userInfo)
					r.Get("/", h.GetUser)
					r.With(h.preventUpdateOthers).Patch("/", h.UpdateUser)
					r.With(h.RequiredUserType([]domain.UserType{domain.UserTypeCelador})).Delete("/", h.DeleteUser)
				})
			})

			// las escrituras sobre parqueaderos son exclusivas del celador
			r.Route("/parking-lots", func(r chi.Router) {
				r.With(h.RequiredUserType([]domain.UserType{domain.UserTypeCelador})).Post("/", h.CreateParkingLot)
				r.Get("/", h.GetAllParkingLots)
				r.Route("/{id}", func(r chi.Router) {
					r.Use(h.parkingLot)
					r.Get("/", h.GetParkingLot)
					r.With(h.RequiredUserType([]domain.UserType{domain.UserTypeCelador})).Patch("/", h.UpdateParkingLot)
					r.With(h.RequiredUserType([]domain.UserType{domain.UserTypeCelador})).Delete("/", h.DeleteParkingLot)
				})
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Post("/register-token", h.RegisterPushToken)
				r.With(h.myInfo).With(h.RequiredUserType([]domain.UserType{domain.UserTypeCelador})).Post("/mass-email", h.SendMassEmail)
				r.With(h.myInfo).Get("/history", h.GetNotificationHistory)
				r.Route("/{id}", func(r chi.Router) {
					r.Use(h.notification)
					r.Get("/", h.GetNotification)
					r.With(h.RequiredUserType([]domain.UserType{domain.UserTypeCelador})).Delete("/", h.DeleteNotification)
				})
			})
		})
	})
}
