package main

import (
	"context"
	"encoding/json"
	"html/template"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/wneessen/go-mail"

	"github.com/parkampus-dev/parkampus/backend/internal/config"
	"github.com/parkampus-dev/parkampus/backend/internal/domain"
)

// massTemplates mapea cada tipo de notificación a su plantilla HTML.
var massTemplates = map[domain.NotificationType]string{
	domain.NotificationCierreNocturno:          "./templates/cierre_nocturno.html",
	domain.NotificationLiberacionHoraPico:      "./templates/liberacion_hora_pico.html",
	domain.NotificationCierreSeguridad:         "./templates/cierre_seguridad.html",
	domain.NotificationEventoInstitucional:     "./templates/evento_institucional.html",
	domain.NotificationMantenimientoEmergencia: "./templates/mantenimiento_emergencia.html",
}

func main() {
	/**********************************************
	 * crear logger
	 **********************************************/
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	/**********************************************
	 * cargar configuración
	 **********************************************/
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("no se pudo cargar la configuración", slog.String("error", err.Error()))
		return
	}

	/**********************************************
	 * crear cliente de correo
	 **********************************************/
	client, err := mail.NewClient(cfg.Email.SMTP.Host,
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithSSL(),
		mail.WithPort(cfg.Email.SMTP.Port),
		mail.WithUsername(cfg.Email.SMTP.Username),
		mail.WithPassword(cfg.Email.SMTP.Password),
	)
	if err != nil {
		logger.Error("no se pudo crear el cliente de correo", slog.String("error", err.Error()))
		return
	}
	defer client.Close()

	// verificar que el servidor SMTP acepte la conexión antes de consumir
	clientDialCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Email.SMTP.DialTimeout)*time.Second)
	defer cancel()
	if err := client.DialWithContext(clientDialCtx); err != nil {
		logger.Error("no se pudo conectar al servidor de correo", slog.String("error", err.Error()))
		return
	}

	/**********************************************
	 * conectar a RabbitMQ
	 **********************************************/
	conn, err := amqp.Dial(cfg.RabbitMQ.DSN)
	if err != nil {
		logger.Error("no se pudo conectar a RabbitMQ", slog.String("error", err.Error()))
		return
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		logger.Error("no se pudo abrir el canal", slog.String("error", err.Error()))
		return
	}
	defer ch.Close()

	q, err := ch.QueueDeclare(
		"email_queue", // nombre de la cola
		true,          // durable, para no perder correos pendientes
		false,         // no auto-borrar aunque no haya consumidores
		false,         // no exclusiva
		false,         // esperar confirmación de RabbitMQ
		nil,
	)
	if err != nil {
		logger.Error("no se pudo declarar la cola", slog.String("error", err.Error()))
		return
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	msgs, err := ch.Consume(
		q.Name,
		"",    // identificador de consumidor asignado por RabbitMQ
		false, // ack manual
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		logger.Error("no se pudo consumir la cola", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	wg := sync.WaitGroup{}

	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case msg := <-msgs:
				logger.Info("mensaje recibido", slog.String("message", string(msg.Body)))

				mailMessage := domain.MailMessage{}
				if err := json.Unmarshal(msg.Body, &mailMessage); err != nil {
					logger.Error("no se pudo deserializar el mensaje", slog.String("error", err.Error()))
					_ = msg.Nack(false, false)
					continue
				}

				m := mail.NewMsg()
				if err := m.From(cfg.Email.SMTP.Username); err != nil {
					logger.Error("no se pudo fijar el remitente", slog.String("error", err.Error()))
					_ = msg.Nack(false, false)
					continue
				}
				if err := m.To(mailMessage.To); err != nil {
					logger.Error("no se pudo fijar el destinatario", slog.String("error", err.Error()))
					_ = msg.Nack(false, false)
					continue
				}

				switch mailMessage.Type {
				case "mass_notification":
					// el data llegó como JSON genérico; se vuelve a decodificar al tipo concreto
					data := domain.MassNotificationMailData{}
					raw, _ := json.Marshal(mailMessage.Data)
					if err := json.Unmarshal(raw, &data); err != nil {
						logger.Error("datos de notificación masiva inválidos", slog.String("error", err.Error()))
						_ = msg.Nack(false, false)
						continue
					}

					templatePath, ok := massTemplates[data.NotificationType]
					if !ok {
						logger.Error("tipo de notificación no soportado", slog.String("type", string(data.NotificationType)))
						_ = msg.Nack(false, false)
						continue
					}

					tmpl, err := template.ParseFiles(templatePath)
					if err != nil {
						logger.Error("no se pudo cargar la plantilla", slog.String("error", err.Error()))
						_ = msg.Nack(false, false)
						continue
					}
					if err := m.SetBodyHTMLTemplate(tmpl, data); err != nil {
						logger.Error("no se pudo armar el cuerpo del correo", slog.String("error", err.Error()))
						_ = msg.Nack(false, false)
						continue
					}
					m.Subject(domain.SubjectForType(data.NotificationType))
				case "welcome":
					data := domain.WelcomeMailData{}
					raw, _ := json.Marshal(mailMessage.Data)
					if err := json.Unmarshal(raw, &data); err != nil {
						logger.Error("datos de bienvenida inválidos", slog.String("error", err.Error()))
						_ = msg.Nack(false, false)
						continue
					}

					tmpl, err := template.ParseFiles("./templates/bienvenida.html")
					if err != nil {
						logger.Error("no se pudo cargar la plantilla", slog.String("error", err.Error()))
						_ = msg.Nack(false, false)
						continue
					}
					if err := m.SetBodyHTMLTemplate(tmpl, data); err != nil {
						logger.Error("no se pudo armar el cuerpo del correo", slog.String("error", err.Error()))
						_ = msg.Nack(false, false)
						continue
					}
					m.Subject("Bienvenido a Parkampus")
				case "reset_password":
					data := domain.ResetPasswordMailData{}
					raw, _ := json.Marshal(mailMessage.Data)
					if err := json.Unmarshal(raw, &data); err != nil {
						logger.Error("datos de restablecimiento inválidos", slog.String("error", err.Error()))
						_ = msg.Nack(false, false)
						continue
					}

					tmpl, err := template.ParseFiles("./templates/restablecer_contrasena.html")
					if err != nil {
						logger.Error("no se pudo cargar la plantilla", slog.String("error", err.Error()))
						_ = msg.Nack(false, false)
						continue
					}
					if err := m.SetBodyHTMLTemplate(tmpl, data); err != nil {
						logger.Error("no se pudo armar el cuerpo del correo", slog.String("error", err.Error()))
						_ = msg.Nack(false, false)
						continue
					}
					m.Subject("Parkampus - Restablecer contraseña")
				default:
					logger.Error("tipo de correo no soportado", slog.String("type", mailMessage.Type))
					_ = msg.Nack(false, false)
					continue
				}

				if err := client.DialAndSend(m); err != nil {
					logger.Error("fallo el envío del correo", slog.String("error", err.Error()))
					_ = msg.Nack(false, true) // reencolar para reintentar
					continue
				}

				_ = msg.Ack(false)
			}
		}
	}()

	logger.Info("esperando mensajes... (CTRL+C para salir)")
	<-sigChan

	slog.Info("apagando el mailer...")
	cancel()
	wg.Wait()
	slog.Info("mailer apagado correctamente")
}
