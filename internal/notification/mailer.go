package notification

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/Matias7xx/portal-aluno/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const dateLayout = "02/01/2006"

// Mailer delivers admission outcomes over SMTP. Delivery is best-effort:
// errors are logged, never returned, so a failed mail cannot disturb a
// committed admission decision.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
	logger logger.Logger
}

func NewMailer(host string, port int, username, password, from string, logger logger.Logger) *Mailer {
	if host == "" {
		logger.Warn("smtp host is empty, notifications disabled")
		return &Mailer{dialer: nil, logger: logger}
	}

	return &Mailer{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
		logger: logger,
	}
}

func (m *Mailer) NotifyEnrollmentReceived(ctx context.Context, user *domain.User, course *domain.Course) {
	body := fmt.Sprintf(
		"Olá %s,\n\nSua inscrição no curso %q foi recebida e está aguardando análise.\n\nPeríodo: %s a %s\nLocal: %s\n",
		user.Name, course.Name,
		course.StartDate.Format(dateLayout), course.EndDate.Format(dateLayout),
		course.Location,
	)
	m.send(ctx, user.Email, "Inscrição Recebida - Portal do Aluno", body)
}

func (m *Mailer) NotifyEnrollmentApproved(ctx context.Context, user *domain.User, course *domain.Course) {
	body := fmt.Sprintf(
		"Olá %s,\n\nSua matrícula no curso %q foi aprovada.\n\nPeríodo: %s a %s\nLocal: %s\n",
		user.Name, course.Name,
		course.StartDate.Format(dateLayout), course.EndDate.Format(dateLayout),
		course.Location,
	)
	m.send(ctx, user.Email, "Matrícula Aprovada - Portal do Aluno", body)
}

func (m *Mailer) NotifyEnrollmentRejected(ctx context.Context, user *domain.User, course *domain.Course, reason string) {
	body := fmt.Sprintf(
		"Olá %s,\n\nSua matrícula no curso %q não foi aprovada.\n\nMotivo: %s\n",
		user.Name, course.Name, reason,
	)
	m.send(ctx, user.Email, "Matrícula Não Aprovada - Portal do Aluno", body)
}

func (m *Mailer) NotifyReservationReceived(ctx context.Context, user *domain.User, reservation *domain.Reservation) {
	body := fmt.Sprintf(
		"Olá %s,\n\nSua reserva de alojamento foi recebida e está aguardando análise.\n\nPeríodo: %s a %s (%d diárias)\n",
		user.Name,
		reservation.DateStart.Format(dateLayout), reservation.DateEnd.Format(dateLayout),
		reservation.Nights(),
	)
	m.send(ctx, user.Email, "Reserva de Alojamento Recebida - Portal do Aluno", body)
}

func (m *Mailer) NotifyReservationApproved(ctx context.Context, user *domain.User, reservation *domain.Reservation) {
	body := fmt.Sprintf(
		"Olá %s,\n\nSua reserva de alojamento foi aprovada.\n\nPeríodo: %s a %s (%d diárias)\n",
		user.Name,
		reservation.DateStart.Format(dateLayout), reservation.DateEnd.Format(dateLayout),
		reservation.Nights(),
	)
	m.send(ctx, user.Email, "Reserva de Alojamento Aprovada - Portal do Aluno", body)
}

func (m *Mailer) NotifyReservationRejected(ctx context.Context, user *domain.User, reservation *domain.Reservation, reason string) {
	body := fmt.Sprintf(
		"Olá %s,\n\nSua reserva de alojamento para o período de %s a %s não foi aprovada.\n\nMotivo: %s\n",
		user.Name,
		reservation.DateStart.Format(dateLayout), reservation.DateEnd.Format(dateLayout),
		reason,
	)
	m.send(ctx, user.Email, "Reserva de Alojamento Não Aprovada - Portal do Aluno", body)
}

func (m *Mailer) send(ctx context.Context, to, subject, body string) {
	if m.dialer == nil {
		m.logger.Debug("notification skipped (mailer disabled)", logger.String("subject", subject))
		return
	}

	if to == "" {
		m.logger.Debug("notification skipped (no recipient)", logger.String("subject", subject))
		return
	}

	if err := ctx.Err(); err != nil {
		m.logger.Debug("notification skipped (context cancelled)",
			logger.String("to", to),
		)
		return
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		m.logger.Error("failed to send notification email",
			logger.String("to", to),
			logger.String("subject", subject),
			logger.String("error", err.Error()),
		)
	}
}
